package parser

import "github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"

// Lexer turns GLSL source into tokens. Whitespace, comments and
// preprocessor directive lines are skipped. Character runs that cannot start
// a token are collected as lexical errors and scanning continues after them.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
	// bol is true while only whitespace and comments have been seen on the
	// current line, so a '#' starts a directive.
	bol    bool
	errors []*LexicalError
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
		bol:    true,
	}
}

// Lex scans all of input. The returned tokens always end with an EOF token.
func Lex(input []byte, file string) ([]token.Token, []*LexicalError) {
	l := NewLexer(input, file)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, l.Errors()
}

// Errors returns the lexical errors found so far.
func (l *Lexer) Errors() []*LexicalError {
	return l.errors
}

func (l *Lexer) Position() token.Position {
	return token.Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
		l.bol = true
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// NextToken returns the next token. At the end of input it returns a
// zero-width EOF token, and keeps doing so on further calls.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipTrivia()
		start := l.Position()
		if l.pos >= len(l.input) {
			return token.Token{Kind: token.EOF, Start: start, End: start}
		}

		ch := l.peek()
		switch {
		case isLetter(ch):
			l.bol = false
			return l.scanWord(start)
		case isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))):
			l.bol = false
			return l.scanNumber(start)
		}
		if tok, ok := l.scanOperator(start); ok {
			l.bol = false
			return tok
		}
		l.bol = false
		l.scanInvalid(start)
	}
}

func (l *Lexer) skipTrivia() {
	for l.pos < len(l.input) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f':
			l.advance()
		case ch == '/' && l.peekN(1) == '/':
			for l.peek() != 0 && l.peek() != '\n' {
				l.advance()
			}
		case ch == '/' && l.peekN(1) == '*':
			l.advanceN(2)
			for l.pos < len(l.input) && !(l.peek() == '*' && l.peekN(1) == '/') {
				l.advance()
			}
			l.advanceN(2)
		case ch == '#' && l.bol:
			l.skipDirective()
		default:
			return
		}
	}
}

// skipDirective skips a preprocessor directive up to the end of its line.
// A backslash immediately before the newline continues the directive.
func (l *Lexer) skipDirective() {
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == '\\' && l.peekN(1) == '\n' {
			l.advanceN(2)
			continue
		}
		if ch == '\\' && l.peekN(1) == '\r' && l.peekN(2) == '\n' {
			l.advanceN(3)
			continue
		}
		if ch == '\n' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) scanWord(start token.Position) token.Token {
	for isLetter(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	literal := string(l.input[start.Offset:l.pos])
	return l.makeToken(token.Lookup(literal), start)
}

func (l *Lexer) scanNumber(start token.Position) token.Token {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') && isHexDigit(l.peekN(2)) {
		l.advanceN(2)
		for isHexDigit(l.peek()) {
			l.advance()
		}
		return l.integerSuffix(start)
	}

	l.scanDigits()
	isFloat := false
	if l.peek() == '.' {
		isFloat = true
		l.advance()
		l.scanDigits()
	}
	if e := l.peek(); e == 'e' || e == 'E' {
		next := l.peekN(1)
		if isDigit(next) {
			isFloat = true
			l.advance()
			l.scanDigits()
		} else if (next == '+' || next == '-') && isDigit(l.peekN(2)) {
			isFloat = true
			l.advanceN(2)
			l.scanDigits()
		}
	}
	if !isFloat {
		return l.integerSuffix(start)
	}
	if f := l.peek(); f == 'f' || f == 'F' {
		l.advance()
	}
	return l.makeToken(token.FloatLit, start)
}

func (l *Lexer) integerSuffix(start token.Position) token.Token {
	if u := l.peek(); u == 'u' || u == 'U' {
		l.advance()
		return l.makeToken(token.UintLit, start)
	}
	return l.makeToken(token.IntLit, start)
}

func (l *Lexer) scanDigits() {
	for isDigit(l.peek()) {
		l.advance()
	}
}

// operators is ordered so that longer spellings come first.
var operators = []struct {
	text string
	kind token.Kind
}{
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{"++", token.Inc},
	{"--", token.Dec},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"<=", token.LE},
	{">=", token.GE},
	{"==", token.EQ},
	{"!=", token.NE},
	{"&&", token.And},
	{"||", token.Or},
	{"^^", token.Xor},
	{"*=", token.MulAssign},
	{"/=", token.DivAssign},
	{"%=", token.ModAssign},
	{"+=", token.AddAssign},
	{"-=", token.SubAssign},
	{"&=", token.AndAssign},
	{"^=", token.XorAssign},
	{"|=", token.OrAssign},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{".", token.Dot},
	{",", token.Comma},
	{":", token.Colon},
	{";", token.Semicolon},
	{"?", token.Question},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"!", token.Bang},
	{"~", token.Tilde},
	{"<", token.LT},
	{">", token.GT},
	{"&", token.BitAnd},
	{"^", token.BitXor},
	{"|", token.BitOr},
	{"=", token.Assign},
}

func (l *Lexer) scanOperator(start token.Position) (token.Token, bool) {
	rest := l.input[l.pos:]
	for _, op := range operators {
		if len(rest) >= len(op.text) && string(rest[:len(op.text)]) == op.text {
			l.advanceN(len(op.text))
			return l.makeToken(op.kind, start), true
		}
	}
	return token.Token{}, false
}

// scanInvalid consumes the longest run of characters that cannot start a
// token and records it as a single lexical error.
func (l *Lexer) scanInvalid(start token.Position) {
	l.advance()
	for l.pos < len(l.input) && !l.startsToken() {
		l.advance()
	}
	text := string(l.input[start.Offset:l.pos])
	l.errors = append(l.errors, &LexicalError{
		File:   l.file,
		Text:   text,
		Offset: start.Offset,
		Line:   start.Line,
		Column: start.Column,
		Length: len(text),
	})
}

// startsToken reports whether the current character begins a token or
// trivia.
func (l *Lexer) startsToken() bool {
	ch := l.peek()
	switch ch {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	if isLetter(ch) || isDigit(ch) {
		return true
	}
	for _, op := range operators {
		if op.text[0] == ch {
			return true
		}
	}
	return false
}

func (l *Lexer) makeToken(kind token.Kind, start token.Position) token.Token {
	return token.Token{
		Kind:    kind,
		Literal: string(l.input[start.Offset:l.pos]),
		Start:   start,
		End:     l.Position(),
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
