package parser

import (
	"fmt"
	"slices"

	"github.com/tliron/commonlog"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// Option configures a Parser.
type Option func(*Parser)

// WithFile sets the file name recorded in token positions.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithLogger replaces the package logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser is a recursive-descent parser for GLSL ES translation units.
// A Parser holds per-parse state and is not safe for concurrent use; Reset
// lets one instance serve many parses.
type Parser struct {
	file string
	log  commonlog.Logger

	tokens []token.Token
	pos    int
	errors []*RecognitionError
	rules  []string

	// faults counts every failure, including suppressed ones and those
	// inside a speculative parse. A speculative parse fails if it grew.
	faults int
	// recovering is set after an error and cleared by the next successful
	// match; failures while it is set are not reported.
	recovering bool
	// speculating is the nesting depth of speculative parses. Errors found
	// while speculating are never kept, so they are not recorded.
	speculating int
	// noCall holds the token indices where a call header was tried and
	// failed. The outcome depends only on the tokens, so it is not tried
	// again from the same index.
	noCall map[int]bool
}

// New returns a Parser with no tokens. Call Reset before parsing.
func New(opts ...Option) *Parser {
	p := &Parser{log: commonlog.GetLogger("glsl.parser")}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset prepares the parser to parse tokens. An EOF token is appended if the
// sequence does not already end with one.
func (p *Parser) Reset(tokens []token.Token) {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		var end token.Position
		if n > 0 {
			end = tokens[n-1].End
		}
		tokens = append(slices.Clip(tokens), token.Token{Kind: token.EOF, Start: end, End: end})
	}
	p.tokens = tokens
	p.pos = 0
	p.errors = nil
	p.rules = p.rules[:0]
	p.faults = 0
	p.recovering = false
	p.speculating = 0
	p.noCall = make(map[int]bool)
}

func (p *Parser) Tokens() []token.Token {
	return p.tokens
}

// Errors returns the recognition errors of the last parse in source order.
func (p *Parser) Errors() []*RecognitionError {
	return p.errors
}

// Result is the outcome of parsing one source text.
type Result struct {
	Source    []byte
	Tokens    []token.Token
	Unit      *ast.TranslationUnit
	LexErrors []*LexicalError
	Errors    []*RecognitionError
}

func (r *Result) HasErrors() bool {
	return len(r.LexErrors) > 0 || len(r.Errors) > 0
}

// Parse lexes and parses src as a translation unit.
func Parse(src []byte, opts ...Option) *Result {
	return New(opts...).Parse(src)
}

// Parse lexes and parses src as a translation unit, reusing p.
func (p *Parser) Parse(src []byte) *Result {
	tokens, lexErrors := Lex(src, p.file)
	return p.ParseTokens(src, tokens, lexErrors)
}

// ParseTokens parses an already lexed token sequence. src is recorded in the
// result as the text the token positions refer to.
func (p *Parser) ParseTokens(src []byte, tokens []token.Token, lexErrors []*LexicalError) *Result {
	p.Reset(tokens)
	unit := p.TranslationUnit()
	return &Result{
		Source:    src,
		Tokens:    p.tokens,
		Unit:      unit,
		LexErrors: lexErrors,
		Errors:    p.errors,
	}
}

// ParseExpression lexes src and parses it as a single expression that must
// make up the whole input.
func ParseExpression(src []byte, opts ...Option) (ast.Expr, *Result) {
	p := New(opts...)
	tokens, lexErrors := Lex(src, p.file)
	p.Reset(tokens)
	x := p.Expression()
	return x, &Result{
		Source:    src,
		Tokens:    p.tokens,
		LexErrors: lexErrors,
		Errors:    p.errors,
	}
}

func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind. Otherwise it records an error
// and consumes nothing.
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	tok := p.peek()
	if tok.Kind == kind {
		p.advance()
		p.recovering = false
		return tok, true
	}
	p.errorf("expected %s, found %s", describe(kind), tok)
	return tok, false
}

// errorf records a recognition error at the current token, unless the
// parser is speculating or still recovering from an earlier error.
func (p *Parser) errorf(format string, args ...any) {
	p.faults++
	if p.speculating > 0 || p.recovering {
		p.recovering = true
		return
	}
	p.recovering = true
	p.errors = append(p.errors, &RecognitionError{
		Message: fmt.Sprintf(format, args...),
		Token:   p.peek(),
		Index:   p.pos,
		Rules:   slices.Clone(p.rules),
	})
}

// mustProgress returns a function that checks if the parser has advanced.
// Call it at the start of a loop iteration, then call the returned function
// at the end; if nothing was consumed it skips one token and returns false.
func (p *Parser) mustProgress() func() bool {
	saved := p.pos
	return func() bool {
		if p.pos == saved {
			if !p.check(token.EOF) {
				p.advance()
			}
			return false
		}
		return true
	}
}

// rule runs a grammar rule. The rule name is on the rule stack while parse
// runs, and the returned node is stamped with the tokens it consumed.
func rule[T ast.Node](p *Parser, name string, parse func() T) T {
	start := p.pos
	p.rules = append(p.rules, name)
	n := parse()
	p.rules = p.rules[:len(p.rules)-1]
	if !ast.IsNil(n) {
		n.SetSpan(ast.Span{First: start, Last: p.pos - 1})
	}
	return n
}

// stamp sets the span of a node assembled outside its own rule, such as a
// folded binary expression.
func stamp[T ast.Node](p *Parser, n T, first int) T {
	n.SetSpan(ast.Span{First: first, Last: p.pos - 1})
	return n
}

type checkpoint struct {
	pos        int
	errors     int
	faults     int
	rules      int
	recovering bool
}

func (p *Parser) mark() checkpoint {
	return checkpoint{
		pos:        p.pos,
		errors:     len(p.errors),
		faults:     p.faults,
		rules:      len(p.rules),
		recovering: p.recovering,
	}
}

func (p *Parser) rewind(c checkpoint) {
	p.pos = c.pos
	p.errors = p.errors[:c.errors]
	p.faults = c.faults
	p.rules = p.rules[:c.rules]
	p.recovering = c.recovering
}

// attempt runs parse speculatively. If parse fails anywhere the parser is
// rewound to where it started and ok is false; otherwise the tokens parse
// consumed stay consumed.
func attempt[T any](p *Parser, what string, parse func() T) (v T, ok bool) {
	c := p.mark()
	p.speculating++
	defer func() {
		p.speculating--
		if !ok {
			p.log.Debugf("rewound %s at %s", what, p.tokens[c.pos].Start)
			p.rewind(c)
		}
	}()
	v = parse()
	if p.faults != c.faults {
		var zero T
		return zero, false
	}
	return v, true
}

// lookahead reports whether parse would succeed here, without consuming
// anything.
func (p *Parser) lookahead(parse func()) bool {
	c := p.mark()
	p.speculating++
	parse()
	p.speculating--
	ok := p.faults == c.faults
	p.rewind(c)
	return ok
}

// synchronize skips tokens after an error until the end of the current
// statement: past a ';', past a balanced block, or up to a '}' that closes
// the enclosing block.
func (p *Parser) synchronize() {
	defer func() { p.recovering = false }()
	for !p.check(token.EOF) {
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.RBrace:
			return
		case token.LBrace:
			p.skipBlock()
			return
		}
		p.advance()
	}
}

// skipBlock skips a brace-balanced block starting at '{'.
func (p *Parser) skipBlock() {
	depth := 0
	for !p.check(token.EOF) {
		switch p.advance().Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}
