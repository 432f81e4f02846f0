package parser

import (
	"fmt"
	"strings"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// LexicalError is a run of characters that does not start any token.
type LexicalError struct {
	File   string
	Text   string
	Offset int
	Line   int
	Column int
	Length int
}

func (e *LexicalError) Error() string {
	pos := token.Position{File: e.File, Line: e.Line, Column: e.Column}
	return fmt.Sprintf("%s: unexpected character sequence %q", pos, e.Text)
}

// RecognitionError is a token the grammar did not allow at its position.
type RecognitionError struct {
	Message string
	Token   token.Token
	// Index is the position of Token in the token sequence.
	Index int
	// Rules is the stack of grammar rules active when the error was found,
	// outermost first.
	Rules []string
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Token.Start, e.Message)
}

// Context returns the active rule stack as "a > b > c".
func (e *RecognitionError) Context() string {
	return strings.Join(e.Rules, " > ")
}

// describe renders a token kind for use in an error message.
func describe(k token.Kind) string {
	switch {
	case k == token.EOF:
		return "end of input"
	case k == token.Ident:
		return "identifier"
	case k == token.BasicType:
		return "type name"
	case k.IsLiteral():
		return "literal"
	default:
		return "'" + k.String() + "'"
	}
}
