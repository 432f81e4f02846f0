// Package diag turns lexer and parser errors into one ordered list of
// located diagnostics and renders source excerpts for them.
package diag

import (
	"fmt"
	"sort"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// Source is the stage that reported a diagnostic.
type Source int

const (
	Lexer Source = iota
	Parser
)

func (s Source) String() string {
	switch s {
	case Lexer:
		return "lexer"
	case Parser:
		return "parser"
	default:
		return "unknown"
	}
}

// Diagnostic is a located error from the lexer or the parser.
type Diagnostic struct {
	Source  Source
	Message string
	Start   token.Position
	End     token.Position
	// Length is End.Offset - Start.Offset; zero at end of input.
	Length int
	// Rules is the parser rule stack for a parser diagnostic.
	Rules []string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Start, d.Message)
}

// Context renders the source excerpt of d from src, which must be the text
// the diagnostic positions refer to.
func (d Diagnostic) Context(src []byte) string {
	return Render(src, d.Start.Offset, d.End.Offset)
}

// FromLexical converts a lexical error. Invalid runs never span a line
// break, so the end position is on the start line.
func FromLexical(e *parser.LexicalError) Diagnostic {
	start := token.Position{File: e.File, Offset: e.Offset, Line: e.Line, Column: e.Column}
	end := start
	end.Offset += e.Length
	end.Column += e.Length
	return Diagnostic{
		Source:  Lexer,
		Message: fmt.Sprintf("unexpected character sequence %q", e.Text),
		Start:   start,
		End:     end,
		Length:  e.Length,
	}
}

// FromRecognition converts a parser error; it spans the offending token.
func FromRecognition(e *parser.RecognitionError) Diagnostic {
	return Diagnostic{
		Source:  Parser,
		Message: e.Message,
		Start:   e.Token.Start,
		End:     e.Token.End,
		Length:  e.Token.Len(),
		Rules:   e.Rules,
	}
}

// FromResult merges the lexical and recognition errors of a parse into one
// list ordered by source offset. Lexical errors come first at equal offsets.
func FromResult(r *parser.Result) []Diagnostic {
	list := make([]Diagnostic, 0, len(r.LexErrors)+len(r.Errors))
	for _, e := range r.LexErrors {
		list = append(list, FromLexical(e))
	}
	for _, e := range r.Errors {
		list = append(list, FromRecognition(e))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Start.Offset < list[j].Start.Offset
	})
	return list
}
