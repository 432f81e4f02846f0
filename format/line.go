package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// TreeEncoder writes the syntax tree as an indented outline, one node per
// line:
//
//	TranslationUnit [0..6]
//	  decl: InitDeclaratorList [0..6]
//	    type: FullySpecifiedType [0..0]
//	      type: TypeSpecifier "float" [0..0]
type TreeEncoder struct {
	w io.Writer
	// Positions prints line:column ranges instead of token indices.
	Positions bool
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(res *parser.Result) error {
	text, err := e.MarshalText(res)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(res *parser.Result) ([]byte, error) {
	var sb strings.Builder
	if res.Unit != nil {
		e.writeNode(&sb, 0, "", res.Unit, res.Tokens)
	}
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) writeNode(sb *strings.Builder, depth int, role string, n ast.Node, tokens []token.Token) {
	sb.WriteString(strings.Repeat("  ", depth))
	if role != "" {
		fmt.Fprintf(sb, "%s: ", role)
	}
	sb.WriteString(ast.KindName(n))
	if label := Label(n); label != "" {
		fmt.Fprintf(sb, " %q", label)
	}
	sb.WriteString(" ")
	sb.WriteString(e.spanString(n.Span(), tokens))
	sb.WriteString("\n")

	for _, c := range ast.Children(n) {
		e.writeNode(sb, depth+1, c.Name, c.Node, tokens)
	}
}

func (e *TreeEncoder) spanString(s ast.Span, tokens []token.Token) string {
	if !s.Valid() {
		return "[]"
	}
	if e.Positions && s.Last < len(tokens) {
		start, end := tokens[s.First].Start, tokens[s.Last].End
		return fmt.Sprintf("[%d:%d-%d:%d]", start.Line, start.Column, end.Line, end.Column)
	}
	return fmt.Sprintf("[%d..%d]", s.First, s.Last)
}
