package format

import (
	"encoding/json"
	"io"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

type ASTJSONEncoder struct {
	w io.Writer
	// Positions adds line and column positions to every span.
	Positions bool
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(res *parser.Result) error {
	text, err := e.MarshalText(res)
	if err != nil {
		return err
	}
	if _, err = e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *ASTJSONEncoder) MarshalText(res *parser.Result) ([]byte, error) {
	if res.Unit == nil {
		return []byte("null"), nil
	}
	return json.MarshalIndent(e.nodeToJSON("", res.Unit, res.Tokens), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Role     string         `json:"role,omitempty"`
	Text     string         `json:"text,omitempty"`
	Span     *astJSONSpan   `json:"span,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	First int              `json:"first"`
	Last  int              `json:"last"`
	Start *astJSONPosition `json:"start,omitempty"`
	End   *astJSONPosition `json:"end,omitempty"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

func jsonPosition(p token.Position) *astJSONPosition {
	return &astJSONPosition{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

func (e *ASTJSONEncoder) nodeToJSON(role string, n ast.Node, tokens []token.Token) *astJSONNode {
	jn := &astJSONNode{
		Kind: ast.KindName(n),
		Role: role,
		Text: Label(n),
	}

	if s := n.Span(); s.Valid() {
		jn.Span = &astJSONSpan{First: s.First, Last: s.Last}
		if e.Positions && s.Last < len(tokens) {
			jn.Span.Start = jsonPosition(tokens[s.First].Start)
			jn.Span.End = jsonPosition(tokens[s.Last].End)
		}
	}

	children := ast.Children(n)
	if len(children) > 0 {
		jn.Children = make([]*astJSONNode, len(children))
		for i, child := range children {
			jn.Children[i] = e.nodeToJSON(child.Name, child.Node, tokens)
		}
	}

	return jn
}
