package codebase

import (
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

type SymbolKind int

const (
	SymbolKindFunction SymbolKind = iota
	SymbolKindVariable
	SymbolKindStruct
	SymbolKindBlock
	SymbolKindField
)

// Symbol is a named global declaration. Offsets are byte offsets into the
// file content; the selection range covers the name alone.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Detail    string
	Start     int
	End       int
	NameStart int
	NameEnd   int
	Children  []Symbol
}

// Symbols returns the global declarations of path in source order.
func (c *Codebase) Symbols(path string) []Symbol {
	f := c.GetFile(path)
	if f == nil || f.Result.Unit == nil {
		return nil
	}
	b := symbolBuilder{tokens: f.Result.Tokens, src: f.Content}
	var symbols []Symbol
	for _, d := range f.Result.Unit.Decls {
		symbols = append(symbols, b.decl(d)...)
	}
	return symbols
}

type symbolBuilder struct {
	tokens []token.Token
	src    []byte
}

// text returns the source text of n with runs of whitespace collapsed.
func (b symbolBuilder) text(n ast.Node) string {
	start, end, ok := ast.Range(n, b.tokens)
	if !ok {
		return ""
	}
	return collapseSpace(string(b.src[start:end]))
}

func (b symbolBuilder) symbol(name token.Token, kind SymbolKind, n ast.Node) Symbol {
	s := Symbol{
		Name:      name.Literal,
		Kind:      kind,
		NameStart: name.Start.Offset,
		NameEnd:   name.End.Offset,
	}
	if start, end, ok := ast.Range(n, b.tokens); ok {
		s.Start, s.End = start, end
	} else {
		s.Start, s.End = s.NameStart, s.NameEnd
	}
	return s
}

func (b symbolBuilder) decl(d ast.Decl) []Symbol {
	switch d := d.(type) {
	case *ast.FunctionDefinition:
		if d.Prototype == nil {
			return nil
		}
		s := b.symbol(d.Prototype.Name, SymbolKindFunction, d)
		s.Detail = b.text(d.Prototype)
		return []Symbol{s}
	case *ast.FunctionPrototype:
		s := b.symbol(d.Name, SymbolKindFunction, d)
		s.Detail = b.text(d)
		return []Symbol{s}
	case *ast.InitDeclaratorList:
		if d.Type == nil || d.Type.Type == nil {
			return nil
		}
		var symbols []Symbol
		if st := d.Type.Type.Struct; st != nil && st.Name != nil {
			s := b.symbol(*st.Name, SymbolKindStruct, st)
			s.Children = b.members(st.Members)
			symbols = append(symbols, s)
		}
		for _, decl := range d.Declarators {
			s := b.symbol(decl.Name, SymbolKindVariable, decl)
			s.Detail = d.Type.Type.TypeName()
			symbols = append(symbols, s)
		}
		return symbols
	case *ast.BlockDecl:
		s := b.symbol(d.Name, SymbolKindBlock, d)
		s.Children = b.members(d.Members)
		if d.Instance != nil {
			s.Detail = d.Instance.Name.Literal
		}
		return []Symbol{s}
	default:
		return nil
	}
}

func (b symbolBuilder) members(members []*ast.StructMember) []Symbol {
	var symbols []Symbol
	for _, m := range members {
		for _, d := range m.Declarators {
			s := b.symbol(d.Name, SymbolKindField, d)
			if m.Type != nil {
				s.Detail = m.Type.TypeName()
			}
			symbols = append(symbols, s)
		}
	}
	return symbols
}

func collapseSpace(s string) string {
	out := make([]byte, 0, len(s))
	space := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			space = true
			continue
		}
		if space && len(out) > 0 {
			out = append(out, ' ')
		}
		space = false
		out = append(out, s[i])
	}
	return string(out)
}
