package codebase

import (
	"fmt"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

// Hover is the description of the node under a position, as Markdown.
// Start and End are the byte range of the node.
type Hover struct {
	Text  string
	Start int
	End   int
}

// Hover describes the innermost node at offset. A name is described by the
// declaration it refers to when one is in scope.
func (c *Codebase) Hover(path string, offset int) (Hover, bool) {
	f := c.GetFile(path)
	if f == nil || f.Result.Unit == nil {
		return Hover{}, false
	}
	tokens := f.Result.Tokens
	nodes := ast.Path(f.Result.Unit, tokens, offset)
	if len(nodes) == 0 {
		return Hover{}, false
	}
	n := nodes[len(nodes)-1]
	start, end, _ := ast.Range(n, tokens)
	b := symbolBuilder{tokens: tokens, src: f.Content}

	var text string
	switch n := n.(type) {
	case *ast.Ident:
		if d := resolve(nodes, n.Name.Literal, n.Span().First); d != nil {
			text = codeBlock(b.text(d))
		} else {
			text = fmt.Sprintf("`%s`: no declaration in this file", n.Name.Literal)
		}
	case *ast.TypeSpecifier:
		if n.Struct != nil {
			text = fmt.Sprintf("struct `%s`", n.TypeName())
			break
		}
		if n.Name.Kind == token.BasicType {
			text = fmt.Sprintf("built-in type `%s`", n.Name.Literal)
			break
		}
		if d := resolve(nodes, n.Name.Literal, n.Span().First); d != nil {
			text = codeBlock(b.text(d))
		} else {
			text = fmt.Sprintf("`%s`: no declaration in this file", n.Name.Literal)
		}
	default:
		text = ast.KindName(n)
	}
	return Hover{Text: text, Start: start, End: end}, true
}

func codeBlock(s string) string {
	return "```glsl\n" + s + "\n```"
}

// resolve finds the declaration of name visible from the innermost node of
// nodes. Local declarations must end before the token index before; global
// ones may appear anywhere. It returns the node whose text best shows the
// declaration: a declaration list, a parameter, a prototype or a struct.
func resolve(nodes []ast.Node, name string, before int) ast.Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		switch n := nodes[i].(type) {
		case *ast.CompoundStmt:
			for _, s := range n.List {
				if s.Span().Last >= before {
					break
				}
				if ds, ok := s.(*ast.DeclStmt); ok {
					if d := declares(ds.Decl, name); d != nil {
						return d
					}
				}
			}
		case *ast.ForStmt:
			if ds, ok := n.Init.(*ast.DeclStmt); ok {
				if d := declares(ds.Decl, name); d != nil {
					return d
				}
			}
			if cd, ok := n.Cond.(*ast.CondDecl); ok && cd.Name.Literal == name {
				return cd
			}
		case *ast.WhileStmt:
			if cd, ok := n.Cond.(*ast.CondDecl); ok && cd.Name.Literal == name {
				return cd
			}
		case *ast.FunctionDefinition:
			if n.Prototype == nil {
				continue
			}
			for _, p := range n.Prototype.Params {
				if p.Name != nil && p.Name.Literal == name {
					return p
				}
			}
		case *ast.TranslationUnit:
			for _, d := range n.Decls {
				if found := declares(d, name); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

// declares returns the node that declares name in d, or nil.
func declares(d ast.Decl, name string) ast.Node {
	switch d := d.(type) {
	case *ast.FunctionDefinition:
		if d.Prototype != nil && d.Prototype.Name.Literal == name {
			return d.Prototype
		}
	case *ast.FunctionPrototype:
		if d.Name.Literal == name {
			return d
		}
	case *ast.InitDeclaratorList:
		if d.Type != nil && d.Type.Type != nil {
			if st := d.Type.Type.Struct; st != nil && st.Name != nil && st.Name.Literal == name {
				return st
			}
		}
		for _, decl := range d.Declarators {
			if decl.Name.Literal == name {
				return d
			}
		}
	case *ast.BlockDecl:
		if d.Instance != nil {
			if d.Instance.Name.Literal == name {
				return d
			}
			return nil
		}
		// Without an instance name the members are global names.
		for _, m := range d.Members {
			for _, decl := range m.Declarators {
				if decl.Name.Literal == name {
					return m
				}
			}
		}
	}
	return nil
}
