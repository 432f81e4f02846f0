// Package format renders parse results for people and tools: the syntax
// tree as JSON or as an indented outline, and diagnostics as JSON.
package format

import (
	"strings"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
)

type Encoder interface {
	Encode(res *parser.Result) error
}

// Label returns the source text that identifies n among nodes of its kind:
// the name of an identifier or declaration, the operator of an operation,
// the keyword of a qualifier or jump. It returns "" for nodes that are
// described by their children alone.
func Label(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Ident:
		return n.Name.Literal
	case *ast.Literal:
		return n.Value.Literal
	case *ast.BinaryExpr:
		return n.Op.Literal
	case *ast.UnaryExpr:
		return n.Op.Literal
	case *ast.PostfixExpr:
		return n.Op.Literal
	case *ast.AssignExpr:
		return n.Op.Literal
	case *ast.FieldExpr:
		return n.Field.Literal
	case *ast.MethodCallExpr:
		return n.Method.Literal
	case *ast.CallExpr:
		if n.Callee == nil {
			return ""
		}
		return n.Callee.TypeName()
	case *ast.JumpStmt:
		return n.Keyword.Literal
	case *ast.CondDecl:
		return n.Name.Literal
	case *ast.FunctionPrototype:
		return n.Name.Literal
	case *ast.FunctionDefinition:
		if n.Prototype == nil {
			return ""
		}
		return n.Prototype.Name.Literal
	case *ast.InvariantDecl:
		names := make([]string, len(n.Names))
		for i, name := range n.Names {
			names[i] = name.Literal
		}
		return strings.Join(names, ", ")
	case *ast.BlockDecl:
		return n.Name.Literal
	case *ast.Declarator:
		return n.Name.Literal
	case *ast.ParamDecl:
		if n.Name != nil {
			return n.Name.Literal
		}
	case *ast.TypeSpecifier:
		return n.TypeName()
	case *ast.StructSpecifier:
		if n.Name != nil {
			return n.Name.Literal
		}
	case *ast.StorageQualifier:
		return n.Keyword.Literal
	case *ast.InterpolationQualifier:
		return n.Keyword.Literal
	case *ast.PrecisionQualifier:
		return n.Keyword.Literal
	case *ast.InvariantQualifier:
		return n.Keyword.Literal
	case *ast.LayoutID:
		if n.Value != nil {
			return n.Name.Literal + "=" + n.Value.Literal
		}
		return n.Name.Literal
	}
	return ""
}
