package ast

import "fmt"

// Child is a named child of a node. List-valued fields yield one Child per
// element, all with the same name.
type Child struct {
	Name string
	Node Node
}

type childList []Child

func (c *childList) add(name string, n Node) {
	if !IsNil(n) {
		*c = append(*c, Child{Name: name, Node: n})
	}
}

// Children returns the non-nil children of n in source order. It panics on
// a node type it does not know, so adding a node type without extending
// this switch fails loudly.
func Children(n Node) []Child {
	var c childList
	switch n := n.(type) {
	case *TranslationUnit:
		for _, d := range n.Decls {
			c.add("decl", d)
		}

	// Expressions
	case *Ident, *Literal:
	case *ParenExpr:
		c.add("x", n.X)
	case *BinaryExpr:
		c.add("x", n.X)
		c.add("y", n.Y)
	case *UnaryExpr:
		c.add("x", n.X)
	case *PostfixExpr:
		c.add("x", n.X)
	case *IndexExpr:
		c.add("x", n.X)
		c.add("index", n.Index)
	case *FieldExpr:
		c.add("x", n.X)
	case *MethodCallExpr:
		c.add("x", n.X)
		for _, a := range n.Args {
			c.add("arg", a)
		}
	case *CallExpr:
		c.add("callee", n.Callee)
		for _, a := range n.Args {
			c.add("arg", a)
		}
	case *CondExpr:
		c.add("cond", n.Cond)
		c.add("then", n.Then)
		c.add("else", n.Else)
	case *AssignExpr:
		c.add("lhs", n.LHS)
		c.add("rhs", n.RHS)
	case *CommaExpr:
		for _, x := range n.List {
			c.add("expr", x)
		}

	// Statements
	case *CompoundStmt:
		for _, s := range n.List {
			c.add("stmt", s)
		}
	case *IfStmt:
		c.add("cond", n.Cond)
		c.add("then", n.Then)
		c.add("else", n.Else)
	case *SwitchStmt:
		c.add("tag", n.Tag)
		for _, s := range n.Body {
			c.add("stmt", s)
		}
	case *CaseLabel:
		c.add("value", n.Value)
	case *ForStmt:
		c.add("init", n.Init)
		c.add("cond", n.Cond)
		c.add("post", n.Post)
		c.add("body", n.Body)
	case *WhileStmt:
		c.add("cond", n.Cond)
		c.add("body", n.Body)
	case *DoWhileStmt:
		c.add("body", n.Body)
		c.add("cond", n.Cond)
	case *JumpStmt:
		c.add("result", n.Result)
	case *ExprStmt:
		c.add("x", n.X)
	case *DeclStmt:
		c.add("decl", n.Decl)
	case *CondDecl:
		c.add("type", n.Type)
		c.add("init", n.Init)

	// Declarations
	case *FunctionPrototype:
		c.add("returnType", n.ReturnType)
		for _, p := range n.Params {
			c.add("param", p)
		}
	case *FunctionDefinition:
		c.add("prototype", n.Prototype)
		c.add("body", n.Body)
	case *InitDeclaratorList:
		c.add("type", n.Type)
		for _, d := range n.Declarators {
			c.add("declarator", d)
		}
	case *PrecisionDecl:
		c.add("precision", n.Precision)
		c.add("type", n.Type)
	case *InvariantDecl:
	case *BlockDecl:
		c.add("qualifier", n.Qualifier)
		for _, m := range n.Members {
			c.add("member", m)
		}
		c.add("instance", n.Instance)
	case *Declarator:
		c.add("array", n.Array)
		c.add("init", n.Init)
	case *ParamDecl:
		c.add("const", n.Const)
		c.add("direction", n.Direction)
		c.add("type", n.Type)
		c.add("array", n.Array)

	// Types and qualifiers
	case *TypeSpecifier:
		c.add("precision", n.Precision)
		c.add("struct", n.Struct)
		c.add("array", n.Array)
	case *ArraySpecifier:
		c.add("size", n.Size)
	case *FullySpecifiedType:
		c.add("qualifier", n.Qualifier)
		c.add("type", n.Type)
	case *TypeQualifier:
		for _, q := range n.List {
			c.add("qualifier", q)
		}
	case *StructSpecifier:
		for _, m := range n.Members {
			c.add("member", m)
		}
	case *StructMember:
		c.add("qualifier", n.Qualifier)
		c.add("type", n.Type)
		for _, d := range n.Declarators {
			c.add("declarator", d)
		}
	case *LayoutQualifier:
		for _, id := range n.IDs {
			c.add("id", id)
		}
	case *StorageQualifier, *InterpolationQualifier, *PrecisionQualifier,
		*InvariantQualifier, *LayoutID:

	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
	return c
}
