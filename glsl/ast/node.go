// Package ast declares the syntax tree produced by the GLSL parser.
//
// Node families are closed sum types: Expr, Stmt, Decl and Qualifier are
// interfaces with unexported marker methods, so only this package can add
// variants. Consumers switch over the concrete types; the switches in this
// package panic on an unknown type instead of silently skipping it.
//
// Every node carries a Span of inclusive token indices into the token
// sequence it was parsed from. A node's span covers the spans of all of its
// descendants.
package ast

import "reflect"

// Span identifies the first and last token (inclusive) consumed by a node.
type Span struct {
	First int
	Last  int
}

// Valid reports whether the span covers at least one token.
func (s Span) Valid() bool {
	return s.First >= 0 && s.Last >= s.First
}

// Contains reports whether o lies within s.
func (s Span) Contains(o Span) bool {
	return s.First <= o.First && o.Last <= s.Last
}

type Node interface {
	Span() Span
	// SetSpan is used by the parser to stamp a node once it is complete.
	SetSpan(Span)
}

type Expr interface {
	Node
	Condition
	exprNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type Decl interface {
	Node
	declNode()
}

type Qualifier interface {
	Node
	qualNode()
}

// Condition is the controlling clause of a while or for loop: either an
// expression or a CondDecl.
type Condition interface {
	Node
	condNode()
}

type node struct {
	span Span
}

func (n *node) Span() Span     { return n.span }
func (n *node) SetSpan(s Span) { n.span = s }

type expr struct{ node }

func (expr) exprNode() {}
func (expr) condNode() {}

type stmt struct{ node }

func (stmt) stmtNode() {}

type decl struct{ node }

func (decl) declNode() {}

type qual struct{ node }

func (qual) qualNode() {}

// IsNil reports whether n is nil or an interface holding a nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// KindName returns the name of the concrete node type, e.g. "BinaryExpr".
func KindName(n Node) string {
	if IsNil(n) {
		return "nil"
	}
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// TranslationUnit is the root of every parse: one or more external
// declarations.
type TranslationUnit struct {
	node
	Decls []Decl
}
