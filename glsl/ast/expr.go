package ast

import "github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"

type Ident struct {
	expr
	Name token.Token
}

// Literal is an int, uint, float or bool constant.
type Literal struct {
	expr
	Value token.Token
}

type ParenExpr struct {
	expr
	X Expr
}

// BinaryExpr covers every left-associative binary operator from
// multiplicative up to logical-or.
type BinaryExpr struct {
	expr
	X  Expr
	Op token.Token
	Y  Expr
}

// UnaryExpr is a prefix operator: + - ! ~ ++ --.
type UnaryExpr struct {
	expr
	Op token.Token
	X  Expr
}

// PostfixExpr is a postfix ++ or --.
type PostfixExpr struct {
	expr
	X  Expr
	Op token.Token
}

// IndexExpr is an array access: X[Index].
type IndexExpr struct {
	expr
	X     Expr
	Index Expr
}

// FieldExpr selects a struct field or vector swizzle: X.Field.
type FieldExpr struct {
	expr
	X     Expr
	Field token.Token
}

// MethodCallExpr is a call through a field selector, e.g. a.length().
type MethodCallExpr struct {
	expr
	X      Expr
	Method token.Token
	Args   []Expr
}

// CallExpr is a function call or a constructor. The callee is always a
// type specifier: for a plain function call it names an identifier, for a
// constructor a basic type, struct name or array type.
type CallExpr struct {
	expr
	Callee *TypeSpecifier
	Args   []Expr
	// Void is set for an explicit empty argument list: f(void).
	Void bool
}

type CondExpr struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// AssignExpr is any of the assignment operators. The left-hand side is not
// checked for being an lvalue; that is left to semantic analysis.
type AssignExpr struct {
	expr
	LHS Expr
	Op  token.Token
	RHS Expr
}

// CommaExpr is a sequence of two or more expressions separated by commas.
type CommaExpr struct {
	expr
	List []Expr
}
