package ast

import "github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"

type CompoundStmt struct {
	stmt
	List []Stmt
}

// IfStmt is a selection statement. Else is nil when absent.
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

type SwitchStmt struct {
	stmt
	Tag  Expr
	Body []Stmt
}

// CaseLabel is "case Value:" or, when Value is nil, "default:".
type CaseLabel struct {
	stmt
	Value Expr
}

// ForStmt: Init is a DeclStmt or ExprStmt; Cond and Post may be nil.
type ForStmt struct {
	stmt
	Init Stmt
	Cond Condition
	Post Expr
	Body Stmt
}

type WhileStmt struct {
	stmt
	Cond Condition
	Body Stmt
}

type DoWhileStmt struct {
	stmt
	Body Stmt
	Cond Expr
}

// JumpStmt is return, break, continue or discard. Result is only set for
// a return with a value.
type JumpStmt struct {
	stmt
	Keyword token.Token
	Result  Expr
}

// ExprStmt is an expression followed by a semicolon. X is nil for the empty
// statement.
type ExprStmt struct {
	stmt
	X Expr
}

type DeclStmt struct {
	stmt
	Decl Decl
}

// CondDecl declares and initializes a variable in a loop condition.
type CondDecl struct {
	node
	Type *FullySpecifiedType
	Name token.Token
	Init Expr
}

func (*CondDecl) condNode() {}
