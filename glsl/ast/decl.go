package ast

import "github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"

type FunctionPrototype struct {
	decl
	ReturnType *FullySpecifiedType
	Name       token.Token
	Params     []*ParamDecl
}

type FunctionDefinition struct {
	decl
	Prototype *FunctionPrototype
	Body      *CompoundStmt
}

// InitDeclaratorList declares one or more variables of a shared type.
// Declarators is empty for a declaration that only introduces a struct
// type, e.g. "struct Light { vec3 pos; };".
type InitDeclaratorList struct {
	decl
	Type        *FullySpecifiedType
	Declarators []*Declarator
}

// PrecisionDecl sets a default precision: "precision highp float;".
type PrecisionDecl struct {
	decl
	Precision *PrecisionQualifier
	Type      *TypeSpecifier
}

// InvariantDecl redeclares built-in or previously declared outputs as
// invariant: "invariant gl_Position;".
type InvariantDecl struct {
	decl
	Names []token.Token
}

// BlockDecl is an interface block, e.g. "uniform Lights { vec3 pos; } lights;".
type BlockDecl struct {
	decl
	Qualifier *TypeQualifier
	Name      token.Token
	Members   []*StructMember
	// Instance is nil when the block members are declared at global scope.
	Instance *Declarator
}

type Declarator struct {
	node
	Name  token.Token
	Array *ArraySpecifier
	Init  Expr
}

type ParamDecl struct {
	node
	Const     *StorageQualifier
	Direction *StorageQualifier
	Type      *TypeSpecifier
	Name      *token.Token
	Array     *ArraySpecifier
}
