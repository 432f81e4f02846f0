package ast

import "github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"

// TypeSpecifier names a type. Exactly one of Name (a basic type or a type
// name identifier) and Struct is set.
type TypeSpecifier struct {
	node
	Precision *PrecisionQualifier
	Name      token.Token
	Struct    *StructSpecifier
	Array     *ArraySpecifier
}

// TypeName returns the type name, or the struct name for an inline struct
// specifier, or "" for an anonymous struct.
func (t *TypeSpecifier) TypeName() string {
	if t.Struct != nil {
		if t.Struct.Name != nil {
			return t.Struct.Name.Literal
		}
		return ""
	}
	return t.Name.Literal
}

// ArraySpecifier is "[Size]"; Size is nil for an unsized array.
type ArraySpecifier struct {
	node
	Size Expr
}

type FullySpecifiedType struct {
	node
	Qualifier *TypeQualifier
	Type      *TypeSpecifier
}

type TypeQualifier struct {
	node
	List []Qualifier
}

type StructSpecifier struct {
	node
	Name    *token.Token
	Members []*StructMember
}

type StructMember struct {
	node
	Qualifier   *TypeQualifier
	Type        *TypeSpecifier
	Declarators []*Declarator
}

// StorageQualifier is one of const, in, out, inout, uniform, centroid,
// attribute or varying.
type StorageQualifier struct {
	qual
	Keyword token.Token
}

type LayoutQualifier struct {
	qual
	IDs []*LayoutID
}

// LayoutID is one entry of a layout list: "location = 0" or "std140".
type LayoutID struct {
	node
	Name  token.Token
	Value *token.Token
}

type InterpolationQualifier struct {
	qual
	Keyword token.Token
}

type PrecisionQualifier struct {
	qual
	Keyword token.Token
}

type InvariantQualifier struct {
	qual
	Keyword token.Token
}
