// Package token defines the lexical vocabulary of GLSL ES: token kinds,
// the keyword, basic-type and reserved-word tables, and source positions.
package token

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Kind int

const (
	EOF Kind = iota

	// Literals
	Ident
	IntLit
	UintLit
	FloatLit
	BoolLit

	// Type names: every built-in scalar, vector, matrix and sampler type.
	BasicType

	// Words reserved for future use; never valid in a program.
	Reserved

	// Keywords
	Attribute
	Break
	Case
	Centroid
	Const
	Continue
	Default
	Discard
	Do
	Else
	Flat
	For
	Highp
	If
	In
	Inout
	Invariant
	Layout
	Lowp
	Mediump
	Out
	Precision
	Return
	Smooth
	Struct
	Switch
	Uniform
	Varying
	While

	// Punctuation
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Dot
	Comma
	Colon
	Semicolon
	Question

	// Operators
	Plus
	Minus
	Star
	Slash
	Percent
	Inc
	Dec
	Bang
	Tilde
	Shl
	Shr
	LT
	GT
	LE
	GE
	EQ
	NE
	BitAnd
	BitXor
	BitOr
	And
	Xor
	Or

	// Assignment operators
	Assign
	MulAssign
	DivAssign
	ModAssign
	AddAssign
	SubAssign
	ShlAssign
	ShrAssign
	AndAssign
	XorAssign
	OrAssign
)

var kindNames = map[Kind]string{
	EOF:       "EOF",
	Ident:     "Identifier",
	IntLit:    "IntLiteral",
	UintLit:   "UintLiteral",
	FloatLit:  "FloatLiteral",
	BoolLit:   "BoolLiteral",
	BasicType: "BasicType",
	Reserved:  "ReservedWord",
	Attribute: "attribute",
	Break:     "break",
	Case:      "case",
	Centroid:  "centroid",
	Const:     "const",
	Continue:  "continue",
	Default:   "default",
	Discard:   "discard",
	Do:        "do",
	Else:      "else",
	Flat:      "flat",
	For:       "for",
	Highp:     "highp",
	If:        "if",
	In:        "in",
	Inout:     "inout",
	Invariant: "invariant",
	Layout:    "layout",
	Lowp:      "lowp",
	Mediump:   "mediump",
	Out:       "out",
	Precision: "precision",
	Return:    "return",
	Smooth:    "smooth",
	Struct:    "struct",
	Switch:    "switch",
	Uniform:   "uniform",
	Varying:   "varying",
	While:     "while",
	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	LBrace:    "{",
	RBrace:    "}",
	Dot:       ".",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	Question:  "?",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Percent:   "%",
	Inc:       "++",
	Dec:       "--",
	Bang:      "!",
	Tilde:     "~",
	Shl:       "<<",
	Shr:       ">>",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	EQ:        "==",
	NE:        "!=",
	BitAnd:    "&",
	BitXor:    "^",
	BitOr:     "|",
	And:       "&&",
	Xor:       "^^",
	Or:        "||",
	Assign:    "=",
	MulAssign: "*=",
	DivAssign: "/=",
	ModAssign: "%=",
	AddAssign: "+=",
	SubAssign: "-=",
	ShlAssign: "<<=",
	ShrAssign: ">>=",
	AndAssign: "&=",
	XorAssign: "^=",
	OrAssign:  "|=",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsAssign reports whether k is one of the assignment operators. The parser
// treats all of them as a single operator category.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= OrAssign
}

func (k Kind) IsKeyword() bool {
	return k >= Attribute && k <= While
}

func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= BoolLit
}

// IsPrecision reports whether k is lowp, mediump or highp.
func (k Kind) IsPrecision() bool {
	return k == Lowp || k == Mediump || k == Highp
}

type Token struct {
	Kind    Kind
	Literal string
	Start   Position
	End     Position
}

// Len returns the length of the token in bytes.
func (t Token) Len() int {
	return t.End.Offset - t.Start.Offset
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Literal)
}
