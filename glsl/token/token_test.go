package token

import (
	"strings"
	"testing"
	"unicode"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Ident, "Identifier"},
		{Struct, "struct"},
		{ShlAssign, "<<="},
		{Xor, "^^"},
		{Kind(9999), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestIsAssign(t *testing.T) {
	for _, k := range []Kind{Assign, MulAssign, DivAssign, ModAssign, AddAssign, SubAssign, ShlAssign, ShrAssign, AndAssign, XorAssign, OrAssign} {
		if !k.IsAssign() {
			t.Errorf("%v.IsAssign() = false", k)
		}
	}
	for _, k := range []Kind{EQ, LE, Shl, Plus, Ident} {
		if k.IsAssign() {
			t.Errorf("%v.IsAssign() = true", k)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		word string
		want Kind
	}{
		{"float", BasicType},
		{"mat3x4", BasicType},
		{"usampler2DArray", BasicType},
		{"floaty", Ident},
		{"struct", Struct},
		{"true", BoolLit},
		{"trueish", Ident},
		{"union", Reserved},
		{"gl_Position", Ident},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Lookup(tt.word); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestKeywordTableWellFormed(t *testing.T) {
	for word := range Keywords() {
		if word == "" {
			t.Fatal("empty keyword")
		}
		if strings.IndexFunc(word, unicode.IsSpace) >= 0 {
			t.Errorf("keyword %q contains whitespace", word)
		}
	}
	for word := range basicTypes {
		if _, dup := keywords[word]; dup {
			t.Errorf("%q is both a keyword and a basic type", word)
		}
		if _, dup := reserved[word]; dup {
			t.Errorf("%q is both reserved and a basic type", word)
		}
	}
}

func TestKeywordKindsNamed(t *testing.T) {
	for word, kind := range keywords {
		if kind == BoolLit {
			continue
		}
		if kind.String() != word {
			t.Errorf("keyword %q has kind name %q", word, kind.String())
		}
		if !kind.IsKeyword() {
			t.Errorf("keyword %q not reported by IsKeyword", word)
		}
	}
}
