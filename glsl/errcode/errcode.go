// Package errcode is the static table of GLSL ES compiler error codes,
// grouped by the stage that reports them. It is reference data for semantic
// checkers and tools; the lexer and parser do not attach codes to their
// diagnostics.
package errcode

import (
	"fmt"
	"sort"
	"strings"
)

type Family int

const (
	Preprocessor Family = iota
	LexerParser
	Semantic
	Linker
)

var familyNames = map[Family]string{
	Preprocessor: "preprocessor",
	LexerParser:  "lexer/parser",
	Semantic:     "semantic",
	Linker:       "linker",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// Families returns all families in reporting-stage order.
func Families() []Family {
	return []Family{Preprocessor, LexerParser, Semantic, Linker}
}

// ParseFamily accepts a family name as printed by String, or one of the
// short forms "pp", "parser", "lexer", "sema" and "link".
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(s) {
	case "preprocessor", "pp":
		return Preprocessor, nil
	case "lexer/parser", "lexer", "parser":
		return LexerParser, nil
	case "semantic", "sema":
		return Semantic, nil
	case "linker", "link":
		return Linker, nil
	}
	return 0, fmt.Errorf("unknown error family %q", s)
}

type Entry struct {
	Code        string
	Family      Family
	Description string
}

func (e Entry) String() string {
	return e.Code + ": " + e.Description
}

// The lexer/parser and linker ranges share the "L" prefix, so linker codes
// start at L0004.
var table = []Entry{
	{"P0001", Preprocessor, "Preprocessor syntax error"},
	{"P0002", Preprocessor, "#error directive"},
	{"P0003", Preprocessor, "#extension names a required extension that is not supported, or uses all with require or enable"},
	{"P0004", Preprocessor, "High precision is not supported"},
	{"P0005", Preprocessor, "#version must be the first directive or statement in a program"},
	{"P0006", Preprocessor, "#line has wrong parameters"},
	{"P0007", Preprocessor, "Language version not supported"},
	{"P0008", Preprocessor, "Use of undefined macro"},
	{"P0009", Preprocessor, "Macro name too long"},

	{"L0001", LexerParser, "Syntax error"},
	{"L0002", LexerParser, "Undefined identifier"},
	{"L0003", LexerParser, "Use of reserved keyword"},

	{"S0001", Semantic, "Type mismatch in expression"},
	{"S0002", Semantic, "Array index must be an integer"},
	{"S0003", Semantic, "if condition must be a bool"},
	{"S0004", Semantic, "Operator not supported for operand types"},
	{"S0005", Semantic, "?: condition must be a bool"},
	{"S0006", Semantic, "2nd and 3rd operands of ?: must have the same type"},
	{"S0007", Semantic, "Wrong arguments for constructor"},
	{"S0008", Semantic, "Argument unused in constructor"},
	{"S0009", Semantic, "Too few arguments for constructor"},
	{"S0011", Semantic, "Arguments in wrong order for struct constructor"},
	{"S0012", Semantic, "Expression must be a constant expression"},
	{"S0013", Semantic, "Initializer for constant variable must be a constant expression"},
	{"S0015", Semantic, "Expression must be an integral constant expression"},
	{"S0017", Semantic, "Array size must be greater than zero"},
	{"S0018", Semantic, "Array size not defined"},
	{"S0020", Semantic, "Indexing an array with an integral constant expression greater than its declared size"},
	{"S0021", Semantic, "Indexing an array with a negative integral constant expression"},
	{"S0022", Semantic, "Redefinition of variable in same scope"},
	{"S0023", Semantic, "Redefinition of function"},
	{"S0024", Semantic, "Redefinition of name"},
	{"S0025", Semantic, "Field selectors must be from the same set"},
	{"S0026", Semantic, "Illegal field selector"},
	{"S0027", Semantic, "Target of assignment is not an l-value"},
	{"S0028", Semantic, "Precision used with type other than integer, floating point or sampler type"},
	{"S0029", Semantic, "Declaring a main function with the wrong signature or return type"},
	{"S0031", Semantic, "const variable does not have initializer"},
	{"S0032", Semantic, "Use of float or int without a precision qualifier where the default precision is not defined"},
	{"S0033", Semantic, "Expression that does not have an intrinsic precision where the default precision is not defined"},
	{"S0034", Semantic, "Variable cannot be declared invariant"},
	{"S0035", Semantic, "All uses of invariant must be at global scope"},
	{"S0037", Semantic, "L-value contains duplicate components"},
	{"S0038", Semantic, "Function declared with a return value but return statement has no argument"},
	{"S0039", Semantic, "Function declared void but return statement has an argument"},
	{"S0040", Semantic, "Function declared with a return value but not all paths return a value"},
	{"S0041", Semantic, "Function return type is an array"},
	{"S0042", Semantic, "Return type of function definition must match return type of function declaration"},
	{"S0043", Semantic, "Parameter qualifiers of function definition must match parameter qualifiers of function declaration"},
	{"S0044", Semantic, "Declaring an attribute outside of a vertex shader"},
	{"S0045", Semantic, "Declaring an attribute inside a function"},
	{"S0046", Semantic, "Declaring a uniform inside a function"},
	{"S0047", Semantic, "Declaring a varying inside a function"},
	{"S0048", Semantic, "Illegal data type for varying"},
	{"S0049", Semantic, "Illegal data type for attribute"},
	{"S0050", Semantic, "Initializer for attribute"},
	{"S0051", Semantic, "Initializer for varying"},
	{"S0052", Semantic, "Initializer for uniform"},

	{"L0004", Linker, "Too many attribute values"},
	{"L0005", Linker, "Too many uniform values"},
	{"L0006", Linker, "Too many varyings"},
	{"L0007", Linker, "Fragment shader uses a varying that has not been declared in the vertex shader"},
	{"L0008", Linker, "Type mismatch between varyings"},
	{"L0009", Linker, "Missing main function for shader"},
	{"L0010", Linker, "Interface blocks with the same name must declare the same members"},
	{"L0011", Linker, "Global variables must have the same type, including structure and field names and array sizes, and the same precision"},
}

var byCode = func() map[string]Entry {
	m := make(map[string]Entry, len(table))
	for _, e := range table {
		m[e.Code] = e
	}
	return m
}()

// Lookup returns the entry for code. Codes are matched case-insensitively.
func Lookup(code string) (Entry, bool) {
	e, ok := byCode[strings.ToUpper(code)]
	return e, ok
}

// All returns every entry ordered by family and then code.
func All() []Entry {
	all := make([]Entry, len(table))
	copy(all, table)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Family != all[j].Family {
			return all[i].Family < all[j].Family
		}
		return all[i].Code < all[j].Code
	})
	return all
}

func ByFamily(f Family) []Entry {
	var list []Entry
	for _, e := range All() {
		if e.Family == f {
			list = append(list, e)
		}
	}
	return list
}
