package errcode

import (
	"regexp"
	"testing"
)

func TestTableWellFormed(t *testing.T) {
	codePattern := regexp.MustCompile(`^[PLS][0-9]{4}$`)
	seen := map[string]bool{}
	descriptions := map[string]string{}
	for _, e := range table {
		if !codePattern.MatchString(e.Code) {
			t.Errorf("malformed code %q", e.Code)
		}
		if seen[e.Code] {
			t.Errorf("duplicate code %s", e.Code)
		}
		seen[e.Code] = true
		if e.Description == "" {
			t.Errorf("%s has no description", e.Code)
		}
		if other, ok := descriptions[e.Description]; ok {
			t.Errorf("%s and %s share a description", other, e.Code)
		}
		descriptions[e.Description] = e.Code
		if e.Family.String() == "unknown" {
			t.Errorf("%s has an unknown family", e.Code)
		}
	}
}

func TestFamilyPrefixes(t *testing.T) {
	prefixes := map[Family]byte{
		Preprocessor: 'P',
		LexerParser:  'L',
		Semantic:     'S',
		Linker:       'L',
	}
	for _, e := range table {
		if e.Code[0] != prefixes[e.Family] {
			t.Errorf("%s is in family %s", e.Code, e.Family)
		}
	}
	for _, e := range ByFamily(Linker) {
		if e.Code <= "L0003" {
			t.Errorf("linker code %s overlaps the lexer/parser range", e.Code)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		code   string
		found  bool
		family Family
	}{
		{"L0001", true, LexerParser},
		{"l0003", true, LexerParser},
		{"L0011", true, Linker},
		{"S0027", true, Semantic},
		{"P0005", true, Preprocessor},
		{"S0010", false, 0},
		{"", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			e, ok := Lookup(tt.code)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && e.Family != tt.family {
				t.Errorf("family = %s, want %s", e.Family, tt.family)
			}
		})
	}
}

func TestAllAndByFamily(t *testing.T) {
	all := All()
	if len(all) != len(table) {
		t.Fatalf("All returned %d entries, want %d", len(all), len(table))
	}
	for i := 1; i < len(all); i++ {
		a, b := all[i-1], all[i]
		if a.Family > b.Family || (a.Family == b.Family && a.Code >= b.Code) {
			t.Errorf("All out of order at %s, %s", a.Code, b.Code)
		}
	}

	total := 0
	for _, f := range Families() {
		n := len(ByFamily(f))
		if n == 0 {
			t.Errorf("family %s is empty", f)
		}
		total += n
	}
	if total != len(table) {
		t.Errorf("families cover %d entries, want %d", total, len(table))
	}

	all[0].Code = "X"
	if table[0].Code == "X" {
		t.Error("All exposes the table")
	}
}

func TestParseFamily(t *testing.T) {
	for _, f := range Families() {
		got, err := ParseFamily(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFamily(%q) = %v, %v", f.String(), got, err)
		}
	}
	if f, err := ParseFamily("LINK"); err != nil || f != Linker {
		t.Errorf("ParseFamily(LINK) = %v, %v", f, err)
	}
	if _, err := ParseFamily("codegen"); err == nil {
		t.Error("ParseFamily accepted an unknown family")
	}
}
