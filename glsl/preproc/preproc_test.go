package preproc

import (
	"reflect"
	"testing"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		folded string
		// pairs of folded offset and original offset
		offsets [][2]int
	}{
		{"none", "float x;", "float x;", [][2]int{{0, 0}, {7, 7}}},
		{"lf", "ab\\\ncd", "abcd", [][2]int{{1, 1}, {2, 4}, {3, 5}, {4, 6}}},
		{"crlf", "a\\\r\nb", "ab", [][2]int{{0, 0}, {1, 4}}},
		{"consecutive", "a\\\n\\\nb", "ab", [][2]int{{0, 0}, {1, 5}}},
		{"lone backslash", "a\\b\\", "a\\b\\", [][2]int{{3, 3}}},
		{"backslash cr", "a\\\rb", "a\\\rb", [][2]int{{3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Fold([]byte(tt.src))
			if string(f.Text) != tt.folded {
				t.Fatalf("Text = %q, want %q", f.Text, tt.folded)
			}
			if f.Folds() != (tt.src != tt.folded) {
				t.Errorf("Folds = %v", f.Folds())
			}
			for _, o := range tt.offsets {
				if got := f.Original(o[0]); got != o[1] {
					t.Errorf("Original(%d) = %d, want %d", o[0], got, o[1])
				}
			}
		})
	}
}

func TestRemap(t *testing.T) {
	src := []byte("float ab\\\ncd = 1.0;\nint @;")
	f := Fold(src)
	tokens, lexErrors := parser.Lex(f.Text, "split.vert")
	f.Remap(tokens)
	f.RemapErrors(lexErrors)

	ident := tokens[1]
	if ident.Literal != "abcd" {
		t.Fatalf("token 1 = %v, want abcd", ident)
	}
	wantStart := token.Position{File: "split.vert", Offset: 6, Line: 1, Column: 7}
	wantEnd := token.Position{File: "split.vert", Offset: 12, Line: 2, Column: 3}
	if ident.Start != wantStart || ident.End != wantEnd {
		t.Errorf("abcd at %+v-%+v, want %+v-%+v", ident.Start, ident.End, wantStart, wantEnd)
	}

	assign := tokens[2]
	if assign.Kind != token.Assign || assign.Start.Offset != 13 || assign.Start.Line != 2 || assign.Start.Column != 4 {
		t.Errorf("'=' at %+v", assign.Start)
	}

	if len(lexErrors) != 1 {
		t.Fatalf("got %d lexical errors, want 1", len(lexErrors))
	}
	e := lexErrors[0]
	if e.Offset != 24 || e.Line != 3 || e.Column != 5 || e.Length != 1 {
		t.Errorf("lexical error = %+v", e)
	}
	if src[e.Offset] != '@' {
		t.Errorf("lexical error points at %q", src[e.Offset])
	}

	eof := tokens[len(tokens)-1]
	if eof.Kind != token.EOF || eof.Start.Offset != len(src) || eof.End.Offset != len(src) {
		t.Errorf("EOF at %+v-%+v", eof.Start, eof.End)
	}
}

func TestParseFolded(t *testing.T) {
	src := []byte("float x = \\\n  ;")
	res := ParseFolded(parser.New(), "", src)
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(res.Errors), res.Errors)
	}
	got := res.Errors[0].Token.Start
	want := token.Position{Offset: 14, Line: 2, Column: 3}
	if got != want {
		t.Errorf("error at %+v, want %+v", got, want)
	}
	if string(res.Source) != string(src) {
		t.Errorf("Source = %q, want the unfolded text", res.Source)
	}
}

func TestParseFoldedWithoutContinuations(t *testing.T) {
	src := []byte("uniform vec4 c;\nvoid main() { gl_FragColor = c; }\n")
	folded := ParseFolded(parser.New(), "a.frag", src)
	plain := parser.Parse(src, parser.WithFile("a.frag"))
	if !reflect.DeepEqual(folded.Tokens, plain.Tokens) {
		t.Error("tokens differ from a plain parse")
	}
	if folded.HasErrors() {
		t.Errorf("unexpected errors: %v %v", folded.LexErrors, folded.Errors)
	}
}
