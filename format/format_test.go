package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/diag"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
)

func TestTreeEncoder(t *testing.T) {
	res := parser.Parse([]byte("float x = a + 1.0;"))
	var buf bytes.Buffer
	if err := NewTreeEncoder(&buf).Encode(res); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"TranslationUnit [0..6]",
		"  decl: InitDeclaratorList [0..6]",
		"    type: FullySpecifiedType [0..0]",
		`      type: TypeSpecifier "float" [0..0]`,
		`    declarator: Declarator "x" [1..5]`,
		`      init: BinaryExpr "+" [3..5]`,
		`        x: Ident "a" [3..3]`,
		`        y: Literal "1.0" [5..5]`,
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestTreeEncoderPositions(t *testing.T) {
	res := parser.Parse([]byte("float x = a + 1.0;"))
	enc := NewTreeEncoder(nil)
	enc.Positions = true
	text, err := enc.MarshalText(res)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(text), `init: BinaryExpr "+" [1:11-1:18]`) {
		t.Errorf("got\n%s", text)
	}
}

func TestASTJSONEncoder(t *testing.T) {
	res := parser.Parse([]byte("void main() { gl_Position = vec4(0.0); }"))
	var buf bytes.Buffer
	enc := NewASTJSONEncoder(&buf)
	enc.Positions = true
	if err := enc.Encode(res); err != nil {
		t.Fatal(err)
	}

	var root astJSONNode
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if root.Kind != "TranslationUnit" || root.Span == nil || root.Span.Start == nil {
		t.Fatalf("root = %+v", root)
	}

	// Every node of the tree must appear, in the same order.
	var kinds []string
	ast.Inspect(res.Unit, func(n ast.Node) bool {
		if n != nil {
			kinds = append(kinds, ast.KindName(n))
		}
		return true
	})
	var got []string
	var collect func(*astJSONNode)
	collect = func(n *astJSONNode) {
		got = append(got, n.Kind)
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(&root)
	if strings.Join(got, " ") != strings.Join(kinds, " ") {
		t.Errorf("kinds = %v, want %v", got, kinds)
	}

	def := root.Children[0]
	if def.Role != "decl" || def.Kind != "FunctionDefinition" || def.Text != "main" {
		t.Errorf("first declaration = %+v", def)
	}
	if !strings.Contains(buf.String(), `"text": "vec4"`) {
		t.Error("constructor call has no label")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		src  string
		kind string
		want string
	}{
		{"layout(location = 2) out vec4 c;", "LayoutID", "location=2"},
		{"layout(std140) uniform B { vec4 v; };", "LayoutID", "std140"},
		{"invariant gl_Position, v;", "InvariantDecl", "gl_Position, v"},
		{"struct { float f; } s;", "StructSpecifier", ""},
		{"uniform B { vec4 v; } b;", "BlockDecl", "B"},
		{"void f(in float) {}", "StorageQualifier", "in"},
		{"void f() { return; }", "JumpStmt", "return"},
		{"void f() { x.length(); }", "MethodCallExpr", "length"},
		{"void f() { x++; }", "PostfixExpr", "++"},
		{"void f() { x += 1; }", "AssignExpr", "+="},
		{"precision highp float;", "PrecisionQualifier", "highp"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := parser.Parse([]byte(tt.src))
			if res.HasErrors() {
				t.Fatalf("parse errors: %v %v", res.LexErrors, res.Errors)
			}
			found := false
			ast.Inspect(res.Unit, func(n ast.Node) bool {
				if n != nil && !found && ast.KindName(n) == tt.kind {
					found = true
					if got := Label(n); got != tt.want {
						t.Errorf("Label = %q, want %q", got, tt.want)
					}
				}
				return true
			})
			if !found {
				t.Errorf("no %s node", tt.kind)
			}
		})
	}
}

func TestDiagnosticsJSONEncoder(t *testing.T) {
	res := parser.Parse([]byte("float a = ;"), parser.WithFile("bad.frag"))
	var buf bytes.Buffer
	if err := NewDiagnosticsJSONEncoder(&buf).Encode("bad.frag", diag.FromResult(res)); err != nil {
		t.Fatal(err)
	}
	var out jsonFile
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.File != "bad.frag" || len(out.Diagnostics) != 1 {
		t.Fatalf("got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Source != "parser" || d.Start.Column != 11 || len(d.Rules) == 0 {
		t.Errorf("diagnostic = %+v", d)
	}
}
