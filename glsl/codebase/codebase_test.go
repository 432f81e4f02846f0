package codebase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/diag"
)

const shader = `#version 300 es
precision mediump float;

struct Light {
  vec3 pos;
  float power;
};

uniform Light light;
uniform Globals { mat4 mvp; } globals;
out vec4 color;

float falloff(float d) {
  return light.power / (d * d);
}

void main() {
  float d = length(light.pos);
  for (int i = 0; i < 4; i++) {
    d += float(i);
  }
  color = vec4(falloff(d));
}
`

func TestUpdateFile(t *testing.T) {
	c := New(t.TempDir())
	f := c.UpdateFile("a.frag", []byte(shader))

	if len(f.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", f.Diagnostics)
	}
	if f.Version.Number != 300 || f.Version.Profile != "es" {
		t.Errorf("version = %v", f.Version)
	}
	if c.GetFile("a.frag") != f {
		t.Error("GetFile does not return the latest state")
	}

	g := c.UpdateFile("a.frag", []byte("void main() { x = ; }"))
	if len(g.Diagnostics) != 1 || g.Diagnostics[0].Source != diag.Parser {
		t.Errorf("diagnostics = %v", g.Diagnostics)
	}
	if len(f.Diagnostics) != 0 || f.Result.Unit == nil || len(f.Result.Unit.Decls) == 0 {
		t.Error("an update changed the previous state")
	}
}

func TestSharedEngineKeepsResultsApart(t *testing.T) {
	c := New(t.TempDir())
	bad := c.UpdateFile("bad.vert", []byte("float a = ;\nfloat b = ;"))
	good := c.UpdateFile("good.vert", []byte("float a = 1.0;"))

	if len(bad.Diagnostics) != 2 {
		t.Errorf("bad.vert has %d diagnostics, want 2", len(bad.Diagnostics))
	}
	if len(good.Diagnostics) != 0 || len(good.Result.Errors) != 0 {
		t.Errorf("good.vert inherited diagnostics: %v", good.Diagnostics)
	}
	if bad.Result.Tokens[0].Start.File != "bad.vert" || good.Result.Tokens[0].Start.File != "good.vert" {
		t.Error("token positions carry the wrong file")
	}
}

func TestFolding(t *testing.T) {
	src := []byte("float ab\\\ncd = ;")
	plain := New(t.TempDir()).UpdateFile("s.frag", src)
	folded := New(t.TempDir(), WithFolding(true)).UpdateFile("s.frag", src)

	if len(folded.Diagnostics) != 1 {
		t.Fatalf("folded diagnostics = %v", folded.Diagnostics)
	}
	d := folded.Diagnostics[0]
	if d.Start.Line != 2 || d.Start.Column != 6 {
		t.Errorf("folded diagnostic at %s, want 2:6", d.Start)
	}
	if len(plain.Diagnostics) == 0 {
		t.Error("a continuation inside a name parsed without folding")
	}
}

func TestScanAllAndOpenFiles(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.frag")
	b := filepath.Join(root, "sub", "b.vert")
	if err := os.MkdirAll(filepath.Dir(b), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{a, b} {
		if err := os.WriteFile(path, []byte("void main() {}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "readme.md"), []byte("#"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(root)
	if err := c.ScanAll(); err != nil {
		t.Fatal(err)
	}
	paths := c.Paths()
	if len(paths) != 2 || paths[0] != a || paths[1] != b {
		t.Fatalf("Paths = %v", paths)
	}

	c.OpenFile(a, []byte("void main() { x = ; }"))
	if f, err := c.ScanFile(a); err != nil || len(f.Diagnostics) != 1 {
		t.Errorf("disk scan replaced an open file: %v %v", f, err)
	}
	c.CloseFile(a)
	if f := c.GetFile(a); f == nil || f.Open || len(f.Diagnostics) != 0 {
		t.Errorf("closing did not restore the disk content: %+v", f)
	}

	if err := os.Remove(b); err != nil {
		t.Fatal(err)
	}
	c.OpenFile(b, []byte("void main() {}"))
	c.CloseFile(b)
	if c.GetFile(b) != nil {
		t.Error("a closed file missing on disk is still known")
	}
}

func TestNodeAt(t *testing.T) {
	c := New(t.TempDir())
	c.UpdateFile("a.frag", []byte(shader))
	offset := strings.Index(shader, "d * d")
	n := c.NodeAt("a.frag", offset)
	id, ok := n.(*ast.Ident)
	if !ok || id.Name.Literal != "d" {
		t.Errorf("NodeAt = %s", ast.KindName(n))
	}
	if c.NodeAt("missing.frag", 0) != nil {
		t.Error("NodeAt found a node in an unknown file")
	}
}

func TestSymbols(t *testing.T) {
	c := New(t.TempDir())
	c.UpdateFile("a.frag", []byte(shader))
	symbols := c.Symbols("a.frag")

	type want struct {
		name     string
		kind     SymbolKind
		detail   string
		children int
	}
	wants := []want{
		{"Light", SymbolKindStruct, "", 2},
		{"light", SymbolKindVariable, "Light", 0},
		{"Globals", SymbolKindBlock, "globals", 1},
		{"color", SymbolKindVariable, "vec4", 0},
		{"falloff", SymbolKindFunction, "float falloff(float d)", 0},
		{"main", SymbolKindFunction, "void main()", 0},
	}
	if len(symbols) != len(wants) {
		t.Fatalf("got %d symbols, want %d: %+v", len(symbols), len(wants), symbols)
	}
	for i, w := range wants {
		s := symbols[i]
		if s.Name != w.name || s.Kind != w.kind || s.Detail != w.detail || len(s.Children) != w.children {
			t.Errorf("symbol %d = %+v, want %+v", i, s, w)
		}
		if shader[s.NameStart:s.NameEnd] != s.Name {
			t.Errorf("%s: selection covers %q", s.Name, shader[s.NameStart:s.NameEnd])
		}
		if s.Start > s.NameStart || s.End < s.NameEnd {
			t.Errorf("%s: range does not contain the name", s.Name)
		}
	}
	if fields := symbols[0].Children; fields[1].Name != "power" || fields[1].Detail != "float" {
		t.Errorf("struct fields = %+v", fields)
	}
}

func TestHover(t *testing.T) {
	c := New(t.TempDir())
	c.UpdateFile("a.frag", []byte(shader))

	tests := []struct {
		name   string
		at     string
		skip   int
		prefix string
	}{
		{"parameter", "d * d", 0, "```glsl\nfloat d\n```"},
		{"global", "light.power", 0, "```glsl\nuniform Light light;\n```"},
		{"local", "d += float", 0, "```glsl\nfloat d = length(light.pos);\n```"},
		{"loop variable", "float(i)", 6, "```glsl\nint i = 0;\n```"},
		{"function", "falloff(d))", 0, "```glsl\nfloat falloff(float d)\n```"},
		{"builtin type", "vec4(falloff", 0, "built-in type `vec4`"},
		{"unknown", "length(", 0, "`length`: no declaration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := strings.Index(shader, tt.at) + tt.skip
			h, ok := c.Hover("a.frag", offset)
			if !ok {
				t.Fatal("no hover")
			}
			if !strings.HasPrefix(h.Text, tt.prefix) {
				t.Errorf("Hover = %q, want prefix %q", h.Text, tt.prefix)
			}
			if h.Start > offset || h.End <= offset {
				t.Errorf("hover range %d-%d does not contain %d", h.Start, h.End, offset)
			}
		})
	}

	if _, ok := c.Hover("a.frag", len(shader)+10); ok {
		t.Error("hover past the end of the file")
	}
}

func TestToDiagnostics(t *testing.T) {
	c := New(t.TempDir())
	f := c.UpdateFile("a.frag", []byte("#version\n// é\nfloat é = 1.0;"))
	list := toDiagnostics(f)
	if len(list) != 3 {
		t.Fatalf("got %d diagnostics, want 3: %+v", len(list), list)
	}

	lex := list[0]
	if lex.Range.Start.Line != 2 || lex.Range.Start.Character != 6 || lex.Range.End.Character != 7 {
		t.Errorf("lexical diagnostic range = %+v", lex.Range)
	}
	if *lex.Severity != protocol.DiagnosticSeverityError || lex.Code.Value != "L0001" {
		t.Errorf("lexical diagnostic = %+v", lex)
	}
	last := list[2]
	if *last.Severity != protocol.DiagnosticSeverityWarning || !strings.Contains(last.Message, "#version") {
		t.Errorf("version diagnostic = %+v", last)
	}
}

func TestToDocumentSymbols(t *testing.T) {
	c := New(t.TempDir())
	c.UpdateFile("a.frag", []byte(shader))
	f := c.GetFile("a.frag")
	symbols := toDocumentSymbols(f.Lines, c.Symbols("a.frag"))
	light := symbols[0]
	if light.Kind != protocol.SymbolKindStruct || len(light.Children) != 2 {
		t.Fatalf("struct symbol = %+v", light)
	}
	if light.SelectionRange.Start.Line != 3 || light.SelectionRange.Start.Character != 7 {
		t.Errorf("selection range = %+v", light.SelectionRange)
	}
	if light.Children[0].Kind != protocol.SymbolKindField || *light.Children[0].Detail != "vec3" {
		t.Errorf("field symbol = %+v", light.Children[0])
	}
	if symbols[2].Kind != protocol.SymbolKindInterface {
		t.Errorf("block symbol kind = %v", symbols[2].Kind)
	}
}

func TestURIs(t *testing.T) {
	path := filepath.Join(string(filepath.Separator), "tmp", "my shaders", "a.frag")
	uri := pathToURI(path)
	if uri != "file:///tmp/my%20shaders/a.frag" {
		t.Errorf("pathToURI = %s", uri)
	}
	back, err := uriToPath(uri)
	if err != nil || back != path {
		t.Errorf("uriToPath = %s, %v", back, err)
	}
	if p, _ := uriToPath("untitled:1"); p != "untitled:1" {
		t.Errorf("uriToPath(untitled:1) = %s", p)
	}
}

func TestFileWatcher(t *testing.T) {
	root := t.TempDir()
	c := New(root)
	changes := make(chan string, 16)
	w, err := NewFileWatcher(c, func(path string, f *FileInfo) {
		if f == nil {
			changes <- "removed " + filepath.Base(path)
			return
		}
		changes <- filepath.Base(path)
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	wait := func(want string) {
		t.Helper()
		deadline := time.After(5 * time.Second)
		for {
			select {
			case got := <-changes:
				if got == want {
					return
				}
			case <-deadline:
				t.Fatalf("timed out waiting for %q", want)
			}
		}
	}

	path := filepath.Join(root, "a.frag")
	if err := os.WriteFile(path, []byte("float x = ;"), 0o644); err != nil {
		t.Fatal(err)
	}
	wait("a.frag")
	if f := c.GetFile(path); f == nil || len(f.Diagnostics) != 1 {
		t.Errorf("watched file state = %+v", f)
	}

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	wait("removed a.frag")
	if c.GetFile(path) != nil {
		t.Error("removed file is still known")
	}
}
