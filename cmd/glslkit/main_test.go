package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeShaders(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestParseCommand(t *testing.T) {
	out, _, err := run(t, "float x = 1.0;", "parse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "TranslationUnit [0..4]\n  decl: InitDeclaratorList [0..4]\n") {
		t.Errorf("got\n%s", out)
	}

	out, _, err = run(t, "float x = 1.0;", "parse", "-f", "json", "--positions")
	if err != nil {
		t.Fatal(err)
	}
	var tree map[string]any
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if tree["kind"] != "TranslationUnit" {
		t.Errorf("root kind = %v", tree["kind"])
	}

	if _, _, err := run(t, "", "parse", "-f", "xml"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestParseCommandErrors(t *testing.T) {
	_, stderr, err := run(t, "float x = ;", "parse")
	if err == nil {
		t.Fatal("parse of invalid input succeeded")
	}
	if !strings.Contains(stderr, "<stdin>:1:11: expected expression") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestTokensCommand(t *testing.T) {
	out, _, err := run(t, "vec2 p;", "tokens")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if fields := strings.Fields(lines[1]); len(fields) != 3 || fields[0] != "1:6" || fields[2] != "p" {
		t.Errorf("second token line = %q", lines[1])
	}

	_, stderr, err := run(t, "float $x;", "tokens")
	if err == nil || !strings.Contains(stderr, `unexpected character sequence "$"`) {
		t.Errorf("err = %v, stderr = %q", err, stderr)
	}
}

func TestLintCommand(t *testing.T) {
	root := writeShaders(t, map[string]string{
		"good.vert": "#version 300 es\nvoid main() {}\n",
		"bad.frag":  "float a = ;\nvoid main() {}\n",
	})

	out, _, err := run(t, "", "lint", "--context", root)
	if err == nil || err.Error() != "1 problems in 2 files" {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "bad.frag:1:11: expected expression") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "    1 | float a = ;\n") || !strings.Contains(out, "    ^\n") {
		t.Errorf("no context in output:\n%s", out)
	}

	good := filepath.Join(root, "good.vert")
	if out, _, err := run(t, "", "lint", good); err != nil || out != "" {
		t.Errorf("lint good.vert = %q, %v", out, err)
	}

	out, _, err = run(t, "", "lint", "--require-version", ">= 3.0", filepath.Join(root, "bad.frag"), good)
	if err == nil || !strings.Contains(out, "does not satisfy >= 3.0") {
		t.Errorf("version constraint not enforced: %q, %v", out, err)
	}
}

func TestLintCommandJSON(t *testing.T) {
	root := writeShaders(t, map[string]string{"bad.frag": "float a = ;"})
	out, _, err := run(t, "", "lint", "-f", "json", filepath.Join(root, "bad.frag"))
	if err == nil {
		t.Fatal("lint of invalid shader succeeded")
	}
	var report struct {
		File        string
		Diagnostics []struct {
			Message string
		}
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(report.Diagnostics) != 1 || !strings.HasPrefix(report.Diagnostics[0].Message, "expected expression") {
		t.Errorf("report = %+v", report)
	}
}

func TestErrorsCommand(t *testing.T) {
	out, _, err := run(t, "", "errors", "l0001", "L0011")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "L0001") || !strings.Contains(lines[1], "linker") {
		t.Errorf("got\n%s", out)
	}

	out, _, err = run(t, "", "errors", "--family", "linker")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 8 {
		t.Errorf("linker family has %d lines, want 8", n)
	}

	if _, _, err := run(t, "", "errors", "X9999"); err == nil {
		t.Error("unknown code accepted")
	}
}

func TestScanCommand(t *testing.T) {
	root := writeShaders(t, map[string]string{
		"a.frag":   "void main() {}",
		"lib.glsl": "float f() { return 1.0; }",
	})
	out, _, err := run(t, "", "scan", root)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "a.frag") || !strings.Contains(out, "lib.glsl") {
		t.Errorf("got\n%s", out)
	}

	out, _, err = run(t, "", "scan", "-e", root)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "lib.glsl") || !strings.Contains(out, "main at line 1") {
		t.Errorf("got\n%s", out)
	}
}
