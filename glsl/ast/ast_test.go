package ast_test

import (
	"strings"
	"testing"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/token"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		span  ast.Span
		valid bool
	}{
		{ast.Span{First: 0, Last: 0}, true},
		{ast.Span{First: 3, Last: 7}, true},
		{ast.Span{First: 2, Last: 1}, false},
		{ast.Span{First: -1, Last: 4}, false},
	}
	for _, tt := range tests {
		if got := tt.span.Valid(); got != tt.valid {
			t.Errorf("%v.Valid() = %v, want %v", tt.span, got, tt.valid)
		}
	}

	outer := ast.Span{First: 2, Last: 9}
	if !outer.Contains(ast.Span{First: 2, Last: 9}) || !outer.Contains(ast.Span{First: 4, Last: 5}) {
		t.Error("Contains rejected an inner span")
	}
	if outer.Contains(ast.Span{First: 1, Last: 5}) || outer.Contains(ast.Span{First: 8, Last: 10}) {
		t.Error("Contains accepted an overlapping span")
	}
}

func TestIsNil(t *testing.T) {
	var typed *ast.Ident
	var expr ast.Expr = typed
	if !ast.IsNil(nil) || !ast.IsNil(expr) {
		t.Error("IsNil missed a nil node")
	}
	if ast.IsNil(&ast.Ident{}) {
		t.Error("IsNil reported a live node as nil")
	}
	if got := ast.KindName(&ast.BinaryExpr{}); got != "BinaryExpr" {
		t.Errorf("KindName = %q", got)
	}
	if got := ast.KindName(expr); got != "nil" {
		t.Errorf("KindName(nil) = %q", got)
	}
}

func TestChildrenOrder(t *testing.T) {
	x, _ := parser.ParseExpression([]byte("a ? b : c"))
	var names []string
	for _, c := range ast.Children(x) {
		names = append(names, c.Name)
	}
	if got := strings.Join(names, ","); got != "cond,then,else" {
		t.Errorf("children = %s", got)
	}

	// Nil children are left out.
	list := ast.Children(&ast.JumpStmt{})
	if len(list) != 0 {
		t.Errorf("bare return has %d children", len(list))
	}
}

type unknownNode struct{ ast.Ident }

func TestChildrenPanicsOnUnknownNode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Children did not panic")
		}
	}()
	ast.Children(&unknownNode{})
}

const source = `uniform float t;
void main() {
  float y = t * 2.0;
}
`

func TestInspectVisitsEveryNode(t *testing.T) {
	res := parser.Parse([]byte(source))
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}

	counts := map[string]int{}
	ast.Inspect(res.Unit, func(n ast.Node) bool {
		if n != nil {
			counts[ast.KindName(n)]++
		}
		return true
	})
	if counts["FunctionDefinition"] != 1 || counts["InitDeclaratorList"] != 2 || counts["BinaryExpr"] != 1 {
		t.Errorf("counts = %v", counts)
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	// Returning false prunes the subtree.
	pruned := map[string]int{}
	ast.Inspect(res.Unit, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		pruned[ast.KindName(n)]++
		_, isFunc := n.(*ast.FunctionDefinition)
		return !isFunc
	})
	if pruned["FunctionDefinition"] != 1 || pruned["BinaryExpr"] != 0 || pruned["CompoundStmt"] != 0 {
		t.Errorf("pruned walk saw %v", pruned)
	}
	if len(pruned) >= len(counts) || total == 0 {
		t.Errorf("pruned walk saw %d kinds, full walk %d", len(pruned), len(counts))
	}
}

func TestNodeAt(t *testing.T) {
	res := parser.Parse([]byte(source))
	offset := strings.Index(source, "2.0")

	n := ast.NodeAt(res.Unit, res.Tokens, offset)
	lit, ok := n.(*ast.Literal)
	if !ok || lit.Value.Literal != "2.0" {
		t.Fatalf("NodeAt = %s, want the 2.0 literal", ast.KindName(n))
	}

	path := ast.Path(res.Unit, res.Tokens, offset)
	var kinds []string
	for _, n := range path {
		kinds = append(kinds, ast.KindName(n))
	}
	want := "TranslationUnit,FunctionDefinition,CompoundStmt,DeclStmt,InitDeclaratorList,Declarator,BinaryExpr,Literal"
	if got := strings.Join(kinds, ","); got != want {
		t.Errorf("path = %s\nwant   %s", got, want)
	}

	if n := ast.NodeAt(res.Unit, res.Tokens, len(source)+10); n != nil {
		t.Errorf("NodeAt past the end = %s", ast.KindName(n))
	}
}

func TestRangeAndTokenAt(t *testing.T) {
	res := parser.Parse([]byte(source))
	def := res.Unit.Decls[1]
	start, end, ok := ast.Range(def, res.Tokens)
	if !ok {
		t.Fatal("Range failed")
	}
	if got := source[start:end]; !strings.HasPrefix(got, "void main()") || !strings.HasSuffix(got, "}") {
		t.Errorf("range text = %q", got)
	}

	i, ok := ast.TokenAt(res.Tokens, strings.Index(source, "main")+2)
	if !ok || res.Tokens[i].Literal != "main" {
		t.Errorf("TokenAt = %d %v", i, ok)
	}
	if _, ok := ast.TokenAt(res.Tokens, strings.Index(source, " t;")); ok {
		t.Error("TokenAt matched whitespace")
	}
	if _, ok := ast.TokenAt(res.Tokens, len(source)); ok {
		t.Error("TokenAt matched EOF")
	}

	unstamped := &ast.Ident{Name: token.Token{Literal: "x"}}
	unstamped.SetSpan(ast.Span{First: 0, Last: -1})
	if _, _, ok := ast.Range(unstamped, res.Tokens); ok {
		t.Error("Range accepted an empty span")
	}
}
