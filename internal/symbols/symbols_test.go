package symbols

import (
	"testing"

	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/dialect"
	"espresso/internal/lexer"
	"espresso/internal/parser"
	"espresso/internal/source"
)

func parse(t *testing.T, src string) (*source.FileSet, *ast.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.esp", []byte(src))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	d := dialect.Default()

	lx := lexer.New(fs.Get(id), lexer.Options{Dialect: d, Reporter: rep})
	res := parser.ParseFile(lx, parser.Options{Dialect: d, Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("parse diagnostics: %v", bag.Items())
	}
	return fs, res.File
}

func names(syms []Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.Name
	}
	return out
}

func TestOutlineTopLevel(t *testing.T) {
	_, f := parse(t, "import { join } from \"path\"\nlet limit = 10\ngreet = (who) -> who\nclass Point\n  x = 0\n  len() -> @x\n")
	syms := Outline(f)

	got := names(syms)
	want := []string{"join", "limit", "greet", "Point"}
	if len(got) != len(want) {
		t.Fatalf("outline = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("outline = %v, want %v", got, want)
		}
	}

	if syms[0].Kind != KindImport {
		t.Errorf("join kind = %v, want import", syms[0].Kind)
	}
	if syms[1].Kind != KindVariable {
		t.Errorf("limit kind = %v, want variable", syms[1].Kind)
	}
	if syms[2].Kind != KindFunction {
		t.Errorf("greet kind = %v, want function", syms[2].Kind)
	}

	cls := syms[3]
	if cls.Kind != KindClass {
		t.Fatalf("Point kind = %v, want class", cls.Kind)
	}
	members := names(cls.Children)
	if len(members) != 2 || members[0] != "x" || members[1] != "len" {
		t.Errorf("class members = %v, want [x len]", members)
	}
	if cls.Children[0].Kind != KindField || cls.Children[1].Kind != KindMethod {
		t.Errorf("member kinds = %v, %v", cls.Children[0].Kind, cls.Children[1].Kind)
	}
}

func TestOutlineDestructuring(t *testing.T) {
	_, f := parse(t, "let [a, b] = pair\n")
	syms := Outline(f)
	got := names(syms)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("outline = %v, want [a b]", got)
	}
}

func TestOutlineSelectionInsideRange(t *testing.T) {
	_, f := parse(t, "total = compute()\n")
	syms := Outline(f)
	if len(syms) != 1 {
		t.Fatalf("outline size = %d", len(syms))
	}
	s := syms[0]
	if s.Selection.Start < s.Range.Start || s.Selection.End > s.Range.End {
		t.Errorf("selection %v escapes range %v", s.Selection, s.Range)
	}
	if s.Name != "total" {
		t.Errorf("name = %q", s.Name)
	}
}

func TestOutlineNamedFunctionDecl(t *testing.T) {
	_, f := parse(t, "function foo()\n  1\nexport function bar()\n  2\n")
	syms := Outline(f)
	got := names(syms)
	if len(got) != 2 || got[0] != "foo" || got[1] != "bar" {
		t.Fatalf("outline = %v, want [foo bar]", got)
	}
	for _, s := range syms {
		if s.Kind != KindFunction {
			t.Errorf("%s kind = %v, want function", s.Name, s.Kind)
		}
		if s.Selection.Empty() {
			t.Errorf("%s selection should cover the name", s.Name)
		}
	}
}

func TestOutlineSkipsAnonymous(t *testing.T) {
	_, f := parse(t, "run()\n42\n")
	if syms := Outline(f); len(syms) != 0 {
		t.Fatalf("anonymous statements produced symbols: %v", names(syms))
	}
}
