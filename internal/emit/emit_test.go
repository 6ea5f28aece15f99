package emit

import (
	"testing"

	"espresso/internal/diag"
	"espresso/internal/dialect"
	"espresso/internal/lexer"
	"espresso/internal/parser"
	"espresso/internal/source"
	"espresso/internal/transform"
)

// render runs the full pipeline over one virtual file.
func render(t *testing.T, src string, d dialect.Dialect) (string, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.esp", []byte(src))
	bag := diag.NewBag(32)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(fs.Get(id), lexer.Options{Dialect: d, Reporter: rep})
	res := parser.ParseFile(lx, parser.Options{Dialect: d, Reporter: rep})
	transform.Apply(res.File, d, rep)
	out := File(fs, res.File)
	return out.Code, bag
}

func expectRender(t *testing.T, src, want string, d dialect.Dialect) {
	t.Helper()
	got, bag := render(t, src, d)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	if got != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", got, want)
	}
}

// Untransformed constructs must reproduce their source bytes exactly,
// including comments and spacing.
func TestVerbatim(t *testing.T) {
	sources := []string{
		"x = 1\n",
		"a = 1\nb = a + 2\n",
		"// greeting\nwho = \"world\"\ngreet(\"hi\", who)\n",
		"total += n * 2\n",
		"obj.method(a)[0]\n",
		"import { join } from \"path\"\n",
		"x = a ? b : c\n",
		"/* block\n   comment */\ndone = true\n",
		"items = [1, 2, 3]\n",
		"point = { x: 1, y: 2 }\n",
	}
	for _, src := range sources {
		expectRender(t, src, src, dialect.Default())
	}
}

func TestPostfixIf(t *testing.T) {
	expectRender(t, "x = 1 if ok\n", "if (ok) x = 1\n", dialect.Default())
}

func TestPostfixUnless(t *testing.T) {
	expectRender(t, "stop() unless ready\n", "if (!(ready)) stop()\n", dialect.Default())
}

func TestUnlessBlock(t *testing.T) {
	expectRender(t,
		"unless ok\n  stop()\n",
		"if (!(ok)) {\n  stop()\n}\n",
		dialect.Default())
}

func TestIfElseBlocks(t *testing.T) {
	// The else keeps its own source line; the braces are glue around it.
	expectRender(t,
		"if a\n  x()\nelse\n  y()\n",
		"if (a) {\n  x()\n}\nelse {\n  y()\n}\n",
		dialect.Default())
}

func TestThinArrowExprBody(t *testing.T) {
	expectRender(t,
		"add = (a, b) -> a + b\n",
		"add = function(a, b) { return a + b; }\n",
		dialect.Default())
}

func TestThinArrowBlockBody(t *testing.T) {
	expectRender(t,
		"f = ->\n  g()\n",
		"f = function() {\n  return g()\n}\n",
		dialect.Default())
}

func TestFatArrowKeepsSpelling(t *testing.T) {
	expectRender(t,
		"f = (x) => x * 2\n",
		"f = (x) => x * 2\n",
		dialect.Default())
}

func TestPipeChain(t *testing.T) {
	expectRender(t,
		"result = data |> clean |> render\n",
		"result = render(clean(data))\n",
		dialect.Default())
}

func TestPipeTrailingAwait(t *testing.T) {
	expectRender(t,
		"user = id |> fetch |> await resolve\n",
		"user = await resolve(fetch(id))\n",
		dialect.Default())
}

func TestPipeTrailingReturn(t *testing.T) {
	expectRender(t,
		"x |> f |> return\n",
		"return f(x)\n",
		dialect.Default())
}

func TestSliceLowering(t *testing.T) {
	expectRender(t,
		"tail = items[1..n]\n",
		"tail = items.slice(1, (n) + 1)\n",
		dialect.Default())
}

func TestSliceExclusive(t *testing.T) {
	expectRender(t,
		"half = items[0...mid]\n",
		"half = items.slice(0, (mid))\n",
		dialect.Default())
}

func TestSliceOpenEnd(t *testing.T) {
	expectRender(t,
		"rest = items[2..]\n",
		"rest = items.slice(2)\n",
		dialect.Default())
}

func TestSliceAssign(t *testing.T) {
	expectRender(t,
		"items[0..1] = [9]\n",
		"items.splice(0, (1) - (0) + 1, ...[9])\n",
		dialect.Default())
}

func TestRangeArrayLiteral(t *testing.T) {
	expectRender(t,
		"ids = [1..3]\n",
		"ids = ((s, e) => Array.from({length: e - s + 1}, (_, i) => s + i))(1, 3)\n",
		dialect.Default())
}

func TestImportSpecifierRewrite(t *testing.T) {
	expectRender(t,
		"import { a } from \"./mod.esp\"\n",
		"import { a } from \"./mod.js\"\n",
		dialect.Default())
}

func TestAutoVarFile(t *testing.T) {
	d := dialect.Default()
	d.AutoVar = true
	expectRender(t, "x = 1\n", "var x; x = 1\n", d)
}

func TestAutoVarFunction(t *testing.T) {
	d := dialect.Default()
	d.AutoVar = true
	// The assignment is also the body's implicit return value.
	expectRender(t,
		"f = ->\n  count = 1\n",
		"var f; f = function() {\n  var count;\n  return count = 1\n}\n",
		d)
}

func TestJSXShorthandAttrs(t *testing.T) {
	expectRender(t,
		"el = <div #main .box hidden />\n",
		"el = <div id=\"main\" class=\"box\" hidden={true} />\n",
		dialect.Default())
}
