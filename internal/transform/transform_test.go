package transform

import (
	"testing"

	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/dialect"
	"espresso/internal/lexer"
	"espresso/internal/parser"
	"espresso/internal/source"
	"espresso/internal/token"
)

func parse(t *testing.T, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.esp", []byte(src))
	bag := diag.NewBag(32)
	rep := diag.BagReporter{Bag: bag}
	d := dialect.Default()

	lx := lexer.New(fs.Get(id), lexer.Options{Dialect: d, Reporter: rep})
	res := parser.ParseFile(lx, parser.Options{Dialect: d, Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("parse diagnostics: %v", bag.Items())
	}
	return res.File, bag
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func identText(t *testing.T, x ast.Expr) string {
	t.Helper()
	id, ok := x.(*ast.Ident)
	if !ok {
		t.Fatalf("expected identifier, got %T", x)
	}
	return id.Tok.Text
}

// assignedValue digs the right-hand side out of 'name = expr'.
func assignedValue(t *testing.T, s ast.Stmt) ast.Expr {
	t.Helper()
	es, ok := s.(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected expression statement, got %T", s)
	}
	a, ok := es.X.(*ast.Assign)
	if !ok {
		t.Fatalf("expected assignment, got %T", es.X)
	}
	return a.Value
}

func funcValue(t *testing.T, s ast.Stmt) *ast.Func {
	t.Helper()
	fn, ok := assignedValue(t, s).(*ast.Func)
	if !ok {
		t.Fatalf("expected function value")
	}
	return fn
}

func TestPipeChainBecomesCalls(t *testing.T) {
	f, _ := parse(t, "result = data |> clean |> render\n")
	rewritePipes(f)

	outer, ok := assignedValue(t, f.Stmts[0]).(*ast.Call)
	if !ok {
		t.Fatalf("pipe chain did not become a call")
	}
	if !outer.Implicit {
		t.Errorf("synthesized call should carry implicit parens")
	}
	if got := identText(t, outer.Callee); got != "render" {
		t.Errorf("outer callee = %q, want render", got)
	}
	if len(outer.Args) != 1 {
		t.Fatalf("outer call has %d args, want 1", len(outer.Args))
	}
	inner, ok := outer.Args[0].X.(*ast.Call)
	if !ok {
		t.Fatalf("inner stage did not become a call")
	}
	if got := identText(t, inner.Callee); got != "clean" {
		t.Errorf("inner callee = %q, want clean", got)
	}
	if got := identText(t, inner.Args[0].X); got != "data" {
		t.Errorf("inner argument = %q, want data", got)
	}
}

func TestPipeAwaitStageWrapsChain(t *testing.T) {
	f, _ := parse(t, "user = id |> fetch |> await resolve\n")
	rewritePipes(f)

	u, ok := assignedValue(t, f.Stmts[0]).(*ast.Unary)
	if !ok || u.Op.Kind != token.KwAwait {
		t.Fatalf("trailing await stage should wrap the chain")
	}
	outer, ok := u.X.(*ast.Call)
	if !ok {
		t.Fatalf("await operand is %T, want a call", u.X)
	}
	if got := identText(t, outer.Callee); got != "resolve" {
		t.Errorf("awaited callee = %q, want resolve", got)
	}
	inner, ok := outer.Args[0].X.(*ast.Call)
	if !ok {
		t.Fatalf("earlier stage did not fold into the argument")
	}
	if got := identText(t, inner.Callee); got != "fetch" {
		t.Errorf("folded callee = %q, want fetch", got)
	}
}

func TestPipeTrailingReturnWrapsChain(t *testing.T) {
	f, _ := parse(t, "x |> f |> return\n")
	rewritePipes(f)

	es, ok := f.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement is %T, want expression statement", f.Stmts[0])
	}
	u, ok := es.X.(*ast.Unary)
	if !ok || u.Op.Kind != token.KwReturn {
		t.Fatalf("trailing return stage should wrap the chain, got %T", es.X)
	}
	call, ok := u.X.(*ast.Call)
	if !ok {
		t.Fatalf("return operand is %T, want the folded chain", u.X)
	}
	if got := identText(t, call.Callee); got != "f" {
		t.Errorf("folded callee = %q, want f", got)
	}
	if got := identText(t, call.Args[0].X); got != "x" {
		t.Errorf("folded argument = %q, want x", got)
	}
}

func TestPipeReturnNotDoubled(t *testing.T) {
	f, _ := parse(t, "g = (x) ->\n  x |> f |> return\n")
	rewritePipes(f)
	insertImplicitReturns(f)

	fn := assignedValue(t, f.Stmts[0]).(*ast.Func)
	body := fn.Body.(*ast.Block)
	es, ok := body.Stmts[len(body.Stmts)-1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("last statement is %T, want the return-unary untouched", body.Stmts[len(body.Stmts)-1])
	}
	if u, ok := es.X.(*ast.Unary); !ok || u.Op.Kind != token.KwReturn {
		t.Error("pipe return should not gain a second return")
	}
}

func TestImplicitReturnOnLastStatement(t *testing.T) {
	f, _ := parse(t, "f = ->\n  a()\n  b()\n")
	insertImplicitReturns(f)

	blk := funcValue(t, f.Stmts[0]).Body.(*ast.Block)
	if len(blk.Stmts) != 2 {
		t.Fatalf("body has %d statements, want 2", len(blk.Stmts))
	}
	if _, ok := blk.Stmts[0].(*ast.ExprStmt); !ok {
		t.Errorf("earlier statement should stay an expression statement")
	}
	ret, ok := blk.Stmts[1].(*ast.Return)
	if !ok {
		t.Fatalf("last statement is %T, want a return", blk.Stmts[1])
	}
	if !ret.Kw.Synthetic() {
		t.Errorf("inserted return keyword should be synthetic")
	}
	if _, ok := ret.X.(*ast.Call); !ok {
		t.Errorf("return should carry the original expression")
	}
}

func TestImplicitReturnSkipsVoid(t *testing.T) {
	f, _ := parse(t, "f = (): void ->\n  g()\n")
	insertImplicitReturns(f)

	blk := funcValue(t, f.Stmts[0]).Body.(*ast.Block)
	if _, ok := blk.Stmts[len(blk.Stmts)-1].(*ast.ExprStmt); !ok {
		t.Errorf("a void function body must not grow a return")
	}
}

func TestAutoVarHoistsPerScope(t *testing.T) {
	f, _ := parse(t, "x = 1\nf = ->\n  y = 2\n  x = 3\n")
	autoVar(f)

	top, ok := f.Stmts[0].(*ast.VarHoist)
	if !ok {
		t.Fatalf("file should start with a hoist, got %T", f.Stmts[0])
	}
	if len(top.Names) != 2 || top.Names[0] != "x" || top.Names[1] != "f" {
		t.Errorf("top-level hoist = %v, want [x f]", top.Names)
	}
	if top.Indent != "" {
		t.Errorf("top-level hoist indent = %q, want empty", top.Indent)
	}

	blk := funcValue(t, f.Stmts[2]).Body.(*ast.Block)
	inner, ok := blk.Stmts[0].(*ast.VarHoist)
	if !ok {
		t.Fatalf("function body should start with a hoist, got %T", blk.Stmts[0])
	}
	if len(inner.Names) != 1 || inner.Names[0] != "y" {
		t.Errorf("inner hoist = %v, want [y]; writes to outer x belong outside", inner.Names)
	}
	if inner.Indent != "  " {
		t.Errorf("inner hoist indent = %q, want two spaces", inner.Indent)
	}
}

func TestAutoVarRespectsDeclarations(t *testing.T) {
	f, _ := parse(t, "let x = 1\nx = 2\n")
	autoVar(f)

	if _, ok := f.Stmts[0].(*ast.VarHoist); ok {
		t.Fatalf("a declared name must not be hoisted again")
	}
}

func TestRestParamTrailingRecovery(t *testing.T) {
	f, bag := parse(t, "f = (a, ...rest, b, c = 1) ->\n  g()\n")
	repositionRest(f, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}

	fn := funcValue(t, f.Stmts[0])
	if len(fn.Params) != 2 {
		t.Fatalf("kept %d params, want 2", len(fn.Params))
	}
	last := fn.Params[1]
	if !last.Spread.Valid() || identText(t, last.Pattern) != "rest" {
		t.Errorf("rest parameter should stay in final position")
	}
	if last.Comma.Valid() {
		t.Errorf("final parameter must not keep its comma")
	}

	blk := fn.Body.(*ast.Block)
	decl, ok := blk.Stmts[0].(*ast.Decl)
	if !ok {
		t.Fatalf("body should start with the recovery, got %T", blk.Stmts[0])
	}
	if !decl.Kw.Synthetic() || decl.Kw.Kind != token.KwLet {
		t.Errorf("recovery should be a synthesized let")
	}
	pat := decl.Target.(*ast.ArrayLit)
	if len(pat.Elems) != 2 {
		t.Fatalf("recovered pattern has %d elements, want 2", len(pat.Elems))
	}
	if identText(t, pat.Elems[0].X) != "b" {
		t.Errorf("first recovered element should be b")
	}
	if _, ok := pat.Elems[1].X.(*ast.Assign); !ok {
		t.Errorf("a defaulted parameter should recover with its default")
	}
	call := decl.Value.(*ast.Call)
	if m, ok := call.Callee.(*ast.Member); !ok || m.Name.Text != "splice" {
		t.Fatalf("recovery should splice off the rest's tail")
	}
	if lit, ok := call.Args[0].X.(*ast.Lit); !ok || lit.Tok.Text != "-2" {
		t.Errorf("splice count should be -2 for two trailing parameters")
	}
}

func TestRestDestructureSplit(t *testing.T) {
	f, bag := parse(t, "[a, ...rest, b] = xs\n")
	repositionRest(f, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	if len(f.Stmts) != 2 {
		t.Fatalf("split produced %d statements, want 2", len(f.Stmts))
	}

	first := f.Stmts[0].(*ast.ExprStmt)
	if !first.Semi.Valid() {
		t.Errorf("split statement needs a terminator before the '[' line")
	}
	pat := first.X.(*ast.Assign).Target.(*ast.ArrayLit)
	if len(pat.Elems) != 2 || !pat.Elems[1].Spread.Valid() {
		t.Fatalf("trimmed pattern should end with the rest element")
	}

	follow := f.Stmts[1].(*ast.ExprStmt)
	fa := follow.X.(*ast.Assign)
	if tgt := fa.Target.(*ast.ArrayLit); len(tgt.Elems) != 1 || identText(t, tgt.Elems[0].X) != "b" {
		t.Errorf("follow-up should destructure the trailing element")
	}
	call := fa.Value.(*ast.Call)
	if lit, ok := call.Args[0].X.(*ast.Lit); !ok || lit.Tok.Text != "-1" {
		t.Errorf("follow-up should splice one element off the tail")
	}
}

func TestRestInLoopPatternRejected(t *testing.T) {
	f, bag := parse(t, "for [a, ...r, b] in xs\n  g(a)\n")
	repositionRest(f, diag.BagReporter{Bag: bag})
	if !hasCode(bag, diag.SynBadDestructuring) {
		t.Fatalf("a mid-pattern rest in a loop should be rejected")
	}
}

func TestSliceAssignCompoundRejected(t *testing.T) {
	f, bag := parse(t, "x[0..1] += y\n")
	lowerSliceAssigns(f, diag.BagReporter{Bag: bag})
	if !hasCode(bag, diag.SynBadSliceAssign) {
		t.Fatalf("a compound assignment to a slice should be rejected")
	}
}

func TestRangeIndexBecomesSlice(t *testing.T) {
	f, bag := parse(t, "tail = xs[1..2]\n")
	rep := diag.BagReporter{Bag: bag}
	lowerSliceAssigns(f, rep)
	lowerRanges(f, rep)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}

	call, ok := assignedValue(t, f.Stmts[0]).(*ast.Call)
	if !ok {
		t.Fatalf("range index did not lower to a call")
	}
	if call.Implicit {
		t.Errorf("lowered call should emit its bracket tokens")
	}
	if m, ok := call.Callee.(*ast.Member); !ok || m.Name.Text != "slice" {
		t.Fatalf("lowered callee should be .slice")
	}
	if len(call.Args) != 2 {
		t.Errorf("closed range should slice with two bounds, got %d", len(call.Args))
	}
}

func TestRewriteSpecifier(t *testing.T) {
	cases := []struct{ in, want string }{
		{`"./mod.esp"`, `"./mod.js"`},
		{`"./mod.mesp"`, `"./mod.mjs"`},
		{`"../lib/util.cesp"`, `"../lib/util.cjs"`},
		{`"./already.js"`, `"./already.js"`},
		{`"path"`, `"path"`},
		{`"lodash.esp"`, `"lodash.esp"`},
	}
	for _, tc := range cases {
		if got := rewriteSpecifier(tc.in); got != tc.want {
			t.Errorf("rewriteSpecifier(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestJSXShorthandAttrsExpand(t *testing.T) {
	f, _ := parse(t, "el = <div #main .box hidden />\n")
	expandJSX(f)

	el, ok := assignedValue(t, f.Stmts[0]).(*ast.JSXElement)
	if !ok {
		t.Fatalf("expected a JSX element")
	}
	if len(el.Attrs) != 3 {
		t.Fatalf("element has %d attrs, want 3", len(el.Attrs))
	}

	id := el.Attrs[0]
	if id.Hash.Valid() || id.Name.Text != "id" {
		t.Errorf("#name should expand to an id attribute")
	}
	if lit, ok := id.Value.(*ast.Lit); !ok || lit.Tok.Text != `"main"` {
		t.Errorf("id value should be the quoted name")
	}

	class := el.Attrs[1]
	if class.Dot.Valid() || class.Name.Text != "class" {
		t.Errorf(".name should expand to a class attribute")
	}
	if lit, ok := class.Value.(*ast.Lit); !ok || lit.Tok.Text != `"box"` {
		t.Errorf("class value should be the quoted name")
	}

	bareAttr := el.Attrs[2]
	if bareAttr.Name.Text != "hidden" || !bareAttr.Eq.Valid() {
		t.Errorf("a bare attribute should gain '={true}'")
	}
	child, ok := bareAttr.Value.(*ast.JSXExprChild)
	if !ok {
		t.Fatalf("bare attribute value is %T, want an embedded expression", bareAttr.Value)
	}
	if lit, ok := child.X.(*ast.Lit); !ok || lit.Tok.Kind != token.KwTrue {
		t.Errorf("bare attribute should default to true")
	}
}

func TestJSXSiblingsMergeIntoFragment(t *testing.T) {
	f, _ := parse(t, "render = ->\n  <a />\n  <b />\n")
	expandJSX(f)

	blk := funcValue(t, f.Stmts[0]).Body.(*ast.Block)
	if len(blk.Stmts) != 1 {
		t.Fatalf("siblings should merge into one statement, got %d", len(blk.Stmts))
	}
	frag, ok := blk.Stmts[0].(*ast.ExprStmt).X.(*ast.JSXFragment)
	if !ok {
		t.Fatalf("merged statement should hold a fragment")
	}
	if len(frag.Children) != 2 {
		t.Fatalf("fragment has %d children, want 2", len(frag.Children))
	}
	for i, c := range frag.Children {
		if _, ok := c.(*ast.JSXElement); !ok {
			t.Errorf("child %d is %T, want a JSX element", i, c)
		}
	}
}
