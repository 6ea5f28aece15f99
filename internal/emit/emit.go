// Package emit renders a transformed parse tree back to text. Subtrees
// the transforms left alone reproduce their source bytes exactly,
// including whitespace and comments; rewritten constructs come out as
// their ECMAScript equivalents with structural glue (braces, parens,
// inserted keywords) that carries no source mapping of its own.
package emit

import (
	"espresso/internal/ast"
	"espresso/internal/source"
	"espresso/internal/sourcemap"
	"espresso/internal/token"
)

// Output is the rendered text plus the source map accumulated while
// rendering it.
type Output struct {
	Code string
	Map  *sourcemap.Builder
}

// File renders a whole module.
func File(fs *source.FileSet, f *ast.File) Output {
	e := &emitter{p: newPrinter(fs, 0)}
	for _, s := range f.Stmts {
		e.stmt(s)
	}
	e.p.flushPending()
	e.p.trivia(f.EOF.Leading)
	return Output{Code: e.p.buf.String(), Map: e.p.sm}
}

type emitter struct {
	p *printer
}

func (e *emitter) tok(t token.Token) {
	if t.Valid() {
		e.p.tok(t)
	}
}

// leadOf writes the leading trivia of a subtree's first token. Rewrites
// that move a construct behind inserted glue call it first, then emit
// the subtree with suppression on so the trivia is not written twice.
func (e *emitter) leadOf(n ast.Node) {
	e.p.lead(ast.FirstToken(n))
}

func (e *emitter) node(n ast.Node) {
	switch n := n.(type) {
	case nil:
	case ast.Expr:
		e.expr(n)
	case ast.Stmt:
		e.stmt(n)
	case *ast.Method:
		e.method(n)
	case *ast.Field:
		e.field(n)
	case *ast.JSXText:
		e.tok(n.Tok)
	case *ast.JSXExprChild:
		e.jsxExprChild(n)
	}
}

// cond writes a test expression wrapped in the parentheses the output
// grammar requires. Negated forms ('unless', 'until') come out as
// '(!(x))'. A test that is already a parenthesized group is reused.
func (e *emitter) cond(x ast.Expr, negate bool) {
	if x == nil {
		e.p.raw("()")
		return
	}
	if g, ok := x.(*ast.Group); ok && !negate {
		e.expr(g)
		return
	}
	e.leadOf(x)
	if negate {
		e.p.raw("(!(")
	} else {
		e.p.raw("(")
	}
	e.p.suppress = true
	e.expr(x)
	if negate {
		e.p.raw("))")
	} else {
		e.p.raw(")")
	}
}

// block writes a statement body as a braced block. Indented source
// blocks keep every line as written; the braces are glue. outer is the
// indentation of the line that opened the construct, used to place the
// closing brace. The Close token's trivia is deferred so that nested
// dedent runs emit all their braces before the next line's prefix.
func (e *emitter) block(b *ast.Block, outer string) {
	if b == nil {
		e.p.raw(" {}")
		return
	}
	if !b.Open.Valid() {
		// 'then' bodies and bare same-line bodies inline the braces.
		e.p.raw(" { ")
		first := true
		for _, s := range b.Stmts {
			if _, hoist := s.(*ast.VarHoist); !hoist && first {
				e.p.suppress = true
				first = false
			}
			e.stmt(s)
		}
		e.p.raw(" }")
		return
	}
	e.p.raw(" {")
	e.p.trivia(b.Open.Leading)
	for _, s := range b.Stmts {
		e.stmt(s)
	}
	e.p.raw("\n" + outer + "}")
	e.p.hold(b.Close.Leading)
}

// indentOf extracts the line indentation carried by a layout token's
// trivia: the whitespace that followed the last newline before it.
func indentOf(t token.Token) string {
	indent := ""
	for _, tr := range t.Leading {
		switch tr.Kind {
		case token.TriviaNewline:
			indent = ""
		case token.TriviaSpace:
			indent += tr.Text
		}
	}
	return indent
}
