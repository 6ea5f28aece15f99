// Package transform desugars the parse tree into shapes the emitter can
// render as plain ECMAScript. Passes run in a fixed order, each one
// rewriting only the node shapes it recognizes and leaving everything
// else untouched so the emitter can reproduce the source text.
package transform

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/dialect"
	"espresso/internal/token"
)

// Apply runs the desugaring passes over one parsed file. JSX expansion
// goes first so the later passes only see plain call and array shapes;
// implicit return goes after the lowerings so it wraps their final
// forms, and auto-var last so it sees every assignment the rewrites
// introduced.
func Apply(f *ast.File, d dialect.Dialect, rep diag.Reporter) {
	expandJSX(f)
	repositionRest(f, rep)
	rewritePipes(f)
	lowerSliceAssigns(f, rep)
	lowerRanges(f, rep)
	rewriteImportPaths(f)
	insertImplicitReturns(f)
	if d.AutoVar {
		autoVar(f)
	}
}

// lineIndentOf extracts the indentation of the last line started inside
// a trivia run.
func lineIndentOf(lead []token.Trivia) string {
	indent := ""
	started := false
	for _, tr := range lead {
		switch tr.Kind {
		case token.TriviaNewline:
			indent = ""
			started = true
		case token.TriviaSpace:
			if started {
				indent += tr.Text
			}
		}
	}
	return indent
}

// newlineLead builds synthetic line-start trivia at the given indent.
func newlineLead(indent string) []token.Trivia {
	lead := []token.Trivia{{Kind: token.TriviaNewline, Text: "\n"}}
	if indent != "" {
		lead = append(lead, token.Trivia{Kind: token.TriviaSpace, Text: indent})
	}
	return lead
}

func synthIdent(name string) *ast.Ident {
	return &ast.Ident{Tok: token.Synth(token.Ident, name)}
}

// member builds 'obj.name' with a synthetic link; name carries the span
// of the token it replaces so the call still maps into the source.
func member(obj ast.Expr, name token.Token) *ast.Member {
	return &ast.Member{Obj: obj, Link: token.Synth(token.Dot, "."), Name: name}
}

func synthCall(callee ast.Expr, l, r token.Token, args ...ast.Expr) *ast.Call {
	elems := make([]ast.Element, len(args))
	for i, a := range args {
		if i > 0 {
			if p := ast.FirstTokenRef(a); p != nil && p.Leading == nil {
				p.Leading = spaceLead()
			}
		}
		elems[i].X = a
		if i < len(args)-1 {
			elems[i].Comma = token.Synth(token.Comma, ",")
		}
	}
	return &ast.Call{Callee: callee, L: l, R: r, Args: elems, Implicit: true}
}

func lparen() token.Token { return token.Synth(token.LParen, "(") }
func rparen() token.Token { return token.Synth(token.RParen, ")") }

func spaceLead() []token.Trivia {
	return []token.Trivia{{Kind: token.TriviaSpace, Text: " "}}
}

// spaced returns the token with a single leading space.
func spaced(t token.Token) token.Token {
	t.Leading = spaceLead()
	return t
}

// bare returns the token stripped of its leading trivia, for
// re-spellings glued directly onto synthesized text.
func bare(t token.Token) token.Token {
	t.Leading = nil
	return t
}
