package ast

import (
	"espresso/internal/source"
	"espresso/internal/token"
)

// ImportSpec is one named import or export: 'name' or 'name as alias'.
// Commas between newline-separated specs are synthesized when the
// block collapses to a single braced list.
type ImportSpec struct {
	Name  token.Token
	AsKw  token.Token
	Alias token.Token
	Comma token.Token
}

// Import covers every import statement form:
//
//	import "./side-effect.esp"
//	import def from "./m.esp"
//	import * as ns from "./m.esp"
//	import { a, b as c } from "./m.esp"
//	import "./m.esp" followed by an indented block of names
//
// The indented form collapses to a braced single-line list: Collapsed
// is set, L/R are synthetic braces, and spec commas are synthetic.
type Import struct {
	Kw        token.Token
	Default   token.Token
	DefComma  token.Token
	Star      token.Token
	StarAsKw  token.Token
	StarAlias token.Token
	L         token.Token
	Specs     []ImportSpec
	R         token.Token
	FromKw    token.Token
	Path      token.Token
	Collapsed bool
}

func (s *Import) Span() source.Span {
	return cover(s.Kw.Span, s.Path.Span, s.R.Span)
}
func (s *Import) stmtNode() {}

// Export is an export statement: a re-export list, 'export default
// expr', or an exported declaration.
type Export struct {
	Kw      token.Token
	Default token.Token
	Decl    Stmt
	X       Expr
	L       token.Token
	Specs   []ImportSpec
	R       token.Token
	FromKw  token.Token
	Path    token.Token
}

func (s *Export) Span() source.Span {
	sp := cover(s.Kw.Span, s.R.Span, s.Path.Span)
	sp = cover(sp, nodeSpan(s.Decl))
	return cover(sp, nodeSpan(s.X))
}
func (s *Export) stmtNode() {}
