package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// parseImport parses every import form:
//
//	import "./side-effect.esp"
//	import def from "./m.esp"
//	import def, { a } from "./m.esp"
//	import * as ns from "./m.esp"
//	import { a, b as c } from "./m.esp"
//	import "./m.esp"          (indented block of names below)
//
// The last form collapses to a one-line braced list on output.
func (p *Parser) parseImport() (ast.Stmt, bool) {
	stmt := &ast.Import{Kw: p.advance()}

	switch p.lx.Peek().Kind {
	case token.Str:
		stmt.Path = p.advance()
		if !p.at(token.Indent) {
			return stmt, true
		}
		// Indented name block: the layout formatting is deliberately
		// dropped, only the trivia before the next statement is kept.
		p.lx.Next()
		stmt.Collapsed = true
		stmt.L = token.Synth(token.LBrace, "{")
		stmt.R = token.Synth(token.RBrace, "}")
		stmt.FromKw = token.Synth(token.KwFrom, "from")
		for !p.atAny(token.Dedent, token.EOF) {
			spec, ok := p.parseImportSpec()
			if ok && !spec.Comma.Valid() {
				spec.Comma = token.Synth(token.Comma, ",")
			}
			stmt.Specs = append(stmt.Specs, spec)
			if !ok {
				return stmt, false
			}
			for p.at(token.Newline) {
				p.lx.Next()
			}
		}
		if p.at(token.Dedent) {
			p.eatLayout()
		}
		if n := len(stmt.Specs); n > 0 {
			stmt.Specs[n-1].Comma = token.Token{}
		}
		return stmt, true

	case token.Star:
		stmt.Star = p.advance()
		asKw, ok := p.expect(token.KwAs, diag.SynUnexpectedToken, "expected 'as' after '*'")
		stmt.StarAsKw = asKw
		if !ok {
			return stmt, false
		}
		alias, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a namespace alias")
		stmt.StarAlias = alias
		if !ok {
			return stmt, false
		}

	case token.LBrace:
		if !p.parseBracedSpecs(&stmt.L, &stmt.Specs, &stmt.R) {
			return stmt, false
		}

	case token.Ident:
		stmt.Default = p.advance()
		if p.at(token.Comma) {
			stmt.DefComma = p.advance()
			if !p.parseBracedSpecs(&stmt.L, &stmt.Specs, &stmt.R) {
				return stmt, false
			}
		}

	default:
		p.errHere(diag.SynExpectModuleString, "expected a module path or import list")
		return stmt, false
	}

	fromKw, ok := p.expect(token.KwFrom, diag.SynUnexpectedToken, "expected 'from'")
	stmt.FromKw = fromKw
	if !ok {
		return stmt, false
	}
	path, ok := p.expect(token.Str, diag.SynExpectModuleString, "expected a module path string")
	stmt.Path = path
	return stmt, ok
}

// parseBracedSpecs parses '{ a, b as c }'. Newline-separated names
// inside the braces receive synthetic commas.
func (p *Parser) parseBracedSpecs(l *token.Token, specs *[]ast.ImportSpec, r *token.Token) bool {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	*l = open
	if !ok {
		return false
	}
	for !p.atAny(token.RBrace, token.EOF) {
		spec, ok := p.parseImportSpec()
		if ok && !spec.Comma.Valid() && !p.at(token.RBrace) && p.lx.Peek().StartsLine() {
			spec.Comma = token.Synth(token.Comma, ",")
		}
		*specs = append(*specs, spec)
		if !ok {
			return false
		}
		if !spec.Comma.Valid() {
			break
		}
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after import list")
	*r = closeTok
	return ok
}

func (p *Parser) parseImportSpec() (ast.ImportSpec, bool) {
	var spec ast.ImportSpec
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an imported name")
	spec.Name = name
	if !ok {
		return spec, false
	}
	if p.at(token.KwAs) {
		spec.AsKw = p.advance()
		alias, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an alias after 'as'")
		spec.Alias = alias
		if !ok {
			return spec, false
		}
	}
	if p.at(token.Comma) {
		spec.Comma = p.advance()
	}
	return spec, true
}

// parseExport parses 'export default expr', 'export { a, b } from
// "./m.esp"', and 'export <declaration>'.
func (p *Parser) parseExport() (ast.Stmt, bool) {
	stmt := &ast.Export{Kw: p.advance()}

	switch p.lx.Peek().Kind {
	case token.KwDefault:
		stmt.Default = p.advance()
		x, ok := p.parseExpr()
		stmt.X = x
		return stmt, ok

	case token.LBrace:
		if !p.parseBracedSpecs(&stmt.L, &stmt.Specs, &stmt.R) {
			return stmt, false
		}
		if p.at(token.KwFrom) {
			stmt.FromKw = p.advance()
			path, ok := p.expect(token.Str, diag.SynExpectModuleString, "expected a module path string")
			stmt.Path = path
			return stmt, ok
		}
		return stmt, true

	case token.KwLet, token.KwConst, token.KwVar, token.KwClass,
		token.KwFunction, token.KwAsync:
		decl, ok := p.parseStmtCore()
		stmt.Decl = decl
		return stmt, ok

	default:
		p.errHere(diag.SynUnexpectedToken, "expected a declaration or export list")
		return stmt, false
	}
}
