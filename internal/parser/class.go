package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// parseClass parses a class declaration with an indented member body:
//
//	class Animal extends Base
//	  legs = 4
//	  static create(name) -> new Animal(name)
//	  speak()
//	    console.log @sound
func (p *Parser) parseClass() (ast.Stmt, bool) {
	stmt := &ast.ClassDecl{Kw: p.advance()}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a class name")
	stmt.Name = name
	if !ok {
		return stmt, false
	}
	if p.at(token.KwExtends) {
		stmt.ExtendsKw = p.advance()
		super, ok := p.parsePostfix()
		stmt.Super = super
		if !ok {
			return stmt, false
		}
	}
	if !p.at(token.Indent) {
		// An empty class body is allowed.
		return stmt, true
	}
	stmt.Open = p.advance()
	p.eatSeparators()
	for !p.atAny(token.Dedent, token.EOF) {
		member, ok := p.parseClassMember()
		if member != nil {
			stmt.Members = append(stmt.Members, member)
		}
		if !ok {
			if bad := p.resync(); bad != nil {
				stmt.Members = append(stmt.Members, bad)
			}
		}
		p.eatSeparators()
	}
	if p.at(token.Dedent) {
		stmt.Close = p.advance()
	}
	return stmt, true
}

func (p *Parser) parseClassMember() (ast.Node, bool) {
	var static, async token.Token
	if p.at(token.KwStatic) {
		static = p.advance()
	}
	if p.at(token.KwAsync) && p.lx.PeekN(1).Kind != token.LParen && p.lx.PeekN(1).Kind != token.Assign {
		async = p.advance()
	}

	name := p.lx.Peek()
	if name.Kind != token.Ident && name.Kind != token.PrivateName && !isKeywordName(name.Kind) {
		p.errHere(diag.SynExpectIdentifier, "expected a member name")
		return nil, false
	}
	nameTok := p.advance()

	if p.at(token.LParen) && !p.lx.Peek().Spaced() {
		return p.parseMethodRest(static, async, nameTok)
	}

	field := &ast.Field{Static: static, Name: nameTok}
	if p.at(token.Colon) {
		field.Type = p.parseTypeAnn()
	}
	if p.at(token.Assign) {
		field.Assign = p.advance()
		value, ok := p.parseAssign()
		field.Value = value
		return field, ok
	}
	return field, true
}

// parseMethodRest parses '(params)' plus the method body. A body may
// be an indented block directly or follow an arrow.
func (p *Parser) parseMethodRest(static, async, name token.Token) (ast.Node, bool) {
	m := &ast.Method{Static: static, Async: async, Name: name, L: p.advance()}
	params, ok := p.parseParams()
	m.Params = params
	if !ok {
		return m, false
	}
	r, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")
	m.R = r
	if !ok {
		return m, false
	}
	if p.at(token.Colon) {
		m.ReturnType = p.parseTypeAnn()
	}
	if p.atAny(token.Arrow, token.FatArrow) {
		m.Arrow = p.advance()
	}
	body, ok := p.parseFuncBody()
	switch b := body.(type) {
	case *ast.Block:
		m.Body = b
	case ast.Expr:
		m.Body = &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{X: b}}}
	}
	return m, ok
}
