package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/token"
)

// parseStmt parses one statement including any trailing modifiers: a
// postfix if/unless/while/until/loop applies to the whole statement.
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	stmt, ok := p.parseStmtCore()
	if !ok {
		return stmt, false
	}
	for p.atAny(token.KwIf, token.KwUnless, token.KwWhile, token.KwUntil, token.KwLoop) {
		kw := p.advance()
		var cond ast.Expr
		if kw.Kind != token.KwLoop {
			cond, ok = p.parseCondition()
			if !ok {
				return &ast.Postfix{X: stmt, Kw: kw, Cond: cond}, false
			}
		}
		stmt = &ast.Postfix{X: stmt, Kw: kw, Cond: cond}
	}
	if p.at(token.Semicolon) {
		semi := p.advance()
		if es, isExpr := stmt.(*ast.ExprStmt); isExpr {
			es.Semi = semi
		}
	}
	return stmt, true
}

func (p *Parser) parseStmtCore() (ast.Stmt, bool) {
	switch p.lx.Peek().Kind {
	case token.KwIf, token.KwUnless:
		return p.parseIf()
	case token.KwWhile, token.KwUntil:
		return p.parseWhile()
	case token.KwLoop:
		return p.parseLoop()
	case token.KwFor:
		return p.parseFor()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwTry:
		return p.parseTry()
	case token.KwReturn:
		kw := p.advance()
		if p.exprAhead() {
			x, ok := p.parseExpr()
			return &ast.Return{Kw: kw, X: x}, ok
		}
		return &ast.Return{Kw: kw}, true
	case token.KwThrow:
		kw := p.advance()
		x, ok := p.parseExpr()
		return &ast.Throw{Kw: kw, X: x}, ok
	case token.KwBreak, token.KwContinue:
		kw := p.advance()
		bc := &ast.BreakContinue{Kw: kw}
		if p.at(token.Ident) && !p.lx.Peek().StartsLine() {
			bc.Label = p.advance()
		}
		return bc, true
	case token.KwImport:
		return p.parseImport()
	case token.KwExport:
		return p.parseExport()
	case token.KwClass:
		return p.parseClass()
	case token.KwLet, token.KwConst, token.KwVar:
		return p.parseDecl()
	case token.KwFunction:
		fn, ok := p.parseFunctionKw(token.Token{})
		return stmtOf(fn), ok
	case token.KwAsync:
		if p.lx.PeekN(1).Kind == token.KwFunction {
			async := p.advance()
			fn, ok := p.parseFunctionKw(async)
			return stmtOf(fn), ok
		}
	}
	x, ok := p.parseExpr()
	return &ast.ExprStmt{X: x}, ok
}

// stmtOf places a function literal directly in statement position.
func stmtOf(e ast.Expr) ast.Stmt {
	if fn, ok := e.(*ast.Func); ok {
		return fn
	}
	return &ast.ExprStmt{X: e}
}

// parseCondition parses a test expression and rejects the comma
// operator inside it.
func (p *Parser) parseCondition() (ast.Expr, bool) {
	x, ok := p.parseAssign()
	if ok && p.at(token.Comma) {
		p.errHere(diag.SynCommaNotAllowed, "',' is not allowed in a condition")
		return x, false
	}
	return x, ok
}

// parseBody parses a statement body: an indented block, a 'then'
// inline body, or a bare same-line statement.
func (p *Parser) parseBody() (*ast.Block, bool) {
	switch p.lx.Peek().Kind {
	case token.Indent:
		return p.parseIndentBlock()
	case token.KwThen:
		then := p.advance()
		stmt, ok := p.parseStmt()
		return &ast.Block{Then: then, Stmts: []ast.Stmt{stmt}}, ok
	case token.Newline, token.Dedent, token.EOF:
		p.errHere(diag.SynExpectBlock, "expected an indented block or 'then'")
		return &ast.Block{}, false
	default:
		stmt, ok := p.parseStmt()
		return &ast.Block{Stmts: []ast.Stmt{stmt}}, ok
	}
}

// parseIndentBlock parses an Indent ... Dedent statement sequence.
func (p *Parser) parseIndentBlock() (*ast.Block, bool) {
	open, ok := p.expect(token.Indent, diag.SynExpectBlock, "expected an indented block")
	if !ok {
		return &ast.Block{}, false
	}
	blk := &ast.Block{Open: open}
	p.eatSeparators()
	for !p.atAny(token.Dedent, token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			if bad := p.resync(); bad != nil {
				if stmt != nil {
					blk.Stmts = append(blk.Stmts, stmt)
				}
				stmt = bad
			}
		}
		if stmt != nil {
			blk.Stmts = append(blk.Stmts, stmt)
		}
		if !p.eatSeparators() && !p.atAny(token.Dedent, token.EOF) {
			p.errHere(diag.SynUnexpectedToken,
				"unexpected "+p.lx.Peek().Kind.String()+" after statement")
			if bad := p.resync(); bad != nil {
				blk.Stmts = append(blk.Stmts, bad)
			}
			p.eatSeparators()
		}
	}
	if p.at(token.Dedent) {
		blk.Close = p.advance()
	}
	return blk, true
}

func (p *Parser) parseIf() (ast.Stmt, bool) {
	kw := p.advance()
	stmt := &ast.If{Kw: kw, Negate: kw.Kind == token.KwUnless}
	cond, ok := p.parseCondition()
	stmt.Cond = cond
	if !ok {
		return stmt, false
	}
	then, ok := p.parseBody()
	stmt.Then = then
	if !ok {
		return stmt, false
	}
	if p.at(token.KwElse) {
		stmt.ElseKw = p.advance()
		if p.atAny(token.KwIf, token.KwUnless) {
			els, ok := p.parseIf()
			stmt.Else = els
			return stmt, ok
		}
		els, ok := p.parseBody()
		stmt.Else = els
		return stmt, ok
	}
	return stmt, true
}

func (p *Parser) parseWhile() (ast.Stmt, bool) {
	kw := p.advance()
	stmt := &ast.While{Kw: kw, Negate: kw.Kind == token.KwUntil}
	cond, ok := p.parseCondition()
	stmt.Cond = cond
	if !ok {
		return stmt, false
	}
	body, ok := p.parseBody()
	stmt.Body = body
	return stmt, ok
}

func (p *Parser) parseLoop() (ast.Stmt, bool) {
	kw := p.advance()
	stmt := &ast.While{Kw: kw, Loop: true}
	body, ok := p.parseBody()
	stmt.Body = body
	return stmt, ok
}

func (p *Parser) parseFor() (ast.Stmt, bool) {
	kw := p.advance()
	stmt := &ast.For{Kw: kw}
	if p.atAny(token.KwLet, token.KwConst, token.KwVar) {
		stmt.Decl = p.advance()
	}
	pattern, ok := p.parseParamPattern()
	stmt.Pattern = pattern
	if !ok {
		return stmt, false
	}
	inOf := p.lx.Peek()
	if inOf.Kind != token.KwIn && inOf.Kind != token.KwOf {
		p.errHere(diag.SynUnexpectedToken, "expected 'in' or 'of' in for loop")
		return stmt, false
	}
	stmt.InOf = p.advance()
	iter, ok := p.parseCondition()
	stmt.Iter = iter
	if !ok {
		return stmt, false
	}
	body, ok := p.parseBody()
	stmt.Body = body
	return stmt, ok
}

func (p *Parser) parseSwitch() (ast.Stmt, bool) {
	kw := p.advance()
	stmt := &ast.Switch{Kw: kw}
	subject, ok := p.parseCondition()
	stmt.Subject = subject
	if !ok {
		return stmt, false
	}
	open, ok := p.expect(token.Indent, diag.SynExpectBlock, "expected indented switch arms")
	stmt.Open = open
	if !ok {
		return stmt, false
	}
	p.eatSeparators()
	for !p.atAny(token.Dedent, token.EOF) {
		arm, ok := p.parseSwitchArm()
		stmt.Cases = append(stmt.Cases, arm)
		if !ok {
			if bad := p.resync(); bad != nil && arm.Body != nil {
				arm.Body.Stmts = append(arm.Body.Stmts, bad)
			}
		}
		p.eatSeparators()
	}
	if p.at(token.Dedent) {
		stmt.Close = p.advance()
	}
	return stmt, true
}

func (p *Parser) parseSwitchArm() (ast.SwitchCase, bool) {
	var arm ast.SwitchCase
	switch p.lx.Peek().Kind {
	case token.KwWhen:
		arm.Kw = p.advance()
		for {
			var el ast.Element
			x, ok := p.parseAssign()
			el.X = x
			if !ok {
				arm.Vals = append(arm.Vals, el)
				return arm, false
			}
			if p.at(token.Comma) {
				el.Comma = p.advance()
				arm.Vals = append(arm.Vals, el)
				continue
			}
			arm.Vals = append(arm.Vals, el)
			break
		}
	case token.KwElse, token.KwDefault:
		arm.Kw = p.advance()
	default:
		p.errHere(diag.SynUnexpectedToken, "expected 'when' or 'else' in switch")
		return arm, false
	}
	body, ok := p.parseBody()
	arm.Body = body
	return arm, ok
}

func (p *Parser) parseTry() (ast.Stmt, bool) {
	stmt := &ast.TryStmt{Kw: p.advance()}
	body, ok := p.parseIndentBlock()
	stmt.Body = body
	if !ok {
		return stmt, false
	}
	if p.at(token.KwCatch) {
		stmt.CatchKw = p.advance()
		switch p.lx.Peek().Kind {
		case token.LParen:
			stmt.CatchL = p.advance()
			param, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a catch parameter")
			stmt.CatchParam = param
			if !ok {
				return stmt, false
			}
			r, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after catch parameter")
			stmt.CatchR = r
			if !ok {
				return stmt, false
			}
		case token.Ident:
			// Bare 'catch e' gains synthetic parens on output.
			stmt.CatchL = token.Synth(token.LParen, "(")
			stmt.CatchParam = p.advance()
			stmt.CatchR = token.Synth(token.RParen, ")")
		}
		catch, ok := p.parseIndentBlock()
		stmt.Catch = catch
		if !ok {
			return stmt, false
		}
	}
	if p.at(token.KwFinally) {
		stmt.FinallyKw = p.advance()
		fin, ok := p.parseIndentBlock()
		stmt.Finally = fin
		if !ok {
			return stmt, false
		}
	}
	if stmt.Catch == nil && stmt.Finally == nil {
		p.errHere(diag.SynExpectCatchOrFinally, "try needs a catch or finally clause")
		return stmt, false
	}
	return stmt, true
}

func (p *Parser) parseDecl() (ast.Stmt, bool) {
	stmt := &ast.Decl{Kw: p.advance()}
	target, ok := p.parseParamPattern()
	stmt.Target = target
	if !ok {
		return stmt, false
	}
	if p.at(token.Colon) {
		stmt.Type = p.parseTypeAnn()
	}
	if p.at(token.Assign) {
		stmt.Assign = p.advance()
		value, ok := p.parseAssign()
		stmt.Value = value
		return stmt, ok
	}
	return stmt, true
}
