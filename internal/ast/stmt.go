package ast

import (
	"espresso/internal/source"
	"espresso/internal/token"
)

// Block is a statement body. Indented blocks carry the Indent token in
// Open and the matching Dedent in Close; inline bodies after 'then'
// carry the 'then' token instead and hold a single statement.
type Block struct {
	Open  token.Token
	Then  token.Token
	Stmts []Stmt
	Close token.Token
}

func (b *Block) Span() source.Span {
	sp := cover(b.Open.Span, b.Then.Span, b.Close.Span)
	for _, s := range b.Stmts {
		sp = cover(sp, s.Span())
	}
	return sp
}
func (b *Block) stmtNode() {}

// Inline reports whether the block came from a 'then' body.
func (b *Block) Inline() bool { return b.Then.Valid() }

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	X    Expr
	Semi token.Token
}

func (s *ExprStmt) Span() source.Span { return cover(nodeSpan(s.X), s.Semi.Span) }
func (s *ExprStmt) stmtNode()         {}

// Decl is a let/const/var declaration. Declarations synthesized by the
// auto-var rewrite carry a synthetic Kw that keeps the target's span.
type Decl struct {
	Kw     token.Token
	Target Expr
	Type   *TypeAnn
	Assign token.Token
	Value  Expr
}

func (s *Decl) Span() source.Span {
	return cover(s.Kw.Span, nodeSpan(s.Target), nodeSpan(s.Value))
}
func (s *Decl) stmtNode() {}

// Return is a return statement. The implicit-return rewrite produces
// these with a synthetic Kw spanning the returned expression.
type Return struct {
	Kw token.Token
	X  Expr
}

func (s *Return) Span() source.Span { return cover(s.Kw.Span, nodeSpan(s.X)) }
func (s *Return) stmtNode()         {}

// Throw is a throw statement.
type Throw struct {
	Kw token.Token
	X  Expr
}

func (s *Throw) Span() source.Span { return cover(s.Kw.Span, nodeSpan(s.X)) }
func (s *Throw) stmtNode()         {}

// BreakContinue is a break or continue statement, with optional label.
type BreakContinue struct {
	Kw    token.Token
	Label token.Token
}

func (s *BreakContinue) Span() source.Span { return cover(s.Kw.Span, s.Label.Span) }
func (s *BreakContinue) stmtNode()         {}

// If is a conditional statement. 'unless' parses into an If with
// Negate set; the emitter wraps the condition in '!(...)'.
type If struct {
	Kw     token.Token
	Negate bool
	Cond   Expr
	Then   *Block
	ElseKw token.Token
	Else   Stmt
}

func (s *If) Span() source.Span {
	sp := cover(s.Kw.Span, nodeSpan(s.Cond), nodeSpan(s.Then))
	return cover(sp, nodeSpan(s.Else))
}
func (s *If) stmtNode() {}

// While covers while, until (Negate set), and loop (Loop set, no
// condition; emitted as 'while (true)').
type While struct {
	Kw     token.Token
	Negate bool
	Loop   bool
	Cond   Expr
	Body   *Block
}

func (s *While) Span() source.Span {
	return cover(s.Kw.Span, nodeSpan(s.Cond), nodeSpan(s.Body))
}
func (s *While) stmtNode() {}

// For is a for-in/for-of statement. When Decl is absent the emitter
// inserts 'const' before the pattern.
type For struct {
	Kw      token.Token
	Decl    token.Token
	Pattern Expr
	InOf    token.Token
	Iter    Expr
	Body    *Block
}

func (s *For) Span() source.Span {
	return cover(s.Kw.Span, nodeSpan(s.Iter), nodeSpan(s.Body))
}
func (s *For) stmtNode() {}

// Postfix is a statement-level trailing modifier: 'x if c', 'x unless
// c', 'x while c', 'x until c', 'x loop'. The modifier applies to the
// whole statement, and the emitter reorders it into prefix form.
type Postfix struct {
	X    Stmt
	Kw   token.Token
	Cond Expr
}

func (s *Postfix) Span() source.Span {
	return cover(nodeSpan(s.X), s.Kw.Span, nodeSpan(s.Cond))
}
func (s *Postfix) stmtNode() {}

// Negate reports whether the modifier inverts its condition.
func (s *Postfix) Negate() bool {
	return s.Kw.Kind == token.KwUnless || s.Kw.Kind == token.KwUntil
}

// Looping reports whether the modifier emits a loop rather than an if.
func (s *Postfix) Looping() bool {
	switch s.Kw.Kind {
	case token.KwWhile, token.KwUntil, token.KwLoop:
		return true
	default:
		return false
	}
}

// TryStmt is a try with optional catch and finally clauses.
type TryStmt struct {
	Kw         token.Token
	Body       *Block
	CatchKw    token.Token
	CatchL     token.Token
	CatchParam token.Token
	CatchR     token.Token
	Catch      *Block
	FinallyKw  token.Token
	Finally    *Block
}

func (s *TryStmt) Span() source.Span {
	sp := cover(s.Kw.Span, nodeSpan(s.Body), nodeSpan(s.Catch))
	return cover(sp, nodeSpan(s.Finally))
}
func (s *TryStmt) stmtNode() {}

// SwitchCase is one arm of a switch. 'when' arms can list several
// values; 'else' arms have none and emit as 'default'.
type SwitchCase struct {
	Kw   token.Token
	Vals []Element
	Body *Block
}

// Switch is a switch statement. Each 'when' body gets a synthetic
// 'break' unless it already ends the arm with a jump.
type Switch struct {
	Kw      token.Token
	Subject Expr
	Open    token.Token
	Cases   []SwitchCase
	Close   token.Token
}

func (s *Switch) Span() source.Span {
	sp := cover(s.Kw.Span, nodeSpan(s.Subject), s.Close.Span)
	for i := range s.Cases {
		sp = cover(sp, nodeSpan(s.Cases[i].Body))
	}
	return sp
}
func (s *Switch) stmtNode() {}

// VarHoist declares names collected by the auto-var rewrite at the top
// of a function body. It has no source tokens of its own.
type VarHoist struct {
	Names  []string
	Indent string
}

func (s *VarHoist) Span() source.Span { return source.Span{} }
func (s *VarHoist) stmtNode()         {}

// BadStmt preserves the tokens of a statement the parser gave up on.
type BadStmt struct {
	Toks []token.Token
}

func (s *BadStmt) Span() source.Span {
	if len(s.Toks) == 0 {
		return source.Span{}
	}
	return cover(s.Toks[0].Span, s.Toks[len(s.Toks)-1].Span)
}
func (s *BadStmt) stmtNode() {}
