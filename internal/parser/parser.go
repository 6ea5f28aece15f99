package parser

import (
	"espresso/internal/ast"
	"espresso/internal/diag"
	"espresso/internal/dialect"
	"espresso/internal/lexer"
	"espresso/internal/source"
	"espresso/internal/token"
)

// Options configure one parse.
type Options struct {
	Dialect   dialect.Dialect
	MaxErrors uint
	Reporter  diag.Reporter
}

// Result is the outcome of parsing one file.
type Result struct {
	File *ast.File
	// Fatal is set when scanning aborted and the tree is truncated.
	Fatal bool
}

// Parser holds the state for parsing a single file.
//
// Layout tokens (Newline/Indent/Dedent) separate statements and open
// blocks. Indent and Dedent tokens that open a statement body are kept
// in the Block node; separators the grammar consumes are dropped, but
// their leading trivia is held and spliced onto the next token so the
// emitter never loses source text.
type Parser struct {
	lx   *lexer.Lexer
	opts Options

	hold []token.Trivia // trivia from consumed layout tokens
	// dedents owed by indents swallowed as line continuations
	// (leading-dot method chains)
	owedDedents int

	errs     uint
	lastSpan source.Span
}

// ParseFile parses the lexer's token stream into a File.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := &Parser{lx: lx, opts: opts}

	var stmts []ast.Stmt
	p.eatSeparators()
	for !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			stmt = p.resync()
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if !p.eatSeparators() && !p.at(token.EOF) {
			// The statement did not consume its whole line.
			p.errHere(diag.SynUnexpectedToken,
				"unexpected "+p.lx.Peek().Kind.String()+" after statement")
			extra := p.resync()
			if extra != nil {
				stmts = append(stmts, extra)
			}
			p.eatSeparators()
		}
	}
	eof := p.advance()
	return Result{
		File:  &ast.File{Stmts: stmts, EOF: eof},
		Fatal: p.lx.Fatal(),
	}
}

func (p *Parser) at(k token.Kind) bool { return p.lx.Peek().Kind == k }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	k := p.lx.Peek().Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// advance consumes the next token, splicing in any held layout trivia.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if len(p.hold) > 0 {
		merged := make([]token.Trivia, 0, len(p.hold)+len(tok.Leading))
		merged = append(merged, p.hold...)
		merged = append(merged, tok.Leading...)
		tok.Leading = merged
		p.hold = nil
	}
	if tok.Kind != token.EOF && !tok.Span.Empty() {
		p.lastSpan = tok.Span
	}
	return tok
}

// eatLayout consumes a layout token, keeping its trivia for the next
// significant token.
func (p *Parser) eatLayout() {
	tok := p.lx.Next()
	p.hold = append(p.hold, tok.Leading...)
}

// eatSeparators consumes statement separators at the current level:
// Newline tokens and any dedents owed by line continuations. It
// reports whether a separator was seen.
func (p *Parser) eatSeparators() bool {
	seen := false
	for {
		switch {
		case p.at(token.Newline):
			p.eatLayout()
			seen = true
		case p.at(token.Dedent) && p.owedDedents > 0:
			p.eatLayout()
			p.owedDedents--
			seen = true
		default:
			return seen
		}
	}
}

// expect consumes a token of the given kind or reports and returns a
// zero token.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errHere(code, msg)
	return token.Token{}, false
}

func (p *Parser) errHere(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if sev == diag.SevError {
		p.errs++
		if p.opts.MaxErrors > 0 && p.errs > p.opts.MaxErrors {
			return
		}
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}

// diagSpan picks a usable span for a diagnostic at the current token.
// EOF and synthetic layout tokens fall back to the end of the last
// consumed token.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if !peek.Span.Empty() {
		return peek.Span
	}
	return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
}

// resync skips to the next statement boundary, preserving the skipped
// tokens so the output stays close to the input.
func (p *Parser) resync() ast.Stmt {
	var toks []token.Token
	for !p.atAny(token.Newline, token.Dedent, token.EOF) {
		tok := p.advance()
		toks = append(toks, tok)
		if tok.Kind == token.Indent {
			// Skip the whole stray block.
			depth := 1
			for depth > 0 && !p.at(token.EOF) {
				in := p.advance()
				toks = append(toks, in)
				switch in.Kind {
				case token.Indent:
					depth++
				case token.Dedent:
					depth--
				}
			}
		}
	}
	if len(toks) == 0 {
		return nil
	}
	return &ast.BadStmt{Toks: toks}
}
