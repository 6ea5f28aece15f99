package lexer

import (
	"espresso/internal/diag"
	"espresso/internal/source"
	"espresso/internal/token"
)

// Lexer turns one file into a token stream. Indentation structure surfaces
// as synthetic Newline/Indent/Dedent tokens; string interpolation re-enters
// the main scan so embedded expressions become ordinary tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	buf   []token.Token  // lookahead buffer (Peek/PeekN)
	queue []token.Token  // synthetic tokens waiting to be returned
	hold  []token.Trivia // collected leading trivia

	indents  []int      // stack of open indentation widths
	depth    int        // bracket nesting depth
	strStack []strState // open interpolated strings
	resume   *strState  // string to continue after InterpClose
	jsx      []jsxMode  // open JSX scanning modes

	prev    token.Kind // last significant token (regex-position decisions)
	fatal   bool       // a lexical error halted scanning
	started bool
}

// strState tracks one suspended string literal during interpolation.
type strState struct {
	quote     byte // '"', '\'' or '`'
	triple    bool
	baseDepth int // bracket depth at which '}' closes the interpolation
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Dialect.TabWidth <= 0 {
		opts.Dialect.TabWidth = 1
	}
	return &Lexer{
		file:    file,
		cursor:  NewCursor(file),
		opts:    opts,
		indents: []int{0},
		prev:    token.Invalid,
	}
}

// Next returns the next significant token with its leading trivia attached.
// After EOF (or a fatal lexical error) it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.buf) > 0 {
		tok := lx.buf[0]
		lx.buf = lx.buf[1:]
		return tok
	}
	return lx.nextRaw()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	return lx.PeekN(0)
}

// PeekN returns the token n positions ahead without consuming anything.
func (lx *Lexer) PeekN(n int) token.Token {
	for len(lx.buf) <= n {
		lx.buf = append(lx.buf, lx.nextRaw())
	}
	return lx.buf[n]
}

// Buffered reports whether lookahead tokens are pending. JSX sub-scans
// require an empty buffer.
func (lx *Lexer) Buffered() bool { return len(lx.buf) > 0 }

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File { return lx.file }

// Fatal reports whether scanning stopped on an unrecoverable lexical
// error. The token stream returns EOF from that point on.
func (lx *Lexer) Fatal() bool { return lx.fatal }

func (lx *Lexer) nextRaw() token.Token {
	if len(lx.queue) > 0 {
		tok := lx.queue[0]
		lx.queue = lx.queue[1:]
		lx.prev = tok.Kind
		return tok
	}
	if lx.fatal {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	// Inside a JSX element whitespace is content, not trivia.
	if lx.inJSXChildren() {
		return lx.scanJSXChild()
	}

	// An InterpClose was just returned: the enclosing string continues
	// immediately, with no trivia in between.
	if lx.resume != nil {
		st := *lx.resume
		lx.resume = nil
		tok := lx.scanStringContinue(st)
		lx.prev = tok.Kind
		return tok
	}

	lx.collectLeadingTrivia()
	sawNewline := !lx.started
	lx.started = true
	for _, tr := range lx.hold {
		if tr.Kind == token.TriviaNewline {
			sawNewline = true
		}
	}

	if lx.cursor.EOF() {
		return lx.finish()
	}

	// Indentation bookkeeping happens only at bracket depth zero and
	// outside string interpolation.
	if sawNewline && lx.depth == 0 && len(lx.strStack) == 0 {
		if tok, ok := lx.layout(); ok {
			lx.prev = tok.Kind
			return tok
		}
		// Unmatched dedent: layout already reported, stream is dead.
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	tok := lx.scanToken()
	tok.Leading = lx.takeHold()
	if sawNewline {
		tok.Flags |= token.FlagNewlineBefore
	} else if spacedBefore(tok.Leading) {
		tok.Flags |= token.FlagSpaced
	}
	lx.prev = tok.Kind
	return tok
}

// layout compares the upcoming token's indentation with the stack and
// queues the synthetic structure tokens. Returns the first of them.
func (lx *Lexer) layout() (token.Token, bool) {
	width := lx.measureIndent()
	top := lx.indents[len(lx.indents)-1]
	hold := lx.takeHold()

	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		ind := token.Token{Kind: token.Indent, Span: lx.EmptySpan(), Leading: hold}
		ind.Flags |= token.FlagBlockOpen
		lx.queueScan()
		return ind, true

	case width == top:
		nl := token.Token{Kind: token.Newline, Span: lx.EmptySpan(), Leading: hold}
		lx.queueScan()
		return nl, true

	default:
		var dedents []token.Token
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > width {
			lx.indents = lx.indents[:len(lx.indents)-1]
			dedents = append(dedents, token.Token{Kind: token.Dedent, Span: lx.EmptySpan()})
		}
		if lx.indents[len(lx.indents)-1] != width {
			lx.errLex(diag.LexUnmatchedDedent, lx.EmptySpan(),
				"unindent does not match any outer indentation level")
			return token.Token{}, false
		}
		dedents[0].Leading = hold
		lx.queue = append(lx.queue, dedents[1:]...)
		lx.queueScan()
		return dedents[0], true
	}
}

// queueScan scans the physical token that triggered layout and appends it
// to the queue, marking it as a line starter.
func (lx *Lexer) queueScan() {
	tok := lx.scanToken()
	tok.Flags |= token.FlagNewlineBefore
	lx.queue = append(lx.queue, tok)
}

// finish closes all open indentation levels and ends the stream. Trailing
// trivia (final comments, the last newline) rides on the first synthetic
// token so the emitter can reproduce it.
func (lx *Lexer) finish() token.Token {
	hold := lx.takeHold()
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.queue = append(lx.queue, token.Token{Kind: token.Dedent, Span: lx.EmptySpan()})
	}
	lx.queue = append(lx.queue, token.Token{Kind: token.EOF, Span: lx.EmptySpan()})
	first := lx.queue[0]
	first.Leading = hold
	lx.queue = lx.queue[1:]
	lx.prev = first.Kind
	return first
}

// measureIndent computes the indentation column of the line holding the
// upcoming token: spaces count 1, tabs count Dialect.TabWidth.
func (lx *Lexer) measureIndent() int {
	content := lx.file.Content
	lineStart := int(lx.cursor.Off)
	for lineStart > 0 && content[lineStart-1] != '\n' {
		lineStart--
	}
	width := 0
	for i := lineStart; i < int(lx.cursor.Off); i++ {
		switch content[i] {
		case ' ':
			width++
		case '\t':
			width += lx.opts.Dialect.TabWidth
		default:
			// Comment or stray byte inside the indentation; the column of
			// the token itself still decides.
			width++
		}
	}
	return width
}

func (lx *Lexer) takeHold() []token.Trivia {
	hold := lx.hold
	lx.hold = nil
	return hold
}

func spacedBefore(leading []token.Trivia) bool {
	if len(leading) == 0 {
		return false
	}
	last := leading[len(leading)-1]
	return last.Kind == token.TriviaSpace
}

// scanToken dispatches on the current byte. The caller guarantees !EOF.
func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()

	case ch == '"' || ch == '\'' || ch == '`':
		return lx.scanString()

	case ch == '/':
		// '///' heregex, '/.../' in regex position, else division.
		if lx.cursor.PeekAt(1) == '/' && lx.cursor.PeekAt(2) == '/' {
			return lx.scanHeregex()
		}
		if !lx.prevEndsExpr() {
			return lx.scanRegex()
		}
		return lx.scanOperatorOrPunct()

	case ch == '#':
		return lx.scanPrivateName()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// prevEndsExpr reports whether the previous token can end an expression.
// It decides regex-literal vs. division for '/'.
func (lx *Lexer) prevEndsExpr() bool {
	return (token.Token{Kind: lx.prev}).CanEndExpr()
}

// Tokens scans the whole file. Used by the tokenize command and tests.
func Tokens(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}
