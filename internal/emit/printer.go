package emit

import (
	"bytes"
	"strings"

	"espresso/internal/source"
	"espresso/internal/sourcemap"
	"espresso/internal/token"
)

// printer accumulates output text while tracking the generated position,
// the leading whitespace of the current output line, and the mapping
// entries reported to the source map builder.
type printer struct {
	fs      *source.FileSet
	sm      *sourcemap.Builder
	fileIdx int32

	buf  bytes.Buffer
	line int
	col  uint32
	ws   []byte // whitespace prefix of the current output line
	atWS bool
	last byte

	// pending holds block-close trivia that must come out after every
	// synthetic closing brace of a dedent run, not between them.
	pending []token.Trivia
	// suppress drops the leading trivia of the next token; rewrites
	// that relocate a statement's line prefix set it after emitting
	// the prefix themselves.
	suppress bool
}

func newPrinter(fs *source.FileSet, fileIdx int32) *printer {
	return &printer{fs: fs, sm: sourcemap.NewBuilder(), fileIdx: fileIdx, atWS: true}
}

func (p *printer) write(s string) {
	if s == "" {
		return
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\n' {
			p.line++
			p.col = 0
			p.ws = p.ws[:0]
			p.atWS = true
			continue
		}
		if p.atWS && (b == ' ' || b == '\t') {
			p.ws = append(p.ws, b)
		} else {
			p.atWS = false
		}
		p.col++
	}
	p.buf.WriteString(s)
	p.last = s[len(s)-1]
}

// raw writes structural glue with no source correlation. It never
// flushes pending trivia; closing braces rely on that.
func (p *printer) raw(s string) {
	if s == "" {
		return
	}
	if needSpace(p.last, s[0]) {
		p.write(" ")
	}
	p.write(s)
}

// tok writes one token: its leading trivia, a separating space if the
// output would otherwise fuse with the previous token, and the token
// text with a mapping entry when the token has a source position.
func (p *printer) tok(t token.Token) {
	p.lead(t)
	p.text(t)
}

// lead writes the token's leading trivia, honoring a pending relocation.
func (p *printer) lead(t token.Token) {
	if p.suppress {
		p.suppress = false
		return
	}
	p.trivia(t.Leading)
}

// text writes the token text alone, with its mapping entry.
func (p *printer) text(t token.Token) {
	if t.Text == "" {
		return
	}
	if needSpace(p.last, t.Text[0]) {
		p.write(" ")
	}
	if !t.Synthetic() {
		lc := p.fs.Pos(t.Span.File, t.Span.Start)
		p.sm.AddMapping(p.line, p.col, p.fileIdx, lc.Line-1, lc.Col-1)
	}
	p.write(t.Text)
}

// trivia writes a trivia run, flushing any deferred block-close trivia
// first so output order matches source order.
func (p *printer) trivia(ts []token.Trivia) {
	p.flushPending()
	for _, tr := range ts {
		p.writeTrivia(tr)
	}
}

func (p *printer) writeTrivia(tr token.Trivia) {
	if tr.Kind == token.TriviaHashComment {
		p.write("//" + strings.TrimPrefix(tr.Text, "#"))
		return
	}
	p.write(tr.Text)
}

func (p *printer) hold(ts []token.Trivia) {
	p.pending = append(p.pending, ts...)
}

func (p *printer) flushPending() {
	if len(p.pending) == 0 {
		return
	}
	ts := p.pending
	p.pending = nil
	for _, tr := range ts {
		p.writeTrivia(tr)
	}
}

// lineIndent returns the whitespace prefix of the current output line.
func (p *printer) lineIndent() string {
	return string(p.ws)
}

// needSpace reports whether writing next right after last would fuse
// two tokens into one.
func needSpace(last, next byte) bool {
	if wordByte(last) && wordByte(next) {
		return true
	}
	switch {
	case last == '-' && next == '-':
		return true
	case last == '+' && next == '+':
		return true
	case last == '/' && next == '/':
		return true
	}
	return false
}

func wordByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
