package lexer

import (
	"espresso/internal/dialect"
	"espresso/internal/diag"
	"espresso/internal/source"
)

// Options configures one Lexer. The dialect is resolved by the directive
// package before the lexer is constructed and never changes mid-file.
type Options struct {
	Dialect  dialect.Dialect
	Reporter diag.Reporter // may be nil; errors are then dropped
	// Skip is the prologue directive's span; the cursor jumps over it so
	// the directive never appears in the token stream.
	Skip source.Span
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.report(code, diag.SevError, sp, msg)
	// Lexical errors are fatal for the file: everything after this point
	// is EOF.
	lx.fatal = true
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	lx.report(code, diag.SevWarning, sp, msg)
}
