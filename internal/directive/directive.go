// Package directive resolves the prologue directive: a single leading
// string-literal statement of the form
//
//	"espresso tab=2 coffeeCompat -jsx"
//
// evaluated exactly once per file before scanning of the remainder begins.
// Boolean flags are set by presence and cleared by a '-' prefix; scalar
// flags use key=value. Unknown flags are warnings, never fatal.
package directive

import (
	"strconv"
	"strings"

	"espresso/internal/dialect"
	"espresso/internal/diag"
	"espresso/internal/source"
)

// Namespace is the first word a prologue string must carry to be treated
// as a directive rather than an ordinary expression statement.
const Namespace = "espresso"

// Result carries the resolved flag set and the directive's extent. The
// scanner skips [Start, End) so the directive never reaches the token
// stream, while comments and blank lines before it are preserved.
type Result struct {
	Dialect dialect.Dialect
	// Start is the byte offset of the opening quote.
	Start uint32
	// End is the byte offset just past the directive statement (including
	// its trailing newline). Zero when no directive was present.
	End uint32
	// Found reports whether a prologue directive was consumed.
	Found bool
}

// Resolve inspects the start of the file for a prologue directive. Only
// blank lines and comments may precede it; anything else means "no
// directive" and all defaults apply.
func Resolve(f *source.File, reporter diag.Reporter) Result {
	return ResolveFrom(f, dialect.Default(), reporter)
}

// ResolveFrom resolves the prologue directive over a caller-provided
// base flag set, typically the project manifest's defaults. Directive
// flags win over the base.
func ResolveFrom(f *source.File, base dialect.Dialect, reporter diag.Reporter) Result {
	d := base
	content := f.Content

	off := skipLeadingTrivia(content)
	if off >= uint32(len(content)) {
		return Result{Dialect: d}
	}

	quote := content[off]
	if quote != '"' && quote != '\'' {
		return Result{Dialect: d}
	}

	// The directive must terminate on its own line.
	start := off + 1
	end := start
	for end < uint32(len(content)) && content[end] != quote && content[end] != '\n' {
		end++
	}
	if end >= uint32(len(content)) || content[end] != quote {
		return Result{Dialect: d}
	}

	body := string(content[start:end])
	fields := strings.Fields(body)
	if len(fields) == 0 || fields[0] != Namespace {
		return Result{Dialect: d}
	}

	for _, field := range fields[1:] {
		d = applyFlag(d, field, source.Span{File: f.ID, Start: start, End: end}, reporter)
	}

	// Consume the closing quote, an optional semicolon and the line break.
	pos := end + 1
	for pos < uint32(len(content)) && (content[pos] == ' ' || content[pos] == '\t' || content[pos] == ';') {
		pos++
	}
	if pos < uint32(len(content)) && content[pos] == '\n' {
		pos++
	}
	return Result{Dialect: d, Start: off, End: pos, Found: true}
}

func applyFlag(d dialect.Dialect, field string, span source.Span, reporter diag.Reporter) dialect.Dialect {
	value := true
	name := field
	if strings.HasPrefix(name, "-") {
		value = false
		name = name[1:]
	}

	if key, val, ok := strings.Cut(name, "="); ok {
		switch key {
		case "tab":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				d.TabWidth = n
			} else {
				diag.Warning(reporter, diag.WarnUnknownDirective, span,
					"bad value for directive flag tab: "+strconv.Quote(val))
			}
		default:
			diag.Warning(reporter, diag.WarnUnknownDirective, span,
				"unknown directive flag "+strconv.Quote(key))
		}
		return d
	}

	switch name {
	case "coffeeCompat":
		d = d.WithCoffeeCompat(value)
	case "coffeeComment":
		d.CoffeeComment = value
	case "coffeeInterpolation":
		d.CoffeeInterpolation = value
	case "coffeeEq":
		d.CoffeeEq = value
	case "autoVar":
		d.AutoVar = value
	case "jsx":
		d.JSX = value
	default:
		diag.Warning(reporter, diag.WarnUnknownDirective, span,
			"unknown directive flag "+strconv.Quote(name))
	}
	return d
}

// skipLeadingTrivia advances past blank lines and comments. The directive
// itself decides comment syntax, so both '//' and '#' comment spellings are
// accepted here.
func skipLeadingTrivia(content []byte) uint32 {
	i := uint32(0)
	n := uint32(len(content))
	for i < n {
		switch content[i] {
		case ' ', '\t', '\n', '\r':
			i++
		case '#':
			for i < n && content[i] != '\n' {
				i++
			}
		case '/':
			if i+1 < n && content[i+1] == '/' {
				for i < n && content[i] != '\n' {
					i++
				}
				continue
			}
			if i+1 < n && content[i+1] == '*' {
				i += 2
				for i+1 < n && !(content[i] == '*' && content[i+1] == '/') {
					i++
				}
				if i+1 < n {
					i += 2
				} else {
					i = n
				}
				continue
			}
			return i
		default:
			return i
		}
	}
	return i
}
