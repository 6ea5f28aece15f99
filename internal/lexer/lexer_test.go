package lexer

import (
	"testing"

	"espresso/internal/dialect"
	"espresso/internal/diag"
	"espresso/internal/source"
	"espresso/internal/token"
)

func scanAll(t *testing.T, src string, d dialect.Dialect) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.esp", []byte(src))
	bag := diag.NewBag(32)
	toks := Tokens(fs.Get(id), Options{Dialect: d, Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, got []token.Token, want ...token.Kind) {
	t.Helper()
	gk := kinds(got)
	if len(gk) != len(want) {
		t.Fatalf("token count = %d, want %d\n got: %v\nwant: %v", len(gk), len(want), gk, want)
	}
	for i := range want {
		if gk[i] != want[i] {
			t.Fatalf("token %d = %v, want %v\nall: %v", i, gk[i], want[i], gk)
		}
	}
}

func TestScanSimpleAssignment(t *testing.T) {
	toks, bag := scanAll(t, "x = 1\n", dialect.Default())
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	expectKinds(t, toks, token.Newline, token.Ident, token.Assign, token.Num, token.EOF)
}

func TestIndentDedent(t *testing.T) {
	toks, bag := scanAll(t, "if x\n  y\nz\n", dialect.Default())
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	expectKinds(t, toks,
		token.Newline, token.KwIf, token.Ident,
		token.Indent, token.Ident,
		token.Dedent, token.Ident,
		token.EOF)
}

func TestNestedDedentsAtEOF(t *testing.T) {
	toks, _ := scanAll(t, "a\n  b\n    c\n", dialect.Default())
	expectKinds(t, toks,
		token.Newline, token.Ident,
		token.Indent, token.Ident,
		token.Indent, token.Ident,
		token.Dedent, token.Dedent, token.EOF)
}

func TestUnmatchedDedentIsFatal(t *testing.T) {
	_, bag := scanAll(t, "if x\n    y\n  z\n", dialect.Default())
	if !bag.HasFatal() {
		t.Fatalf("expected fatal dedent diagnostic, got %v", bag.Items())
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LexUnmatchedDedent {
			found = true
		}
	}
	if !found {
		t.Fatal("missing LexUnmatchedDedent")
	}
}

func TestBracketsSuspendLayout(t *testing.T) {
	toks, bag := scanAll(t, "f(\n  a,\n  b\n)\n", dialect.Default())
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	expectKinds(t, toks,
		token.Newline, token.Ident, token.LParen,
		token.Ident, token.Comma, token.Ident, token.RParen,
		token.EOF)
}

func TestLeadingTriviaAttached(t *testing.T) {
	toks, _ := scanAll(t, "// banner\nx\n", dialect.Default())
	// Newline token carries the comment trivia.
	first := toks[0]
	if first.Kind != token.Newline {
		t.Fatalf("first = %v", first.Kind)
	}
	var hasComment bool
	for _, tr := range first.Leading {
		if tr.Kind == token.TriviaLineComment && tr.Text == "// banner" {
			hasComment = true
		}
	}
	if !hasComment {
		t.Fatalf("comment not in trivia: %+v", first.Leading)
	}
}

func TestHashCommentDialect(t *testing.T) {
	d := dialect.Default()
	d.CoffeeComment = true
	toks, bag := scanAll(t, "# hi\nx\n", d)
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	var has bool
	for _, tr := range toks[0].Leading {
		if tr.Kind == token.TriviaHashComment {
			has = true
		}
	}
	if !has {
		t.Fatal("missing hash comment trivia")
	}
}

func TestPrivateNameWithoutHashDialect(t *testing.T) {
	toks, _ := scanAll(t, "#count\n", dialect.Default())
	if toks[1].Kind != token.PrivateName || toks[1].Text != "#count" {
		t.Fatalf("got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestWordOperatorSpelling(t *testing.T) {
	toks, _ := scanAll(t, "a and b or not c\n", dialect.Default())
	texts := map[token.Kind]string{}
	for _, tok := range toks {
		texts[tok.Kind] = tok.Text
	}
	if texts[token.KwAnd] != "&&" || texts[token.KwOr] != "||" || texts[token.KwNot] != "!" {
		t.Fatalf("word operator spellings wrong: %v", texts)
	}
}

func TestCoffeeEq(t *testing.T) {
	d := dialect.Default()
	d.CoffeeEq = true
	toks, _ := scanAll(t, "a == b != c\n", d)
	var eq, neq string
	for _, tok := range toks {
		switch tok.Kind {
		case token.EqEq:
			eq = tok.Text
		case token.BangEq:
			neq = tok.Text
		}
	}
	if eq != "===" || neq != "!==" {
		t.Fatalf("eq=%q neq=%q", eq, neq)
	}
}

func TestNumberRangeBoundary(t *testing.T) {
	toks, bag := scanAll(t, "1..5\n", dialect.Default())
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	expectKinds(t, toks, token.Newline, token.Num, token.DotDot, token.Num, token.EOF)
	if toks[1].Text != "1" {
		t.Fatalf("number absorbed the dot: %q", toks[1].Text)
	}
}

func TestFloatStillScans(t *testing.T) {
	toks, _ := scanAll(t, "1.5e3 0xFF 10n\n", dialect.Default())
	if toks[1].Text != "1.5e3" || toks[2].Text != "0xFF" || toks[3].Text != "10n" {
		t.Fatalf("got %q %q %q", toks[1].Text, toks[2].Text, toks[3].Text)
	}
}

func TestPlainStringVerbatim(t *testing.T) {
	toks, _ := scanAll(t, "\"hi there\"\n", dialect.Default())
	if toks[1].Kind != token.Str || toks[1].Text != "\"hi there\"" {
		t.Fatalf("got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestInterpolatedString(t *testing.T) {
	toks, bag := scanAll(t, "\"a${x}b\"\n", dialect.Default())
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	expectKinds(t, toks, token.Newline, token.TemplateOpen, token.Ident, token.InterpClose, token.TemplateClose, token.EOF)
	if toks[1].Text != "`a${" {
		t.Errorf("open = %q", toks[1].Text)
	}
	if toks[4].Text != "b`" {
		t.Errorf("close = %q", toks[4].Text)
	}
}

func TestCoffeeInterpolation(t *testing.T) {
	d := dialect.Default()
	d.CoffeeInterpolation = true
	toks, _ := scanAll(t, "\"a#{x}b\"\n", d)
	expectKinds(t, toks, token.Newline, token.TemplateOpen, token.Ident, token.InterpClose, token.TemplateClose, token.EOF)
	if toks[1].Text != "`a${" {
		t.Errorf("open = %q", toks[1].Text)
	}
}

func TestTripleQuotedString(t *testing.T) {
	toks, _ := scanAll(t, "\"\"\"a`b\"\"\"\n", dialect.Default())
	if toks[1].Kind != token.Str || toks[1].Text != "`a\\`b`" {
		t.Fatalf("got %q", toks[1].Text)
	}
}

func TestUnterminatedStringFatal(t *testing.T) {
	_, bag := scanAll(t, "\"oops\nx\n", dialect.Default())
	if !bag.HasFatal() {
		t.Fatal("expected fatal diagnostic")
	}
}

func TestRegexVsDivision(t *testing.T) {
	toks, _ := scanAll(t, "a = /x+/g\nb = a / 2\n", dialect.Default())
	var regexCount, slashCount int
	for _, tok := range toks {
		switch tok.Kind {
		case token.Regex:
			regexCount++
		case token.Slash:
			slashCount++
		}
	}
	if regexCount != 1 || slashCount != 1 {
		t.Fatalf("regex=%d slash=%d, kinds=%v", regexCount, slashCount, kinds(toks))
	}
}

func TestHeregexStripsWhitespaceAndComments(t *testing.T) {
	toks, bag := scanAll(t, "r = ///\n  \\d+   # digits\n  [a z]\n///gi\n", dialect.Default())
	if bag.HasErrors() {
		t.Fatalf("diagnostics: %v", bag.Items())
	}
	var re token.Token
	for _, tok := range toks {
		if tok.Kind == token.Regex {
			re = tok
		}
	}
	if re.Text != "/\\d+[a z]/gi" {
		t.Fatalf("heregex text = %q", re.Text)
	}
}

func TestOptionalCallShorthandTokens(t *testing.T) {
	toks, _ := scanAll(t, "f?(x)\ng?[0]\nh?.i\n", dialect.Default())
	want := map[token.Kind]bool{token.QLParen: false, token.QLBracket: false, token.QDot: false}
	for _, tok := range toks {
		if _, ok := want[tok.Kind]; ok {
			want[tok.Kind] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("missing %v; kinds=%v", k, kinds(toks))
		}
	}
}

func TestPipeOperator(t *testing.T) {
	toks, _ := scanAll(t, "a |> f\n", dialect.Default())
	expectKinds(t, toks, token.Newline, token.Ident, token.PipeGt, token.Ident, token.EOF)
}

func TestSpacedFlagGatesJuxtaposition(t *testing.T) {
	toks, _ := scanAll(t, "a b\n", dialect.Default())
	if !toks[2].Spaced() {
		t.Fatal("second ident should carry FlagSpaced")
	}
	toks, _ = scanAll(t, "a(b)\n", dialect.Default())
	if toks[2].Spaced() {
		t.Fatal("'(' should not carry FlagSpaced")
	}
}

func TestDirectiveSkip(t *testing.T) {
	src := "\"espresso coffeeComment\"\nx\n"
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.esp", []byte(src))
	skip := source.Span{File: id, Start: 0, End: 25}
	toks := Tokens(fs.Get(id), Options{Dialect: dialect.Default(), Skip: skip})
	expectKinds(t, toks, token.Newline, token.Ident, token.EOF)
}
