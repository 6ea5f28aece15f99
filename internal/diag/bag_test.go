package diag

import (
	"testing"

	"espresso/internal/source"
)

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError}) {
		t.Fatal("first add should succeed")
	}
	if !b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError}) {
		t.Fatal("second add should succeed")
	}
	if b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError}) {
		t.Fatal("third add should hit cap")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d", b.Len())
	}
}

func TestBagHasErrorsAndFatal(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Code: WarnUnknownDirective, Severity: SevWarning})
	if b.HasErrors() {
		t.Fatal("warnings are not errors")
	}
	b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError})
	if !b.HasErrors() || b.HasFatal() {
		t.Fatal("syntax error is non-fatal error")
	}
	b.Add(Diagnostic{Code: LexUnmatchedDedent, Severity: SevError})
	if !b.HasFatal() {
		t.Fatal("lexical error is fatal")
	}
}

func TestBagSortDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Primary: source.Span{Start: 20, End: 21}})
	b.Add(Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: source.Span{Start: 5, End: 6}})
	b.Add(Diagnostic{Code: WarnUnknownDirective, Severity: SevWarning, Primary: source.Span{Start: 5, End: 6}})
	b.Sort()

	items := b.Items()
	if items[0].Code != LexUnknownChar {
		t.Errorf("first = %v", items[0].Code)
	}
	// Same span: error sorted before warning, so the warning comes second.
	if items[1].Code != WarnUnknownDirective {
		t.Errorf("severity ordering broken: %+v", items[1])
	}
	if items[2].Code != SynUnexpectedToken {
		t.Errorf("last = %v", items[2].Code)
	}
}

func TestCodeString(t *testing.T) {
	if got := LexUnmatchedDedent.String(); got != "LEX1006" {
		t.Errorf("got %q", got)
	}
	if got := WarnUnknownDirective.String(); got != "WARN4001" {
		t.Errorf("got %q", got)
	}
	if !LexUnterminatedString.Fatal() || SynUnexpectedToken.Fatal() {
		t.Error("fatality classification wrong")
	}
}
