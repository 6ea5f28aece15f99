package directive

import (
	"testing"

	"espresso/internal/diag"
	"espresso/internal/source"
)

func resolve(t *testing.T, src string) (Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.esp", []byte(src))
	bag := diag.NewBag(16)
	res := Resolve(fs.Get(id), diag.BagReporter{Bag: bag})
	return res, bag
}

func TestNoDirectiveGivesDefaults(t *testing.T) {
	res, bag := resolve(t, "x = 1\n")
	if res.Found || res.End != 0 {
		t.Fatalf("unexpected directive: %+v", res)
	}
	if res.Dialect.TabWidth != 1 || res.Dialect.CoffeeComment {
		t.Fatalf("defaults wrong: %+v", res.Dialect)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
}

func TestDirectiveFlags(t *testing.T) {
	res, bag := resolve(t, "\"espresso tab=2 coffeeCompat -jsx\"\nx = 1\n")
	if !res.Found {
		t.Fatal("directive not found")
	}
	d := res.Dialect
	if d.TabWidth != 2 {
		t.Errorf("TabWidth = %d", d.TabWidth)
	}
	if !d.CoffeeComment || !d.CoffeeInterpolation || !d.CoffeeEq {
		t.Errorf("coffeeCompat umbrella not applied: %+v", d)
	}
	if d.JSX {
		t.Error("-jsx should disable JSX")
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestDirectiveConsumesItsLine(t *testing.T) {
	src := "\"espresso coffeeComment\"\nrest"
	res, _ := resolve(t, src)
	if !res.Found {
		t.Fatal("directive not found")
	}
	if got := src[res.End:]; got != "rest" {
		t.Fatalf("scan resumes at %q", got)
	}
}

func TestUnknownFlagWarnsNotFatal(t *testing.T) {
	res, bag := resolve(t, "'espresso sparkles tab=x'\n")
	if !res.Found {
		t.Fatal("directive not found")
	}
	if bag.Len() != 2 {
		t.Fatalf("want 2 warnings, got %d", bag.Len())
	}
	for _, d := range bag.Items() {
		if d.Severity != diag.SevWarning || d.Code != diag.WarnUnknownDirective {
			t.Errorf("want unknown-directive warning, got %+v", d)
		}
	}
	// tab=x keeps the default
	if res.Dialect.TabWidth != 1 {
		t.Errorf("TabWidth = %d", res.Dialect.TabWidth)
	}
}

func TestForeignPrologueStringIgnored(t *testing.T) {
	res, _ := resolve(t, "\"use strict\"\n")
	if res.Found {
		t.Fatal("ordinary string must not be treated as a directive")
	}
}

func TestDirectiveAfterComments(t *testing.T) {
	res, _ := resolve(t, "# banner\n\n\"espresso autoVar\"\ncode\n")
	if !res.Found || !res.Dialect.AutoVar {
		t.Fatalf("directive after comments not resolved: %+v", res)
	}
}
