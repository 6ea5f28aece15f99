package diag

import (
	"cmp"
	"slices"

	"espresso/internal/source"
)

// Bag collects the diagnostics of one compile up to a fixed cap.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add appends a diagnostic. It returns false when the bag is full and
// the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int { return b.max }
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether the bag holds an error-severity diagnostic.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Severity >= SevError
	})
}

// HasFatal reports whether an error carries a fatal (lexical) code.
func (b *Bag) HasFatal() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Code.Fatal() && d.Severity >= SevError
	})
}

// Items returns a read-only view of the diagnostics. The slice aliases
// the bag's internal array.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends another bag's diagnostics, growing the cap when needed.
func (b *Bag) Merge(other *Bag) {
	b.items = append(b.items, other.items...)
	b.max = max(b.max, len(b.items))
}

// Sort orders diagnostics by file, span, severity (errors first), then
// code, so rendered output is deterministic.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		if c := cmp.Compare(x.Primary.File, y.Primary.File); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Primary.Start, y.Primary.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Primary.End, y.Primary.End); c != 0 {
			return c
		}
		if x.Severity != y.Severity {
			return cmp.Compare(y.Severity, x.Severity)
		}
		return cmp.Compare(x.Code, y.Code)
	})
}

// Dedup removes diagnostics sharing the same code and primary span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]bool, len(b.items))
	kept := b.items[:0]
	for _, d := range b.items {
		k := key{code: d.Code, span: d.Primary}
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, d)
	}
	b.items = kept
}
