package sourcemap

import (
	"reflect"
	"strings"
	"testing"
)

func TestDeltaLines(t *testing.T) {
	b := NewBuilder()
	b.AddMapping(0, 0, 0, 0, 0)
	b.AddMapping(0, 4, 0, 0, 4)
	b.AddAdvance(0, 10)
	b.AddMapping(1, 2, 0, 1, 2)

	got := b.DeltaLines()
	want := [][]Segment{
		{{0, 0, 0, 0}, {4, 0, 0, 4}, {6}},
		{{2, 0, 1, -2}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DeltaLines() = %v, want %v", got, want)
	}
}

func TestColumnRegressionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on generated column regression")
		}
	}()
	b := NewBuilder()
	b.AddMapping(0, 5, 0, 0, 0)
	b.AddMapping(0, 3, 0, 0, 1)
}

func TestBackward(t *testing.T) {
	b := NewBuilder()
	b.AddMapping(0, 0, 0, 0, 0)
	b.AddMapping(0, 10, 0, 0, 20)
	b.AddMapping(2, 4, 0, 3, 0)

	tests := []struct {
		name string
		gen  Pos
		want Pos
	}{
		{"exact entry", Pos{0, 10}, Pos{0, 20}},
		{"residual offset", Pos{0, 13}, Pos{0, 23}},
		{"before any entry uses earlier one", Pos{0, 5}, Pos{0, 5}},
		{"line without mappings returns query", Pos{1, 7}, Pos{1, 7}},
		{"line past the map returns query", Pos{9, 1}, Pos{9, 1}},
		{"later line", Pos{2, 6}, Pos{3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Backward(tt.gen); got != tt.want {
				t.Fatalf("Backward(%v) = %v, want %v", tt.gen, got, tt.want)
			}
		})
	}
}

func TestForward(t *testing.T) {
	b := NewBuilder()
	b.AddMapping(0, 0, 0, 0, 0)
	b.AddMapping(0, 8, 0, 0, 12)
	b.AddMapping(1, 0, 0, 2, 0)

	if got, ok := b.Forward(Pos{0, 14}); !ok || got != (Pos{0, 10}) {
		t.Fatalf("Forward residual = %v ok=%v, want {0 10} true", got, ok)
	}
	// A query between source lines snaps to the closest preceding entry.
	if got, ok := b.Forward(Pos{1, 5}); !ok || got != (Pos{0, 8}) {
		t.Fatalf("Forward between lines = %v ok=%v, want {0 8} true", got, ok)
	}
	if got, ok := b.Forward(Pos{2, 3}); !ok || got != (Pos{1, 3}) {
		t.Fatalf("Forward on later line = %v ok=%v, want {1 3} true", got, ok)
	}
}

func TestForwardMiss(t *testing.T) {
	b := NewBuilder()
	b.AddMapping(0, 0, 0, 5, 0)
	if _, ok := b.Forward(Pos{6, 0}); !ok {
		t.Fatal("Forward should match an earlier source line")
	}
	if _, ok := b.Forward(Pos{1, 0}); ok {
		t.Fatal("Forward before every entry should report no match")
	}
}

func TestMappingsRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.AddMapping(0, 0, 0, 0, 0)
	b.AddMapping(0, 7, 0, 0, 9)
	b.AddAdvance(0, 12)
	b.AddMapping(2, 1, 0, 4, 3)
	b.AddMapping(2, 6, 0, 4, 8)

	encoded := b.mappings()
	if strings.Count(encoded, ";") != 2 {
		t.Fatalf("mappings %q should hold three lines", encoded)
	}
	decoded := DecodeMappings(encoded)
	want := b.DeltaLines()
	// DeltaLines keeps empty buckets as empty slices; the decoder
	// yields nil lines for them.
	for i := range want {
		if len(want[i]) == 0 {
			want[i] = nil
		}
	}
	if !reflect.DeepEqual(decoded, want) {
		t.Fatalf("decode(%q) = %v, want %v", encoded, decoded, want)
	}
}

// Backward then Forward must land inside the generated span of the
// token that produced the query position, even when a rewrite reorders
// source columns within a line.
func TestBackwardForwardStaysInToken(t *testing.T) {
	// source:          generated:
	//   x = foo bar      x = foo(bar)
	//   y = x |> f       y = f(x)
	type mapped struct {
		genLine, genCol, srcLine, srcCol, width uint32
	}
	tokens := []mapped{
		{0, 0, 0, 0, 1},  // x
		{0, 2, 0, 2, 1},  // =
		{0, 4, 0, 4, 3},  // foo
		{0, 8, 0, 8, 3},  // bar
		{1, 0, 1, 0, 1},  // y
		{1, 2, 1, 2, 1},  // =
		{1, 4, 1, 9, 1},  // f, hoisted ahead of its source position
		{1, 6, 1, 4, 1},  // x, folded into the call
	}
	b := NewBuilder()
	for _, m := range tokens {
		b.AddMapping(int(m.genLine), m.genCol, 0, m.srcLine, m.srcCol)
	}

	for _, m := range tokens {
		for _, g := range []Pos{
			{Line: m.genLine, Col: m.genCol},
			{Line: m.genLine, Col: m.genCol + m.width - 1},
		} {
			src := b.Backward(g)
			back, ok := b.Forward(src)
			if !ok {
				t.Fatalf("Forward(%v) missed after Backward(%v)", src, g)
			}
			if back.Line != m.genLine || back.Col < m.genCol || back.Col >= m.genCol+m.width {
				t.Errorf("round trip of %v left its token: got %v, token at line %d cols [%d,%d)",
					g, back, m.genLine, m.genCol, m.genCol+m.width)
			}
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	b := NewBuilder()
	b.AddMapping(0, 0, 0, 0, 0)
	out, err := b.EncodeJSON("main.js", []string{"main.esp"}, nil)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	for _, want := range []string{`"version":3`, `"sources":["main.esp"]`, `"mappings":"AAAA"`} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("EncodeJSON output %s missing %s", out, want)
		}
	}
}
