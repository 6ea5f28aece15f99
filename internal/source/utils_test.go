package source

import (
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nx")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},  // 'a'
		{1, LineCol{Line: 1, Col: 2}},  // 'b'
		{2, LineCol{Line: 1, Col: 3}},  // '\n' ends line 1
		{3, LineCol{Line: 2, Col: 1}},  // 'c'
		{4, LineCol{Line: 2, Col: 2}},  // 'd'
		{6, LineCol{Line: 3, Col: 1}},  // empty line's '\n'
		{7, LineCol{Line: 4, Col: 1}},  // 'x'
	}
	for _, tc := range cases {
		got := toLineCol(idx, tc.off)
		if got != tc.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestToLineColNoNewlines(t *testing.T) {
	got := toLineCol(buildLineIndex([]byte("abc")), 2)
	if (got != LineCol{Line: 1, Col: 3}) {
		t.Fatalf("got %+v", got)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed || string(out) != "a\nb\rc" {
		t.Fatalf("got %q changed=%v", out, changed)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if changed || string(out) != "plain" {
		t.Fatalf("got %q changed=%v", out, changed)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte("\xEF\xBB\xBFhi"))
	if !had || string(out) != "hi" {
		t.Fatalf("got %q had=%v", out, had)
	}
}
