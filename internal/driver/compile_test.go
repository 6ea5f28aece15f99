package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"espresso/internal/token"
)

func TestCompileDeterminism(t *testing.T) {
	src := []byte("\"espresso autoVar\"\nx = 1\ngreet = -> x + 1\n")
	a := Compile(Input{Path: "a.esp", Content: src, SourceMap: true})
	b := Compile(Input{Path: "a.esp", Content: src, SourceMap: true})

	if a.Failed || b.Failed {
		t.Fatalf("unexpected failure: %v", a.Bag.Items())
	}
	if a.Code != b.Code {
		t.Errorf("code differs between identical compilations")
	}
	if string(a.SourceMap) != string(b.SourceMap) {
		t.Errorf("source map differs between identical compilations")
	}
}

func TestCompileHonorsDirective(t *testing.T) {
	res := Compile(Input{Path: "a.esp", Content: []byte("\"espresso autoVar\"\nx = 1\n")})
	if res.Failed {
		t.Fatalf("unexpected failure: %v", res.Bag.Items())
	}
	if !res.Dialect.AutoVar {
		t.Errorf("directive flag did not reach the dialect")
	}
	if res.Code != "var x; x = 1\n" {
		t.Errorf("output = %q", res.Code)
	}
}

func TestCompileFatalLexError(t *testing.T) {
	res := Compile(Input{Path: "a.esp", Content: []byte("s = \"unterminated\n")})
	if !res.Failed {
		t.Fatalf("unterminated string should fail the compilation")
	}
	if res.SourceMap != nil {
		t.Errorf("failed compilations must not produce a map")
	}
}

func TestOutputName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"src/app.esp", "src/app.js"},
		{"src/app.mesp", "src/app.mjs"},
		{"src/app.cesp", "src/app.cjs"},
	}
	for _, tc := range cases {
		if got := OutputName(tc.in); got != tc.want {
			t.Errorf("OutputName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTokenizeStreamEndsWithEOF(t *testing.T) {
	_, toks := Tokenize(Input{Path: "a.esp", Content: []byte("x = 1\n")})
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("stream must end with EOF")
	}
}

func TestCompileDirDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write("b.esp", "b = 2\n")
	write("a.esp", "a = 1\n")
	write("notes.txt", "not source\n")

	results, err := CompileDir(context.Background(), dir, DirOptions{Jobs: 2})
	if err != nil {
		t.Fatalf("CompileDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("compiled %d files, want 2", len(results))
	}
	if filepath.Base(results[0].Path) != "a.esp" || filepath.Base(results[1].Path) != "b.esp" {
		t.Errorf("results out of order: %q, %q", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Failed {
			t.Errorf("%s failed: %v", r.Path, r.Bag.Items())
		}
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	src := []byte("x = 1\n")
	first, cached := compileCached(Input{Path: "a.esp", Content: src}, cache)
	if cached {
		t.Fatalf("first compile cannot be a cache hit")
	}
	second, cached := compileCached(Input{Path: "a.esp", Content: src}, cache)
	if !cached {
		t.Fatalf("second compile should hit the cache")
	}
	if first.Code != second.Code {
		t.Errorf("cached code differs: %q vs %q", first.Code, second.Code)
	}

	// Different content misses.
	_, cached = compileCached(Input{Path: "a.esp", Content: []byte("x = 2\n")}, cache)
	if cached {
		t.Errorf("changed content must miss the cache")
	}
}
