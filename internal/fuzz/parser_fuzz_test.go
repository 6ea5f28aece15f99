package fuzztests

import (
	"testing"
	"time"

	"espresso/internal/diag"
	"espresso/internal/dialect"
	"espresso/internal/lexer"
	"espresso/internal/parser"
	"espresso/internal/source"
	"espresso/internal/transform"
)

// parseTimeout is the maximum time allowed for one input. Longer means
// a hang in layout handling or error recovery.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.esp", input)
		file := fs.Get(fileID)

		d := dialect.Default()
		bag := diag.NewBag(128)
		rep := diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Dialect: d, Reporter: rep})

		res := parser.ParseFile(lx, parser.Options{Dialect: d, Reporter: rep, MaxErrors: 128})
		if res.File != nil {
			transform.Apply(res.File, d, rep)
		}
	})
}

// FuzzParserNoHang detects inputs that send the parser into an
// infinite loop, usually through malformed indentation or recovery
// edge cases.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Edge cases around layout and recovery.
	f.Add([]byte("f = ->\n\tg()\n  h()\n"))
	f.Add([]byte("x = (((\n"))
	f.Add([]byte("class\n  class\n    class\n"))
	f.Add([]byte("for x in\n"))
	f.Add([]byte("a |> |> b\n"))
	f.Add([]byte("<div><span></div></span>\n"))

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.esp", input)
			file := fs.Get(fileID)

			d := dialect.Default()
			bag := diag.NewBag(128)
			rep := diag.BagReporter{Bag: bag}
			lx := lexer.New(file, lexer.Options{Dialect: d, Reporter: rep})
			_ = parser.ParseFile(lx, parser.Options{Dialect: d, Reporter: rep, MaxErrors: 128})
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
