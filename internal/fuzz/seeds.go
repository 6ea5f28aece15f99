package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".esp", ".mesp", ".cesp":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addLanguageSeeds covers the constructs the desugaring passes care
// about: indentation blocks, pipes, rest params, slices, JSX and the
// prologue directive.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"x = 1\n",
		"\"espresso autoVar\"\nx = 1\n",
		"greet = (who) ->\n  \"hi \" + who\n",
		"f = (a, ...rest, b) ->\n  g a, b\n",
		"result = data |> clean |> await render\n",
		"tail = xs[1..2]\nrest = xs[3..]\n",
		"class Point extends Base\n  x = 0\n  len() -> @x\n",
		"import { join } from \"./mod.esp\"\nexport default join\n",
		"el = <div #main .box hidden>text</div>\n",
		"for [a, b] in pairs\n  use a, b\n",
		"if ready then go() else wait()\n",
		"s = \"unterminated\n",
		"x = [1,\n  2,\n\t3]\n",
		"do ->\n  try\n    risky()\n  catch e\n    report e\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
