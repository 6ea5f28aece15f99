package transform

import (
	"strings"

	"espresso/internal/ast"
)

// sourceExts maps source-file extensions to the extension the emitted
// module is served under. Longer suffixes are listed first so ".mesp"
// is not split as ".esp".
var sourceExts = [...][2]string{
	{".mesp", ".mjs"},
	{".cesp", ".cjs"},
	{".esp", ".js"},
}

// rewriteImportPaths swaps source-file extensions on relative module
// specifiers for their output equivalents. Bare and absolute
// specifiers name packages or assets and are left alone.
func rewriteImportPaths(f *ast.File) {
	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Import:
			n.Path = n.Path.WithText(rewriteSpecifier(n.Path.Text))
		case *ast.Export:
			if n.Path.Valid() {
				n.Path = n.Path.WithText(rewriteSpecifier(n.Path.Text))
			}
		}
		return true
	})
}

// rewriteSpecifier takes the quoted specifier text and returns the
// rewritten quoted text, or the input unchanged when no rule applies.
func rewriteSpecifier(quoted string) string {
	if len(quoted) < 2 {
		return quoted
	}
	path := quoted[1 : len(quoted)-1]
	if !strings.HasPrefix(path, "./") && !strings.HasPrefix(path, "../") {
		return quoted
	}
	for _, ext := range sourceExts {
		if strings.HasSuffix(path, ext[0]) {
			path = strings.TrimSuffix(path, ext[0]) + ext[1]
			return quoted[:1] + path + quoted[len(quoted)-1:]
		}
	}
	return quoted
}
