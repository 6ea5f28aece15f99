package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"espresso/internal/driver"
)

// outputPath maps an input file to where its generated JavaScript goes.
// With no configured output directory, outputs land next to their
// inputs. Otherwise the source tree's layout is mirrored under outDir.
func outputPath(srcRoot, outDir, inputPath string) string {
	gen := driver.OutputName(inputPath)
	if outDir == "" {
		return gen
	}
	rel, err := filepath.Rel(srcRoot, gen)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(gen)
	}
	return filepath.Join(outDir, rel)
}

// writeOutput writes the generated code and, when present, its source
// map next to it. The code gains a sourceMappingURL trailer so dev
// tools can find the map.
func writeOutput(path string, code string, srcMap []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if srcMap != nil {
		mapPath := path + ".map"
		if !strings.HasSuffix(code, "\n") {
			code += "\n"
		}
		code += "//# sourceMappingURL=" + filepath.Base(mapPath) + "\n"
		if err := os.WriteFile(mapPath, srcMap, 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", mapPath, err)
		}
	}

	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

func formatPathForOutput(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
