package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"espresso/internal/diagfmt"
	"espresso/internal/dialect"
	"espresso/internal/driver"
	"espresso/internal/observ"
	"espresso/internal/project"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.esp|directory]",
	Short: "Compile espresso sources to JavaScript",
	Long: `Build compiles a single file or every source file under a directory.
Project defaults come from the nearest espresso.toml; a file's prologue
directive always wins over them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", "output directory (default: next to inputs)")
	buildCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	buildCmd.Flags().Bool("source-maps", true, "write .map files alongside outputs")
	buildCmd.Flags().Bool("no-cache", false, "bypass the on-disk compile cache")
	buildCmd.Flags().Bool("stdout", false, "print generated code instead of writing files (single file only)")
	buildCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	startDir := target
	if !st.IsDir() {
		startDir = "."
	}
	manifest, err := project.LoadNearest(startDir)
	if err != nil {
		return err
	}
	base := manifest.ApplyDialect(dialect.Default())

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	sourceMaps := manifest.WantSourceMaps()
	if cmd.Flags().Changed("source-maps") {
		sourceMaps, _ = cmd.Flags().GetBool("source-maps")
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = manifest.OutDir()
	}

	if !st.IsDir() {
		return buildFile(cmd, target, &base, maxDiagnostics, sourceMaps, outDir)
	}
	return buildDir(cmd, target, manifest, &base, maxDiagnostics, sourceMaps, outDir)
}

func buildFile(cmd *cobra.Command, path string, base *dialect.Dialect, maxDiagnostics int, sourceMaps bool, outDir string) error {
	if !driver.IsSourcePath(path) {
		return fmt.Errorf("%q is not an espresso source file", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	res := driver.Compile(driver.Input{
		Path:           path,
		Content:        content,
		Base:           base,
		MaxDiagnostics: maxDiagnostics,
		SourceMap:      sourceMaps,
		Timer:          timer,
	})
	printDiagnostics(cmd, res)
	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if res.Failed {
		return fmt.Errorf("build failed")
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	if toStdout {
		_, err := fmt.Fprint(os.Stdout, res.Code)
		return err
	}
	return writeOutput(outputPath(".", outDir, path), res.Code, res.SourceMap)
}

func buildDir(cmd *cobra.Command, dir string, manifest *project.Manifest, base *dialect.Dialect, maxDiagnostics int, sourceMaps bool, outDir string) error {
	srcDir := dir
	if dir == "." && manifest.SrcDir() != "" {
		srcDir = manifest.SrcDir()
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = manifest.Build.Jobs
	}

	opts := driver.DirOptions{
		Base:           base,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		SourceMap:      sourceMaps,
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, err := driver.OpenDiskCache("espresso")
		if err == nil {
			opts.Cache = cache
		}
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	var results []driver.FileResult
	if shouldUseTUI(uiModeValue) {
		files, listErr := driver.ListSourceFiles(srcDir)
		if listErr != nil {
			return listErr
		}
		results, err = runBuildWithUI(cmd.Context(), "espresso build", files, srcDir, opts)
	} else {
		results, err = driver.CompileDir(cmd.Context(), srcDir, opts)
	}
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no source files under %q", srcDir)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	failed := 0
	cached := 0
	for _, r := range results {
		if r.CompileResult == nil {
			continue
		}
		printDiagnostics(cmd, r.CompileResult)
		if r.Cached {
			cached++
		}
		if r.Failed {
			failed++
			continue
		}
		out := outputPath(srcDir, outDir, r.Path)
		if err := writeOutput(out, r.Code, r.SourceMap); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "built %s\n", formatPathForOutput(srcDir, out))
		}
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "%d files, %d cached, %d failed\n", len(results), cached, failed)
	}
	if failed > 0 {
		return fmt.Errorf("build failed: %d of %d files had errors", failed, len(results))
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, res *driver.CompileResult) {
	if res.Bag == nil || res.Bag.Len() == 0 {
		return
	}
	res.Bag.Sort()
	diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowNotes:   true,
		ShowPreview: true,
	})
}
