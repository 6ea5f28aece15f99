package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"espresso/internal/dialect"
)

// DirOptions configures a directory build.
type DirOptions struct {
	// Base is the dialect every file's directive resolves over.
	Base *dialect.Dialect
	// Jobs caps parallelism; 0 means one worker per CPU.
	Jobs int
	// MaxDiagnostics is the per-file bag cap.
	MaxDiagnostics int
	// SourceMap requests JSON maps for every file.
	SourceMap bool
	// Cache, when non-nil, short-circuits unchanged files.
	Cache *DiskCache
	// Progress, when non-nil, receives one event per finished file.
	// Events arrive from worker goroutines.
	Progress func(ev ProgressEvent)
}

// ProgressEvent reports one finished file to the UI.
type ProgressEvent struct {
	Path   string
	Done   int
	Total  int
	Cached bool
	Failed bool
}

// FileResult pairs a compilation with its cache provenance.
type FileResult struct {
	*CompileResult
	Cached bool
}

// ListSourceFiles returns every compilable file under dir, sorted so
// build order and output order are deterministic.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSourcePath(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CompileDir compiles every source file under dir in parallel. Results
// come back in the same deterministic order as ListSourceFiles. An I/O
// failure aborts the build; source-level problems land in the per-file
// diagnostic bags instead.
func CompileDir(ctx context.Context, dir string, opts DirOptions) ([]FileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// Each worker writes only its own index, so no lock is needed.
	results := make([]FileResult, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			res, cached := compileCached(Input{
				Path:           path,
				Content:        content,
				Base:           opts.Base,
				MaxDiagnostics: opts.MaxDiagnostics,
				SourceMap:      opts.SourceMap,
			}, opts.Cache)
			results[i] = FileResult{CompileResult: res, Cached: cached}

			if opts.Progress != nil {
				opts.Progress(ProgressEvent{
					Path:   path,
					Done:   int(done.Add(1)),
					Total:  len(files),
					Cached: cached,
					Failed: res.Failed,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// compileCached consults the disk cache before running the pipeline.
// Failed compilations are never cached: their diagnostics carry spans
// that do not survive serialization.
func compileCached(in Input, cache *DiskCache) (*CompileResult, bool) {
	if cache == nil {
		return Compile(in), false
	}

	base := dialect.Default()
	if in.Base != nil {
		base = *in.Base
	}
	key := ContentKey(in.Content, base)

	var payload DiskPayload
	if ok, err := cache.Get(key, &payload); err == nil && ok {
		return payload.toResult(in.Path, in.Content), true
	}

	res := Compile(in)
	if !res.Failed {
		_ = cache.Put(key, payloadOf(res))
	}
	return res, false
}
