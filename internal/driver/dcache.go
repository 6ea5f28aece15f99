package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"espresso/internal/diag"
	"espresso/internal/project"
	"espresso/internal/source"
)

// diskCacheSchemaVersion participates in the cache key; bumping it
// invalidates every stale payload when the format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores compile outputs on disk keyed by content digest.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the serialized form of a successful compilation.
// Diagnostic spans are byte offsets into the input; a cache hit implies
// identical content, so they stay valid.
type DiskPayload struct {
	Schema    uint16
	Code      string
	SourceMap []byte
	Diags     []DiskDiag
}

// DiskDiag is one serialized diagnostic. Only warnings ever appear
// here: failed compilations are not cached.
type DiskDiag struct {
	Code     uint16
	Severity uint8
	Message  string
	Start    uint32
	End      uint32
}

// OpenDiskCache initializes a disk cache at the standard user location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a disk cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload, replacing any previous entry
// atomically.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry or a schema mismatch is a miss,
// not an error.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll empties the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func payloadOf(res *CompileResult) *DiskPayload {
	payload := &DiskPayload{
		Schema:    diskCacheSchemaVersion,
		Code:      res.Code,
		SourceMap: res.SourceMap,
	}
	for _, d := range res.Bag.Items() {
		payload.Diags = append(payload.Diags, DiskDiag{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return payload
}

// toResult rebuilds a CompileResult from cached bytes. The in-memory
// mapping table is not cached; position lookups need a fresh compile.
// A hit implies identical content, so cached spans resolve against a
// file set rebuilt from the current bytes.
func (p *DiskPayload) toResult(path string, content []byte) *CompileResult {
	fs := source.NewFileSet()
	id := fs.Add(path, content, 0)

	bag := diag.NewBag(DefaultMaxDiagnostics)
	for _, d := range p.Diags {
		bag.Add(diag.Diagnostic{
			Code:     diag.Code(d.Code),
			Severity: diag.Severity(d.Severity),
			Message:  d.Message,
			Primary:  source.Span{File: id, Start: d.Start, End: d.End},
		})
	}
	return &CompileResult{
		Path:      path,
		Code:      p.Code,
		SourceMap: p.SourceMap,
		Bag:       bag,
		FileSet:   fs,
	}
}
