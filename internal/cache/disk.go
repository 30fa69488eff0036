// Package cache implements the on-disk verification cache: a prior run's
// verdict for a file is reused when neither the file's content nor the
// solver binary backing the verdict have changed since.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion guards against stale payloads after a Payload format change.
const schemaVersion uint16 = 1

// Key identifies one cached verdict: the hash of the verified file's
// content, combined with the hash of the solver banner that produced it —
// so upgrading the solver binary invalidates every cached verdict at once.
type Key [32]byte

// NewKey combines a source digest and a solver banner digest the same way
// the teacher's own ModuleHash combines a module's content hash with its
// dependency hashes: `H(content || dep)`.
func NewKey(sourceDigest, solverDigest [32]byte) Key {
	h := sha256.New()
	h.Write(sourceDigest[:])
	h.Write(solverDigest[:])
	var out Key
	copy(out[:], h.Sum(nil))
	return out
}

// Counterexample mirrors solver.Frame, decoupled from that package so the
// cache never imports a solver-process-specific type into a serialized
// format.
type Counterexample struct {
	Symbol string
	Value  string
}

// ScopeVerdict caches one validity scope's outcome.
type ScopeVerdict struct {
	Index           int
	Verdict         string // "sat", "unsat", or "unknown"
	Counterexamples []Counterexample
}

// Payload is what gets serialized per cache key.
type Payload struct {
	Schema uint16
	Path   string
	Scopes []ScopeVerdict
}

// Disk is a content-hash-keyed, msgpack-serialized verdict cache, grounded
// on the teacher's DiskCache: one file per key under dir/verdicts, written
// via a temp-file-then-rename for atomicity, guarded by a mutex for
// concurrent multi-file verification (internal/pipeline's errgroup fan-out).
type Disk struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a Disk cache rooted at dir, creating it if necessary.
func Open(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

// OpenDefault opens the cache at the standard XDG_CACHE_HOME (or
// ~/.cache) location under app's name, mirroring the teacher's
// OpenDiskCache.
func OpenDefault(app string) (*Disk, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return Open(filepath.Join(base, app))
}

func (d *Disk) pathFor(key Key) string {
	return filepath.Join(d.dir, "verdicts", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes payload under key.
func (d *Disk) Put(key Key, payload *Payload) error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	payload.Schema = schemaVersion
	p := d.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get reads and deserializes the payload stored under key, if any. The
// second return is false both on a genuine miss and on a schema mismatch —
// a stale-format entry is treated as absent rather than an error.
func (d *Disk) Get(key Key) (*Payload, bool, error) {
	if d == nil {
		return nil, false, nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	f, err := os.Open(d.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// DropAll invalidates every cached verdict, renaming the cache directory
// aside before removing it — the same two-step the teacher's DropAll uses
// so a concurrent reader mid-Get never observes a half-deleted directory.
func (d *Disk) DropAll() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	old := d.dir + ".old"
	if err := os.Rename(d.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
