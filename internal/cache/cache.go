// Package cache is a content-addressed disk cache of translated type
// strings, keyed by a structural hash of the input. Grounded on the
// teacher's disk module cache: atomic tempfile-then-rename writes, a
// schema version for safe invalidation, and msgpack as the wire format.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion guards against decoding a payload written by an
// incompatible build; bump it whenever Entry's shape changes.
const schemaVersion uint16 = 1

// Digest is a content hash identifying a cached translation.
type Digest [sha256.Size]byte

// Sum computes the Digest of an ordered list of key parts — whatever the
// caller considers the translation's identity. The callers in this module
// pass the scenario file's bytes, the root name and the externs-mode flag.
func Sum(parts ...string) Digest {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0}) // separator, so "ab","c" and "a","bc" hash distinctly
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// IsZero reports whether d is the zero digest (never a real hash output).
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}

// Entry is the cached unit: a translated type string plus the message text
// of the warnings recorded while producing it. Only the text is kept, so a
// hit can show those messages but cannot rebuild the original diagnostics.
type Entry struct {
	Schema   uint16
	Text     string
	Warnings []string
}

// Disk is a thread-safe, content-addressed cache of translated strings.
type Disk struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a disk cache rooted at dir, creating it if necessary.
func Open(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

// OpenDefault opens a disk cache at the standard XDG cache location for
// app.
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

func (c *Disk) pathFor(key Digest) string {
	return filepath.Join(c.dir, "entries", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes entry under key.
func (c *Disk) Put(key Digest, entry Entry) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry.Schema = schemaVersion
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get reads and deserializes the entry stored under key. Ok is false on a
// cache miss; a schema mismatch is treated as a miss rather than an error,
// so an old cache directory never blocks a new binary.
func (c *Disk) Get(key Digest) (entry Entry, ok bool, err error) {
	if c == nil {
		return Entry{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return Entry{}, false, err
	}
	if entry.Schema != schemaVersion {
		return Entry{}, false, nil
	}
	return entry, true, nil
}

// DropAll invalidates the cache by moving it aside and removing it in the
// background equivalent (synchronously here; callers needing async
// deletion can wrap this).
func (c *Disk) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
