package source

import (
	"fmt"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet is a registry of source files, assigning each a stable FileID.
// Unlike the host pipeline's own loader, it never reads file content: the
// translator only needs a file's path (for the Name Mangler) and its
// declaration-file flag (for ambient-declaration classification).
type FileSet struct {
	files []File
	index map[string]FileID // normalized path -> id
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		index: make(map[string]FileID),
	}
}

// Add registers a file by path, returning a new FileID. Re-adding the same
// path replaces the index entry but does not reuse the previous ID — callers
// that need idempotent registration should check GetByPath first.
func (fs *FileSet) Add(path string, flags FileFlags) FileID {
	normalized := normalizePath(path)
	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles + 1) // 0 is NoFileID
	fs.files = append(fs.files, File{ID: id, Path: normalized, Flags: flags})
	fs.index[normalized] = id
	return id
}

// AddVirtual registers a file with no backing disk path (a test fixture or
// scenario loaded in memory by the CLI demo harness).
func (fs *FileSet) AddVirtual(name string, flags FileFlags) FileID {
	return fs.Add(name, flags|FileVirtual)
}

// Get returns the file for id, or the zero File and false if id is invalid.
func (fs *FileSet) Get(id FileID) (File, bool) {
	if !id.IsValid() || int(id) > len(fs.files) {
		return File{}, false
	}
	return fs.files[id-1], true
}

// GetByPath returns the most recently registered file at path.
func (fs *FileSet) GetByPath(path string) (File, bool) {
	id, ok := fs.index[normalizePath(path)]
	if !ok {
		return File{}, false
	}
	return fs.Get(id)
}

// Len reports the number of registered files.
func (fs *FileSet) Len() int { return len(fs.files) }

// Paths returns every registered file's normalized path, in registration
// order, for callers that need to glob-match against the whole file list
// (a project manifest's path-blacklist and builtin-lib patterns, say)
// rather than look up one path at a time.
func (fs *FileSet) Paths() []string {
	paths := make([]string, len(fs.files))
	for i, f := range fs.files {
		paths[i] = f.Path
	}
	return paths
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
