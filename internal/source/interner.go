package source

import "slices"

// StringID is an interned string handle: identifiers, module paths, and
// mangled names all flow through the same interner so identity comparisons
// reduce to integer equality.
type StringID uint32

// NoStringID marks the absence of a string reference.
const NoStringID StringID = 0

// Interner deduplicates strings into stable StringIDs.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner creates an Interner with NoStringID pre-mapped to "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the StringID for s, allocating one if not already present.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	cpy := string([]byte(s)) // decouple from caller's backing array
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes interns the string formed by b.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// InternPath interns path after normalizing it the same way FileSet keys its
// index (cleaned, forward-slashed). A quoted module specifier like
// "./foo/../bar" and "./bar" should resolve to the same StringID; an
// identifier module name never goes through this path, since it isn't a
// filesystem path at all.
func (i *Interner) InternPath(path string) StringID {
	return i.Intern(normalizePath(path))
}

// Lookup returns the string for id.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the string for id, panicking if id is invalid.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}

// Has reports whether id refers to an interned string.
func (i *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(i.byID)
}

// Len returns the number of interned strings, including NoStringID's "".
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of every interned string, indexed by StringID.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}
