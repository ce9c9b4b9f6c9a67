package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

// Symbols stores Symbol records in a compact, append-only arena indexed by
// SymbolID, with index 0 reserved as the invalid sentinel.
type Symbols struct {
	data []Symbol
}

// NewSymbols creates a symbol arena with an optional capacity hint.
func NewSymbols(capacity uint32) *Symbols {
	if capacity == 0 {
		capacity = 64
	}
	return &Symbols{
		data: make([]Symbol, 1, capacity+1),
	}
}

// New allocates sym in the arena and returns its ID.
func (s *Symbols) New(sym Symbol) SymbolID {
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("symbols arena overflow: %w", err))
	}
	id := SymbolID(value)
	s.data = append(s.data, sym)
	return id
}

// Get returns a pointer to the symbol, or nil for an invalid or
// out-of-range ID.
func (s *Symbols) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports the number of stored symbols, excluding the sentinel.
func (s *Symbols) Len() int { return len(s.data) - 1 }

// Data exposes the arena storage without the sentinel.
func (s *Symbols) Data() []Symbol {
	if len(s.data) <= 1 {
		return nil
	}
	return s.data[1:]
}

// Decls stores Decl records in a compact, append-only arena indexed by
// DeclID, with index 0 reserved as the invalid sentinel.
type Decls struct {
	data []Decl
}

// NewDecls creates a declaration arena with an optional capacity hint.
func NewDecls(capacity uint32) *Decls {
	if capacity == 0 {
		capacity = 64
	}
	return &Decls{
		data: make([]Decl, 1, capacity+1),
	}
}

// New allocates d in the arena and returns its ID.
func (d *Decls) New(decl Decl) DeclID {
	value, err := safecast.Conv[uint32](len(d.data))
	if err != nil {
		panic(fmt.Errorf("decls arena overflow: %w", err))
	}
	id := DeclID(value)
	d.data = append(d.data, decl)
	return id
}

// Get returns a pointer to the declaration, or nil for an invalid or
// out-of-range ID.
func (d *Decls) Get(id DeclID) *Decl {
	if !id.IsValid() || int(id) >= len(d.data) {
		return nil
	}
	return &d.data[id]
}

// Len reports the number of stored declarations, excluding the sentinel.
func (d *Decls) Len() int { return len(d.data) - 1 }

// Data exposes the arena storage without the sentinel.
func (d *Decls) Data() []Decl {
	if len(d.data) <= 1 {
		return nil
	}
	return d.data[1:]
}
