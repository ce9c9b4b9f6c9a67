// Package aliasscope implements the Alias Scope (C3): a mutable
// symbol-to-string map shared across a single source file's translation,
// with a reserved sentinel value that suppresses naming entirely.
package aliasscope

import "tstranslate/internal/symbols"

// Blacklisted is the sentinel value set(symbol) maps blacklisted generic
// type-parameter symbols to. IsBlacklisted tests for it; Get returns it
// like any other stored string.
const Blacklisted = "?"

// Scope is a plain mutable map with last-writer-wins semantics. It outlives
// individual translator instances and is shared within a source file.
type Scope struct {
	entries map[symbols.SymbolID]string
}

// New creates an empty Scope.
func New() *Scope {
	return &Scope{entries: make(map[symbols.SymbolID]string)}
}

// Set records that sym should be named str, overwriting any prior entry.
func (s *Scope) Set(sym symbols.SymbolID, str string) {
	s.entries[sym] = str
}

// Get returns the string recorded for sym and whether an entry exists.
func (s *Scope) Get(sym symbols.SymbolID) (string, bool) {
	str, ok := s.entries[sym]
	return str, ok
}

// IsBlacklisted reports whether sym is mapped to the blacklist sentinel.
func (s *Scope) IsBlacklisted(sym symbols.SymbolID) bool {
	str, ok := s.entries[sym]
	return ok && str == Blacklisted
}

// Len reports the number of entries currently recorded.
func (s *Scope) Len() int { return len(s.entries) }

// BlacklistTypeParameters sets every generic type-parameter declaration's
// symbol in decls to the blacklist sentinel, reflecting the target
// dialect's lack of generic function types. Idempotent: blacklisting an
// already-blacklisted symbol is a no-op write of the same value.
func (s *Scope) BlacklistTypeParameters(decls []TypeParameterDecl) {
	for _, d := range decls {
		if !d.Symbol.IsValid() {
			continue
		}
		s.Set(d.Symbol, Blacklisted)
	}
}

// TypeParameterDecl names a generic type-parameter declaration's symbol,
// the minimal shape BlacklistTypeParameters needs from a declaration list.
type TypeParameterDecl struct {
	Symbol symbols.SymbolID
}
