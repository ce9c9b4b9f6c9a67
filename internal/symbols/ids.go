package symbols

// SymbolID identifies a Symbol in a Symbols arena.
type SymbolID uint32

// NoSymbolID marks the absence of a symbol reference.
const NoSymbolID SymbolID = 0

// IsValid reports whether the ID refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// DeclID identifies a Decl in a Decls arena.
type DeclID uint32

// NoDeclID marks the absence of a declaration reference.
const NoDeclID DeclID = 0

// IsValid reports whether the ID refers to an allocated declaration.
func (id DeclID) IsValid() bool { return id != NoDeclID }
