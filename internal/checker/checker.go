// Package checker names the upstream type checker's query surface as an
// explicit interface, and provides an in-memory Fake implementation for
// tests and the CLI demo command.
package checker

import (
	"tstranslate/internal/symbols"
	"tstranslate/internal/tstype"
)

// EntityName is the fully-qualified entity name the resolver returns for a
// symbol: a left-to-right chain of segments, each carrying the symbol that
// declared it (so the translator can consult the Alias Scope per segment).
type EntityName struct {
	Segments []EntityNameSegment
}

// EntityNameSegment is one dotted-path component of an EntityName.
type EntityNameSegment struct {
	Text   string
	Symbol symbols.SymbolID
}

// Checker is the query surface a translator constructor takes as input:
// the subset of a real semantic analyzer's API the translator needs, and
// nothing more.
type Checker interface {
	// EntityNameForSymbol resolves sym's fully-qualified entity name. Ok
	// is false when the symbol cannot be named (e.g. it is anonymous).
	EntityNameForSymbol(sym symbols.SymbolID) (name EntityName, ok bool)

	// BaseTypeOfLiteral returns the base type of a literal type, used by
	// enum-literal translation.
	BaseTypeOfLiteral(t tstype.TypeID) tstype.TypeID

	// SignaturesOfType returns the call and construct signatures of t.
	SignaturesOfType(t tstype.TypeID) (call, construct []tstype.SignatureID)

	// TypeOfSymbolAtLocation returns the type of sym as observed from the
	// reference site loc.
	TypeOfSymbolAtLocation(sym symbols.SymbolID, loc symbols.DeclID) tstype.TypeID

	// ReturnTypeOfSignature returns a signature's return type.
	ReturnTypeOfSignature(sig tstype.SignatureID) tstype.TypeID

	// IndexTypeOfType returns t's string-index or number-index value
	// type; ok is false if t carries neither.
	IndexTypeOfType(t tstype.TypeID, stringIndex bool) (value tstype.TypeID, ok bool)

	// SymbolAtLocation resolves the symbol bound at loc (e.g. a member's
	// declaring symbol, looked up from a reference AST node).
	SymbolAtLocation(loc symbols.DeclID) (symbols.SymbolID, bool)

	// AliasedSymbol dereferences an import-alias symbol to its target.
	// Ok is false when sym is not an alias.
	AliasedSymbol(sym symbols.SymbolID) (symbols.SymbolID, bool)
}
