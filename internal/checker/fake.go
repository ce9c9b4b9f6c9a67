package checker

import (
	"tstranslate/internal/symbols"
	"tstranslate/internal/tstype"
)

// Fake is a table-driven, in-memory Checker. It is a test double, not a
// semantic analyzer: every answer comes from a map a test or the CLI demo
// command populated ahead of time, and an unpopulated query fails rather
// than attempting any inference.
type Fake struct {
	EntityNames   map[symbols.SymbolID]EntityName
	BaseTypes     map[tstype.TypeID]tstype.TypeID
	CallSigs      map[tstype.TypeID][]tstype.SignatureID
	ConstructSigs map[tstype.TypeID][]tstype.SignatureID
	SymbolTypes   map[symbols.SymbolID]tstype.TypeID
	ReturnTypes   map[tstype.SignatureID]tstype.TypeID
	StringIndex   map[tstype.TypeID]tstype.TypeID
	NumberIndex   map[tstype.TypeID]tstype.TypeID
	Locations     map[symbols.DeclID]symbols.SymbolID
	Aliases       map[symbols.SymbolID]symbols.SymbolID
}

// NewFake returns an empty Fake with every table initialized.
func NewFake() *Fake {
	return &Fake{
		EntityNames:   make(map[symbols.SymbolID]EntityName),
		BaseTypes:     make(map[tstype.TypeID]tstype.TypeID),
		CallSigs:      make(map[tstype.TypeID][]tstype.SignatureID),
		ConstructSigs: make(map[tstype.TypeID][]tstype.SignatureID),
		SymbolTypes:   make(map[symbols.SymbolID]tstype.TypeID),
		ReturnTypes:   make(map[tstype.SignatureID]tstype.TypeID),
		StringIndex:   make(map[tstype.TypeID]tstype.TypeID),
		NumberIndex:   make(map[tstype.TypeID]tstype.TypeID),
		Locations:     make(map[symbols.DeclID]symbols.SymbolID),
		Aliases:       make(map[symbols.SymbolID]symbols.SymbolID),
	}
}

func (f *Fake) EntityNameForSymbol(sym symbols.SymbolID) (EntityName, bool) {
	name, ok := f.EntityNames[sym]
	return name, ok
}

func (f *Fake) BaseTypeOfLiteral(t tstype.TypeID) tstype.TypeID {
	return f.BaseTypes[t]
}

func (f *Fake) SignaturesOfType(t tstype.TypeID) (call, construct []tstype.SignatureID) {
	return f.CallSigs[t], f.ConstructSigs[t]
}

func (f *Fake) TypeOfSymbolAtLocation(sym symbols.SymbolID, _ symbols.DeclID) tstype.TypeID {
	return f.SymbolTypes[sym]
}

func (f *Fake) ReturnTypeOfSignature(sig tstype.SignatureID) tstype.TypeID {
	return f.ReturnTypes[sig]
}

func (f *Fake) IndexTypeOfType(t tstype.TypeID, stringIndex bool) (tstype.TypeID, bool) {
	if stringIndex {
		v, ok := f.StringIndex[t]
		return v, ok
	}
	v, ok := f.NumberIndex[t]
	return v, ok
}

func (f *Fake) SymbolAtLocation(loc symbols.DeclID) (symbols.SymbolID, bool) {
	sym, ok := f.Locations[loc]
	return sym, ok
}

func (f *Fake) AliasedSymbol(sym symbols.SymbolID) (symbols.SymbolID, bool) {
	target, ok := f.Aliases[sym]
	return target, ok
}

var _ Checker = (*Fake)(nil)
