package tstype

import "tstranslate/internal/symbols"

// Type is a resolved semantic type object, fixed to a concrete
// representation: one record per distinct type identity, touched by the
// translator only through the accessor methods on *Interner.
type Type struct {
	Kind        Kind
	ObjectFlags ObjectFlags

	// Symbol is the type's associated symbol, when it has one (classes,
	// interfaces, enums, type parameters, references).
	Symbol symbols.SymbolID

	// Target and TypeArguments are populated for ObjectFlagReference types.
	Target        TypeID
	TypeArguments []TypeID

	// Members lists a union's member types, in declaration order.
	Members []TypeID

	// CallSignatures and ConstructSignatures are populated for object
	// types carrying call or construct signatures (including anonymous
	// function-shaped types).
	CallSignatures      []SignatureID
	ConstructSignatures []SignatureID

	// Fields, StringIndexType and NumberIndexType are populated for
	// ObjectFlagAnonymous types: Fields maps a property name to the
	// symbol declaring it; the index types are the value types of a
	// string or number index signature, if present.
	Fields          map[string]symbols.SymbolID
	StringIndexType TypeID
	NumberIndexType TypeID
}

// IsTupleReference reports whether t is a reference to a tuple type — the
// target dialect has no tuples, so this always degrades to an array.
func (t *Type) IsTupleReference(target *Type) bool {
	return t.ObjectFlags.Has(ObjectFlagReference) && target != nil && target.ObjectFlags.Has(ObjectFlagTuple)
}

// IsCallable reports whether t carries at least one call signature.
func (t *Type) IsCallable() bool { return len(t.CallSignatures) > 0 }

// IsIndexable reports whether t carries a string or number index signature.
func (t *Type) IsIndexable() bool {
	return t.StringIndexType.IsValid() || t.NumberIndexType.IsValid()
}
