package tstype

import (
	"fmt"

	"fortio.org/safecast"

	"tstranslate/internal/symbols"
)

// Interner owns the arenas backing every Type, Signature and Parameter a
// translation touches: append-only slices indexed by small integer IDs,
// with index 0 reserved as the sentinel and overflow guarded by safecast.
type Interner struct {
	types      []Type
	signatures []Signature
	parameters []Parameter

	// Builtins caches the handful of well-known singleton types the
	// translator's primary dispatch never needs to look up twice.
	Builtins Builtins
}

// Builtins names the primitive singleton types an Interner pre-registers.
type Builtins struct {
	Any, Unknown, String, Number, Boolean, Void, Undefined, Null, BigInt, Never TypeID
}

// NewInterner creates an Interner with its builtin primitive types
// pre-registered.
func NewInterner() *Interner {
	in := &Interner{
		types:      make([]Type, 1, 64),
		signatures: make([]Signature, 1, 16),
		parameters: make([]Parameter, 1, 32),
	}
	in.Builtins = Builtins{
		Any:       in.NewType(Type{Kind: KindAny}),
		Unknown:   in.NewType(Type{Kind: KindUnknown}),
		String:    in.NewType(Type{Kind: KindString}),
		Number:    in.NewType(Type{Kind: KindNumber}),
		Boolean:   in.NewType(Type{Kind: KindBoolean}),
		Void:      in.NewType(Type{Kind: KindVoid}),
		Undefined: in.NewType(Type{Kind: KindUndefined}),
		Null:      in.NewType(Type{Kind: KindNull}),
		BigInt:    in.NewType(Type{Kind: KindBigInt}),
		Never:     in.NewType(Type{Kind: KindNever}),
	}
	return in
}

// NewType interns t and returns its ID.
func (in *Interner) NewType(t Type) TypeID {
	value, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("tstype: types arena overflow: %w", err))
	}
	id := TypeID(value)
	in.types = append(in.types, t)
	return id
}

// NewSignature interns sig and returns its ID.
func (in *Interner) NewSignature(sig Signature) SignatureID {
	value, err := safecast.Conv[uint32](len(in.signatures))
	if err != nil {
		panic(fmt.Errorf("tstype: signatures arena overflow: %w", err))
	}
	id := SignatureID(value)
	in.signatures = append(in.signatures, sig)
	return id
}

// NewParameter interns p and returns its ID.
func (in *Interner) NewParameter(p Parameter) ParameterID {
	value, err := safecast.Conv[uint32](len(in.parameters))
	if err != nil {
		panic(fmt.Errorf("tstype: parameters arena overflow: %w", err))
	}
	id := ParameterID(value)
	in.parameters = append(in.parameters, p)
	return id
}

// Type returns a pointer to the interned type, or nil for an invalid or
// out-of-range ID.
func (in *Interner) Type(id TypeID) *Type {
	if !id.IsValid() || int(id) >= len(in.types) {
		return nil
	}
	return &in.types[id]
}

// Signature returns a pointer to the interned signature, or nil.
func (in *Interner) Signature(id SignatureID) *Signature {
	if !id.IsValid() || int(id) >= len(in.signatures) {
		return nil
	}
	return &in.signatures[id]
}

// Parameter returns a pointer to the interned parameter, or nil.
func (in *Interner) Parameter(id ParameterID) *Parameter {
	if !id.IsValid() || int(id) >= len(in.parameters) {
		return nil
	}
	return &in.parameters[id]
}

// KindOf returns the Kind of the type named by id, or 0 for an invalid ID.
func (in *Interner) KindOf(id TypeID) Kind {
	t := in.Type(id)
	if t == nil {
		return 0
	}
	return t.Kind
}

// SymbolOf returns the symbol associated with id, if any.
func (in *Interner) SymbolOf(id TypeID) symbols.SymbolID {
	t := in.Type(id)
	if t == nil {
		return symbols.NoSymbolID
	}
	return t.Symbol
}

// TargetOf returns the target of a reference type.
func (in *Interner) TargetOf(id TypeID) TypeID {
	t := in.Type(id)
	if t == nil {
		return NoTypeID
	}
	return t.Target
}

// TypeArgumentsOf returns the ordered type arguments of a reference type.
func (in *Interner) TypeArgumentsOf(id TypeID) []TypeID {
	t := in.Type(id)
	if t == nil {
		return nil
	}
	return t.TypeArguments
}

// MembersOf returns the ordered member types of a union type.
func (in *Interner) MembersOf(id TypeID) []TypeID {
	t := in.Type(id)
	if t == nil {
		return nil
	}
	return t.Members
}

// Len reports the number of interned types, excluding the sentinel.
func (in *Interner) Len() int { return len(in.types) - 1 }
