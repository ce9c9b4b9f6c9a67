package tstype

// TypeID identifies a Type in an Interner's arena.
type TypeID uint32

// NoTypeID marks the absence of a type reference.
const NoTypeID TypeID = 0

// IsValid reports whether the ID refers to an interned type.
func (id TypeID) IsValid() bool { return id != NoTypeID }

// SignatureID identifies a Signature in an Interner's arena.
type SignatureID uint32

// NoSignatureID marks the absence of a signature reference.
const NoSignatureID SignatureID = 0

// IsValid reports whether the ID refers to an interned signature.
func (id SignatureID) IsValid() bool { return id != NoSignatureID }

// ParameterID identifies a Parameter in an Interner's arena.
type ParameterID uint32

// NoParameterID marks the absence of a parameter reference.
const NoParameterID ParameterID = 0

// IsValid reports whether the ID refers to an interned parameter.
func (id ParameterID) IsValid() bool { return id != NoParameterID }
