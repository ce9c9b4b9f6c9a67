// Package tstype holds the resolved input type object: an opaque handle the
// translator consumes only through its Kind/ObjectFlags bitfields and the
// small set of accessor methods the upstream checker exposes over it.
package tstype

// Kind is a bitfield of the type-kind flags the translator's primary
// dispatch distinguishes. Mirrors the flag set a real semantic analyzer's
// type-flags enum carries; a Type's Kind can set more than one bit (e.g. a
// degenerate single-member enum-literal union also carries the union bit).
type Kind uint32

const (
	KindAny Kind = 1 << iota
	KindString
	KindStringLiteral
	KindNumber
	KindNumberLiteral
	KindBoolean
	KindBooleanLiteral
	KindESSymbol
	KindUniqueESSymbol
	KindVoid
	KindUndefined
	KindNull
	KindBigInt
	KindNever
	KindEnum
	KindEnumLiteral
	KindTypeParameter
	KindObject
	KindUnion
	KindIntersection
	KindConditional
	KindSubstitution
	KindIndex
	KindIndexedAccess
	KindNonPrimitive
	KindUnknown
)

// Has reports whether k carries every bit in want.
func (k Kind) Has(want Kind) bool { return k&want == want }

// Any reports whether k carries at least one bit in want.
func (k Kind) Any(want Kind) bool { return k&want != 0 }

// primitiveDispatch is the mask of kind bits primary dispatch recognizes
// as single-variant matches.
const primitiveDispatch = KindAny | KindUnknown |
	KindString | KindStringLiteral |
	KindNumber | KindNumberLiteral |
	KindBoolean | KindBooleanLiteral |
	KindESSymbol | KindUniqueESSymbol |
	KindVoid | KindUndefined | KindBigInt | KindNull | KindNever |
	KindEnum | KindTypeParameter | KindObject | KindUnion |
	KindConditional | KindSubstitution | KindIntersection |
	KindIndex | KindIndexedAccess

// DispatchMask returns k restricted to the bits primary dispatch matches on.
func (k Kind) DispatchMask() Kind { return k & primitiveDispatch }

// IsExactlyNonPrimitive reports whether k's bits equal exactly KindNonPrimitive,
// an early-exit case that always emits `!Object`.
func (k Kind) IsExactlyNonPrimitive() bool { return k == KindNonPrimitive }
