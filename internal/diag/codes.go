package diag

import "fmt"

// Code identifies the kind of condition a diagnostic reports. The set here
// is scoped to what the Type Translator (C4) can itself raise: recoverable
// conditions (inexpressible constructs, approximated shapes), numbered from
// 100, and structural ones (contract violations), numbered from 200 — see
// IsStructural/IsRecoverable, which key off that numbering rather than a
// hardcoded switch.
type Code uint16

const (
	// UnknownCode is the zero value; no diagnostic should ever carry it.
	UnknownCode Code = 0

	// Recoverable: unhandled or inexpressible constructs. Each of these
	// resolves to `?` (or a shape-preserving approximation) and continues.
	TransNeverType               Code = 100
	TransConditionalType         Code = 101
	TransSubstitutionType        Code = 102
	TransIntersectionType        Code = 103
	TransIndexType               Code = 104
	TransIndexedAccessType       Code = 105
	TransMappedType              Code = 106
	TransInstantiatedObjectType  Code = 107
	TransObjectLiteralType       Code = 108
	TransUnhandledAnonymousShape Code = 109
	TransSymbolValueConflict     Code = 110
	TransMissingSymbolForKind    Code = 111
	TransAnonymousClass          Code = 112
	TransQuotedPropertyName      Code = 113
	TransGenericConstructSig     Code = 114
	TransUnsupportedRestType     Code = 115
	TransMissingThisAnnotation   Code = 116
	TransJSDocOnlySignature      Code = 117

	// Structural: the input violates the translator's stated contract.
	TransSelfReferentialReference Code = 200
	TransUnmatchedKind            Code = 201
)

// structuralFloor is the first code value reserved for structural
// (contract-violation) conditions; everything below it but above
// UnknownCode is a recoverable approximation.
const structuralFloor Code = 200

// IsStructural reports whether c marks a contract violation in the input
// rather than an accepted approximation. The translator never reports a
// structural code through a Reporter today — these panic as
// *StructuralViolation instead — but a future caller inspecting a Code in
// isolation (e.g. a replayed diagnostic log) needs a way to tell the two
// families apart without a hardcoded list.
func (c Code) IsStructural() bool {
	return c >= structuralFloor
}

// IsRecoverable reports whether c marks a condition the translator resolved
// on its own by emitting `?` or a shape-preserving approximation, as
// opposed to the zero value or a structural violation.
func (c Code) IsRecoverable() bool {
	return c > UnknownCode && c < structuralFloor
}

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "UNKNOWN"
	case TransNeverType:
		return "TRANS_NEVER_TYPE"
	case TransConditionalType:
		return "TRANS_CONDITIONAL_TYPE"
	case TransSubstitutionType:
		return "TRANS_SUBSTITUTION_TYPE"
	case TransIntersectionType:
		return "TRANS_INTERSECTION_TYPE"
	case TransIndexType:
		return "TRANS_INDEX_TYPE"
	case TransIndexedAccessType:
		return "TRANS_INDEXED_ACCESS_TYPE"
	case TransMappedType:
		return "TRANS_MAPPED_TYPE"
	case TransInstantiatedObjectType:
		return "TRANS_INSTANTIATED_OBJECT_TYPE"
	case TransObjectLiteralType:
		return "TRANS_OBJECT_LITERAL_TYPE"
	case TransUnhandledAnonymousShape:
		return "TRANS_UNHANDLED_ANONYMOUS_SHAPE"
	case TransSymbolValueConflict:
		return "TRANS_SYMBOL_VALUE_CONFLICT"
	case TransMissingSymbolForKind:
		return "TRANS_MISSING_SYMBOL_FOR_KIND"
	case TransAnonymousClass:
		return "TRANS_ANONYMOUS_CLASS"
	case TransQuotedPropertyName:
		return "TRANS_QUOTED_PROPERTY_NAME"
	case TransGenericConstructSig:
		return "TRANS_GENERIC_CONSTRUCT_SIG"
	case TransUnsupportedRestType:
		return "TRANS_UNSUPPORTED_REST_TYPE"
	case TransMissingThisAnnotation:
		return "TRANS_MISSING_THIS_ANNOTATION"
	case TransJSDocOnlySignature:
		return "TRANS_JSDOC_ONLY_SIGNATURE"
	case TransSelfReferentialReference:
		return "TRANS_SELF_REFERENTIAL_REFERENCE"
	case TransUnmatchedKind:
		return "TRANS_UNMATCHED_KIND"
	default:
		return fmt.Sprintf("Code(%d)", uint16(c))
	}
}
