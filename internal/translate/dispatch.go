package translate

import (
	"tstranslate/internal/diag"
	"tstranslate/internal/symbols"
	"tstranslate/internal/tstype"
)

// variant is a named, single-purpose subset of dispatch-mask bits: primary
// dispatch matches a type by testing whether its masked kind is a non-empty
// subset of exactly one variant's bit set.
type variant struct {
	bits   tstype.Kind
	handle func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string
}

var variants []variant

func init() {
	variants = []variant{
		{tstype.KindAny, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "?" }},
		{tstype.KindUnknown, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "*" }},
		{tstype.KindString | tstype.KindStringLiteral, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "string" }},
		{tstype.KindNumber | tstype.KindNumberLiteral, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "number" }},
		{tstype.KindBoolean | tstype.KindBooleanLiteral, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "boolean" }},
		{tstype.KindESSymbol | tstype.KindUniqueESSymbol, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "symbol" }},
		{tstype.KindVoid, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "void" }},
		{tstype.KindUndefined, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "undefined" }},
		{tstype.KindBigInt, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "bigintPlaceholder" }},
		{tstype.KindNull, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string { return "null" }},
		{tstype.KindNever, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			tr.warn(diag.TransNeverType, "never type has no target-dialect representation")
			return "?"
		}},
		{tstype.KindEnum, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			name, ok := tr.SymbolToString(ty.Symbol)
			if !ok {
				return "?"
			}
			return name
		}},
		{tstype.KindTypeParameter, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			name, ok := tr.SymbolToString(ty.Symbol)
			if !ok {
				return "?"
			}
			sym := tr.syms.Get(ty.Symbol)
			prefix := ""
			if sym == nil || !sym.Flags.Has(symbols.SymbolFlagTypeParameter) {
				prefix = "!"
			}
			return prefix + name
		}},
		{tstype.KindObject, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			return tr.dispatchObject(id, ty)
		}},
		{tstype.KindUnion, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			return tr.translateUnion(ty)
		}},
		{tstype.KindConditional, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			tr.warn(diag.TransConditionalType, "conditional types are not expressible")
			return "?"
		}},
		{tstype.KindSubstitution, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			tr.warn(diag.TransSubstitutionType, "substitution types are not expressible")
			return "?"
		}},
		{tstype.KindIntersection, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			tr.warn(diag.TransIntersectionType, "intersection types are not expressible")
			return "?"
		}},
		{tstype.KindIndex, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			tr.warn(diag.TransIndexType, "index types are not expressible")
			return "?"
		}},
		{tstype.KindIndexedAccess, func(tr *Translator, id tstype.TypeID, ty *tstype.Type) string {
			tr.warn(diag.TransIndexedAccessType, "indexed-access types are not expressible")
			return "?"
		}},
	}
}

// dispatch is the primary kind dispatch: exactly one variant must claim
// the type's masked kind bits, or — for multi-bit kinds no single variant
// covers — the union or enum-literal fallback applies.
func (tr *Translator) dispatch(id tstype.TypeID, ty *tstype.Type) string {
	mask := ty.Kind.DispatchMask()

	for _, v := range variants {
		if mask != 0 && mask&v.bits == mask {
			return v.handle(tr, id, ty)
		}
	}

	if ty.Kind.Has(tstype.KindUnion) {
		return tr.translateUnion(ty)
	}
	if ty.Kind.Has(tstype.KindEnumLiteral) {
		return tr.translateEnumLiteral(id, ty)
	}

	panic(&StructuralViolation{Reason: "no primary-dispatch variant matched the type's kind bits", Type: id})
}
