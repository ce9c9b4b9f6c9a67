package translate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"tstranslate/internal/diag"
	"tstranslate/internal/symbols"
	"tstranslate/internal/tstype"
)

var quotedPropertyNameAllowed = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dispatchObject is the object-kind priority dispatch.
func (tr *Translator) dispatchObject(id tstype.TypeID, ty *tstype.Type) string {
	of := ty.ObjectFlags

	switch {
	case of.Has(tstype.ObjectFlagClass):
		if !ty.Symbol.IsValid() {
			tr.warn(diag.TransMissingSymbolForKind, "class type has no symbol")
			return "?"
		}
		name, ok := tr.SymbolToString(ty.Symbol)
		if !ok {
			tr.warn(diag.TransAnonymousClass, "anonymous class has no nameable symbol")
			return "?"
		}
		return "!" + name

	case of.Has(tstype.ObjectFlagInterface):
		if !ty.Symbol.IsValid() {
			tr.warn(diag.TransMissingSymbolForKind, "interface type has no symbol")
			return "?"
		}
		sym := tr.syms.Get(ty.Symbol)
		if sym != nil && sym.Flags.Has(symbols.SymbolFlagValue) && !tr.isBuiltinProvidedType(ty.Symbol) {
			tr.warn(diag.TransSymbolValueConflict, "interface symbol also names a value")
			return "?"
		}
		name, ok := tr.SymbolToString(ty.Symbol)
		if !ok {
			return "?"
		}
		return "!" + name

	case of.Has(tstype.ObjectFlagReference):
		return tr.translateReference(id, ty)

	case of.Has(tstype.ObjectFlagAnonymous):
		return tr.translateAnonymous(id, ty)

	case of.Has(tstype.ObjectFlagMapped):
		tr.warn(diag.TransMappedType, "mapped types are not expressible")
		return "?"

	case of.Has(tstype.ObjectFlagInstantiated):
		tr.warn(diag.TransInstantiatedObjectType, "instantiated object types are not expressible")
		return "?"

	case of.Has(tstype.ObjectFlagObjectLiteral):
		tr.warn(diag.TransObjectLiteralType, "object literal types are not expressible")
		return "?"

	default:
		tr.warn(diag.TransUnhandledAnonymousShape, "unhandled object-kind shape")
		return "?"
	}
}

// translateReference handles the Reference object-kind case.
func (tr *Translator) translateReference(id tstype.TypeID, ty *tstype.Type) string {
	target := ty.Target
	targetTy := tr.types.Type(target)
	if targetTy != nil && targetTy.ObjectFlags.Has(tstype.ObjectFlagTuple) {
		return "!Array<?>"
	}
	if target == id {
		panic(&StructuralViolation{Reason: "reference type's target is itself", Type: id})
	}

	translated := tr.Translate(target)
	if translated == unknownSentinel {
		return unknownSentinel
	}
	if len(ty.TypeArguments) == 0 {
		return translated
	}
	args := make([]string, len(ty.TypeArguments))
	for i, a := range ty.TypeArguments {
		args[i] = tr.Translate(a)
	}
	return translated + "<" + strings.Join(args, ", ") + ">"
}

// translateUnion deduplicates and joins a union type's member strings.
func (tr *Translator) translateUnion(ty *tstype.Type) string {
	seen := make(map[string]bool, len(ty.Members))
	ordered := make([]string, 0, len(ty.Members))
	for _, m := range ty.Members {
		s := tr.Translate(m)
		if seen[s] {
			continue
		}
		seen[s] = true
		ordered = append(ordered, s)
	}
	if len(ordered) == 1 {
		return ordered[0]
	}
	return "(" + strings.Join(ordered, "|") + ")"
}

// translateEnumLiteral names the enum (or enum member) a literal type
// resolves to.
func (tr *Translator) translateEnumLiteral(id tstype.TypeID, ty *tstype.Type) string {
	base := tr.checker.BaseTypeOfLiteral(id)
	if !base.IsValid() {
		return unknownSentinel
	}
	baseTy := tr.types.Type(base)
	if baseTy == nil || !baseTy.Symbol.IsValid() {
		return unknownSentinel
	}

	sym := baseTy.Symbol
	if base == id {
		rec := tr.syms.Get(sym)
		if rec == nil || !rec.Parent.IsValid() {
			return unknownSentinel
		}
		sym = rec.Parent
	}

	name, ok := tr.SymbolToString(sym)
	if !ok {
		return unknownSentinel
	}
	return "!" + name
}

// translateAnonymous renders an anonymous object type as a construct
// signature, a callable/indexable record, or `?`.
func (tr *Translator) translateAnonymous(id tstype.TypeID, ty *tstype.Type) string {
	tr.recursion[id] = true

	if len(ty.ConstructSignatures) > 0 {
		return tr.constructSignatureToString(ty.ConstructSignatures[0])
	}

	callable := len(ty.CallSignatures) > 0
	indexable := ty.IsIndexable()

	names := make([]string, 0, len(ty.Fields))
	for name := range ty.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]string, 0, len(names))
	for _, name := range names {
		switch name {
		case "__call":
			callable = true
			continue
		case "__index":
			indexable = true
			continue
		}
		if !quotedPropertyNameAllowed.MatchString(name) {
			tr.warn(diag.TransQuotedPropertyName, fmt.Sprintf("property %q requires a quoted name in the target dialect", name))
			continue
		}
		memberSym := ty.Fields[name]
		memberType := tr.checker.TypeOfSymbolAtLocation(memberSym, tr.refNode)
		fields = append(fields, name+": "+tr.Translate(memberType))
	}

	if len(fields) == 0 {
		switch {
		case callable && !indexable:
			if len(ty.CallSignatures) == 1 {
				return tr.signatureToString(ty.CallSignatures[0])
			}
			tr.warn(diag.TransUnhandledAnonymousShape, "anonymous type has more than one call signature")
			return unknownSentinel
		case indexable && !callable:
			return tr.translateIndexSignature(id)
		case !callable && !indexable:
			return "*"
		default:
			tr.warn(diag.TransUnhandledAnonymousShape, "anonymous type is both callable and indexable with no named fields")
			return unknownSentinel
		}
	}

	if !callable && !indexable {
		return "{" + strings.Join(fields, ", ") + "}"
	}

	tr.warn(diag.TransUnhandledAnonymousShape, "anonymous type combines named fields with call or index signatures")
	return unknownSentinel
}

func (tr *Translator) translateIndexSignature(id tstype.TypeID) string {
	keyType := "string"
	value, ok := tr.checker.IndexTypeOfType(id, true)
	if !ok {
		value, ok = tr.checker.IndexTypeOfType(id, false)
		keyType = "number"
	}
	if !ok {
		tr.warn(diag.TransUnhandledAnonymousShape, "indexable anonymous type has no resolvable index value type")
		return "!Object<?,?>"
	}
	return fmt.Sprintf("!Object<%s, %s>", keyType, tr.Translate(value))
}
