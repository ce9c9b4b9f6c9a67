package symbols

import "tstranslate/internal/source"

// SymbolFlags classifies what a Symbol names. A symbol can carry more than
// one bit — e.g. a class declaration is both SymbolFlagClass and, from the
// value side, SymbolFlagValue when the class is also usable as a
// constructor value.
type SymbolFlags uint16

const (
	SymbolFlagValue SymbolFlags = 1 << iota
	SymbolFlagTypeParameter
	SymbolFlagAlias
	SymbolFlagFunction
	SymbolFlagMethod
	SymbolFlagProperty
	SymbolFlagEnumMember
	SymbolFlagClass
	SymbolFlagInterface
	SymbolFlagEnum
	SymbolFlagModule
)

// Has reports whether f carries every bit in want.
func (f SymbolFlags) Has(want SymbolFlags) bool { return f&want == want }

// Strings returns the set bits of f as textual labels, in declaration order.
func (f SymbolFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	names := map[SymbolFlags]string{
		SymbolFlagValue:         "value",
		SymbolFlagTypeParameter: "type-parameter",
		SymbolFlagAlias:         "alias",
		SymbolFlagFunction:      "function",
		SymbolFlagMethod:        "method",
		SymbolFlagProperty:      "property",
		SymbolFlagEnumMember:    "enum-member",
		SymbolFlagClass:         "class",
		SymbolFlagInterface:     "interface",
		SymbolFlagEnum:          "enum",
		SymbolFlagModule:        "module",
	}
	for bit := SymbolFlagValue; bit <= SymbolFlagModule; bit <<= 1 {
		if f&bit != 0 {
			labels = append(labels, names[bit])
		}
	}
	return labels
}

// Symbol is the named-entity record the Symbol Resolver (C2) and Alias Scope
// (C3) operate over, fixed to a concrete representation.
type Symbol struct {
	Name SymbolName

	Flags SymbolFlags

	// Declarations lists every declaration site for this symbol, in
	// source order. Any symbol the translator is asked to name has at
	// least one.
	Declarations []DeclID

	// Parent is the enclosing symbol (e.g. a method's owning class), or
	// NoSymbolID at the top level.
	Parent SymbolID

	// Aliased is set when this symbol is an import alias — it names the
	// symbol the import ultimately refers to. NoSymbolID otherwise.
	Aliased SymbolID
}

// SymbolName is an interned identifier, kept distinct from a bare
// source.StringID so call sites read as "symbol name" rather than "some
// string".
type SymbolName source.StringID

// DeclaresValue reports whether the symbol can appear in a value position:
// it carries SymbolFlagValue or SymbolFlagEnumMember.
func (s *Symbol) DeclaresValue() bool {
	return s.Flags.Has(SymbolFlagValue) || s.Flags.Has(SymbolFlagEnumMember)
}

// IsImportAlias reports whether Aliased names a distinct underlying symbol.
func (s *Symbol) IsImportAlias() bool {
	return s.Flags.Has(SymbolFlagAlias) && s.Aliased.IsValid()
}
