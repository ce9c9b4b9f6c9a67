package tstype

import "tstranslate/internal/symbols"

// Parameter is one function or constructor parameter.
type Parameter struct {
	// Name is the parameter's syntactic name; "this" marks a synthetic
	// this-parameter that signature-to-string consumes specially.
	Name string

	Type TypeID

	// Optional marks a trailing `?` in the source declaration.
	Optional bool
	// Rest marks a leading `...` in the source declaration.
	Rest bool

	Declaration symbols.DeclID
}

// Signature is a call or construct signature.
type Signature struct {
	Parameters []ParameterID
	ReturnType TypeID

	// Declaration is the signature's originating declaration. NoDeclID
	// paired with IsJSDocOnly true models a signature synthesized purely
	// from JSDoc, which signature-to-string must reject (warn + Function).
	Declaration symbols.DeclID
	IsJSDocOnly bool

	// TypeParameters names the generic type-parameter symbols this
	// signature declares, blacklisted in the Alias Scope before its
	// parameters are converted (the target dialect has no generic
	// function types).
	TypeParameters []symbols.SymbolID
}

// HasRealDeclaration reports whether sig has a non-JSDoc-only declaration,
// a precondition for converting its parameters.
func (s *Signature) HasRealDeclaration() bool {
	return s.Declaration.IsValid() && !s.IsJSDocOnly
}
