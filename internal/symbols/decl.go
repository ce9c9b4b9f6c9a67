package symbols

import "tstranslate/internal/source"

// FileRef identifies the source file a Decl lives in: a filename and an
// is-declaration-file boolean, fixed to a concrete shape.
type FileRef struct {
	File              source.FileID
	Path              string
	IsDeclarationFile bool

	// IsExternalModule marks a file that has its own module scope (at
	// least one top-level import or export), as opposed to a global
	// script file whose top-level declarations merge into the global
	// namespace. Both the naming-prefix decision and the early-exit
	// dispatch case key off this.
	IsExternalModule bool
}

// ModifierFlags are the subset of a declaration's modifiers the translator
// inspects.
type ModifierFlags uint8

const (
	// ModifierAmbient marks a `declare` declaration.
	ModifierAmbient ModifierFlags = 1 << iota
	// ModifierExport marks an exported declaration.
	ModifierExport
)

// Has reports whether m carries every bit in want.
func (m ModifierFlags) Has(want ModifierFlags) bool { return m&want == want }

// DeclKind classifies the syntactic form of a declaration.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	DeclModuleDeclaration
	DeclClass
	DeclInterface
	DeclFunction
	DeclSignature
	DeclVariable
	DeclEnumMember
	DeclTypeAlias
	DeclParameter
)

func (k DeclKind) String() string {
	switch k {
	case DeclModuleDeclaration:
		return "module-declaration"
	case DeclClass:
		return "class"
	case DeclInterface:
		return "interface"
	case DeclFunction:
		return "function"
	case DeclSignature:
		return "signature"
	case DeclVariable:
		return "variable"
	case DeclEnumMember:
		return "enum-member"
	case DeclTypeAlias:
		return "type-alias"
	case DeclParameter:
		return "parameter"
	default:
		return "invalid"
	}
}

// ModuleNameKind distinguishes the two forms a module declaration's name can
// take.
type ModuleNameKind uint8

const (
	// ModuleNameIdentifier is a plain module/namespace identifier.
	ModuleNameIdentifier ModuleNameKind = iota
	// ModuleNameStringLiteral marks an ambient external module, declared
	// as `declare module "some-package"`.
	ModuleNameStringLiteral
)

// ModuleName is a DeclModuleDeclaration's name, tagged by form.
type ModuleName struct {
	Kind ModuleNameKind
	Text source.StringID
}

// IsAmbientExternalModule reports whether the name is a quoted string, the
// "declare module '...'" ambient-external-module shape.
func (m ModuleName) IsAmbientExternalModule() bool {
	return m.Kind == ModuleNameStringLiteral
}

// DeclRef is a tagged union: a declaration's Parent is either another
// declaration or the bare file it lives in directly (e.g. a top-level
// function has no enclosing declaration, only a file).
type DeclRef struct {
	Decl DeclID
	File FileRef
}

// IsDecl reports whether the reference points at another declaration.
func (r DeclRef) IsDecl() bool { return r.Decl.IsValid() }

// Decl is a single declaration site for a Symbol, fixed to a concrete
// representation.
type Decl struct {
	SourceFile FileRef
	Modifiers  ModifierFlags
	Kind       DeclKind
	Parent     DeclRef
	Span       source.Span

	// ModuleName is populated only when Kind == DeclModuleDeclaration.
	ModuleName ModuleName
}

// IsAmbient reports whether the declaration carries the `declare` modifier.
func (d *Decl) IsAmbient() bool { return d.Modifiers.Has(ModifierAmbient) }

// IsExported reports whether the declaration carries the `export` modifier.
func (d *Decl) IsExported() bool { return d.Modifiers.Has(ModifierExport) }
