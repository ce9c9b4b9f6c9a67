package translate

import (
	"path/filepath"

	"tstranslate/internal/symbols"
)

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// declFlags computes three booleans over all of sym's declarations:
// is-ambient, is-in-namespace, is-module.
func (tr *Translator) declFlags(sym symbols.SymbolID) (isAmbient, isInNamespace, isModule bool) {
	rec := tr.syms.Get(sym)
	if rec == nil {
		return false, false, false
	}
	for _, did := range rec.Declarations {
		d := tr.decls.Get(did)
		if d == nil {
			continue
		}
		if d.SourceFile.IsDeclarationFile || d.IsAmbient() || tr.hasAmbientAncestor(did) {
			isAmbient = true
		}
		if tr.hasNonFileModuleDeclarationAncestor(did) {
			isInNamespace = true
		}
		if d.SourceFile.IsExternalModule {
			isModule = true
		}
	}
	return isAmbient, isInNamespace, isModule
}

// ancestors walks did's Parent chain, returning each ancestor declaration
// (excluding did itself) from nearest to farthest.
func (tr *Translator) ancestors(did symbols.DeclID) []*symbols.Decl {
	var out []*symbols.Decl
	cur := tr.decls.Get(did)
	for cur != nil && cur.Parent.IsDecl() {
		anc := tr.decls.Get(cur.Parent.Decl)
		if anc == nil {
			break
		}
		out = append(out, anc)
		cur = anc
	}
	return out
}

func (tr *Translator) hasAmbientAncestor(did symbols.DeclID) bool {
	for _, anc := range tr.ancestors(did) {
		if anc.IsAmbient() {
			return true
		}
	}
	return false
}

func (tr *Translator) hasNonFileModuleDeclarationAncestor(did symbols.DeclID) bool {
	for _, anc := range tr.ancestors(did) {
		if anc.Kind == symbols.DeclModuleDeclaration {
			return true
		}
	}
	return false
}

// findAmbientExternalModuleAncestor returns the nearest ancestor that is an
// ambient-external-module declaration, if any.
func (tr *Translator) findAmbientExternalModuleAncestor(did symbols.DeclID) (*symbols.Decl, bool) {
	for _, anc := range tr.ancestors(did) {
		if anc.Kind == symbols.DeclModuleDeclaration && anc.ModuleName.IsAmbientExternalModule() {
			return anc, true
		}
	}
	return nil, false
}

// IsBlacklisted reports whether every declaration of sym lives in a
// normalized path present in the translator's path blacklist.
func (tr *Translator) IsBlacklisted(sym symbols.SymbolID) bool {
	rec := tr.syms.Get(sym)
	if rec == nil || len(rec.Declarations) == 0 {
		return false
	}
	for _, did := range rec.Declarations {
		d := tr.decls.Get(did)
		if d == nil || !tr.pathBlacklist[normalizePath(d.SourceFile.Path)] {
			return false
		}
	}
	return true
}

func (tr *Translator) isBuiltinProvidedType(sym symbols.SymbolID) bool {
	rec := tr.syms.Get(sym)
	if rec == nil {
		return false
	}
	for _, did := range rec.Declarations {
		d := tr.decls.Get(did)
		if d != nil && tr.builtinLibs[normalizePath(d.SourceFile.Path)] {
			return true
		}
	}
	return false
}
