package translate

import (
	"strings"

	"tstranslate/internal/symbols"
)

// clutzSentinelPrefix is the fixed namespace one collaborator surfaces
// certain globals under; the translator always strips it from the
// leftmost position of an emitted name.
const clutzSentinelPrefix = "ಠ_ಠ.clutz."

func stripSentinelNamespace(name string) string {
	return strings.TrimPrefix(name, clutzSentinelPrefix)
}

// SymbolToString produces a dotted name for sym relative to the current
// reference site. Ok is false when sym cannot be named (it is anonymous,
// or the upstream resolver has nothing to offer).
func (tr *Translator) SymbolToString(sym symbols.SymbolID) (string, bool) {
	if !sym.IsValid() {
		return "", false
	}
	rec := tr.syms.Get(sym)
	if rec == nil {
		return "", false
	}

	if !tr.externsMode && !rec.Flags.Has(symbols.SymbolFlagTypeParameter) && tr.ensureDeclared != nil {
		tr.ensureDeclared(sym)
	}

	entity, ok := tr.checker.EntityNameForSymbol(sym)
	if !ok || len(entity.Segments) == 0 {
		return "", false
	}

	prefix := tr.prefixFor(sym)

	parts := make([]string, 0, len(entity.Segments))
	for i, seg := range entity.Segments {
		segSym := seg.Symbol
		if segSym.IsValid() {
			if target, isAlias := tr.checker.AliasedSymbol(segSym); isAlias {
				segSym = target
			}
			if aliasStr, found := tr.scope.Get(segSym); found {
				return stripSentinelNamespace(aliasStr), true
			}
		}
		text := seg.Text
		if i == 0 {
			text = prefix + text
		}
		parts = append(parts, text)
	}

	return stripSentinelNamespace(strings.Join(parts, ".")), true
}

// prefixFor decides whether sym's leftmost name segment should be prefixed
// with a mangled filename, and with which one.
func (tr *Translator) prefixFor(sym symbols.SymbolID) string {
	rec := tr.syms.Get(sym)
	if rec == nil || len(rec.Declarations) == 0 {
		return ""
	}
	decls := rec.Declarations

	anyTopLevelExternalModule := false
	var ambientModuleName *symbols.ModuleName
	for _, did := range decls {
		d := tr.decls.Get(did)
		if d == nil {
			continue
		}
		if d.SourceFile.IsExternalModule && !d.Parent.IsDecl() {
			anyTopLevelExternalModule = true
		}
		if anc, found := tr.findAmbientExternalModuleAncestor(did); found && ambientModuleName == nil {
			name := anc.ModuleName
			ambientModuleName = &name
		}
	}
	if !anyTopLevelExternalModule && ambientModuleName == nil {
		return ""
	}

	if !tr.externsMode {
		allCurrentFileAmbientExported := true
		for _, did := range decls {
			d := tr.decls.Get(did)
			if d == nil || !d.IsAmbient() || !d.IsExported() || d.SourceFile.File != tr.currentFile {
				allCurrentFileAmbientExported = false
				break
			}
		}
		if !allCurrentFileAmbientExported {
			return ""
		}
	}

	var filename string
	if ambientModuleName != nil && ambientModuleName.IsAmbientExternalModule() {
		filename = tr.str.MustLookup(ambientModuleName.Text)
	} else {
		d := tr.decls.Get(decls[0])
		if d == nil {
			return ""
		}
		filename = d.SourceFile.Path
	}
	return tr.mangle(filename) + "."
}
