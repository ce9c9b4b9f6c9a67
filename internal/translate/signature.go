package translate

import (
	"fmt"
	"strings"

	"tstranslate/internal/aliasscope"
	"tstranslate/internal/diag"
	"tstranslate/internal/tstype"
)

// BlacklistTypeParameters blacklists decls' symbols in scope, exported so
// callers outside this package can seed an Alias Scope the same way the
// translator does internally.
func BlacklistTypeParameters(scope *aliasscope.Scope, decls []aliasscope.TypeParameterDecl) {
	scope.BlacklistTypeParameters(decls)
}

func (tr *Translator) blacklistTypeParameters(sig *tstype.Signature) {
	decls := make([]aliasscope.TypeParameterDecl, len(sig.TypeParameters))
	for i, sym := range sig.TypeParameters {
		decls[i] = aliasscope.TypeParameterDecl{Symbol: sym}
	}
	tr.scope.BlacklistTypeParameters(decls)
}

// signatureToString renders a call signature as a function type string.
func (tr *Translator) signatureToString(sigID tstype.SignatureID) string {
	sig := tr.types.Signature(sigID)
	if sig == nil || !sig.HasRealDeclaration() {
		tr.warn(diag.TransJSDocOnlySignature, "signature has no concrete (non-JSDoc) declaration")
		return "Function"
	}
	tr.blacklistTypeParameters(sig)

	params := sig.Parameters
	start := 0
	var parts []string
	if len(params) > 0 {
		if first := tr.types.Parameter(params[0]); first != nil && first.Name == "this" {
			start = 1
			if first.Type.IsValid() {
				parts = append(parts, "this: ("+tr.Translate(first.Type)+")")
			} else {
				tr.warn(diag.TransMissingThisAnnotation, "this parameter has no type annotation")
			}
		}
	}
	parts = append(parts, tr.convertParameters(params[start:])...)
	ret := tr.Translate(sig.ReturnType)
	return fmt.Sprintf("function(%s): %s", strings.Join(parts, ", "), ret)
}

// constructSignatureToString renders an anonymous type's construct
// signature as a function type string.
func (tr *Translator) constructSignatureToString(sigID tstype.SignatureID) string {
	sig := tr.types.Signature(sigID)
	if sig == nil || !sig.HasRealDeclaration() {
		tr.warn(diag.TransJSDocOnlySignature, "construct signature has no concrete (non-JSDoc) declaration")
		return unknownSentinel
	}
	if len(sig.TypeParameters) > 0 {
		tr.warn(diag.TransGenericConstructSig, "generic construct signature has no generic function-type equivalent")
	}
	tr.blacklistTypeParameters(sig)

	params := tr.convertParameters(sig.Parameters)
	ret := tr.Translate(sig.ReturnType)

	if len(params) == 0 {
		return fmt.Sprintf("function(new: (%s)): ?", ret)
	}
	return fmt.Sprintf("function(new: (%s), %s): ?", ret, strings.Join(params, ", "))
}

// convertParameters renders each parameter as "Type", or "Type=" when it is
// optional; a rest parameter renders as "...Type" from the first type
// argument of its array reference.
func (tr *Translator) convertParameters(ids []tstype.ParameterID) []string {
	out := make([]string, 0, len(ids))
	for _, pid := range ids {
		p := tr.types.Parameter(pid)
		if p == nil {
			continue
		}

		if p.Rest {
			pty := tr.types.Type(p.Type)
			if pty == nil || !pty.ObjectFlags.Has(tstype.ObjectFlagReference) {
				tr.warn(diag.TransUnsupportedRestType, "rest parameter's type is not an array reference")
				out = append(out, "...!Array<?>")
				continue
			}
			if len(pty.TypeArguments) == 0 {
				continue
			}
			piece := "..." + tr.Translate(pty.TypeArguments[0])
			if p.Optional {
				piece += "="
			}
			out = append(out, piece)
			continue
		}

		piece := tr.Translate(p.Type)
		if p.Optional {
			piece += "="
		}
		out = append(out, piece)
	}
	return out
}
