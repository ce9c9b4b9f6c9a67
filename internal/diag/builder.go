package diag

import "tstranslate/internal/source"

// New constructs a Diagnostic with no notes or fixes.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is a shortcut for New with SevError.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewApproximation constructs the SevWarning Diagnostic a recoverable code
// is expected to carry. It panics if code is not recoverable: a structural
// code reaching here would mean a contract violation is being reported
// through the Reporter instead of surfaced as *StructuralViolation, which is
// a bug in the caller, not something to encode as output.
func NewApproximation(code Code, primary source.Span, msg string) Diagnostic {
	if !code.IsRecoverable() {
		panic("diag: NewApproximation called with a non-recoverable code: " + code.String())
	}
	return New(SevWarning, code, primary, msg)
}

// WithNote returns a copy of d with an additional Note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFix returns a copy of d with an additional Fix appended.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}

// WithFixSuggestion returns a copy of d with fix appended as-is.
func (d Diagnostic) WithFixSuggestion(fix Fix) Diagnostic {
	d.Fixes = append(d.Fixes, fix)
	return d
}
