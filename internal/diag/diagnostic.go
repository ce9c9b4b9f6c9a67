package diag

import "tstranslate/internal/source"

// Note is a secondary span/message attached to a Diagnostic for extra
// context (e.g. "declared here").
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single textual replacement a Fix would apply.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a structured, data-only suggestion for resolving a Diagnostic.
// Nothing in this package applies a Fix; hosts decide whether and how.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is the Diagnostic Sink's unit record: one translated type
// expression's worth of trust information, keyed to the span that produced
// it.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// IsApproximation reports whether d records a recoverable approximation
// (the translator emitted `?` or a shape-preserving stand-in) rather than a
// plain observation. Bag.ApproximationCount and CountApproximations are both
// just this predicate applied across a collection.
func (d Diagnostic) IsApproximation() bool {
	return d.Code.IsRecoverable()
}
