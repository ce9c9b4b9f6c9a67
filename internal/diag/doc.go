// Package diag is the concrete Diagnostic Sink (C5): a deterministic,
// serialisation-friendly model for warnings raised during type translation,
// plus light-weight collection utilities that keep producers decoupled from
// storage or rendering.
//
// # Scope
//
// Diagnostics raised here are always advisory. The Type Translator (C4) never
// treats a diag.Diagnostic as fatal to itself — every recoverable condition
// is reported through a Reporter and then resolved to `?` (or a
// shape-preserving approximation) so translation always completes with a
// valid string. Rendering a Diagnostic for a human (colorizing, grouping by
// file, JSON export) is a host-side CLI concern, not this package's.
//
// # Data model
//
//   - Severity — Info, Warning, Error (severity.go).
//   - Code — compact numeric identifier with a stable String() form
//     (codes.go), scoped to the conditions the translator itself can raise.
//   - Diagnostic — Severity + Code + Message + a primary source.Span, plus
//     optional Notes (secondary spans) and Fixes (structured edits).
//
// # Emitting diagnostics
//
// Call sites use a Reporter (the interface the translator depends on) to stay
// decoupled from storage. NewReportBuilder / ReportWarning / ReportError chain
// WithNote/WithFix before Emit; simple call sites can call Reporter.Report
// directly. BagReporter adapts a Reporter onto a Bag, which supports sorting,
// deduplication, and a bounded capacity so a pathological type never produces
// unbounded diagnostic output.
package diag
