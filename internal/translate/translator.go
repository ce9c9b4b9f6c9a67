// Package translate implements the Type Translator (C4): the recursive
// dispatch from an opaque input type object to a syntactically valid
// target-dialect type expression.
package translate

import (
	"tstranslate/internal/aliasscope"
	"tstranslate/internal/checker"
	"tstranslate/internal/diag"
	"tstranslate/internal/source"
	"tstranslate/internal/symbols"
	"tstranslate/internal/tstype"
)

// StructuralViolation is panicked when the input type object violates the
// contract the translator depends on (a self-referential reference type, or
// kind bits primary dispatch does not cover). Both cases indicate a bug
// upstream of the translator, not a recoverable translation condition.
type StructuralViolation struct {
	Reason string
	Type   tstype.TypeID
}

func (e *StructuralViolation) Error() string {
	return "translate: structural violation: " + e.Reason
}

// Mangler produces a target-dialect identifier unique to a filename. See
// the mangle package for the concrete implementation (C1).
type Mangler func(path string) string

// EnsureDeclared is invoked before naming a non-type-parameter symbol
// outside externs mode; it may inject a forward-declare import and
// register a new entry in the Alias Scope. The zero value is a no-op.
type EnsureDeclared func(sym symbols.SymbolID)

// Translator is a single-use instance of the Type Translator, carrying the
// Recursion Set and the externs-mode flag for one emission context. An
// instance is created once per reference site and discarded after use —
// the Recursion Set is never reset within an instance, so reusing one
// across unrelated call sites is a caller error.
type Translator struct {
	types *tstype.Interner
	syms  *symbols.Symbols
	decls *symbols.Decls
	str   *source.Interner

	checker checker.Checker
	mangle  Mangler

	scope          *aliasscope.Scope
	recursion      map[tstype.TypeID]bool
	externsMode    bool
	pathBlacklist  map[string]bool
	builtinLibs    map[string]bool
	ensureDeclared EnsureDeclared
	reporter       diag.Reporter

	// refNode is the declaration context of the reference AST node the
	// instance was constructed for — used to resolve a member symbol's
	// type "at this location". currentFile, set by WithCurrentFile, is
	// the file the naming prefix's "every declaration is in the current
	// file" test compares against.
	refNode     symbols.DeclID
	currentFile source.FileID
	primarySpan source.Span
}

// Option configures a Translator at construction time.
type Option func(*Translator)

// WithAliasScope supplies a pre-existing Alias Scope (shared across a
// source file's translations). Defaults to a fresh, empty scope.
func WithAliasScope(s *aliasscope.Scope) Option {
	return func(tr *Translator) { tr.scope = s }
}

// WithExternsMode toggles externs mode (C6): non-ambient references to
// module-internal types become `?` instead of a qualified name.
func WithExternsMode(on bool) Option {
	return func(tr *Translator) { tr.externsMode = on }
}

// WithPathBlacklist supplies a set of fully-qualified file paths whose
// symbols always translate to `?`. Paths are normalized to OS-neutral form.
func WithPathBlacklist(paths []string) Option {
	return func(tr *Translator) {
		for _, p := range paths {
			tr.pathBlacklist[normalizePath(p)] = true
		}
	}
}

// WithBuiltinLibPaths marks source-file paths as belonging to the target
// dialect's built-in lib files, consulted by the Interface dispatch case
// to distinguish a user's type/value naming conflict from an intentional
// built-in conflict (e.g. `Array` naming both a type and a value).
func WithBuiltinLibPaths(paths []string) Option {
	return func(tr *Translator) {
		for _, p := range paths {
			tr.builtinLibs[normalizePath(p)] = true
		}
	}
}

// WithEnsureDeclared supplies the ensure-declared callback. Defaults to a
// no-op.
func WithEnsureDeclared(f EnsureDeclared) Option {
	return func(tr *Translator) { tr.ensureDeclared = f }
}

// WithReporter supplies the Diagnostic Sink (C5) warnings are reported to.
// Defaults to a nil reporter, which silently drops all diagnostics.
func WithReporter(r diag.Reporter) Option {
	return func(tr *Translator) { tr.reporter = r }
}

// WithCurrentFile sets the file the reference site belongs to, used by the
// naming prefix's current-file test. Defaults to the zero FileID, which
// never matches any declaration's file.
func WithCurrentFile(f source.FileID) Option {
	return func(tr *Translator) { tr.currentFile = f }
}

// WithPrimarySpan sets the span attached to diagnostics this instance
// emits.
func WithPrimarySpan(sp source.Span) Option {
	return func(tr *Translator) { tr.primarySpan = sp }
}

// New constructs a Translator bound to one reference AST node (refNode),
// used for scope in member-type lookups. Translate may be called on the
// returned instance more than once for the same reference site; its
// Recursion Set persists for the instance's lifetime and is never cleared
// — see the Translator type doc.
func New(
	types *tstype.Interner,
	syms *symbols.Symbols,
	decls *symbols.Decls,
	strs *source.Interner,
	chk checker.Checker,
	mangler Mangler,
	refNode symbols.DeclID,
	opts ...Option,
) *Translator {
	tr := &Translator{
		types:          types,
		syms:           syms,
		decls:          decls,
		str:            strs,
		checker:        chk,
		mangle:         mangler,
		scope:          aliasscope.New(),
		recursion:      make(map[tstype.TypeID]bool),
		pathBlacklist:  make(map[string]bool),
		builtinLibs:    make(map[string]bool),
		ensureDeclared: func(symbols.SymbolID) {},
		refNode:        refNode,
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// Translate is the primary entry point: translate(type) -> string. It
// always returns a string; it panics with *StructuralViolation only for a
// self-referential reference type or kind bits primary dispatch doesn't
// cover.
func (tr *Translator) Translate(id tstype.TypeID) string {
	ty := tr.types.Type(id)
	if ty == nil {
		return unknownSentinel
	}

	if ty.Kind.IsExactlyNonPrimitive() {
		return "!Object"
	}
	if tr.recursion[id] {
		return unknownSentinel
	}
	if ty.Symbol.IsValid() && tr.IsBlacklisted(ty.Symbol) {
		return unknownSentinel
	}

	if ty.Symbol.IsValid() {
		isAmbient, isInNamespace, isModule := tr.declFlags(ty.Symbol)
		if isInNamespace && !isAmbient {
			return unknownSentinel
		}
		if tr.externsMode && isModule && !isAmbient {
			return unknownSentinel
		}
	}

	return tr.dispatch(id, ty)
}

const unknownSentinel = "?"

// warn reports a recoverable approximation at the translator's current
// span. Every call site hands it one of the Trans* codes below
// structuralFloor; a structural violation never goes through warn, it
// panics as *StructuralViolation instead, so the assertion here is the
// production-side half of that contract (IsStructural/IsRecoverable is the
// other half, in package diag).
func (tr *Translator) warn(code diag.Code, msg string) {
	if !code.IsRecoverable() {
		panic(&StructuralViolation{Reason: "warn called with a non-recoverable code: " + code.String()})
	}
	if tr.reporter == nil {
		return
	}
	tr.reporter.Report(code, diag.SevWarning, tr.primarySpan, msg, nil, nil)
}
