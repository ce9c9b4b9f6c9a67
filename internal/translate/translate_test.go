package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tstranslate/internal/aliasscope"
	"tstranslate/internal/checker"
	"tstranslate/internal/diag"
	"tstranslate/internal/source"
	"tstranslate/internal/symbols"
	"tstranslate/internal/testkit"
	"tstranslate/internal/translate"
	"tstranslate/internal/tstype"
)

// assertWellFormed asserts the quantified well-formedness invariant every
// translated string must satisfy, regardless of which dispatch path
// produced it: balanced brackets and no parameterized unknown sentinel.
func assertWellFormed(t *testing.T, got string) {
	t.Helper()
	assert.True(t, testkit.IsWellFormedTypeExpression(got), "not well-formed: %q", got)
}

type fixture struct {
	types *tstype.Interner
	syms  *symbols.Symbols
	decls *symbols.Decls
	strs  *source.Interner
	fake  *checker.Fake
}

func newFixture() *fixture {
	return &fixture{
		types: tstype.NewInterner(),
		syms:  symbols.NewSymbols(0),
		decls: symbols.NewDecls(0),
		strs:  source.NewInterner(),
		fake:  checker.NewFake(),
	}
}

func identityMangler(path string) string { return "mangled_" + path }

func (f *fixture) newTranslator(opts ...translate.Option) *translate.Translator {
	return translate.New(f.types, f.syms, f.decls, f.strs, f.fake, identityMangler, symbols.NoDeclID, opts...)
}

func TestPrimitiveKinds(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	assert.Equal(t, "?", tr.Translate(f.types.Builtins.Any))
	assert.Equal(t, "*", tr.Translate(f.types.Builtins.Unknown))
	assert.Equal(t, "string", tr.Translate(f.types.Builtins.String))
	assert.Equal(t, "number", tr.Translate(f.types.Builtins.Number))
	assert.Equal(t, "boolean", tr.Translate(f.types.Builtins.Boolean))
	assert.Equal(t, "void", tr.Translate(f.types.Builtins.Void))
	assert.Equal(t, "undefined", tr.Translate(f.types.Builtins.Undefined))
	assert.Equal(t, "null", tr.Translate(f.types.Builtins.Null))
	assert.Equal(t, "bigintPlaceholder", tr.Translate(f.types.Builtins.BigInt))
}

func TestNeverTypeWarnsAndReturnsUnknown(t *testing.T) {
	f := newFixture()
	bag := diag.NewBag(8)
	tr := f.newTranslator(translate.WithReporter(diag.BagReporter{Bag: bag}))

	got := tr.Translate(f.types.Builtins.Never)
	assert.Equal(t, "?", got)
	require.Equal(t, 1, bag.Len())
	assert.Equal(t, diag.TransNeverType, bag.Items()[0].Code)
}

func TestNonPrimitiveEarlyExit(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()
	nonPrim := f.types.NewType(tstype.Type{Kind: tstype.KindNonPrimitive})
	assert.Equal(t, "!Object", tr.Translate(nonPrim))
}

func TestRecursionSetBreaksAnonymousCycle(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	// An anonymous object type whose only field refers to itself.
	selfSym := f.syms.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagProperty})
	var selfID tstype.TypeID
	selfID = f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagAnonymous,
		Fields:      map[string]symbols.SymbolID{"next": selfSym},
	})
	f.fake.SymbolTypes[selfSym] = selfID

	got := tr.Translate(selfID)
	assert.Equal(t, "{next: ?}", got)
	assert.True(t, testkit.NeverParameterizesUnknown(got), "unknown sentinel must never be parameterized")
	assertWellFormed(t, got)
}

func TestUnionDeduplicatesPreservingOrder(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	union := f.types.NewType(tstype.Type{
		Kind: tstype.KindUnion,
		Members: []tstype.TypeID{
			f.types.Builtins.String,
			f.types.Builtins.Number,
			f.types.Builtins.String,
		},
	})
	got := tr.Translate(union)
	assert.Equal(t, "(string|number)", got)
	assert.True(t, testkit.HasNoDuplicateUnionMembers(got))
	assertWellFormed(t, got)
}

func TestUnionSingleMemberAfterDedupeIsUnwrapped(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	union := f.types.NewType(tstype.Type{
		Kind:    tstype.KindUnion,
		Members: []tstype.TypeID{f.types.Builtins.String, f.types.Builtins.String},
	})
	got := tr.Translate(union)
	assert.Equal(t, "string", got)
	assert.True(t, testkit.HasNoDuplicateUnionMembers(got))
}

func TestAliasScopeOverridesQualifiedName(t *testing.T) {
	f := newFixture()
	scope := aliasscope.New()
	sym := f.syms.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagClass})
	scope.Set(sym, "prefix_1.Foo")
	f.fake.EntityNames[sym] = checker.EntityName{
		Segments: []checker.EntityNameSegment{{Text: "Foo", Symbol: sym}},
	}

	tr := f.newTranslator(translate.WithAliasScope(scope))
	name, ok := tr.SymbolToString(sym)
	require.True(t, ok)
	assert.Equal(t, "prefix_1.Foo", name)
}

func TestPathBlacklistSilentlyProducesUnknown(t *testing.T) {
	f := newFixture()
	fileRef := symbols.FileRef{Path: "/vendor/blocked.d.ts", IsDeclarationFile: true}
	declID := f.decls.New(symbols.Decl{SourceFile: fileRef, Kind: symbols.DeclClass})
	sym := f.syms.New(symbols.Symbol{
		Name:         symbols.SymbolName(1),
		Flags:        symbols.SymbolFlagClass,
		Declarations: []symbols.DeclID{declID},
	})
	classTy := f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagClass,
		Symbol:      sym,
	})

	tr := f.newTranslator(translate.WithPathBlacklist([]string{"/vendor/blocked.d.ts"}))
	assert.Equal(t, "?", tr.Translate(classTy))
}

func TestExternsModeForbidsNonAmbientModuleSymbol(t *testing.T) {
	f := newFixture()
	fileRef := symbols.FileRef{Path: "src/internal.ts", IsExternalModule: true}
	declID := f.decls.New(symbols.Decl{SourceFile: fileRef, Kind: symbols.DeclClass})
	sym := f.syms.New(symbols.Symbol{
		Name:         symbols.SymbolName(1),
		Flags:        symbols.SymbolFlagClass,
		Declarations: []symbols.DeclID{declID},
	})
	classTy := f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagClass,
		Symbol:      sym,
	})

	tr := f.newTranslator(translate.WithExternsMode(true))
	assert.Equal(t, "?", tr.Translate(classTy))
}

func TestReferenceSelfCycleIsStructuralViolation(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	var refID tstype.TypeID
	refID = f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagReference,
	})
	// Patch Target to point at itself after allocation, since NewType needs
	// the ID before it can be embedded.
	f.types.Type(refID).Target = refID

	assert.Panics(t, func() { tr.Translate(refID) })
}

func TestUnmatchedKindBitsIsStructuralViolation(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	weird := f.types.NewType(tstype.Type{Kind: tstype.KindConditional | tstype.KindObject})
	assert.Panics(t, func() { tr.Translate(weird) })
}

func TestTupleReferenceDegradesToArray(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	tuple := f.types.NewType(tstype.Type{Kind: tstype.KindObject, ObjectFlags: tstype.ObjectFlagTuple})
	ref := f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagReference,
		Target:      tuple,
	})
	assert.Equal(t, "!Array<?>", tr.Translate(ref))
}

// Scenario S1: a union collapses to its sole distinct rendered member once
// a literal dedupes against its own base type.
func TestScenarioS1UnionOfBooleanAndLiteralTrueCollapses(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	lit := f.types.NewType(tstype.Type{Kind: tstype.KindBooleanLiteral})
	union := f.types.NewType(tstype.Type{
		Kind:    tstype.KindUnion,
		Members: []tstype.TypeID{f.types.Builtins.Boolean, lit},
	})
	got := tr.Translate(union)
	assert.Equal(t, "boolean", got)
	assert.True(t, testkit.HasNoDuplicateUnionMembers(got))
	assertWellFormed(t, got)
}

// Scenario S3: a reference to an interface with one type argument renders
// as the interface name followed by its angle-bracketed argument.
func TestScenarioS3ReferenceToParameterizedInterface(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	ifaceSym := f.syms.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagInterface})
	f.fake.EntityNames[ifaceSym] = checker.EntityName{
		Segments: []checker.EntityNameSegment{{Text: "Array", Symbol: ifaceSym}},
	}
	iface := f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagInterface,
		Symbol:      ifaceSym,
	})
	ref := f.types.NewType(tstype.Type{
		Kind:          tstype.KindObject,
		ObjectFlags:   tstype.ObjectFlagReference,
		Target:        iface,
		TypeArguments: []tstype.TypeID{f.types.Builtins.Number},
	})
	got := tr.Translate(ref)
	assert.Equal(t, "!Array<number>", got)
	assertWellFormed(t, got)
}

// Scenario S5: an anonymous object with only named fields renders as a
// brace-delimited, comma-joined member list.
func TestScenarioS5AnonymousObjectWithNamedFields(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	aSym := f.syms.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagProperty})
	bSym := f.syms.New(symbols.Symbol{Name: symbols.SymbolName(2), Flags: symbols.SymbolFlagProperty})
	f.fake.SymbolTypes[aSym] = f.types.Builtins.Number
	f.fake.SymbolTypes[bSym] = f.types.Builtins.String

	obj := f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagAnonymous,
		Fields:      map[string]symbols.SymbolID{"a": aSym, "b": bSym},
	})
	got := tr.Translate(obj)
	assert.Equal(t, "{a: number, b: string}", got)
	assertWellFormed(t, got)
}

// Scenario S6: an anonymous object with no fields, no call signature, and
// no index signature renders as the unknown-type sentinel `*`.
func TestScenarioS6EmptyAnonymousObjectIsUnknown(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	obj := f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagAnonymous,
	})
	got := tr.Translate(obj)
	assert.Equal(t, "*", got)
	assertWellFormed(t, got)
}

// Scenario S7: an anonymous callable with a single call signature and no
// named fields renders as a function type string.
func TestScenarioS7AnonymousCallableSignature(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	param := f.types.NewParameter(tstype.Parameter{Name: "x", Type: f.types.Builtins.Number})
	declID := f.decls.New(symbols.Decl{Kind: symbols.DeclFunction})
	sig := f.types.NewSignature(tstype.Signature{
		Parameters: []tstype.ParameterID{param},
		ReturnType: f.types.Builtins.String,
		Declaration: declID,
	})
	obj := f.types.NewType(tstype.Type{
		Kind:           tstype.KindObject,
		ObjectFlags:    tstype.ObjectFlagAnonymous,
		CallSignatures: []tstype.SignatureID{sig},
	})
	got := tr.Translate(obj)
	assert.Equal(t, "function(number): string", got)
	assertWellFormed(t, got)
}

// Scenario S8: an anonymous indexable object with a string index signature
// and no named fields renders as !Object<key, value>.
func TestScenarioS8IndexableAnonymousObject(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	fooSym := f.syms.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagInterface})
	f.fake.EntityNames[fooSym] = checker.EntityName{
		Segments: []checker.EntityNameSegment{{Text: "Foo", Symbol: fooSym}},
	}
	foo := f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagInterface,
		Symbol:      fooSym,
	})

	objID := f.types.NewType(tstype.Type{
		Kind:            tstype.KindObject,
		ObjectFlags:     tstype.ObjectFlagAnonymous,
		StringIndexType: foo,
	})
	f.fake.StringIndex[objID] = foo

	got := tr.Translate(objID)
	assert.Equal(t, "!Object<string, !Foo>", got)
	assertWellFormed(t, got)
}

// Scenario S9: an enum with a single member, referenced through that
// member's literal type, names the enum itself (not the member).
func TestScenarioS9SingleMemberEnumLiteralNamesEnum(t *testing.T) {
	f := newFixture()
	tr := f.newTranslator()

	enumSym := f.syms.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagEnum})
	f.fake.EntityNames[enumSym] = checker.EntityName{
		Segments: []checker.EntityNameSegment{{Text: "E", Symbol: enumSym}},
	}
	memberSym := f.syms.New(symbols.Symbol{
		Name:   symbols.SymbolName(2),
		Flags:  symbols.SymbolFlagEnumMember,
		Parent: enumSym,
	})

	memberLiteral := f.types.NewType(tstype.Type{Kind: tstype.KindEnumLiteral, Symbol: memberSym})
	f.fake.BaseTypes[memberLiteral] = memberLiteral

	got := tr.Translate(memberLiteral)
	assert.Equal(t, "!E", got)
	assertWellFormed(t, got)
}

// Scenario S11: a symbol whose every declaration is an ambient, exported
// top-level declaration in the current file gets its leftmost name segment
// prefixed with the mangled current filename, even with externs mode off.
func TestScenarioS11AmbientExportedCurrentFileGetsMangledPrefix(t *testing.T) {
	f := newFixture()
	fileRef := symbols.FileRef{File: 1, Path: "src/widgets.ts", IsExternalModule: true}
	declID := f.decls.New(symbols.Decl{
		SourceFile: fileRef,
		Kind:       symbols.DeclClass,
		Modifiers:  symbols.ModifierAmbient | symbols.ModifierExport,
		Parent:     symbols.DeclRef{File: fileRef},
	})
	sym := f.syms.New(symbols.Symbol{
		Name:         symbols.SymbolName(1),
		Flags:        symbols.SymbolFlagClass,
		Declarations: []symbols.DeclID{declID},
	})
	f.fake.EntityNames[sym] = checker.EntityName{
		Segments: []checker.EntityNameSegment{{Text: "Widget", Symbol: sym}},
	}
	classTy := f.types.NewType(tstype.Type{
		Kind:        tstype.KindObject,
		ObjectFlags: tstype.ObjectFlagClass,
		Symbol:      sym,
	})

	tr := f.newTranslator(translate.WithCurrentFile(1))
	got := tr.Translate(classTy)
	assert.Equal(t, "!mangled_src/widgets.ts.Widget", got)
	assertWellFormed(t, got)
}

func TestBlacklistTypeParametersIdempotentViaTranslatePackage(t *testing.T) {
	f := newFixture()
	scope := aliasscope.New()
	paramSym := f.syms.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagTypeParameter})

	translate.BlacklistTypeParameters(scope, []aliasscope.TypeParameterDecl{{Symbol: paramSym}})
	translate.BlacklistTypeParameters(scope, []aliasscope.TypeParameterDecl{{Symbol: paramSym}})

	assert.Equal(t, 1, scope.Len())
	assert.True(t, scope.IsBlacklisted(paramSym))
}
