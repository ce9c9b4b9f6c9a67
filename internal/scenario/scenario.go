// Package scenario loads the CLI demo harness's declarative TOML format —
// a flat enumeration of files, symbols, declarations, types, signatures and
// parameters — and materializes it directly against the tstype/symbols/
// checker constructors. It is demo scaffolding for cmd/tstr, not a parser
// for any real source language: every scenario file is handwritten against
// this package's own schema.
package scenario

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"tstranslate/internal/checker"
	"tstranslate/internal/source"
	"tstranslate/internal/symbols"
	"tstranslate/internal/tstype"
)

// Doc is the raw TOML shape a scenario file decodes into.
type Doc struct {
	Project struct {
		Externs       bool     `toml:"externs"`
		PathBlacklist []string `toml:"path_blacklist"`
		BuiltinLibs   []string `toml:"builtin_libs"`
	} `toml:"project"`

	Files      []FileDef      `toml:"files"`
	Symbols    []SymbolDef    `toml:"symbols"`
	Decls      []DeclDef      `toml:"decls"`
	Types      []TypeDef      `toml:"types"`
	Signatures []SignatureDef `toml:"signatures"`
	Parameters []ParameterDef `toml:"parameters"`
	Roots      []RootDef      `toml:"roots"`

	// The sections below populate checker.Fake's lookup tables — answers
	// a real semantic analyzer would compute, supplied by hand here since
	// the scenario has no analyzer behind it.
	EntityNames []EntityNameDef `toml:"entity_names"`
	BaseTypes   []BaseTypeDef   `toml:"base_types"`
	SymbolTypes []SymbolTypeDef `toml:"symbol_types"`
	StringIndex []IndexDef      `toml:"string_index"`
	NumberIndex []IndexDef      `toml:"number_index"`
	Aliases     []AliasDef      `toml:"aliases"`
}

type EntityNameSegmentDef struct {
	Text   string `toml:"text"`
	Symbol int    `toml:"symbol"`
}

type EntityNameDef struct {
	Symbol   int                     `toml:"symbol"`
	Segments []EntityNameSegmentDef `toml:"segments"`
}

type BaseTypeDef struct {
	Literal int `toml:"literal"`
	Base    int `toml:"base"`
}

type SymbolTypeDef struct {
	Symbol int `toml:"symbol"`
	Type   int `toml:"type"`
}

type IndexDef struct {
	Type  int `toml:"type"`
	Index int `toml:"index"`
}

type AliasDef struct {
	Symbol int `toml:"symbol"`
	Target int `toml:"target"`
}

type FileDef struct {
	ID              int    `toml:"id"`
	Path            string `toml:"path"`
	Declaration     bool   `toml:"declaration"`
	ExternalModule  bool   `toml:"external_module"`
}

type SymbolDef struct {
	ID           int      `toml:"id"`
	Name         string   `toml:"name"`
	Flags        []string `toml:"flags"`
	Declarations []int    `toml:"declarations"`
	Parent       int      `toml:"parent"`
	Aliased      int      `toml:"aliased"`
}

type DeclDef struct {
	ID             int    `toml:"id"`
	File           int    `toml:"file"`
	Ambient        bool   `toml:"ambient"`
	Exported       bool   `toml:"exported"`
	Kind           string `toml:"kind"`
	ParentDecl     int    `toml:"parent_decl"`
	ParentFile     int    `toml:"parent_file"`
	ModuleNameKind string `toml:"module_name_kind"`
	ModuleNameText string `toml:"module_name_text"`
}

type TypeDef struct {
	ID                  int            `toml:"id"`
	Kind                []string       `toml:"kind"`
	ObjectFlags         []string       `toml:"object_flags"`
	Symbol              int            `toml:"symbol"`
	Target              int            `toml:"target"`
	TypeArguments       []int          `toml:"type_arguments"`
	Members             []int          `toml:"members"`
	CallSignatures      []int          `toml:"call_signatures"`
	ConstructSignatures []int          `toml:"construct_signatures"`
	Fields              map[string]int `toml:"fields"`
	StringIndexType     int            `toml:"string_index_type"`
	NumberIndexType     int            `toml:"number_index_type"`
}

type SignatureDef struct {
	ID             int    `toml:"id"`
	Parameters     []int  `toml:"parameters"`
	ReturnType     int    `toml:"return_type"`
	Declaration    int    `toml:"declaration"`
	JSDocOnly      bool   `toml:"jsdoc_only"`
	TypeParameters []int  `toml:"type_parameters"`
}

type ParameterDef struct {
	ID          int    `toml:"id"`
	Name        string `toml:"name"`
	Type        int    `toml:"type"`
	Optional    bool   `toml:"optional"`
	Rest        bool   `toml:"rest"`
	Declaration int    `toml:"declaration"`
}

type RootDef struct {
	Name string `toml:"name"`
	Type int    `toml:"type"`
}

// World is a fully materialized scenario, ready to drive one or more
// translate.Translator instances.
type World struct {
	Types   *tstype.Interner
	Symbols *symbols.Symbols
	Decls   *symbols.Decls
	Files   *source.FileSet
	Strings *source.Interner
	Checker *checker.Fake

	Externs       bool
	PathBlacklist []string
	BuiltinLibs   []string
	Roots         []Root

	// ProjectSectionPresent reports whether the scenario file had its own
	// [project] table. A scenario that omits it entirely (as opposed to
	// writing an explicit "externs = false") is a candidate for falling
	// back to a project manifest's defaults.
	ProjectSectionPresent bool
}

// Root is one named type to translate, as listed under [[roots]].
type Root struct {
	Name string
	Type tstype.TypeID
}

// Load parses and materializes the scenario file at path.
func Load(path string) (*World, error) {
	var doc Doc
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse scenario: %w", path, err)
	}
	w, err := Build(&doc)
	if err != nil {
		return nil, err
	}
	w.ProjectSectionPresent = meta.IsDefined("project")
	return w, nil
}

// Build materializes a parsed Doc into a World. Every cross-reference is an
// integer "local id" scoped to the scenario file; Build resolves them in
// two passes so declaration order within a section never matters, even for
// mutually or self-referential records (a recursive type's Members
// pointing back at its own local id, for instance).
func Build(doc *Doc) (*World, error) {
	w := &World{
		Types:         tstype.NewInterner(),
		Symbols:       symbols.NewSymbols(uint32(len(doc.Symbols))),
		Decls:         symbols.NewDecls(uint32(len(doc.Decls))),
		Files:         source.NewFileSet(),
		Strings:       source.NewInterner(),
		Checker:       checker.NewFake(),
		Externs:       doc.Project.Externs,
		PathBlacklist: doc.Project.PathBlacklist,
		BuiltinLibs:   doc.Project.BuiltinLibs,
	}

	files := make(map[int]symbols.FileRef, len(doc.Files))
	for _, f := range doc.Files {
		var flags source.FileFlags
		if f.Declaration {
			flags |= source.FileDeclaration
		}
		id := w.Files.AddVirtual(f.Path, flags)
		files[f.ID] = symbols.FileRef{
			File:              id,
			Path:              f.Path,
			IsDeclarationFile: f.Declaration,
			IsExternalModule:  f.ExternalModule,
		}
	}

	declIDs := make(map[int]symbols.DeclID, len(doc.Decls))
	for _, d := range doc.Decls {
		declIDs[d.ID] = w.Decls.New(symbols.Decl{})
	}
	symIDs := make(map[int]symbols.SymbolID, len(doc.Symbols))
	for _, s := range doc.Symbols {
		symIDs[s.ID] = w.Symbols.New(symbols.Symbol{})
	}
	typeIDs := make(map[int]tstype.TypeID, len(doc.Types))
	for _, t := range doc.Types {
		typeIDs[t.ID] = w.Types.NewType(tstype.Type{})
	}
	sigIDs := make(map[int]tstype.SignatureID, len(doc.Signatures))
	for _, s := range doc.Signatures {
		sigIDs[s.ID] = w.Types.NewSignature(tstype.Signature{})
	}
	paramIDs := make(map[int]tstype.ParameterID, len(doc.Parameters))
	for _, p := range doc.Parameters {
		paramIDs[p.ID] = w.Types.NewParameter(tstype.Parameter{})
	}

	for _, d := range doc.Decls {
		decl := w.Decls.Get(declIDs[d.ID])
		decl.SourceFile = files[d.File]
		if d.Ambient {
			decl.Modifiers |= symbols.ModifierAmbient
		}
		if d.Exported {
			decl.Modifiers |= symbols.ModifierExport
		}
		kind, err := declKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("decl %d: %w", d.ID, err)
		}
		decl.Kind = kind
		if d.ParentDecl != 0 {
			decl.Parent = symbols.DeclRef{Decl: declIDs[d.ParentDecl]}
		} else if d.ParentFile != 0 {
			decl.Parent = symbols.DeclRef{File: files[d.ParentFile]}
		}
		if d.ModuleNameKind == "string-literal" {
			// A string-literal module name is a quoted specifier ("./foo",
			// "../bar") and gets the same path normalization FileSet applies,
			// so "./foo" and "foo" (if ever both appeared) would collide on
			// one StringID rather than mint two.
			decl.ModuleName = symbols.ModuleName{
				Kind: symbols.ModuleNameStringLiteral,
				Text: w.Strings.InternPath(d.ModuleNameText),
			}
		} else if d.ModuleNameKind == "identifier" {
			decl.ModuleName = symbols.ModuleName{
				Kind: symbols.ModuleNameIdentifier,
				Text: w.Strings.Intern(d.ModuleNameText),
			}
		}
	}

	for _, s := range doc.Symbols {
		sym := w.Symbols.Get(symIDs[s.ID])
		sym.Name = symbols.SymbolName(w.Strings.Intern(s.Name))
		flags, err := symbolFlags(s.Flags)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", s.ID, err)
		}
		sym.Flags = flags
		for _, localDecl := range s.Declarations {
			sym.Declarations = append(sym.Declarations, declIDs[localDecl])
		}
		if s.Parent != 0 {
			sym.Parent = symIDs[s.Parent]
		}
		if s.Aliased != 0 {
			sym.Aliased = symIDs[s.Aliased]
		}
	}

	for _, t := range doc.Types {
		ty := w.Types.Type(typeIDs[t.ID])
		kind, err := typeKind(t.Kind)
		if err != nil {
			return nil, fmt.Errorf("type %d: %w", t.ID, err)
		}
		ty.Kind = kind
		objFlags, err := objectFlags(t.ObjectFlags)
		if err != nil {
			return nil, fmt.Errorf("type %d: %w", t.ID, err)
		}
		ty.ObjectFlags = objFlags
		if t.Symbol != 0 {
			ty.Symbol = symIDs[t.Symbol]
		}
		if t.Target != 0 {
			ty.Target = typeIDs[t.Target]
		}
		for _, a := range t.TypeArguments {
			ty.TypeArguments = append(ty.TypeArguments, typeIDs[a])
		}
		for _, m := range t.Members {
			ty.Members = append(ty.Members, typeIDs[m])
		}
		for _, c := range t.CallSignatures {
			ty.CallSignatures = append(ty.CallSignatures, sigIDs[c])
		}
		for _, c := range t.ConstructSignatures {
			ty.ConstructSignatures = append(ty.ConstructSignatures, sigIDs[c])
		}
		if len(t.Fields) > 0 {
			ty.Fields = make(map[string]symbols.SymbolID, len(t.Fields))
			for name, localSym := range t.Fields {
				ty.Fields[name] = symIDs[localSym]
			}
		}
		if t.StringIndexType != 0 {
			ty.StringIndexType = typeIDs[t.StringIndexType]
		}
		if t.NumberIndexType != 0 {
			ty.NumberIndexType = typeIDs[t.NumberIndexType]
		}
	}

	for _, s := range doc.Signatures {
		sig := w.Types.Signature(sigIDs[s.ID])
		for _, p := range s.Parameters {
			sig.Parameters = append(sig.Parameters, paramIDs[p])
		}
		if s.ReturnType != 0 {
			sig.ReturnType = typeIDs[s.ReturnType]
		}
		if s.Declaration != 0 {
			sig.Declaration = declIDs[s.Declaration]
		}
		sig.IsJSDocOnly = s.JSDocOnly
		for _, tp := range s.TypeParameters {
			sig.TypeParameters = append(sig.TypeParameters, symIDs[tp])
		}
	}

	for _, p := range doc.Parameters {
		param := w.Types.Parameter(paramIDs[p.ID])
		param.Name = p.Name
		if p.Type != 0 {
			param.Type = typeIDs[p.Type]
		}
		param.Optional = p.Optional
		param.Rest = p.Rest
		if p.Declaration != 0 {
			param.Declaration = declIDs[p.Declaration]
		}
	}

	for _, r := range doc.Roots {
		w.Roots = append(w.Roots, Root{Name: r.Name, Type: typeIDs[r.Type]})
	}

	for _, e := range doc.EntityNames {
		segments := make([]checker.EntityNameSegment, 0, len(e.Segments))
		for _, s := range e.Segments {
			seg := checker.EntityNameSegment{Text: s.Text}
			if s.Symbol != 0 {
				seg.Symbol = symIDs[s.Symbol]
			}
			segments = append(segments, seg)
		}
		w.Checker.EntityNames[symIDs[e.Symbol]] = checker.EntityName{Segments: segments}
	}
	for _, b := range doc.BaseTypes {
		w.Checker.BaseTypes[typeIDs[b.Literal]] = typeIDs[b.Base]
	}
	for _, s := range doc.SymbolTypes {
		w.Checker.SymbolTypes[symIDs[s.Symbol]] = typeIDs[s.Type]
	}
	for _, ix := range doc.StringIndex {
		w.Checker.StringIndex[typeIDs[ix.Type]] = typeIDs[ix.Index]
	}
	for _, ix := range doc.NumberIndex {
		w.Checker.NumberIndex[typeIDs[ix.Type]] = typeIDs[ix.Index]
	}
	for _, a := range doc.Aliases {
		w.Checker.Aliases[symIDs[a.Symbol]] = symIDs[a.Target]
	}

	return w, nil
}

var typeKindNames = map[string]tstype.Kind{
	"any":             tstype.KindAny,
	"unknown":         tstype.KindUnknown,
	"string":          tstype.KindString,
	"string-literal":  tstype.KindStringLiteral,
	"number":          tstype.KindNumber,
	"number-literal":  tstype.KindNumberLiteral,
	"boolean":         tstype.KindBoolean,
	"boolean-literal": tstype.KindBooleanLiteral,
	"es-symbol":       tstype.KindESSymbol,
	"unique-es-symbol": tstype.KindUniqueESSymbol,
	"void":            tstype.KindVoid,
	"undefined":       tstype.KindUndefined,
	"null":            tstype.KindNull,
	"bigint":          tstype.KindBigInt,
	"never":           tstype.KindNever,
	"enum":            tstype.KindEnum,
	"enum-literal":    tstype.KindEnumLiteral,
	"type-parameter":  tstype.KindTypeParameter,
	"object":          tstype.KindObject,
	"union":           tstype.KindUnion,
	"conditional":     tstype.KindConditional,
	"substitution":    tstype.KindSubstitution,
	"intersection":    tstype.KindIntersection,
	"index":           tstype.KindIndex,
	"indexed-access":  tstype.KindIndexedAccess,
	"non-primitive":   tstype.KindNonPrimitive,
}

func typeKind(names []string) (tstype.Kind, error) {
	var k tstype.Kind
	for _, n := range names {
		bit, ok := typeKindNames[n]
		if !ok {
			return 0, fmt.Errorf("unknown type kind %q", n)
		}
		k |= bit
	}
	return k, nil
}

var objectFlagNames = map[string]tstype.ObjectFlags{
	"class":          tstype.ObjectFlagClass,
	"interface":      tstype.ObjectFlagInterface,
	"reference":      tstype.ObjectFlagReference,
	"tuple":          tstype.ObjectFlagTuple,
	"anonymous":      tstype.ObjectFlagAnonymous,
	"mapped":         tstype.ObjectFlagMapped,
	"instantiated":   tstype.ObjectFlagInstantiated,
	"object-literal": tstype.ObjectFlagObjectLiteral,
}

func objectFlags(names []string) (tstype.ObjectFlags, error) {
	var f tstype.ObjectFlags
	for _, n := range names {
		bit, ok := objectFlagNames[n]
		if !ok {
			return 0, fmt.Errorf("unknown object flag %q", n)
		}
		f |= bit
	}
	return f, nil
}

var symbolFlagNames = map[string]symbols.SymbolFlags{
	"value":          symbols.SymbolFlagValue,
	"type-parameter": symbols.SymbolFlagTypeParameter,
	"alias":          symbols.SymbolFlagAlias,
	"function":       symbols.SymbolFlagFunction,
	"method":         symbols.SymbolFlagMethod,
	"property":       symbols.SymbolFlagProperty,
	"enum-member":    symbols.SymbolFlagEnumMember,
	"class":          symbols.SymbolFlagClass,
	"interface":      symbols.SymbolFlagInterface,
	"enum":           symbols.SymbolFlagEnum,
	"module":         symbols.SymbolFlagModule,
}

func symbolFlags(names []string) (symbols.SymbolFlags, error) {
	var f symbols.SymbolFlags
	for _, n := range names {
		bit, ok := symbolFlagNames[n]
		if !ok {
			return 0, fmt.Errorf("unknown symbol flag %q", n)
		}
		f |= bit
	}
	return f, nil
}

func declKind(name string) (symbols.DeclKind, error) {
	switch name {
	case "module-declaration":
		return symbols.DeclModuleDeclaration, nil
	case "class":
		return symbols.DeclClass, nil
	case "interface":
		return symbols.DeclInterface, nil
	case "function":
		return symbols.DeclFunction, nil
	case "signature":
		return symbols.DeclSignature, nil
	case "variable":
		return symbols.DeclVariable, nil
	case "enum-member":
		return symbols.DeclEnumMember, nil
	case "type-alias":
		return symbols.DeclTypeAlias, nil
	case "parameter":
		return symbols.DeclParameter, nil
	default:
		return symbols.DeclInvalid, fmt.Errorf("unknown decl kind %q", name)
	}
}
