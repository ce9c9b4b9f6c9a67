package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tstranslate/internal/source"
	"tstranslate/internal/symbols"
)

func TestSymbolsArenaAssignsSequentialIDs(t *testing.T) {
	arena := symbols.NewSymbols(0)
	assert.Equal(t, 0, arena.Len())

	a := arena.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagClass})
	b := arena.New(symbols.Symbol{Name: symbols.SymbolName(2), Flags: symbols.SymbolFlagInterface})

	require.NotEqual(t, a, b)
	assert.True(t, a.IsValid())
	assert.True(t, b.IsValid())
	assert.Equal(t, 2, arena.Len())

	got := arena.Get(a)
	require.NotNil(t, got)
	assert.Equal(t, symbols.SymbolName(1), got.Name)
}

func TestSymbolsArenaInvalidID(t *testing.T) {
	arena := symbols.NewSymbols(0)
	assert.Nil(t, arena.Get(symbols.NoSymbolID))
	assert.False(t, symbols.NoSymbolID.IsValid())
}

func TestSymbolFlagsStrings(t *testing.T) {
	f := symbols.SymbolFlagClass | symbols.SymbolFlagValue
	labels := f.Strings()
	assert.Contains(t, labels, "class")
	assert.Contains(t, labels, "value")
}

func TestSymbolIsImportAlias(t *testing.T) {
	arena := symbols.NewSymbols(0)
	target := arena.New(symbols.Symbol{Name: symbols.SymbolName(1), Flags: symbols.SymbolFlagClass})

	alias := symbols.Symbol{
		Name:    symbols.SymbolName(2),
		Flags:   symbols.SymbolFlagAlias,
		Aliased: target,
	}
	assert.True(t, alias.IsImportAlias())

	plain := symbols.Symbol{Name: symbols.SymbolName(3), Flags: symbols.SymbolFlagClass}
	assert.False(t, plain.IsImportAlias())
}

func TestDeclsArenaAssignsSequentialIDs(t *testing.T) {
	arena := symbols.NewDecls(0)
	fileRef := symbols.FileRef{Path: "lib.d.ts", IsDeclarationFile: true}

	id := arena.New(symbols.Decl{
		SourceFile: fileRef,
		Modifiers:  symbols.ModifierAmbient | symbols.ModifierExport,
		Kind:       symbols.DeclClass,
	})
	require.True(t, id.IsValid())

	decl := arena.Get(id)
	require.NotNil(t, decl)
	assert.True(t, decl.IsAmbient())
	assert.True(t, decl.IsExported())
	assert.Equal(t, symbols.DeclClass, decl.Kind)
}

func TestModuleNameIsAmbientExternalModule(t *testing.T) {
	tests := []struct {
		name string
		kind symbols.ModuleNameKind
		want bool
	}{
		{"string-literal", symbols.ModuleNameStringLiteral, true},
		{"identifier", symbols.ModuleNameIdentifier, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := symbols.ModuleName{Kind: tt.kind, Text: source.StringID(1)}
			assert.Equal(t, tt.want, m.IsAmbientExternalModule())
		})
	}
}

func TestDeclKindString(t *testing.T) {
	assert.Equal(t, "module-declaration", symbols.DeclModuleDeclaration.String())
	assert.Equal(t, "invalid", symbols.DeclInvalid.String())
}

func TestDeclRefIsDecl(t *testing.T) {
	withDecl := symbols.DeclRef{Decl: symbols.DeclID(3)}
	assert.True(t, withDecl.IsDecl())

	bareFile := symbols.DeclRef{File: symbols.FileRef{Path: "a.ts"}}
	assert.False(t, bareFile.IsDecl())
}
