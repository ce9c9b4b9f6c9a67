package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tstranslate/internal/checker"
	"tstranslate/internal/symbols"
	"tstranslate/internal/tstype"
)

func TestFakeEntityNameForSymbol(t *testing.T) {
	f := checker.NewFake()
	sym := symbols.SymbolID(1)

	_, ok := f.EntityNameForSymbol(sym)
	assert.False(t, ok)

	f.EntityNames[sym] = checker.EntityName{
		Segments: []checker.EntityNameSegment{{Text: "Foo", Symbol: sym}},
	}
	name, ok := f.EntityNameForSymbol(sym)
	require.True(t, ok)
	assert.Equal(t, "Foo", name.Segments[0].Text)
}

func TestFakeSignaturesOfType(t *testing.T) {
	f := checker.NewFake()
	ty := tstype.TypeID(5)
	f.CallSigs[ty] = []tstype.SignatureID{1, 2}

	call, construct := f.SignaturesOfType(ty)
	assert.Equal(t, []tstype.SignatureID{1, 2}, call)
	assert.Nil(t, construct)
}

func TestFakeIndexTypeOfType(t *testing.T) {
	f := checker.NewFake()
	ty := tstype.TypeID(5)
	f.StringIndex[ty] = tstype.TypeID(9)

	v, ok := f.IndexTypeOfType(ty, true)
	require.True(t, ok)
	assert.Equal(t, tstype.TypeID(9), v)

	_, ok = f.IndexTypeOfType(ty, false)
	assert.False(t, ok)
}

func TestFakeAliasedSymbol(t *testing.T) {
	f := checker.NewFake()
	alias, target := symbols.SymbolID(1), symbols.SymbolID(2)
	f.Aliases[alias] = target

	got, ok := f.AliasedSymbol(alias)
	require.True(t, ok)
	assert.Equal(t, target, got)

	_, ok = f.AliasedSymbol(target)
	assert.False(t, ok)
}
