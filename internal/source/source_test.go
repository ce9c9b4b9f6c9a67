package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tstranslate/internal/source"
)

func TestInternerDeduplicates(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	c := in.Intern("bar")
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)

	s, ok := in.Lookup(a)
	require.True(t, ok)
	require.Equal(t, "foo", s)
}

func TestInternerNoStringIDIsEmpty(t *testing.T) {
	in := source.NewInterner()
	s, ok := in.Lookup(source.NoStringID)
	require.True(t, ok)
	require.Empty(t, s)
}

func TestFileSetRegistersDeclarationFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("/lib/dom.d.ts", source.FileDeclaration)
	f, ok := fs.Get(id)
	require.True(t, ok)
	require.True(t, f.IsDeclarationFile())
	require.False(t, f.IsVirtual())

	got, ok := fs.GetByPath("/lib/dom.d.ts")
	require.True(t, ok)
	require.Equal(t, f, got)
}

func TestFileSetVirtualFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("scenario://inline", 0)
	f, ok := fs.Get(id)
	require.True(t, ok)
	require.True(t, f.IsVirtual())
}

func TestFileSetInvalidID(t *testing.T) {
	fs := source.NewFileSet()
	_, ok := fs.Get(source.NoFileID)
	require.False(t, ok)
}
