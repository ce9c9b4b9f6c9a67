package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tstranslate/internal/cache"
)

func TestSumIsDeterministicAndDistinguishesConcatenation(t *testing.T) {
	a := cache.Sum("ab", "c")
	b := cache.Sum("a", "bc")
	same := cache.Sum("ab", "c")

	assert.Equal(t, a, same)
	assert.NotEqual(t, a, b)
}

func TestDiskPutGetRoundTrips(t *testing.T) {
	dir := t.TempDir()
	d, err := cache.Open(filepath.Join(dir, "c"))
	require.NoError(t, err)

	key := cache.Sum("sym:Foo", "externs:false")
	entry := cache.Entry{Text: "!Foo", Warnings: []string{"approximated"}}
	require.NoError(t, d.Put(key, entry))

	got, ok, err := d.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "!Foo", got.Text)
	assert.Equal(t, []string{"approximated"}, got.Warnings)
}

func TestDiskGetMissReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	d, err := cache.Open(filepath.Join(dir, "c"))
	require.NoError(t, err)

	_, ok, err := d.Get(cache.Sum("nonexistent"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNilDiskIsSafe(t *testing.T) {
	var d *cache.Disk
	assert.NoError(t, d.Put(cache.Sum("x"), cache.Entry{}))
	_, ok, err := d.Get(cache.Sum("x"))
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, d.DropAll())
}

func TestDropAllRemovesEntries(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "c")
	d, err := cache.Open(root)
	require.NoError(t, err)

	key := cache.Sum("x")
	require.NoError(t, d.Put(key, cache.Entry{Text: "x"}))
	require.NoError(t, d.DropAll())

	_, ok, err := d.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)
}
