package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tstranslate/internal/config"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, config.ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestFindManifestWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[project]\nname = \"demo\"\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, ok, err := config.FindManifest(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, config.ManifestName), found)
}

func TestFindManifestNotFound(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := config.FindManifest(dir)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadParsesManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[project]
name = "demo"

[translate]
externs = true
path_blacklist = ["vendor/*"]

[cache]
dir = "/tmp/demo-cache"
`)

	m, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Project.Name)
	assert.True(t, m.Translate.Externs)
	assert.Equal(t, []string{"vendor/*"}, m.Translate.PathBlacklistGlobs)
	assert.Equal(t, "/tmp/demo-cache", m.Cache.Dir)
}

func TestResolvePathBlacklistMatchesGlobs(t *testing.T) {
	m := config.Default("demo")
	m.Translate.PathBlacklistGlobs = []string{"vendor/*.d.ts"}

	matched, err := m.ResolvePathBlacklist([]string{"vendor/lib.d.ts", "src/app.ts"})
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor/lib.d.ts"}, matched)
}
