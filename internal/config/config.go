// Package config loads a translator project manifest (tstr.toml), found by
// walking up from a starting directory until one is found.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file a project manifest is stored under.
const ManifestName = "tstr.toml"

// Manifest is a translator project's tstr.toml, controlling the default
// externs-mode setting, the path blacklist, and the disk cache location.
type Manifest struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`

	Translate struct {
		// Externs toggles C6 externs mode by default for this project.
		Externs bool `toml:"externs"`
		// PathBlacklistGlobs are glob patterns matched against a
		// declaration's source-file path; matching symbols always
		// translate to the unknown sentinel.
		PathBlacklistGlobs []string `toml:"path_blacklist"`
		// BuiltinLibGlobs mark source files as belonging to the target
		// dialect's built-in lib, consulted by the Interface case of
		// the object-kind dispatch.
		BuiltinLibGlobs []string `toml:"builtin_libs"`
	} `toml:"translate"`

	Cache struct {
		// Dir overrides the disk cache location; empty means use the
		// platform default (XDG_CACHE_HOME or ~/.cache).
		Dir string `toml:"dir"`
		// Disabled turns off the disk cache entirely.
		Disabled bool `toml:"disabled"`
	} `toml:"cache"`
}

// Default returns a Manifest with every field at its zero/default value.
func Default(name string) Manifest {
	var m Manifest
	m.Project.Name = name
	return m
}

// FindManifest walks up from startDir looking for tstr.toml, checking each
// directory in turn before trying its parent.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path.
func Load(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return m, nil
}

// ResolvePathBlacklist expands PathBlacklistGlobs against the declaration
// paths in files, returning the set of paths that actually match at least
// one glob.
func (m Manifest) ResolvePathBlacklist(files []string) ([]string, error) {
	return matchGlobs(m.Translate.PathBlacklistGlobs, files)
}

// ResolveBuiltinLibs expands BuiltinLibGlobs the same way.
func (m Manifest) ResolveBuiltinLibs(files []string) ([]string, error) {
	return matchGlobs(m.Translate.BuiltinLibGlobs, files)
}

func matchGlobs(globs []string, files []string) ([]string, error) {
	var matched []string
	for _, f := range files {
		for _, g := range globs {
			ok, err := filepath.Match(g, f)
			if err != nil {
				return nil, fmt.Errorf("invalid glob %q: %w", g, err)
			}
			if ok {
				matched = append(matched, f)
				break
			}
		}
	}
	return matched, nil
}
