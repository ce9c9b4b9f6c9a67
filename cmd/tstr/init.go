package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"tstranslate/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new translator project",
	Long: `Initialize a new translator project by creating a project manifest (tstr.toml)
and a sample scenario file. If [path|name] is omitted, initializes the current
directory. If a non-existing name is provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit scaffolds a translator project at the target path (or the
// current working directory when no argument or "." is provided): a
// tstr.toml manifest and a sample scenario.toml. It resolves the target
// path, creates the directory if needed, derives a project name from the
// directory basename, and refuses to initialize if tstr.toml already
// exists.
func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "tstr-project"
	}

	manifestPath := filepath.Join(target, config.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := config.Default(name)
	manifest.Translate.PathBlacklistGlobs = []string{"vendor/*.d.ts"}
	manifest.Translate.BuiltinLibGlobs = []string{"lib.*.d.ts"}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(manifest); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, []byte(buf.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	scenarioPath := filepath.Join(target, "scenario.toml")
	createdScenario := false
	if _, err := os.Stat(scenarioPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(scenarioPath, []byte(defaultScenario()), 0o600); err != nil {
			return fmt.Errorf("failed to write scenario.toml: %w", err)
		}
		createdScenario = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized translator project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", config.ManifestName)
	if createdScenario {
		fmt.Fprintf(os.Stdout, "  - scenario.toml\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - scenario.toml (existing)\n")
	}
	return nil
}

// defaultScenario returns a minimal scenario translating a bare string
// type, so `tstr translate scenario.toml` works immediately after init.
func defaultScenario() string {
	return `[project]
externs = false

[[types]]
id = 1
kind = ["string"]

[[roots]]
name = "sample"
type = 1
`
}
