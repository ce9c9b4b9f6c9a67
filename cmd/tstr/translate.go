package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tstranslate/internal/aliasscope"
	"tstranslate/internal/cache"
	"tstranslate/internal/config"
	"tstranslate/internal/diag"
	"tstranslate/internal/mangle"
	"tstranslate/internal/scenario"
	"tstranslate/internal/symbols"
	"tstranslate/internal/translate"
)

var (
	translateExterns   bool
	translateNoExterns bool
	translateNoCache   bool
)

func init() {
	translateCmd.Flags().BoolVar(&translateExterns, "externs", false, "force externs mode on, overriding the scenario's [project] setting")
	translateCmd.Flags().BoolVar(&translateNoExterns, "no-externs", false, "force externs mode off, overriding the scenario's [project] setting")
	translateCmd.Flags().BoolVar(&translateNoCache, "no-cache", false, "skip the on-disk translation cache")
}

var translateCmd = &cobra.Command{
	Use:   "translate <scenario.toml>",
	Short: "Translate every named root type in a scenario file",
	Long: `Loads a declarative scenario file enumerating symbols, declarations, and
type objects, runs the Type Translator once per named root type, and prints
the resulting strings and any diagnostics.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if translateExterns && translateNoExterns {
		return fmt.Errorf("--externs and --no-externs cannot be used together")
	}

	if err := applyColorMode(cmd); err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	w, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	var manifest *config.Manifest
	if !w.ProjectSectionPresent {
		if mpath, ok, ferr := config.FindManifest(filepath.Dir(args[0])); ferr == nil && ok {
			if m, lerr := config.Load(mpath); lerr == nil {
				manifest = &m
				w.Externs = m.Translate.Externs
				if paths := w.Files.Paths(); len(paths) > 0 {
					if blacklist, berr := m.ResolvePathBlacklist(paths); berr == nil {
						w.PathBlacklist = blacklist
					}
					if builtin, berr := m.ResolveBuiltinLibs(paths); berr == nil {
						w.BuiltinLibs = builtin
					}
				}
			}
		}
	}

	externs := w.Externs
	if translateExterns {
		externs = true
	}
	if translateNoExterns {
		externs = false
	}

	var diskCache *cache.Disk
	if !translateNoCache && (manifest == nil || !manifest.Cache.Disabled) {
		var cerr error
		if manifest != nil && manifest.Cache.Dir != "" {
			diskCache, cerr = cache.Open(manifest.Cache.Dir)
		} else {
			diskCache, cerr = cache.OpenDefault("tstr")
		}
		if cerr != nil {
			diskCache = nil
		}
	}
	var scenarioRaw []byte
	if diskCache != nil {
		scenarioRaw, _ = os.ReadFile(args[0])
	}

	bag := diag.NewBag(maxDiagnostics)
	scope := aliasscope.New()
	refNode := symbols.NoDeclID
	if w.Decls.Len() > 0 {
		refNode = symbols.DeclID(1)
	}

	out := cmd.OutOrStdout()
	for _, root := range w.Roots {
		var key cache.Digest
		if diskCache != nil && scenarioRaw != nil {
			key = cache.Sum(string(scenarioRaw), root.Name, strconv.FormatBool(externs))
			if entry, ok, _ := diskCache.Get(key); ok {
				fmt.Fprintf(out, "%s: %s\n", root.Name, entry.Text)
				for _, msg := range entry.Warnings {
					fmt.Fprintf(out, "  (cached) %s\n", msg)
				}
				continue
			}
		}

		before := bag.Len()
		tr := translate.New(w.Types, w.Symbols, w.Decls, w.Strings, w.Checker, mangle.Mangle,
			refNode,
			translate.WithExternsMode(externs),
			translate.WithPathBlacklist(w.PathBlacklist),
			translate.WithBuiltinLibPaths(w.BuiltinLibs),
			translate.WithReporter(diag.BagReporter{Bag: bag}),
			translate.WithAliasScope(scope),
		)
		text := tr.Translate(root.Type)
		fmt.Fprintf(out, "%s: %s\n", root.Name, text)

		if diskCache != nil && scenarioRaw != nil {
			warnings := make([]string, 0, bag.Len()-before)
			for _, d := range bag.Items()[before:] {
				warnings = append(warnings, d.Message)
			}
			_ = diskCache.Put(key, cache.Entry{Text: text, Warnings: warnings})
		}
	}

	printDiagnostics(cmd, bag)
	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, bag *diag.Bag) {
	if bag.Len() == 0 {
		return
	}
	out := cmd.ErrOrStderr()
	fmt.Fprintln(out)
	for _, d := range bag.Items() {
		fmt.Fprintf(out, "%s %s: %s\n", severityLabel(d.Severity), d.Code, d.Message)
		for _, note := range d.Notes {
			fmt.Fprintf(out, "  note: %s\n", note.Msg)
		}
	}
	if n := bag.ApproximationCount(); n > 0 {
		fmt.Fprintf(out, "%d approximation(s) in the translated output\n", n)
	}
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint("error")
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint("warning")
	default:
		return color.New(color.FgCyan).Sprint("info")
	}
}
