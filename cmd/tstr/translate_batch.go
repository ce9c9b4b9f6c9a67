package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tstranslate/internal/batch"
	"tstranslate/internal/cache"
	"tstranslate/internal/config"
	"tstranslate/internal/diag"
)

var (
	batchExterns    bool
	batchNoExterns  bool
	batchConcurrent int
	batchUI         string
	batchNoCache    bool
)

func init() {
	translateBatchCmd.Flags().BoolVar(&batchExterns, "externs", false, "force externs mode on for every file")
	translateBatchCmd.Flags().BoolVar(&batchNoExterns, "no-externs", false, "force externs mode off for every file")
	translateBatchCmd.Flags().IntVar(&batchConcurrent, "concurrency", 0, "max concurrent files (0 = unbounded)")
	translateBatchCmd.Flags().StringVar(&batchUI, "ui", "", "override the --ui setting for this command (auto|on|off)")
	translateBatchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "skip the on-disk translation cache")
}

var translateBatchCmd = &cobra.Command{
	Use:   "translate-batch <dir>",
	Short: "Translate every scenario file under a directory",
	Long: `Discovers *.toml scenario files under a directory and translates each one
concurrently, reporting progress as files complete.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslateBatch,
}

func runTranslateBatch(cmd *cobra.Command, args []string) error {
	if batchExterns && batchNoExterns {
		return fmt.Errorf("--externs and --no-externs cannot be used together")
	}

	if err := applyColorMode(cmd); err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	uiFlag := batchUI
	if uiFlag == "" {
		uiFlag, err = cmd.Root().PersistentFlags().GetString("ui")
		if err != nil {
			return fmt.Errorf("failed to get ui flag: %w", err)
		}
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	paths, err := listScenarioFiles(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.toml scenario files found under %s", args[0])
	}

	opts := batch.Options{
		Concurrency: batchConcurrent,
		MaxDiag:     maxDiagnostics,
	}
	if batchExterns {
		t := true
		opts.ExternsMode = &t
	}
	if batchNoExterns {
		f := false
		opts.ExternsMode = &f
	}

	if mpath, ok, ferr := config.FindManifest(args[0]); ferr == nil && ok {
		if m, lerr := config.Load(mpath); lerr == nil {
			opts.Manifest = &m
			if !batchNoCache && !m.Cache.Disabled {
				dir := m.Cache.Dir
				var c *cache.Disk
				var cerr error
				if dir != "" {
					c, cerr = cache.Open(dir)
				} else {
					c, cerr = cache.OpenDefault("tstr")
				}
				if cerr == nil {
					opts.Cache = c
				}
			}
		}
	} else if !batchNoCache {
		if c, cerr := cache.OpenDefault("tstr"); cerr == nil {
			opts.Cache = c
		}
	}

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var results []batch.FileResult
	if !quiet && shouldUseTUI(mode, len(paths)) {
		results, err = runBatchWithUI(ctx, "tstr translate-batch", paths, opts)
	} else {
		results, err = batch.Run(ctx, paths, opts)
	}
	if err != nil {
		return err
	}

	failures := printBatchResults(cmd, paths, results, quiet)
	if failures > 0 {
		os.Exit(1)
	}
	return nil
}

func printBatchResults(cmd *cobra.Command, paths []string, results []batch.FileResult, quiet bool) int {
	out := cmd.OutOrStdout()
	failures := 0
	for i, res := range results {
		path := paths[i]
		if res.Err != nil {
			failures++
			fmt.Fprintf(out, "%s %s: %v\n", color.New(color.FgRed, color.Bold).Sprint("FAIL"), path, res.Err)
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "%s %s\n", color.New(color.FgGreen, color.Bold).Sprint("OK"), path)
			for _, root := range res.Roots {
				fmt.Fprintf(out, "  %s: %s\n", root.Name, root.Text)
			}
		}
		if len(res.Diagnostics) > 0 {
			for _, d := range res.Diagnostics {
				fmt.Fprintf(out, "  %s %s: %s\n", severityLabel(d.Severity), d.Code, d.Message)
			}
			if n := diag.CountApproximations(res.Diagnostics); n > 0 && !quiet {
				fmt.Fprintf(out, "  %d approximation(s)\n", n)
			}
			hasErr := false
			for _, d := range res.Diagnostics {
				if d.Severity.AtLeast(diag.SevError) {
					hasErr = true
				}
			}
			if hasErr {
				failures++
			}
		}
	}
	return failures
}

func listScenarioFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".toml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
