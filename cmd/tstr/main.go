package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tstranslate/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tstr",
	Short: "Type translator CLI and demo harness",
	Long:  `tstr exercises the Type Translator end to end against declarative scenario files.`,
}

// main sets the command version, registers subcommands and persistent
// flags, then executes the root command. A non-nil error exits with status
// code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(translateBatchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("ui", "auto", "progress UI mode (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// applyColorMode reads the --color persistent flag and toggles the
// fatih/color package's global switch accordingly, so every severityLabel
// call downstream reflects the user's choice without threading it through.
func applyColorMode(cmd *cobra.Command) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
	return nil
}
