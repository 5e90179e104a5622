// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"scriptpick/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging.
	verbose bool
	// cfgDir allows pointing at a custom config directory.
	cfgDir string
	// noInject prints the invocation instead of dispatching the injector.
	noInject bool

	// cfg is the loaded configuration, shared by all commands.
	cfg *config.Config

	// rootCmd is the base command: browse the catalog and pick a script.
	rootCmd = &cobra.Command{
		Use:   "scriptpick <readme>...",
		Short: "Pick a script from Markdown-documented catalogs",
		Long: TitleStyle.Render("scriptpick") + SubtitleStyle.Render(" - an interactive picker for documented script collections") + `

scriptpick parses one or more read-me files that double as human-readable
documentation and machine-readable metadata, cross-checks them against the
script files on disk, and lets you browse the result by category. The
chosen invocation is pre-typed at your next prompt, never executed.

` + SubtitleStyle.Render("Read-me format:") + `
  ## Category          opens a category (the first ## is the contents)
  ### [Name](file.sh)  declares a script
  <!-- param -->       documents its parameters, or (none)
  one line of text     describes it

` + SubtitleStyle.Render("Examples:") + `
  ` + CmdStyle.Render("scriptpick ~/scripts/README.md") + `
  ` + CmdStyle.Render("scriptpick validate ~/scripts/README.md --watch") + `
  ` + CmdStyle.Render("scriptpick list ~/scripts/README.md --markdown"),
		Args: cobra.MinimumNArgs(1),
		RunE: runBrowse,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is the platform config dir)")
	rootCmd.Flags().BoolVar(&noInject, "no-inject", false, "print the invocation instead of pre-typing it")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig loads the configuration and wires logging.
func initRootConfig() {
	if cfgDir != "" {
		config.SetConfigDirOverride(cfgDir)
	}

	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		loaded = config.Default()
	}
	cfg = loaded

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
