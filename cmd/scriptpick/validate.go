// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"scriptpick/internal/watch"
)

// watchMode re-validates on read-me or directory changes.
var watchMode bool

var validateCmd = &cobra.Command{
	Use:   "validate <readme>...",
	Short: "Check read-mes against the script files on disk",
	Long: `Parse and merge the given read-mes and reconcile the result against the
script files actually present, without opening the browser. Mismatches in
either direction are listed in full so they can be fixed in one pass.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&watchMode, "watch", false, "re-validate whenever a read-me or its directory changes")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if !watchMode {
		return validateOnce(args)
	}

	w, err := watch.New(watch.Config{
		Paths:    args,
		Debounce: cfg.Watch.Debounce,
		OnChange: func(ctx context.Context) error {
			err := validateOnce(args)
			if err == nil {
				fmt.Println(SuccessStyle.Render("✓ catalog and directories agree"))
			}
			// Keep watching whatever the result; the fatal-on-mismatch
			// contract applies to one-shot validation only.
			return err
		},
	})
	if err != nil {
		return err
	}

	fmt.Println(SubtitleStyle.Render("watching for changes, ctrl+c stops"))
	return w.Run(cmd.Context())
}

// validateOnce builds the catalog once, reporting mismatches the way the
// root command does but without entering the menu.
func validateOnce(paths []string) error {
	cat, err := buildCatalog(paths)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d categories, %d scripts across %d read-me(s)\n",
		SuccessStyle.Render("✓"), len(cat.Categories), len(cat.Scripts), len(cat.Sources))
	return nil
}
