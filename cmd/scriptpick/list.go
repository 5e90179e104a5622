// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"scriptpick/pkg/catalog"
)

// asMarkdown prints the raw re-serialized catalog instead of rendering it.
var asMarkdown bool

var listCmd = &cobra.Command{
	Use:   "list <readme>...",
	Short: "Print the merged catalog",
	Long: `Parse, merge, and reconcile the given read-mes, then print the combined
catalog. With --markdown the catalog is re-serialized in the read-me
shape, suitable for seeding a new read-me or diffing against an old one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&asMarkdown, "markdown", false, "print raw Markdown instead of rendering it")
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := buildCatalog(args)
	if err != nil {
		return err
	}

	md := catalog.RenderMarkdown(cat)
	if asMarkdown {
		fmt.Print(md)
		return nil
	}

	rendered, err := glamour.Render(md, cfg.UI.Theme)
	if err != nil {
		// Glamour failing is cosmetic; fall back to the raw text.
		rendered = md
	}
	fmt.Print(rendered)
	return nil
}
