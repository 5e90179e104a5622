// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"scriptpick/internal/invoke"
	"scriptpick/internal/issue"
	"scriptpick/internal/reconcile"
	"scriptpick/internal/tui"
	"scriptpick/pkg/catalog"
)

// runBrowse is the root command: build and validate the catalog, run the
// two-level browser, and hand the chosen invocation to the injector.
func runBrowse(cmd *cobra.Command, args []string) error {
	cat, err := buildCatalog(args)
	if err != nil {
		return err
	}
	if len(cat.Categories) == 0 {
		printIssue(issue.EmptyCatalogId)
		return &ExitError{Code: ExitFailure, Err: errors.New("empty catalog")}
	}

	outcome, err := tui.Run(cat)
	if err != nil {
		return err
	}
	if outcome.Cancelled {
		fmt.Println(SubtitleStyle.Render("Nothing picked. Bye!"))
		return nil
	}

	invocation := invoke.Build(outcome.Script)
	if noInject {
		fmt.Println(invocation)
		return nil
	}

	injector, err := invoke.NewCommandInjector(cfg.Inject.Command, cfg.Inject.Delay)
	if err != nil {
		return issue.Wrap(err, "build injector", "").
			WithSuggestion("Set inject.command in your config file")
	}
	// Fire-and-forget: the injector's outcome does not affect the run.
	if err := injector.Inject(cmd.Context(), invocation); err != nil {
		log.Warn("injection dispatch failed", "err", err)
	}
	return nil
}

// buildCatalog runs the startup checks, parses and merges all read-mes,
// and reconciles the result against disk. Any failure is fatal and maps
// to the corresponding catalog issue.
func buildCatalog(paths []string) (*catalog.Catalog, error) {
	sources, err := loadSources(paths)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Merge(sources)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		printIssue(issue.FormatErrorId)
		return nil, &ExitError{Code: ExitFailure, Err: err}
	}
	if ok, errs := cat.IsValid(); !ok {
		return nil, &ExitError{Code: ExitFailure, Err: errors.Join(errs...)}
	}

	report, err := reconcile.Check(cat, cfg.Scripts.Extension)
	if err != nil {
		return nil, err
	}
	if !report.OK() {
		fmt.Fprint(os.Stderr, report.String())
		printIssue(issue.ReconcileFailedId)
		return nil, &ExitError{Code: ExitFailure, Err: errors.New("catalog and directories disagree")}
	}

	log.Debug("catalog ready",
		"sources", len(cat.Sources),
		"categories", len(cat.Categories),
		"scripts", len(cat.Scripts))
	return cat, nil
}

// loadSources checks every argument's file and parent directory before
// any parsing happens; the first failure aborts the run.
func loadSources(paths []string) ([]catalog.Source, error) {
	sources := make([]catalog.Source, 0, len(paths))
	for _, path := range paths {
		src, err := catalog.LoadSource(path)
		if err != nil {
			printIssue(issue.ReadmeNotFoundId)
			return nil, &ExitError{
				Code: ExitUsage,
				Err:  issue.Wrap(err, "load read-me", path),
			}
		}
		if info, err := os.Stat(src.Dir); err != nil || !info.IsDir() {
			printIssue(issue.SourceDirNotFoundId)
			return nil, &ExitError{
				Code: ExitUsage,
				Err:  issue.Wrap(errors.New("not a directory"), "locate script directory", src.Dir),
			}
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// printIssue renders one catalog issue to stderr, falling back to the raw
// Markdown when rendering fails.
func printIssue(id issue.Id) {
	iss := issue.Lookup(id)
	if iss == nil {
		return
	}
	rendered, err := iss.Render(cfg.UI.Theme)
	if err != nil {
		rendered = string(iss.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, rendered)
}
