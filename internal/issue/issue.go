// SPDX-License-Identifier: MPL-2.0

// Package issue holds the catalog of user-facing fatal conditions and the
// actionable error type used to report them. Issue texts are Markdown and
// rendered with glamour before printing.
package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// Id looks an Issue up in the catalog.
	Id int

	// MarkdownMsg is the Markdown text rendered for an issue.
	MarkdownMsg string

	// Issue is one fatal condition with its user-facing explanation.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

const (
	// ReadmeNotFoundId: a read-me path argument names no file.
	ReadmeNotFoundId Id = iota + 1
	// SourceDirNotFoundId: a read-me's parent directory is missing.
	SourceDirNotFoundId
	// FormatErrorId: a read-me violates the catalog format.
	FormatErrorId
	// ReconcileFailedId: catalog and disk disagree.
	ReconcileFailedId
	// EmptyCatalogId: the merged catalog declares nothing to pick.
	EmptyCatalogId
)

// render is swapped out in tests.
var render = glamour.Render

var (
	readmeNotFoundIssue = &Issue{
		id: ReadmeNotFoundId,
		mdMsg: `
# Read-me not found!

One of the paths you passed does not name a read-me file.

## Things you can try:
- Check the path for typos
- Pass the read-me file itself, not its directory:
~~~
$ scriptpick /path/to/scripts/README.md
~~~`,
	}

	sourceDirNotFoundIssue = &Issue{
		id: SourceDirNotFoundId,
		mdMsg: `
# Script directory not found!

The parent directory of one of your read-mes does not exist, so there is
no place to look for the documented scripts.`,
	}

	formatErrorIssue = &Issue{
		id: FormatErrorId,
		mdMsg: `
# Failed to parse a read-me!

A read-me broke the catalog format. The offending line is shown above.

## The format, in short:
- the first level-2 heading is the table of contents and is skipped
- every later level-2 heading opens a category
- a script is a level-3 heading of the shape ` + "`### [Name](file.sh)`" + `
- the lines right after it are an HTML comment documenting up to five
  parameters, or ` + "`<!-- (none) -->`" + `
- the line after the comment is the one-line description`,
	}

	reconcileFailedIssue = &Issue{
		id: ReconcileFailedId,
		mdMsg: `
# Catalog and directory disagree!

The read-mes and the script directories no longer match; the full list of
mismatches is shown above.

## Things you can try:
- Add the missing files, or remove their read-me entries
- Document the stray scripts in a read-me
- Re-run to verify:
~~~
$ scriptpick validate README.md
~~~`,
	}

	emptyCatalogIssue = &Issue{
		id: EmptyCatalogId,
		mdMsg: `
# Nothing to pick!

The read-mes parsed cleanly but declare no categories or scripts beyond
the table of contents.`,
	}

	// registry indexes every issue by Id.
	registry = map[Id]*Issue{
		ReadmeNotFoundId:    readmeNotFoundIssue,
		SourceDirNotFoundId: sourceDirNotFoundIssue,
		FormatErrorId:       formatErrorIssue,
		ReconcileFailedId:   reconcileFailedIssue,
		EmptyCatalogId:      emptyCatalogIssue,
	}
)

// Id returns the issue's catalog id.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw Markdown text of the issue.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render produces the terminal rendering of the issue.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// Lookup returns the Issue for id, or nil when the id is unknown.
func Lookup(id Id) *Issue {
	return registry[id]
}

// Ids returns all catalog ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(registry)
	slices.Sort(ids)
	return ids
}
