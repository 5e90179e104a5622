// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxParameters is the maximum number of documented parameters per script.
const MaxParameters = 5

// noneSentinel is the literal comment text declaring a parameterless script.
const noneSentinel = "(none)"

// ErrInvalidCatalog is the sentinel error wrapped by catalog validation errors.
var ErrInvalidCatalog = errors.New("invalid catalog")

type (
	// CategoryIndex is a 0-based position in the merged category list.
	CategoryIndex int

	// FileRef is a script's file name as written in a read-me link target,
	// resolved relative to the source read-me's directory.
	FileRef string

	// Category is a named group of scripts. ScriptCount is maintained by the
	// parser as scripts are assigned to the category.
	Category struct {
		Name        string
		ScriptCount int
	}

	// Parameters is the tagged parameter variant of a script: either the
	// explicit "takes no parameters" marker or an ordered list of 1 to
	// MaxParameters textual descriptions. The zero value is NoParameters.
	Parameters struct {
		docs []string
	}

	// Script is one catalog entry: the display name and file reference from
	// a read-me link, the documented parameters, and a one-line description.
	// sourceDir is auxiliary metadata recorded by Merge so later stages can
	// resolve File against the read-me's directory.
	Script struct {
		Category    CategoryIndex
		Name        string
		File        FileRef
		Params      Parameters
		Description string

		sourceDir string
	}

	// Document is the parse result of a single read-me: the categories and
	// scripts declared in it, with Category indices local to the document.
	Document struct {
		Categories []Category
		Scripts    []Script
	}

	// Source is one read-me input: its path, its parent directory (the
	// script source directory), and its raw text.
	Source struct {
		Path string
		Dir  string
		Text string
	}

	// Catalog is the merged, immutable result of parsing all sources.
	// Category indices are contiguous and global across sources.
	Catalog struct {
		Categories []Category
		Scripts    []Script
		Sources    []Source
	}
)

// String returns the decimal string representation of the CategoryIndex.
func (i CategoryIndex) String() string { return strconv.Itoa(int(i)) }

// NoParameters returns the marker for a script that takes no parameters.
func NoParameters() Parameters { return Parameters{} }

// documented builds a Parameters value from collected comment lines. The
// parser guarantees 1 <= len(docs) <= MaxParameters.
func documented(docs []string) Parameters {
	return Parameters{docs: docs}
}

// None reports whether the script takes no parameters.
func (p Parameters) None() bool { return len(p.docs) == 0 }

// Count returns the number of documented parameters (0 for NoParameters).
func (p Parameters) Count() int { return len(p.docs) }

// Docs returns a copy of the ordered parameter descriptions. It is empty
// for NoParameters.
func (p Parameters) Docs() []string {
	out := make([]string, len(p.docs))
	copy(out, p.docs)
	return out
}

// SourceDir returns the directory of the read-me that declared the script.
// It is empty for scripts that have not gone through Merge.
func (s Script) SourceDir() string { return s.sourceDir }

// IsValid reports whether the catalog satisfies its structural invariants:
// every script references an existing category, and per-category script
// counts match the scripts actually assigned.
func (c *Catalog) IsValid() (bool, []error) {
	var errs []error

	counts := make([]int, len(c.Categories))
	for _, s := range c.Scripts {
		if s.Category < 0 || int(s.Category) >= len(c.Categories) {
			errs = append(errs, fmt.Errorf("%w: script %q references category %d of %d",
				ErrInvalidCatalog, s.Name, s.Category, len(c.Categories)))
			continue
		}
		counts[s.Category]++
	}
	for i, cat := range c.Categories {
		if i < len(counts) && counts[i] != cat.ScriptCount {
			errs = append(errs, fmt.Errorf("%w: category %q declares %d scripts, has %d",
				ErrInvalidCatalog, cat.Name, cat.ScriptCount, counts[i]))
		}
	}

	return len(errs) == 0, errs
}

// ScriptsInCategory returns the scripts assigned to the given category, in
// catalog order.
func (c *Catalog) ScriptsInCategory(idx CategoryIndex) []Script {
	var out []Script
	for _, s := range c.Scripts {
		if s.Category == idx {
			out = append(out, s)
		}
	}
	return out
}
