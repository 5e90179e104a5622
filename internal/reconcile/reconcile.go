// SPDX-License-Identifier: MPL-2.0

// Package reconcile cross-validates a merged catalog against the script
// files actually present in the source directories. Both directions are
// checked and every violation is collected, so the user can fix the
// read-mes and directories in one pass.
package reconcile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"scriptpick/pkg/catalog"
)

// Spec headings under which the two violation lists are reported.
const (
	HeadingMissingFromDisk    = "present in catalog but missing from disk"
	HeadingMissingFromCatalog = "present on disk but missing from catalog"
)

// Report holds the two violation lists of a reconciliation run. Both lists
// are deduplicated and sorted. The catalog is only usable when both are
// empty.
type Report struct {
	// MissingFromDisk lists file references declared by some read-me that
	// resolve to no file in any source directory.
	MissingFromDisk []string

	// MissingFromCatalog lists on-disk script files whose name appears in
	// no read-me. Matching is deliberately lenient: a bare file name
	// mentioned anywhere in any source's raw text counts as covered, even
	// in prose outside a script heading.
	MissingFromCatalog []string
}

// OK reports whether the catalog and the directories agree in both
// directions.
func (r *Report) OK() bool {
	return len(r.MissingFromDisk) == 0 && len(r.MissingFromCatalog) == 0
}

// String renders the report with the two spec headings, omitting empty
// sections. An OK report renders as the empty string.
func (r *Report) String() string {
	var b strings.Builder
	writeSection := func(heading string, entries []string) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s:\n", heading)
		for _, e := range entries {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}
	writeSection(HeadingMissingFromDisk, r.MissingFromDisk)
	writeSection(HeadingMissingFromCatalog, r.MissingFromCatalog)
	return b.String()
}

// Check reconciles the catalog against disk. ext is the scripts'
// file-extension convention (e.g. ".sh") used to decide which directory
// entries must be covered by a read-me. Directory read failures are
// reported as errors; individual mismatches go into the Report.
func Check(cat *catalog.Catalog, ext string) (*Report, error) {
	report := &Report{}

	missingDisk := map[string]struct{}{}
	for _, s := range cat.Scripts {
		if !resolves(s, cat.Sources) {
			missingDisk[string(s.File)] = struct{}{}
		}
	}

	missingCatalog := map[string]struct{}{}
	seenDirs := map[string]struct{}{}
	for _, src := range cat.Sources {
		if _, dup := seenDirs[src.Dir]; dup {
			continue
		}
		seenDirs[src.Dir] = struct{}{}

		entries, err := os.ReadDir(src.Dir)
		if err != nil {
			return nil, fmt.Errorf("reconcile: scan %s: %w", src.Dir, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ext) {
				continue
			}
			if !mentioned(name, cat.Sources) {
				missingCatalog[name] = struct{}{}
			}
		}
	}

	report.MissingFromDisk = sortedKeys(missingDisk)
	report.MissingFromCatalog = sortedKeys(missingCatalog)
	return report, nil
}

// resolves reports whether the script's file reference names a real file,
// checking its own source directory first and then the other source
// directories (scripts may be shared across read-me trees).
func resolves(s catalog.Script, sources []catalog.Source) bool {
	if fileExists(filepath.Join(s.SourceDir(), string(s.File))) {
		return true
	}
	for _, src := range sources {
		if src.Dir == s.SourceDir() {
			continue
		}
		if fileExists(filepath.Join(src.Dir, string(s.File))) {
			return true
		}
	}
	return false
}

// mentioned reports whether the bare file name occurs in any source's raw
// text. This is a substring search, not a link-target match; see Report.
func mentioned(name string, sources []catalog.Source) bool {
	for _, src := range sources {
		if strings.Contains(src.Text, name) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}
