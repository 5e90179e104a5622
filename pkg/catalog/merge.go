// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadSource reads one read-me file and derives its script source directory
// from the file's parent. It does not parse the text.
func LoadSource(path string) (Source, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("load read-me %s: %w", path, err)
	}
	return Source{
		Path: path,
		Dir:  filepath.Dir(path),
		Text: string(text),
	}, nil
}

// Merge parses every source in caller order and concatenates the results
// into one Catalog. Category indices are renumbered to be globally unique
// and contiguous: categories of source K come after all categories of
// sources before K. Each script records its source's directory.
func Merge(sources []Source) (*Catalog, error) {
	cat := &Catalog{Sources: sources}

	for _, src := range sources {
		doc, err := Parse(src.Path, src.Text)
		if err != nil {
			return nil, err
		}

		offset := CategoryIndex(len(cat.Categories))
		cat.Categories = append(cat.Categories, doc.Categories...)
		for _, s := range doc.Scripts {
			s.Category += offset
			s.sourceDir = src.Dir
			cat.Scripts = append(cat.Scripts, s)
		}
	}

	return cat, nil
}
