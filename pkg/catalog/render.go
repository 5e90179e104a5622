// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"fmt"
	"strings"
)

// RenderMarkdown re-serializes a catalog into the read-me shape the parser
// accepts: a contents marker, one level-2 heading per category, and per
// script the link heading, the parameter comment block, and the
// description line. Parsing the output of RenderMarkdown yields the same
// categories and scripts back (source directories are not representable).
func RenderMarkdown(c *Catalog) string {
	var b strings.Builder

	b.WriteString("# Scripts\n\n## Contents\n")

	for i, cat := range c.Categories {
		fmt.Fprintf(&b, "\n## %s\n", cat.Name)
		for _, s := range c.ScriptsInCategory(CategoryIndex(i)) {
			fmt.Fprintf(&b, "\n### [%s](%s)\n", s.Name, s.File)
			writeParams(&b, s.Params)
			b.WriteString(s.Description + "\n")
		}
	}

	return b.String()
}

// writeParams emits the bounded comment block for a script's parameters:
// the opener on the first line, one slot per line, the closer on the last.
func writeParams(b *strings.Builder, p Parameters) {
	if p.None() {
		b.WriteString("<!-- (none) -->\n")
		return
	}
	docs := p.Docs()
	for i, doc := range docs {
		switch {
		case len(docs) == 1:
			fmt.Fprintf(b, "<!-- %s -->\n", doc)
		case i == 0:
			fmt.Fprintf(b, "<!-- %s\n", doc)
		case i == len(docs)-1:
			fmt.Fprintf(b, "%s -->\n", doc)
		default:
			b.WriteString(doc + "\n")
		}
	}
}
