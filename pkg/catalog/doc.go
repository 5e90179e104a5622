// SPDX-License-Identifier: MPL-2.0

// Package catalog turns semi-structured read-me files into a structured
// catalog of script categories and script records.
//
// A read-me doubles as human-readable documentation and machine-readable
// metadata. The package recognizes a small fixed subset of Markdown:
// level-2 headings open categories (the first one in each file is the
// table of contents and is skipped), level-3 headings of the shape
// "### [Name](file)" declare scripts, an HTML comment block right after a
// declaration documents up to five parameters (or the "(none)" sentinel),
// and the line after the comment block is the script's description.
//
// Parsing one file yields a Document; Merge concatenates the Documents of
// several sources into a single Catalog with globally numbered categories.
package catalog
