// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// ErrFormat is the sentinel error wrapped by FormatError.
var ErrFormat = errors.New("read-me format error")

// scriptHeadingRE matches a script declaration: a level-3 heading whose
// whole content is a Markdown link, e.g. "### [Backup](backup.sh)".
var scriptHeadingRE = regexp.MustCompile(`^###\s+\[([^\]]*)\]\(([^)]*)\)\s*$`)

type (
	// parseState enumerates the parser's line-driven states. The parser is
	// strictly sequential: each line is classified by the current state and
	// never looked at again.
	parseState int

	// FormatError is a fatal read-me format violation. It carries the
	// offending line so the user can fix the read-me in one pass.
	FormatError struct {
		Source string
		LineNo int
		Line   string
		Reason string
	}

	// parser accumulates one Document while stepping through a read-me
	// line by line.
	parser struct {
		source string
		state  parseState
		lineNo int

		doc     Document
		tocSeen bool
		pending Script   // script being assembled since its heading line
		docs    []string // parameter descriptions collected so far
	}
)

const (
	// stateSeeking scans for the next heading; all other lines are prose.
	stateSeeking parseState = iota
	// stateParam1..stateParam5 expect the comment line documenting the
	// corresponding parameter slot of the pending script.
	stateParam1
	stateParam2
	stateParam3
	stateParam4
	stateParam5
	// stateDescription expects the pending script's one-line description.
	stateDescription
)

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Source, e.LineNo, e.Reason, e.Line)
}

// Unwrap returns ErrFormat for errors.Is() compatibility.
func (e *FormatError) Unwrap() error { return ErrFormat }

// Parse converts the raw text of one read-me into a Document. source names
// the read-me in error messages. A read-me declaring no categories beyond
// its table of contents yields an empty Document, not an error.
func Parse(source, text string) (*Document, error) {
	p := &parser{source: source, state: stateSeeking}

	for _, raw := range strings.Split(text, "\n") {
		p.lineNo++
		line := strings.TrimSuffix(raw, "\r")

		var err error
		switch p.state {
		case stateSeeking:
			err = p.stepSeeking(line)
		case stateDescription:
			err = p.stepDescription(line)
		default:
			err = p.stepParam(line)
		}
		if err != nil {
			return nil, err
		}
	}

	if p.state != stateSeeking {
		return nil, &FormatError{
			Source: p.source,
			LineNo: p.lineNo,
			Line:   "",
			Reason: "unexpected end of file inside script declaration",
		}
	}

	return &p.doc, nil
}

// formatErr builds a FormatError for the current line.
func (p *parser) formatErr(line, reason string) error {
	return &FormatError{Source: p.source, LineNo: p.lineNo, Line: line, Reason: reason}
}

// stepSeeking handles headings and ignores free-form prose. The first
// level-2 heading of the file is the table of contents and opens nothing.
func (p *parser) stepSeeking(line string) error {
	if m := scriptHeadingRE.FindStringSubmatch(line); m != nil {
		if len(p.doc.Categories) == 0 {
			return p.formatErr(line, "script declared before any category")
		}
		p.pending = Script{
			Category: CategoryIndex(len(p.doc.Categories) - 1),
			Name:     m[1],
			File:     FileRef(m[2]),
		}
		p.docs = nil
		p.state = stateParam1
		return nil
	}

	if name, ok := categoryHeading(line); ok {
		if !p.tocSeen {
			p.tocSeen = true
			return nil
		}
		p.doc.Categories = append(p.doc.Categories, Category{Name: name})
		return nil
	}

	return nil
}

// stepParam handles one line of the pending script's parameter block.
// The block is bounded: the first line must contain the comment opener,
// continuation lines are bare until one carries the closer. Each line
// documents exactly one parameter slot; delimiters are stripped wherever
// they appear.
func (p *parser) stepParam(line string) error {
	slot := int(p.state-stateParam1) + 1

	if slot == 1 && !strings.Contains(line, commentOpen) {
		return p.formatErr(line, "expected parameter comment after script heading")
	}

	text := strings.Replace(line, commentOpen, "", 1)
	closed := strings.Contains(text, commentClose)
	text = strings.TrimSpace(strings.Replace(text, commentClose, "", 1))

	if closed {
		if slot == 1 && text == noneSentinel {
			p.pending.Params = NoParameters()
		} else {
			p.pending.Params = documented(append(p.docs, text))
		}
		p.docs = nil
		p.state = stateDescription
		return nil
	}

	if slot == MaxParameters {
		return p.formatErr(line, fmt.Sprintf("more than %d parameters documented", MaxParameters))
	}
	p.docs = append(p.docs, text)
	p.state++
	return nil
}

// stepDescription takes the line verbatim as the pending script's
// description and commits the script to its category.
func (p *parser) stepDescription(line string) error {
	p.pending.Description = strings.TrimSpace(line)
	p.doc.Scripts = append(p.doc.Scripts, p.pending)
	p.doc.Categories[p.pending.Category].ScriptCount++
	p.pending = Script{}
	p.state = stateSeeking
	return nil
}

// categoryHeading reports whether line is a level-2 heading and returns its
// stripped name. Level-3 headings do not match.
func categoryHeading(line string) (string, bool) {
	if !strings.HasPrefix(line, "## ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "## ")), true
}
