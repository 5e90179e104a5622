// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"scriptpick/pkg/catalog"
)

const fixtureReadme = `# Helpers

## Contents

## Utilities

### [Backup](backup.sh)
<!-- source dir
destination dir -->
Copies the source tree to the destination.

### [Cleanup](cleanup.sh)
<!-- (none) -->
Removes temporary files.

## Networking

### [Ping sweep](sweep.sh)
<!-- subnet -->
Pings every host in a subnet.
`

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Merge([]catalog.Source{{Path: "r", Dir: ".", Text: fixtureReadme}})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	return cat
}

// press feeds one key through Update and returns the resulting command.
func press(t *testing.T, b *Browser, key tea.KeyMsg) tea.Cmd {
	t.Helper()
	model, cmd := b.Update(key)
	if model != b {
		t.Fatalf("Update returned a different model %T", model)
	}
	return cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBrowserFullSelectionFlow(t *testing.T) {
	t.Parallel()

	b := NewBrowser(fixtureCatalog(t))

	// Confirm without a selection: notice, still browsing.
	press(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	if out := b.Outcome(); out.Chosen || out.Cancelled {
		t.Fatal("unset confirm produced an outcome")
	}
	if !strings.Contains(b.View(), "pick one") {
		t.Error("view lacks the confirm notice")
	}

	// Down selects Utilities; enter moves to the script level with the
	// first script pre-selected.
	press(t, b, tea.KeyMsg{Type: tea.KeyDown})
	press(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	view := b.View()
	if !strings.Contains(view, "Scripts") {
		t.Fatalf("script section missing after category confirm:\n%s", view)
	}
	if !strings.Contains(view, "Copies the source tree") {
		t.Errorf("description of the pre-selected script missing:\n%s", view)
	}

	// Jump to Cleanup by initial letter and confirm.
	press(t, b, keyRune('c'))
	if !strings.Contains(b.View(), "takes no parameters") {
		t.Errorf("no-parameter marker missing:\n%s", b.View())
	}
	cmd := press(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("script confirm produced no quit command")
	}

	out := b.Outcome()
	if !out.Chosen || out.Cancelled {
		t.Fatalf("outcome = %+v, want chosen", out)
	}
	if out.Script.File != "cleanup.sh" {
		t.Errorf("chosen script = %q, want cleanup.sh", out.Script.File)
	}
}

func TestBrowserCancelAtEitherLevel(t *testing.T) {
	t.Parallel()

	// Category level.
	b := NewBrowser(fixtureCatalog(t))
	if cmd := press(t, b, tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Fatal("esc at category level produced no quit command")
	}
	if out := b.Outcome(); !out.Cancelled {
		t.Errorf("outcome = %+v, want cancelled", out)
	}

	// Script level.
	b = NewBrowser(fixtureCatalog(t))
	press(t, b, tea.KeyMsg{Type: tea.KeyDown})
	press(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := press(t, b, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatal("ctrl+c at script level produced no quit command")
	}
	if out := b.Outcome(); !out.Cancelled {
		t.Errorf("outcome = %+v, want cancelled", out)
	}
}

func TestBrowserUnrecognizedKeyNotice(t *testing.T) {
	t.Parallel()

	b := NewBrowser(fixtureCatalog(t))
	press(t, b, tea.KeyMsg{Type: tea.KeySpace})
	if !strings.Contains(b.View(), "unrecognized input") {
		t.Errorf("view lacks the unrecognized-input notice:\n%s", b.View())
	}

	// The notice is transient.
	press(t, b, tea.KeyMsg{Type: tea.KeyDown})
	if strings.Contains(b.View(), "unrecognized input") {
		t.Error("notice survived the next event")
	}
}

func TestBrowserCategoryJumpByLetter(t *testing.T) {
	t.Parallel()

	b := NewBrowser(fixtureCatalog(t))
	press(t, b, keyRune('N'))
	press(t, b, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(b.View(), "Ping sweep") {
		t.Errorf("jump to Networking did not surface its scripts:\n%s", b.View())
	}
}

func TestBrowserWrapsDescriptionToWindowWidth(t *testing.T) {
	t.Parallel()

	b := NewBrowser(fixtureCatalog(t))
	press(t, b, tea.KeyMsg{Type: tea.KeyDown})
	press(t, b, tea.KeyMsg{Type: tea.KeyEnter})

	const sentence = "Copies the source tree to the destination."
	if !strings.Contains(b.View(), sentence) {
		t.Fatalf("description not on a single line before resize:\n%s", b.View())
	}

	model, _ := b.Update(tea.WindowSizeMsg{Width: 16, Height: 40})
	if model != b {
		t.Fatalf("Update returned a different model %T", model)
	}
	view := b.View()
	if strings.Contains(view, sentence) {
		t.Errorf("description ignored the 16-column window:\n%s", view)
	}
	if !strings.Contains(view, "Copies") {
		t.Errorf("wrapped description lost its text:\n%s", view)
	}
}

func TestBrowserViewListsCategoriesWithCounts(t *testing.T) {
	t.Parallel()

	view := NewBrowser(fixtureCatalog(t)).View()
	for _, want := range []string{"Utilities (2)", "Networking (1)", "scriptpick"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}
