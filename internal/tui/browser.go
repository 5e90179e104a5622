// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"scriptpick/internal/menu"
	"scriptpick/pkg/catalog"
)

type (
	// phase tracks which menu level the browser is on.
	phase int

	// Outcome is the result of a browser run: either a chosen script or a
	// cancellation.
	Outcome struct {
		Script    catalog.Script
		Chosen    bool
		Cancelled bool
	}

	// Browser is the tea.Model for the two-level picker. It drives one
	// menu.Level at a time: the category level first, then the script
	// level scoped to the confirmed category.
	Browser struct {
		cat    *catalog.Catalog
		styles Styles

		phase          phase
		level          *menu.Level
		chosenCategory catalog.CategoryIndex
		scripts        []catalog.Script

		outcome Outcome
		width   int
	}
)

const (
	phaseCategory phase = iota
	phaseScript
	phaseFinished
)

// NewBrowser creates a Browser at the category level with no selection
// set, per the navigator contract.
func NewBrowser(cat *catalog.Catalog) *Browser {
	names := make([]string, len(cat.Categories))
	for i, c := range cat.Categories {
		names[i] = c.Name
	}
	return &Browser{
		cat:    cat,
		styles: DefaultStyles(),
		phase:  phaseCategory,
		level:  menu.NewLevel(names, menu.NoSelection),
	}
}

// Outcome returns the run result. Only meaningful after the program quit.
func (b *Browser) Outcome() Outcome { return b.outcome }

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd { return nil }

// Update implements tea.Model, translating keystrokes into menu events
// and advancing the phase on confirmed levels.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil
	case tea.KeyMsg:
		b.level.Apply(keyToEvent(msg))
		return b.advance()
	}
	return b, nil
}

// advance reacts to the current level reaching a terminal state.
func (b *Browser) advance() (tea.Model, tea.Cmd) {
	switch b.level.State() {
	case menu.StateCancelled:
		b.outcome = Outcome{Cancelled: true}
		b.phase = phaseFinished
		return b, tea.Quit

	case menu.StateConfirmed:
		if b.phase == phaseCategory {
			b.enterScriptLevel(catalog.CategoryIndex(b.level.Selected()))
			return b, nil
		}
		b.outcome = Outcome{Script: b.scripts[b.level.Selected()], Chosen: true}
		b.phase = phaseFinished
		return b, tea.Quit
	}
	return b, nil
}

// enterScriptLevel scopes the second level to the confirmed category and
// pre-sets its selection to the first script.
func (b *Browser) enterScriptLevel(idx catalog.CategoryIndex) {
	b.chosenCategory = idx
	b.scripts = b.cat.ScriptsInCategory(idx)
	names := make([]string, len(b.scripts))
	for i, s := range b.scripts {
		names[i] = s.Name
	}
	b.phase = phaseScript
	b.level = menu.NewLevel(names, 0)
}

// keyToEvent maps one keystroke to an abstract navigation event. Anything
// unmapped becomes EventUnknown so the navigator can surface its notice.
func keyToEvent(msg tea.KeyMsg) menu.Event {
	switch msg.Type {
	case tea.KeyUp:
		return menu.Event{Kind: menu.EventMovePrevious}
	case tea.KeyDown:
		return menu.Event{Kind: menu.EventMoveNext}
	case tea.KeyEnter:
		return menu.Event{Kind: menu.EventConfirm}
	case tea.KeyEsc, tea.KeyCtrlC:
		return menu.Event{Kind: menu.EventCancel}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
			return menu.Event{Kind: menu.EventJumpToLetter, Letter: msg.Runes[0]}
		}
	}
	return menu.Event{Kind: menu.EventUnknown}
}

// View implements tea.Model: title, instruction line, the category
// section, the scripts of the current category, the highlighted script's
// description and parameters, and the transient notice slot.
func (b *Browser) View() string {
	if b.phase == phaseFinished {
		return ""
	}

	var v strings.Builder
	v.WriteString(b.styles.Title.Render("scriptpick") + "\n")
	v.WriteString(b.styles.Instruction.Render(
		"↑/↓ move · letter jumps · enter confirms · esc cancels") + "\n\n")

	if b.phase == phaseCategory {
		b.viewCategories(&v, b.level.Selected())
	} else {
		b.viewCategories(&v, int(b.chosenCategory))
		b.viewScripts(&v)
	}

	if notice := b.level.Notice(); notice != "" {
		v.WriteString("\n" + b.styles.Notice.Render(notice) + "\n")
	}
	return v.String()
}

// viewCategories writes the category section, highlighting current.
func (b *Browser) viewCategories(v *strings.Builder, current int) {
	v.WriteString(b.styles.Section.Render("Categories") + "\n")
	for i, c := range b.cat.Categories {
		label := fmt.Sprintf("%s (%d)", c.Name, c.ScriptCount)
		if i == current {
			v.WriteString(b.styles.Selected.Render(label) + "\n")
		} else {
			v.WriteString(b.styles.Item.Render(label) + "\n")
		}
	}
	v.WriteString("\n")
}

// viewScripts writes the script section of the chosen category plus the
// detail block of the highlighted script.
func (b *Browser) viewScripts(v *strings.Builder) {
	v.WriteString(b.styles.Section.Render("Scripts") + "\n")
	for i, s := range b.scripts {
		if i == b.level.Selected() {
			v.WriteString(b.styles.Selected.Render(s.Name) + "\n")
		} else {
			v.WriteString(b.styles.Item.Render(s.Name) + "\n")
		}
	}

	sel := b.level.Selected()
	if sel < 0 || sel >= len(b.scripts) {
		return
	}
	s := b.scripts[sel]
	desc := b.styles.Description
	if b.width > 0 {
		desc = desc.Width(b.width)
	}
	v.WriteString("\n" + desc.Render(s.Description) + "\n")
	if s.Params.None() {
		v.WriteString(b.styles.Param.Render("takes no parameters") + "\n")
		return
	}
	for i, doc := range s.Params.Docs() {
		v.WriteString(b.styles.Param.Render(fmt.Sprintf("%d. %s", i+1, doc)) + "\n")
	}
}

// Run executes the browser in the alternate screen buffer and blocks on
// one keystroke per navigator iteration until a terminal state.
func Run(cat *catalog.Catalog) (Outcome, error) {
	program := tea.NewProgram(NewBrowser(cat), tea.WithAltScreen())
	model, err := program.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("run browser: %w", err)
	}
	browser, ok := model.(*Browser)
	if !ok {
		return Outcome{}, fmt.Errorf("run browser: unexpected final model %T", model)
	}
	return browser.Outcome(), nil
}
