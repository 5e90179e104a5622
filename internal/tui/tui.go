// SPDX-License-Identifier: MPL-2.0

// Package tui renders the two-level script browser in the terminal. It
// owns keystroke-to-event translation and presentation only; all
// selection logic lives in internal/menu.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for dark terminal backgrounds.
const (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorMuted     = lipgloss.Color("#6B7280")
	colorHighlight = lipgloss.Color("#3B82F6")
	colorWarning   = lipgloss.Color("#F59E0B")
)

// Styles holds the lipgloss styles of the browser view.
type Styles struct {
	Title       lipgloss.Style
	Instruction lipgloss.Style
	Section     lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Description lipgloss.Style
	Param       lipgloss.Style
	Notice      lipgloss.Style
}

// DefaultStyles returns the browser's standard styling. The selected item
// uses reverse video, matching the classic picker look.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Instruction: lipgloss.NewStyle().Foreground(colorMuted),
		Section:     lipgloss.NewStyle().Bold(true).Foreground(colorHighlight),
		Item:        lipgloss.NewStyle().PaddingLeft(2),
		Selected:    lipgloss.NewStyle().PaddingLeft(2).Reverse(true),
		Description: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Param:       lipgloss.NewStyle().Foreground(colorMuted).PaddingLeft(4),
		Notice:      lipgloss.NewStyle().Foreground(colorWarning),
	}
}
