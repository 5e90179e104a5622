// SPDX-License-Identifier: MPL-2.0

// Package menu implements the selection state machine behind the two-level
// script browser. It is deliberately free of any terminal concern: the TUI
// layer translates keystrokes into Events and renders the resulting state.
package menu

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// NoSelection marks a level whose selection has not been set yet.
const NoSelection = -1

// Transient notices surfaced while staying in StateBrowsing.
const (
	noticeNothingSelected = "pick one before confirming"
	noticeUnrecognized    = "unrecognized input"
)

type (
	// EventKind enumerates the abstract navigation events driving a Level.
	EventKind int

	// Event is one abstract input event. Letter is only meaningful for
	// EventJumpToLetter.
	Event struct {
		Kind   EventKind
		Letter rune
	}

	// State is a Level's lifecycle state. StateConfirmed and StateCancelled
	// are terminal: further events are ignored.
	State int

	// Level is the selection state machine for one menu level over an
	// ordered range of item names. The names are referenced, never altered.
	Level struct {
		names    []string
		selected int
		state    State
		notice   string
	}
)

const (
	// EventMoveNext advances the selection, wrapping past the last item.
	EventMoveNext EventKind = iota
	// EventMovePrevious retreats the selection, wrapping past the first item.
	EventMovePrevious
	// EventJumpToLetter selects the first item whose name starts with the
	// event's letter, scanning forward from the start of the range.
	EventJumpToLetter
	// EventConfirm finishes the level if something is selected.
	EventConfirm
	// EventCancel aborts the level (and with it the whole run).
	EventCancel
	// EventUnknown is any input the terminal layer could not map.
	EventUnknown
)

const (
	// StateBrowsing accepts navigation events.
	StateBrowsing State = iota
	// StateConfirmed is reached by EventConfirm with a selection set.
	StateConfirmed
	// StateCancelled is reached by EventCancel.
	StateCancelled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// NewLevel creates a browsing Level over names. initial is the starting
// selection: NoSelection for the category level, 0 for the script level.
// An out-of-range initial is treated as NoSelection.
func NewLevel(names []string, initial int) *Level {
	if initial < 0 || initial >= len(names) {
		initial = NoSelection
	}
	return &Level{names: names, selected: initial}
}

// Apply feeds one event through the state machine. Events arriving after a
// terminal state are no-ops. The transient notice is cleared on every
// applied event and re-set by events that produce one.
func (l *Level) Apply(ev Event) {
	if l.state != StateBrowsing {
		return
	}
	l.notice = ""

	switch ev.Kind {
	case EventMoveNext:
		l.move(1)
	case EventMovePrevious:
		l.move(-1)
	case EventJumpToLetter:
		l.jump(ev.Letter)
	case EventConfirm:
		if l.selected == NoSelection {
			l.notice = noticeNothingSelected
			return
		}
		l.state = StateConfirmed
	case EventCancel:
		l.state = StateCancelled
	default:
		l.notice = noticeUnrecognized
	}
}

// move shifts the selection by delta with wrap-around. From an unset
// selection, moving next lands on the first item and moving previous on
// the last.
func (l *Level) move(delta int) {
	n := len(l.names)
	if n == 0 {
		return
	}
	if l.selected == NoSelection {
		if delta > 0 {
			l.selected = 0
		} else {
			l.selected = n - 1
		}
		return
	}
	l.selected = (l.selected + delta + n) % n
}

// jump scans forward from the start of the range for the first name whose
// initial letter matches c case-insensitively. No match leaves the
// selection unchanged.
func (l *Level) jump(c rune) {
	want := unicode.ToLower(c)
	for i, name := range l.names {
		first, _ := utf8.DecodeRuneInString(name)
		if first != utf8.RuneError && unicode.ToLower(first) == want {
			l.selected = i
			return
		}
	}
}

// Selected returns the current selection index, or NoSelection.
func (l *Level) Selected() int { return l.selected }

// State returns the level's lifecycle state.
func (l *Level) State() State { return l.state }

// Notice returns the transient message produced by the last event, if any.
func (l *Level) Notice() string { return l.notice }

// Len returns the size of the level's valid range.
func (l *Level) Len() int { return len(l.names) }

// Name returns the name at index i, or "" when out of range.
func (l *Level) Name(i int) string {
	if i < 0 || i >= len(l.names) {
		return ""
	}
	return l.names[i]
}
