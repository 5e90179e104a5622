// SPDX-License-Identifier: MPL-2.0

package menu

import "testing"

func TestMoveWrapsAround(t *testing.T) {
	t.Parallel()

	l := NewLevel([]string{"alpha", "beta", "gamma"}, 0)

	l.Apply(Event{Kind: EventMovePrevious})
	if got := l.Selected(); got != 2 {
		t.Errorf("previous from first = %d, want 2", got)
	}
	l.Apply(Event{Kind: EventMoveNext})
	if got := l.Selected(); got != 0 {
		t.Errorf("next from last = %d, want 0", got)
	}
}

func TestMoveSingleItemRange(t *testing.T) {
	t.Parallel()

	l := NewLevel([]string{"only"}, 0)
	l.Apply(Event{Kind: EventMoveNext})
	if got := l.Selected(); got != 0 {
		t.Errorf("next on size-1 range = %d, want 0", got)
	}
	l.Apply(Event{Kind: EventMovePrevious})
	if got := l.Selected(); got != 0 {
		t.Errorf("previous on size-1 range = %d, want 0", got)
	}
}

func TestMoveFromUnsetSelection(t *testing.T) {
	t.Parallel()

	next := NewLevel([]string{"a", "b", "c"}, NoSelection)
	next.Apply(Event{Kind: EventMoveNext})
	if got := next.Selected(); got != 0 {
		t.Errorf("next from unset = %d, want 0", got)
	}

	prev := NewLevel([]string{"a", "b", "c"}, NoSelection)
	prev.Apply(Event{Kind: EventMovePrevious})
	if got := prev.Selected(); got != 2 {
		t.Errorf("previous from unset = %d, want 2", got)
	}
}

func TestJumpToLetter(t *testing.T) {
	t.Parallel()

	names := []string{"backup", "Cleanup", "convert", "deploy"}

	tests := []struct {
		name    string
		initial int
		letter  rune
		want    int
	}{
		{"case-insensitive match", 0, 'c', 1},
		{"uppercase input matches lowercase name", 0, 'B', 0},
		{"first match by range order, not cyclic", 2, 'c', 1},
		{"no match leaves selection unchanged", 3, 'z', 3},
		{"no match with unset selection stays unset", NoSelection, 'z', NoSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := NewLevel(names, tt.initial)
			l.Apply(Event{Kind: EventJumpToLetter, Letter: tt.letter})
			if got := l.Selected(); got != tt.want {
				t.Errorf("jump %q from %d = %d, want %d", tt.letter, tt.initial, got, tt.want)
			}
		})
	}
}

func TestJumpIsIdempotent(t *testing.T) {
	t.Parallel()

	l := NewLevel([]string{"backup", "cleanup", "convert"}, NoSelection)
	l.Apply(Event{Kind: EventJumpToLetter, Letter: 'c'})
	first := l.Selected()
	l.Apply(Event{Kind: EventJumpToLetter, Letter: 'c'})
	if got := l.Selected(); got != first {
		t.Errorf("repeated jump moved selection from %d to %d", first, got)
	}
	if first != 1 {
		t.Errorf("jump selected %d, want the first match 1", first)
	}
}

func TestConfirmRequiresSelection(t *testing.T) {
	t.Parallel()

	l := NewLevel([]string{"a", "b"}, NoSelection)

	l.Apply(Event{Kind: EventConfirm})
	if got := l.State(); got != StateBrowsing {
		t.Fatalf("state after unset confirm = %v, want browsing", got)
	}
	if l.Notice() == "" {
		t.Error("unset confirm produced no transient notice")
	}

	l.Apply(Event{Kind: EventMoveNext})
	if l.Notice() != "" {
		t.Error("notice survived the next event")
	}

	l.Apply(Event{Kind: EventConfirm})
	if got := l.State(); got != StateConfirmed {
		t.Fatalf("state after confirm = %v, want confirmed", got)
	}
}

func TestCancelIsTerminal(t *testing.T) {
	t.Parallel()

	l := NewLevel([]string{"a", "b"}, 0)
	l.Apply(Event{Kind: EventCancel})
	if got := l.State(); got != StateCancelled {
		t.Fatalf("state = %v, want cancelled", got)
	}

	// Terminal states ignore further events.
	l.Apply(Event{Kind: EventMoveNext})
	if got := l.Selected(); got != 0 {
		t.Errorf("selection moved after cancellation: %d", got)
	}
	l.Apply(Event{Kind: EventConfirm})
	if got := l.State(); got != StateCancelled {
		t.Errorf("state left cancelled: %v", got)
	}
}

func TestUnknownInputNotice(t *testing.T) {
	t.Parallel()

	l := NewLevel([]string{"a"}, 0)
	l.Apply(Event{Kind: EventUnknown})
	if got := l.State(); got != StateBrowsing {
		t.Fatalf("state = %v, want browsing", got)
	}
	if l.Notice() == "" {
		t.Error("unknown input produced no transient notice")
	}
	if got := l.Selected(); got != 0 {
		t.Errorf("unknown input moved selection to %d", got)
	}
}

func TestEmptyRange(t *testing.T) {
	t.Parallel()

	l := NewLevel(nil, 0)
	if got := l.Selected(); got != NoSelection {
		t.Fatalf("initial selection on empty range = %d, want NoSelection", got)
	}
	l.Apply(Event{Kind: EventMoveNext})
	if got := l.Selected(); got != NoSelection {
		t.Errorf("move on empty range set selection %d", got)
	}
	l.Apply(Event{Kind: EventConfirm})
	if got := l.State(); got != StateBrowsing {
		t.Errorf("confirm on empty range reached %v", got)
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state State
		want  string
	}{
		{StateBrowsing, "browsing"},
		{StateConfirmed, "confirmed"},
		{StateCancelled, "cancelled"},
		{State(42), "state(42)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
