package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	t.Parallel()

	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"l", runeKey('l'), ActionNext},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, ActionNext},
		{"h", runeKey('h'), ActionPrevious},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, ActionPrevious},
		{"q", runeKey('q'), ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"k", runeKey('k'), ActionUnselect},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, ActionUnselect},
		{"j", runeKey('j'), ActionSelect},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, ActionSelect},
		{"x", runeKey('x'), ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ActionNone},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, ActionNone},
		{"pasted q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Paste: true}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestDispatchUnknownIsNoop(t *testing.T) {
	t.Parallel()

	s := State{Run: Running, Active: 3, Focus: NotSelected}
	if got := Dispatch(s, ActionNone, testTabs); got != s {
		t.Fatalf("Dispatch(none) = %+v, want %+v", got, s)
	}
}

func TestDispatchRoutesActions(t *testing.T) {
	t.Parallel()

	start := State{Run: Running, Active: 2, Focus: Selected}
	tests := []struct {
		action Action
		want   State
	}{
		{ActionNext, State{Run: Running, Active: 3, Focus: Selected}},
		{ActionPrevious, State{Run: Running, Active: 1, Focus: Selected}},
		{ActionUnselect, State{Run: Running, Active: 2, Focus: NotSelected}},
		{ActionSelect, State{Run: Running, Active: 2, Focus: Selected}},
		{ActionQuit, State{Run: Quitting, Active: 2, Focus: Selected}},
	}

	for _, tt := range tests {
		if got := Dispatch(start, tt.action, testTabs); got != tt.want {
			t.Errorf("Dispatch(%s) = %+v, want %+v", tt.action, got, tt.want)
		}
	}
}

func TestDispatchAfterQuitChangesNothing(t *testing.T) {
	t.Parallel()

	s := Dispatch(InitialState(), ActionQuit, testTabs)
	for _, a := range []Action{ActionNext, ActionPrevious, ActionSelect, ActionUnselect, ActionQuit, ActionNone} {
		got := Dispatch(s, a, testTabs)
		if got != s {
			t.Errorf("Dispatch(%s) after quit = %+v, want %+v", a, got, s)
		}
		if got.Run != Quitting {
			t.Errorf("run state after %s = %s, want quitting", a, got.Run)
		}
	}
}

func TestReachableStatesStayInRange(t *testing.T) {
	t.Parallel()

	actions := []Action{ActionNext, ActionPrevious, ActionSelect, ActionUnselect, ActionNone}
	s := InitialState()
	// Walk a fixed pseudo-random action sequence.
	seed := uint32(7)
	for i := 0; i < 500; i++ {
		seed = seed*1664525 + 1013904223
		s = Dispatch(s, actions[seed>>16%uint32(len(actions))], testTabs)
		if s.Active < 0 || int(s.Active) >= testTabs {
			t.Fatalf("step %d: active = %d out of range", i, s.Active)
		}
	}
}
