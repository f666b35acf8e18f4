package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is the result of looking a key up in the key table.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionQuit
	ActionUnselect
	ActionSelect
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionQuit:
		return "quit"
	case ActionUnselect:
		return "unselect"
	case ActionSelect:
		return "select"
	default:
		return "none"
	}
}

// Action maps a key press to at most one action. Pasted text arrives as key
// messages too, but it is not a press and never navigates.
func (k KeyMap) Action(msg tea.KeyMsg) Action {
	if msg.Paste {
		return ActionNone
	}

	switch {
	case key.Matches(msg, k.Next):
		return ActionNext
	case key.Matches(msg, k.Previous):
		return ActionPrevious
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Unselect):
		return ActionUnselect
	case key.Matches(msg, k.Select):
		return ActionSelect
	}
	return ActionNone
}

// Dispatch applies one action to s for a registry of n tabs. A Quitting
// state accepts no further transitions.
func Dispatch(s State, a Action, n int) State {
	if s.Run == Quitting {
		return s
	}

	switch a {
	case ActionNext:
		return s.Next(n)
	case ActionPrevious:
		return s.Previous()
	case ActionQuit:
		return s.Quit()
	case ActionUnselect:
		return s.Unselect()
	case ActionSelect:
		return s.Select()
	}
	return s
}
