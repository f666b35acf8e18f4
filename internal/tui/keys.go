package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the navigation bindings with built-in help text.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Quit     key.Binding
	Unselect key.Binding
	Select   key.Binding
}

// DefaultKeyMap returns vim-style and arrow bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("►/l", "next tab"),
		),
		Previous: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("◄/h", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Unselect: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "unfocus"),
		),
		Select: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "focus"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Select, k.Unselect, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next},
		{k.Select, k.Unselect},
		{k.Quit},
	}
}
