package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// App is the top-level Bubble Tea model. Bubble Tea drives the loop: View
// renders the current State, then exactly one message reaches Update.
type App struct {
	state    State
	keys     KeyMap
	renderer Renderer
	viewport Viewport
}

// NewApp creates an App on the first tab of reg.
func NewApp(reg Registry, skin Skin, keys KeyMap) *App {
	return &App{
		state:    InitialState(),
		keys:     keys,
		renderer: NewRenderer(reg, skin, keys),
	}
}

// State returns the current application state.
func (a *App) State() State {
	return a.state
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.viewport = Viewport{Width: msg.Width, Height: msg.Height}

	case tea.KeyMsg:
		// Runes read together arrive as one message; each is its own press.
		if msg.Type == tea.KeyRunes && !msg.Paste && len(msg.Runes) > 1 {
			for _, r := range msg.Runes {
				one := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt}
				if cmd := a.handleKey(one); cmd != nil {
					return a, cmd
				}
			}
			return a, nil
		}
		return a, a.handleKey(msg)
	}
	return a, nil
}

// handleKey applies one key press and returns tea.Quit on entering Quitting.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := a.keys.Action(msg)
	if action == ActionNone {
		return nil
	}

	prev := a.state
	a.state = Dispatch(a.state, action, a.renderer.Registry.Len())
	if a.state.Active != prev.Active {
		log.Printf("tui: tab %s -> %s",
			a.renderer.Registry.Tab(prev.Active).Name,
			a.renderer.Registry.Tab(a.state.Active).Name)
	}
	if a.state.Run == Quitting && prev.Run != Quitting {
		log.Printf("tui: quit on tab %s", a.renderer.Registry.Tab(a.state.Active).Name)
		return tea.Quit
	}
	return nil
}

// Quitting reports whether the app asked the loop to stop.
func (a *App) Quitting() bool {
	return a.state.Run == Quitting
}

// View renders nothing once quitting so no frame is drawn after quit.
func (a *App) View() string {
	if a.state.Run == Quitting {
		return ""
	}
	if a.viewport.Width <= 0 || a.viewport.Height <= 0 {
		return "Initializing..."
	}
	return a.renderer.Render(a.state, a.viewport).String()
}
