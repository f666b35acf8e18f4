package tui

// RunState is the top-level lifecycle of the application.
type RunState int

const (
	Running RunState = iota
	Quitting
)

func (r RunState) String() string {
	if r == Quitting {
		return "quitting"
	}
	return "running"
}

// TabFocus tracks whether the active tab's content is focused.
type TabFocus int

const (
	Selected TabFocus = iota
	NotSelected
)

func (f TabFocus) String() string {
	if f == NotSelected {
		return "not selected"
	}
	return "selected"
}

// State is the whole application state. It is a value: transitions return
// a new State and never mutate the receiver.
type State struct {
	Run    RunState
	Active TabID
	Focus  TabFocus
}

// InitialState is a running app on the first tab with its content focused.
func InitialState() State {
	return State{Run: Running, Active: 0, Focus: Selected}
}

// Next moves to the following tab, staying on the last of n tabs.
func (s State) Next(n int) State {
	if int(s.Active)+1 < n {
		s.Active++
	}
	return s
}

// Previous moves to the preceding tab, staying on the first.
func (s State) Previous() State {
	if s.Active > 0 {
		s.Active--
	}
	return s
}

func (s State) Select() State {
	s.Focus = Selected
	return s
}

func (s State) Unselect() State {
	s.Focus = NotSelected
	return s
}

// Quit is terminal: nothing moves a Quitting state back to Running.
func (s State) Quit() State {
	s.Run = Quitting
	return s
}
