package tui

import "fmt"

// TabID indexes the registry. The state machine keeps it in [0, Len()).
type TabID int

// ContentRenderer draws the body of a tab. Implementations must be pure:
// the same size always yields the same string.
type ContentRenderer interface {
	Render(width, height int) string
}

// TabDescriptor is one immutable entry of the registry.
type TabDescriptor struct {
	ID      TabID
	Name    string
	Palette Palette
	Content ContentRenderer
}

// TabSpec describes a tab before it is assigned an id.
type TabSpec struct {
	Name    string
	Palette Palette
	Content ContentRenderer
}

// Registry is the fixed, ordered list of tabs.
type Registry struct {
	tabs []TabDescriptor
}

// NewRegistry assigns ids in order. An empty registry would leave the
// selection state without a valid index, so it panics.
func NewRegistry(specs ...TabSpec) Registry {
	if len(specs) == 0 {
		panic("tui: registry needs at least one tab")
	}
	tabs := make([]TabDescriptor, len(specs))
	for i, spec := range specs {
		tabs[i] = TabDescriptor{
			ID:      TabID(i),
			Name:    spec.Name,
			Palette: spec.Palette,
			Content: spec.Content,
		}
	}
	return Registry{tabs: tabs}
}

func (r Registry) Len() int { return len(r.tabs) }

// Tab looks up a descriptor. An out-of-range id means the clamp in State
// was bypassed, which is a bug rather than a runtime condition.
func (r Registry) Tab(id TabID) TabDescriptor {
	if id < 0 || int(id) >= len(r.tabs) {
		panic(fmt.Sprintf("tui: tab id %d out of range [0, %d)", id, len(r.tabs)))
	}
	return r.tabs[id]
}

// Tabs returns a copy of the descriptors in registry order.
func (r Registry) Tabs() []TabDescriptor {
	out := make([]TabDescriptor, len(r.tabs))
	copy(out, r.tabs)
	return out
}
