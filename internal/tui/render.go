package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tinytelemetry/ciphered/internal/model"
)

// titleWidth is the fixed right-hand part of the header.
const titleWidth = 20

// Viewport is the drawable area in cells.
type Viewport struct {
	Width  int
	Height int
}

// Frame is one rendered screen split into its regions. Header regions and the
// footer are exactly one line of the frame's width; Content fills the rest.
type Frame struct {
	Width   int
	Height  int
	Tabs    string
	Title   string
	Content string
	Footer  string
}

// Header joins the tab strip and the title region.
func (f Frame) Header() string {
	return f.Tabs + f.Title
}

// String joins the regions top to bottom, dropping what does not fit in
// Height: the footer goes first, then the header.
func (f Frame) String() string {
	switch {
	case f.Height <= 0:
		return ""
	case f.Height == 1:
		return f.Header()
	}
	parts := []string{f.Header()}
	if f.Content != "" {
		parts = append(parts, f.Content)
	}
	parts = append(parts, f.Footer)
	return strings.Join(parts, "\n")
}

// Renderer turns a State into a Frame. It holds only read-only inputs, so
// Render is a pure function of its arguments.
type Renderer struct {
	Registry Registry
	Skin     Skin
	Keys     KeyMap
	Title    string

	lg *lipgloss.Renderer
}

// NewRenderer renders with lipgloss' default renderer.
func NewRenderer(reg Registry, skin Skin, keys KeyMap) Renderer {
	return Renderer{
		Registry: reg,
		Skin:     skin,
		Keys:     keys,
		Title:    model.AppTitle,
		lg:       lipgloss.DefaultRenderer(),
	}
}

// WithLipgloss returns a copy styling through lg, e.g. one with a fixed
// color profile.
func (r Renderer) WithLipgloss(lg *lipgloss.Renderer) Renderer {
	r.lg = lg
	return r
}

// Render lays out header (tabs | title), content and footer top to bottom.
func (r Renderer) Render(s State, vp Viewport) Frame {
	width := max(vp.Width, 0)
	height := max(vp.Height, 0)

	titleW := min(titleWidth, width)
	tabsW := width - titleW
	contentH := max(height-2, 0)

	return Frame{
		Width:   width,
		Height:  height,
		Tabs:    r.renderTabs(s.Active, tabsW),
		Title:   r.renderTitle(titleW),
		Content: r.renderContent(r.Registry.Tab(s.Active), s.Focus, width, contentH),
		Footer:  r.renderFooter(width),
	}
}

func (r Renderer) renderTabs(active TabID, width int) string {
	tabs := r.Registry.Tabs()
	labels := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		style := r.lg.NewStyle().
			Foreground(lipgloss.Color(r.Skin.TabForeground)).
			Background(lipgloss.Color(tab.Palette.C900))
		if tab.ID == active {
			style = style.Background(lipgloss.Color(tab.Palette.C700)).Bold(true)
		}
		labels = append(labels, style.Render("  "+tab.Name+"  "))
	}
	return fitLine(strings.Join(labels, " "), width)
}

func (r Renderer) renderTitle(width int) string {
	title := r.lg.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(r.Skin.Title)).
		Render(r.Title)
	return fitLine(title, width)
}

// renderContent draws the active tab inside a bordered block. A focused tab
// gets a thick border in its own color, an unfocused one a muted thin border.
func (r Renderer) renderContent(tab TabDescriptor, focus TabFocus, width, height int) string {
	if width == 0 || height == 0 {
		return ""
	}
	if width < 4 || height < 2 {
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "")
	}

	border := lipgloss.NormalBorder()
	borderColor := r.Skin.Muted
	if focus == Selected {
		border = lipgloss.ThickBorder()
		borderColor = tab.Palette.C700
	}

	body := tab.Content.Render(width-4, height-2)

	return r.lg.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(body)
}

func (r Renderer) renderFooter(width int) string {
	h := help.New()
	h.Width = width
	line := h.ShortHelpView(r.Keys.ShortHelp())
	return fitLine(lipgloss.PlaceHorizontal(width, lipgloss.Center, line), width)
}

// fitLine truncates or pads a single line to exactly width cells.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}
