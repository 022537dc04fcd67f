package views

import (
	"graphlens/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

// ViewProps carries per-frame layout and interaction data from the app
// model into stateless views.
type ViewProps struct {
	Width      int
	Height     int
	MenuCursor int
	AnimCursor float64
	MouseX     int
	MouseY     int
	ScrollY    int
	Spinner    string
	Loading    bool
	Status     string
}

// View is the contract every page view implements.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

var (
	BrandColor = lipgloss.Color("#2A629A")
	BaseColor  = lipgloss.Color("#444")

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	MenuBoxStyle = lipgloss.NewStyle().
			Padding(1, 0).
			MarginTop(1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true).
			MarginBottom(1).
			PaddingLeft(2)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#008000")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAA")).
			Width(28)
)
