package views

import (
	"graphlens/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

// FormView renders a settings form. Labels and Fields are parallel;
// Fields are pre-rendered textinput views owned by the app model.
type FormView struct {
	Title  string
	Labels []string
	Fields []string
}

func (v FormView) Render(s state.AppState, props ViewProps) string {
	header := HeaderStyle.Width(props.Width).Render(v.Title)

	rows := make([]string, 0, len(v.Fields))
	for i, field := range v.Fields {
		label := ""
		if i < len(v.Labels) {
			label = v.Labels[i]
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			LabelStyle.Render(label),
			field,
		))
	}

	form := lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)

	var status string
	switch {
	case props.Loading:
		status = props.Spinner + " Loading graph data..."
	case s.Err != nil:
		status = ErrorStyle.Render("Error loading data: " + s.Err.Error())
	case props.Status != "":
		status = SuccessStyle.Render(props.Status)
	}

	controls := lipgloss.NewStyle().Foreground(lipgloss.Color("#555")).
		Render("[Tab/↑/↓] Move • [Enter] Load • [Esc] Back")

	footer := lipgloss.NewStyle().PaddingLeft(2).Render(
		lipgloss.JoinVertical(lipgloss.Left, status, controls),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, form, footer)
}
