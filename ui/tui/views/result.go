package views

import (
	"fmt"

	"graphlens/ui/tui/state"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

type ResultView struct{}

func (v ResultView) Render(s state.AppState, props ViewProps) string {
	header := HeaderStyle.Width(props.Width).Render("LOAD RESULT")

	if s.Result == nil {
		empty := lipgloss.NewStyle().Padding(1, 2).Render(
			"No graph loaded yet. Pick a data source from the menu.\n\nPress 'b' to go back.")
		return lipgloss.JoinVertical(lipgloss.Left, header, empty)
	}

	elements := s.Result.Elements
	styles := s.Result.Styles

	summary := SuccessStyle.Render(fmt.Sprintf(
		"%d nodes, %d edges (loaded %s)",
		len(elements.Nodes), len(elements.Edges), s.LastLoad.Format("15:04:05"),
	))

	// Bar chart of node counts per label, colored with the derived
	// style so the chart matches what a renderer would draw.
	counts := elements.NodeLabelCounts()
	chartW := props.Width/2 - 4
	if chartW < 20 {
		chartW = 20
	}
	chart := barchart.New(chartW, 10)
	for _, ns := range styles.Nodes {
		chart.Push(barchart.BarData{
			Label: ns.Label,
			Values: []barchart.BarValue{{
				Name:  ns.Label,
				Value: float64(counts[ns.Label]),
				Style: lipgloss.NewStyle().Foreground(lipgloss.Color(ns.Color)),
			}},
		})
	}
	chart.Draw()

	legendLines := make([]string, 0, len(styles.Nodes)+len(styles.Edges)+2)
	legendLines = append(legendLines, lipgloss.NewStyle().Bold(true).Render("Node styles"))
	for _, ns := range styles.Nodes {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(ns.Color)).Render("■")
		legendLines = append(legendLines, fmt.Sprintf("%s %-20s %s  %s", swatch, ns.Label, ns.Color, ns.Shape))
	}
	legendLines = append(legendLines, "", lipgloss.NewStyle().Bold(true).Render("Edge styles"))
	for _, es := range styles.Edges {
		arrow := "→"
		if !es.Directed {
			arrow = "—"
		}
		legendLines = append(legendLines, fmt.Sprintf("%s %s", arrow, es.Label))
	}
	legend := lipgloss.JoinVertical(lipgloss.Left, legendLines...)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Padding(0, 2).Render(chart.View()),
		lipgloss.NewStyle().Padding(0, 2).Render(legend),
	)

	footer := lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#555")).
		Render("Press 'b' to go back")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Padding(1, 2).Render(summary),
		body,
		footer,
	)
}
