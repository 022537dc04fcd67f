package views

import (
	"fmt"
	"math"

	"graphlens/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// MenuOptions are the selectable entries, in cursor order.
var MenuOptions = []string{
	"Load from Neo4j",
	"Load from Relational DB",
	"Last Load Result",
	"Console Log",
}

type MenuView struct{}

func (v MenuView) Render(s state.AppState, props ViewProps) string {
	header := HeaderStyle.Width(props.Width).Render("GRAPHLENS // NETWORK GRAPH EXPLORER")

	var menuItems []string
	listStartY := 6

	for i, option := range MenuOptions {
		// Spring animation: items near the animated cursor pop out.
		dist := math.Abs(float64(i) - props.AnimCursor)
		selectionStrength := 0.0
		if dist < 1.0 {
			selectionStrength = 1.0 - dist
		}

		itemCenterY := listStartY + (i * 3) + 1
		mouseDistY := math.Abs(float64(props.MouseY - itemCenterY))

		borderColor := BaseColor
		if mouseDistY < 10 {
			if ratio := 1.0 - (mouseDistY / 10.0); ratio > 0.5 {
				borderColor = lipgloss.Color("#aaa")
			}
		}

		if selectionStrength > 0.1 || i == props.MenuCursor {
			borderColor = BrandColor
		}

		popOut := int(selectionStrength * 2)

		boxStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			MarginLeft(2 + popOut).
			Width(40)

		if i == props.MenuCursor {
			boxStyle = boxStyle.Bold(true).Foreground(lipgloss.Color("#FFF"))
		} else {
			boxStyle = boxStyle.Foreground(lipgloss.Color("#AAA"))
		}

		text := fmt.Sprintf("%02d. %s", i+1, option)
		renderedItem := boxStyle.Render(text)

		zoneID := fmt.Sprintf("menu_%d", i)
		menuItems = append(menuItems, zone.Mark(zoneID, renderedItem))
	}

	menuList := lipgloss.JoinVertical(lipgloss.Left, menuItems...)

	menuContent := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingLeft(2).Foreground(BrandColor).Render("DATA SOURCES"),
		CopyStyle.Render("Pick a source, tune the queries, load the graph."),
		menuList,
	)

	menuBox := MenuBoxStyle.Render(menuContent)

	statusLine := ""
	if s.Err != nil {
		statusLine = ErrorStyle.Render("Last load failed: " + s.Err.Error())
	} else if s.Result != nil {
		statusLine = SuccessStyle.Render(fmt.Sprintf(
			"Loaded %d nodes, %d edges at %s",
			len(s.Result.Elements.Nodes),
			len(s.Result.Elements.Edges),
			s.LastLoad.Format("15:04:05"),
		))
	}

	controlsText := lipgloss.NewStyle().Foreground(lipgloss.Color("#333")).
		Render("[↑/↓] Navigate • [Enter] Select • [Q] Quit")

	footer := lipgloss.NewStyle().PaddingLeft(2).Render(
		lipgloss.JoinVertical(lipgloss.Left, statusLine, controlsText),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, menuBox, footer)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body))
}
