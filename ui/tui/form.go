package tui

import (
	"graphlens/internal/config"
	"graphlens/ui/tui/state"

	"github.com/charmbracelet/bubbles/textinput"
)

const fieldWidth = 48

func newInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	ti.Width = fieldWidth
	return ti
}

func newPasswordInput(value string) textinput.Model {
	ti := newInput(value)
	ti.EchoMode = textinput.EchoPassword
	return ti
}

// openGraphForm fills the form with the current Neo4j settings.
func (m *MainModel) openGraphForm() {
	g := m.settings.Graph
	m.formLabels = []string{
		"Database Name",
		"Neo4j URI",
		"Username",
		"Password",
		"Cypher Query",
		"Display Property",
	}
	m.inputs = []textinput.Model{
		newInput(g.Database),
		newInput(g.URI),
		newInput(g.Username),
		newPasswordInput(g.Password),
		newInput(g.Query),
		newInput(g.DisplayProperty),
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.statusMsg = ""
	m.state.CurrentPage = state.PageGraphForm
}

// openSQLForm fills the form with the current relational settings.
func (m *MainModel) openSQLForm() {
	r := m.settings.Relational
	m.formLabels = []string{
		"Connection String",
		"Nodes Query",
		"Relationships Query",
		"Node ID Column",
		"Node Label Column",
		"Node Display Column",
		"Edge Source Column",
		"Edge Target Column",
		"Edge Type Column",
	}
	m.inputs = []textinput.Model{
		newInput(r.ConnString),
		newInput(r.NodesQuery),
		newInput(r.EdgesQuery),
		newInput(r.Mapping.NodeID),
		newInput(r.Mapping.NodeLabel),
		newInput(r.Mapping.NodeName),
		newInput(r.Mapping.EdgeSource),
		newInput(r.Mapping.EdgeTarget),
		newInput(r.Mapping.EdgeType),
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.statusMsg = ""
	m.state.CurrentPage = state.PageSQLForm
}

func (m *MainModel) focusIndex() int {
	return m.focus
}

func (m *MainModel) focusField(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[i].Focus()
}

// applyForm writes the form values back into the settings and returns
// the settings for this load, with the source kind set to match the
// form that submitted.
func (m *MainModel) applyForm() config.Settings {
	switch m.state.CurrentPage {
	case state.PageGraphForm:
		m.settings.Source = config.SourceGraph
		m.settings.Graph.Database = m.inputs[0].Value()
		m.settings.Graph.URI = m.inputs[1].Value()
		m.settings.Graph.Username = m.inputs[2].Value()
		m.settings.Graph.Password = m.inputs[3].Value()
		m.settings.Graph.Query = m.inputs[4].Value()
		m.settings.Graph.DisplayProperty = m.inputs[5].Value()
	case state.PageSQLForm:
		m.settings.Source = config.SourceRelational
		m.settings.Relational.ConnString = m.inputs[0].Value()
		m.settings.Relational.NodesQuery = m.inputs[1].Value()
		m.settings.Relational.EdgesQuery = m.inputs[2].Value()
		m.settings.Relational.Mapping.NodeID = m.inputs[3].Value()
		m.settings.Relational.Mapping.NodeLabel = m.inputs[4].Value()
		m.settings.Relational.Mapping.NodeName = m.inputs[5].Value()
		m.settings.Relational.Mapping.EdgeSource = m.inputs[6].Value()
		m.settings.Relational.Mapping.EdgeTarget = m.inputs[7].Value()
		m.settings.Relational.Mapping.EdgeType = m.inputs[8].Value()
	}
	return m.settings
}
