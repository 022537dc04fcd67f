package tui

import (
	"context"
	"fmt"
	"time"

	"graphlens/internal/config"
	"graphlens/internal/loader"
	"graphlens/ui/tui/state"
	"graphlens/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const maxConsoleLogs = 100

// loadTimeout bounds one load; a hung store should not wedge the UI.
const loadTimeout = 60 * time.Second

// MainModel is the Bubble Tea model acting as the controller.
type MainModel struct {
	settings config.Settings
	load     loader.Func
	state    state.AppState
	spinner  spinner.Model

	inputs     []textinput.Model
	formLabels []string
	focus      int

	menuCursor     int
	animCursor     float64
	velocity       float64
	spring         harmonica.Spring
	consoleScrollY int
	mouseX         int
	mouseY         int
	loading        bool
	statusMsg      string
	quitting       bool
	width          int
	height         int
}

// Messages
type AnimateMsg time.Time
type LoadResultMsg struct {
	Result *loader.Result
	Err    error
}

func InitialModel(cfg config.Settings, load loader.Func) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	return MainModel{
		settings: cfg,
		load:     load,
		spinner:  s,
		spring:   spring,
		state: state.AppState{
			CurrentPage: state.PageMenu,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		animateCmd(),
	)
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func loadDataCmd(load loader.Func, cfg config.Settings) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		res, err := load(ctx, cfg)
		return LoadResultMsg{Result: res, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		var v float64 = m.velocity
		m.animCursor, v = m.spring.Update(m.animCursor, float64(m.menuCursor), v)
		m.velocity = v
		return m, animateCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoadResultMsg:
		return m.handleLoadResultMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state.CurrentPage {
	case state.PageMenu:
		return m.handleMenuKey(msg)
	case state.PageGraphForm, state.PageSQLForm:
		return m.handleFormKey(msg)
	default:
		return m.handleViewerKey(msg)
	}
}

func (m *MainModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(views.MenuOptions)-1 {
			m.menuCursor++
		}
	case "enter":
		m.navigateTo(m.menuCursor)
	}
	return m, nil
}

func (m *MainModel) navigateTo(cursor int) {
	switch cursor {
	case 0:
		m.openGraphForm()
	case 1:
		m.openSQLForm()
	case 2:
		m.state.CurrentPage = state.PageResult
	case 3:
		m.state.CurrentPage = state.PageConsole
	}
}

func (m *MainModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state.CurrentPage = state.PageMenu
		return m, nil
	case "tab", "down":
		m.focusField((m.focusIndex() + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.focusField((m.focusIndex() + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case "enter":
		if m.loading {
			return m, nil
		}
		cfg := m.applyForm()
		m.loading = true
		m.statusMsg = ""
		m.state.Err = nil
		return m, loadDataCmd(m.load, cfg)
	}

	i := m.focusIndex()
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

func (m *MainModel) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.state.CurrentPage == state.PageConsole && m.consoleScrollY > 0 {
			m.consoleScrollY--
		}
	case "down", "j":
		if m.state.CurrentPage == state.PageConsole {
			m.consoleScrollY++
		}
	case "b", "esc", "backspace", "q":
		m.state.CurrentPage = state.PageMenu
		m.consoleScrollY = 0
	}
	return m, nil
}

func (m *MainModel) handleLoadResultMsg(msg LoadResultMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	now := time.Now()

	if msg.Err != nil {
		m.state.Err = msg.Err
		m.logLine(fmt.Sprintf("[%s] load failed: %v", now.Format("15:04:05"), msg.Err))
		return m, nil
	}

	m.state.Result = msg.Result
	m.state.Err = nil
	m.state.LastLoad = now
	m.statusMsg = fmt.Sprintf("Graph data loaded: %d nodes, %d edges",
		len(msg.Result.Elements.Nodes), len(msg.Result.Elements.Edges))
	m.logLine(fmt.Sprintf("[%s] %s", now.Format("15:04:05"), m.statusMsg))
	m.state.CurrentPage = state.PageResult
	return m, nil
}

func (m *MainModel) logLine(line string) {
	m.state.ConsoleLogs = append(m.state.ConsoleLogs, line)
	if len(m.state.ConsoleLogs) > maxConsoleLogs {
		m.state.ConsoleLogs = m.state.ConsoleLogs[1:]
	}
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	if msg.Action == tea.MouseActionRelease && m.state.CurrentPage == state.PageMenu {
		for i := range views.MenuOptions {
			if zone.Get(fmt.Sprintf("menu_%d", i)).InBounds(msg) {
				m.menuCursor = i
				m.navigateTo(i)
				return m, nil
			}
		}
	}
	return m, nil
}

func (m *MainModel) props() views.ViewProps {
	return views.ViewProps{
		Width:      m.width,
		Height:     m.height,
		MenuCursor: m.menuCursor,
		AnimCursor: m.animCursor,
		MouseX:     m.mouseX,
		MouseY:     m.mouseY,
		ScrollY:    m.consoleScrollY,
		Spinner:    m.spinner.View(),
		Loading:    m.loading,
		Status:     m.statusMsg,
	}
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	switch m.state.CurrentPage {
	case state.PageMenu:
		return views.MenuView{}.Render(m.state, m.props())
	case state.PageGraphForm:
		return views.FormView{
			Title:  "NEO4J SETTINGS",
			Labels: m.formLabels,
			Fields: m.fieldViews(),
		}.Render(m.state, m.props())
	case state.PageSQLForm:
		return views.FormView{
			Title:  "RELATIONAL DB SETTINGS",
			Labels: m.formLabels,
			Fields: m.fieldViews(),
		}.Render(m.state, m.props())
	case state.PageResult:
		return views.ResultView{}.Render(m.state, m.props())
	case state.PageConsole:
		return views.ConsoleView{}.Render(m.state, m.props())
	default:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Press 'b' to go back"))
	}
}

func (m *MainModel) fieldViews() []string {
	fields := make([]string, len(m.inputs))
	for i := range m.inputs {
		fields[i] = m.inputs[i].View()
	}
	return fields
}

// Start runs the interactive application against live settings.
func Start(cfg config.Settings) error {
	m := InitialModel(cfg, loader.Load)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
