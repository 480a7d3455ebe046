package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/skillmap/internal/model"
)

// Analyzer runs one analysis. *analysis.Runner satisfies it.
type Analyzer interface {
	Run(ctx context.Context, q model.Query) (*model.AnalysisResult, error)
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type viewState int

const (
	viewForm viewState = iota
	viewLoading
	viewResult
)

const (
	inputRole = iota
	inputLocation
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("245")).
			Padding(0, 0, 1, 2)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 0, 0, 2)

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("39"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)

	bodyStyle = lipgloss.NewStyle().
			Padding(0, 2)
)

// analysisDoneMsg is sent when the background run completes.
type analysisDoneMsg struct {
	result *model.AnalysisResult
	err    error
}

type spinnerTickMsg struct{}

type dashboardModel struct {
	analyzer Analyzer
	timeout  time.Duration

	inputs [2]textinput.Model
	focus  int

	view    viewState
	running bool
	frame   int
	query   model.Query

	resultViewport viewport.Model
	width          int
	height         int
	ready          bool
}

func newDashboardModel(analyzer Analyzer, defaultRole, defaultLocation string, timeout time.Duration) dashboardModel {
	role := textinput.New()
	role.Prompt = ""
	role.Placeholder = "Data Analyst"
	role.SetValue(defaultRole)
	role.CharLimit = 120
	role.Focus()

	location := textinput.New()
	location.Prompt = ""
	location.Placeholder = "London"
	location.SetValue(defaultLocation)
	location.CharLimit = 120

	return dashboardModel{
		analyzer: analyzer,
		timeout:  timeout,
		inputs:   [2]textinput.Model{role, location},
		focus:    inputRole,
		view:     viewForm,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case analysisDoneMsg:
		m.running = false
		m.view = viewResult
		m.recalcLayout()
		if msg.err != nil {
			m.resultViewport.SetContent(RenderError(msg.err))
		} else {
			m.resultViewport.SetContent(RenderResult(msg.result, m.resultViewport.Width))
		}
		m.resultViewport.GotoTop()
		return m, nil

	case spinnerTickMsg:
		if !m.running {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, tick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case viewForm:
			return m.updateForm(msg)
		case viewResult:
			return m.updateResult(msg)
		}
		// A run is in flight; ignore further input until it finishes.
		return m, nil
	}

	if m.view == viewForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.inputs[m.focus].Blur()
		m.focus = 1 - m.focus
		return m, m.inputs[m.focus].Focus()
	case "enter":
		if m.running {
			return m, nil
		}
		m.query = model.Query{
			Role:     m.inputs[inputRole].Value(),
			Location: m.inputs[inputLocation].Value(),
		}
		m.running = true
		m.view = viewLoading
		m.frame = 0
		return m, tea.Batch(m.runAnalysisCmd(m.query), tick())
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m dashboardModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.view = viewForm
		return m, m.inputs[m.focus].Focus()
	}

	var cmd tea.Cmd
	m.resultViewport, cmd = m.resultViewport.Update(msg)
	return m, cmd
}

func (m dashboardModel) runAnalysisCmd(q model.Query) tea.Cmd {
	analyzer := m.analyzer
	timeout := m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		result, err := analyzer.Run(ctx, q)
		return analysisDoneMsg{result: result, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m *dashboardModel) recalcLayout() {
	width := max(m.width-4, 40)
	// Header (4 lines) + query line (1) + hint (2).
	height := max(m.height-7, 5)

	if !m.ready {
		m.resultViewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.resultViewport.Width = width
		m.resultViewport.Height = height
	}
}

func (m dashboardModel) View() string {
	header := titleStyle.Render("📊 SkillMap") + "\n" +
		subtitleStyle.Render("Personalized learning based on job market demand.")

	switch m.view {
	case viewLoading:
		spinner := lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render(spinnerFrames[m.frame])
		return header + "\n" + bodyStyle.Render(
			fmt.Sprintf("%s Fetching %s jobs in %s...", spinner, m.query.Role, m.query.Location),
		) + "\n"
	case viewResult:
		return header + "\n" +
			bodyStyle.Render(dimStyle.Render(fmt.Sprintf("%s · %s", m.query.Role, m.query.Location))) + "\n" +
			bodyStyle.Render(m.resultViewport.View()) + "\n" +
			hintStyle.Render("↑/↓/pgup/pgdn scroll  esc new search  q quit")
	}

	labels := [2]string{"🎯 Enter Job Role:", "📍 Enter Location:"}
	s := header + "\n"
	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		s += style.Render(labels[i]) + "\n" + bodyStyle.Render(in.View()) + "\n\n"
	}
	s += hintStyle.Render("tab switch field  enter 🔍 Analyze Skills  esc quit")
	return s
}

// RunDashboard launches the interactive terminal dashboard and blocks until the user quits.
func RunDashboard(analyzer Analyzer, defaultRole, defaultLocation string, timeout time.Duration) error {
	m := newDashboardModel(analyzer, defaultRole, defaultLocation, timeout)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
