package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/logging"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/schedule"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/msgs"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/styles"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/views"
)

// Minimum terminal size for the chart to be legible.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// View represents the different screens in the TUI.
type View int

const (
	ViewInput View = iota
	ViewChart
	ViewAborted
)

// Options configures TUI startup behavior.
type Options struct {
	OutPath string      // SVG destination for the save key
	Logger  *log.Logger // nil discards log output
}

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	input   views.InputModel
	chart   views.ChartModel
	aborted views.MessageModel

	opts   Options
	logger *log.Logger
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(
		newModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func newModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return Model{
		currentView: ViewInput,
		input:       views.NewInputModel(),
		opts:        opts,
		logger:      logger,
	}
}

func initialModel() Model {
	return newModel(Options{})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetSize(msg.Width, msg.Height)
		m.chart.SetSize(msg.Width, msg.Height)
		m.aborted.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case msgs.InputSubmittedMsg:
		return m.handleSubmit(msg.Raw), nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewInput:
		m.input, cmd = m.input.Update(msg)
	case ViewChart:
		m.chart, cmd = m.chart.Update(msg)
	case ViewAborted:
		m.aborted, cmd = m.aborted.Update(msg)
	}
	return m, cmd
}

// handleSubmit validates the submitted text and switches to the chart or
// the abort screen.
func (m Model) handleSubmit(raw string) Model {
	res, err := schedule.Build(raw)
	m.logger.Debug("parsed input", "entries", res.Entries, "tasks", len(res.Tasks), "rejected", len(res.Diagnostics))

	switch {
	case errors.Is(err, schedule.ErrEmptyInput):
		m.aborted = views.NewEmptyInputModel()
		m.currentView = ViewAborted
	case err != nil:
		m.logger.Debug("aborting", "err", err)
		m.aborted = views.NewNoValidTasksModel(res.Diagnostics)
		m.currentView = ViewAborted
	default:
		m.chart = views.NewChartModel(res, m.opts.OutPath)
		m.currentView = ViewChart
	}

	m.chart.SetSize(m.width, m.height)
	m.aborted.SetSize(m.width, m.height)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	switch m.currentView {
	case ViewChart:
		return m.chart.View()
	case ViewAborted:
		return m.aborted.View()
	default:
		return m.input.View()
	}
}

func (m Model) renderTerminalTooSmall() string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		styles.ErrorStyle.Render("Terminal too small"),
		fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight),
		fmt.Sprintf("Current: %dx%d", m.width, m.height),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

// CurrentView returns the active screen.
func (m Model) CurrentView() View {
	return m.currentView
}
