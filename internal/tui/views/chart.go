package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/chart"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/report"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/schedule"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/components"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/msgs"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/styles"
)

// Header (title + summary) and footer (notice + status bar) heights.
const (
	chartHeaderHeight = 3
	chartFooterHeight = 2
)

// ChartModel displays the rendered chart with any rejected entries above it.
type ChartModel struct {
	result  schedule.Result
	layout  chart.Layout
	outPath string
	notice  string
	view    components.ScrollView
	width   int
	height  int
}

// NewChartModel creates a ChartModel for a successful parse.
func NewChartModel(res schedule.Result, outPath string) ChartModel {
	if outPath == "" {
		outPath = chart.DefaultSVGPath
	}
	return ChartModel{
		result:  res,
		layout:  chart.NewLayout(res.Tasks),
		outPath: outPath,
		view:    components.NewScrollView(0, 0),
	}
}

// Init implements tea.Model.
func (m ChartModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.ChartSavedMsg:
		if msg.Err != nil {
			m.notice = styles.ErrorStyle.Render("Save failed: " + msg.Err.Error())
		} else {
			m.notice = styles.SuccessStyle.Render(report.Saved(msg.Path, msg.Size))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.notice = styles.SubtleStyle.Render("Saving " + m.outPath + "...")
			return m, saveChart(m.outPath, m.layout)
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func saveChart(path string, l chart.Layout) tea.Cmd {
	return func() tea.Msg {
		size, err := chart.SaveSVG(path, l, chart.SVGOptions{})
		return msgs.ChartSavedMsg{Path: path, Size: size, Err: err}
	}
}

// View implements tea.Model.
func (m ChartModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(report.Rendering))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(report.Summary(len(m.result.Tasks), len(m.result.Diagnostics))))
	b.WriteString("\n")
	b.WriteString(m.view.View())
	b.WriteString("\n")
	b.WriteString(m.notice)
	b.WriteString("\n")

	statusBar := components.NewStatusBar(
		components.HelpItem{Key: "↑↓", Desc: "Scroll"},
		components.HelpItem{Key: "s", Desc: "Save SVG"},
		components.HelpItem{Key: "q", Desc: "Quit"},
	)
	b.WriteString(statusBar.Render(m.width))
	return b.String()
}

// SetSize updates the model dimensions and re-renders the chart to fit.
func (m *ChartModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.view.SetSize(width, max(height-chartHeaderHeight-chartFooterHeight, 1))
	m.view.SetLines(m.contentLines())
}

func (m ChartModel) contentLines() []string {
	var lines []string
	for _, d := range m.result.Diagnostics {
		lines = append(lines, styles.ErrorStyle.Render(report.Diagnostic(d)))
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return append(lines, strings.Split(chart.RenderText(m.layout, m.view.ContentWidth()), "\n")...)
}

// Layout returns the chart layout being displayed.
func (m ChartModel) Layout() chart.Layout {
	return m.layout
}

// OutPath returns where the chart is saved.
func (m ChartModel) OutPath() string {
	return m.outPath
}

// Notice returns the last save notice.
func (m ChartModel) Notice() string {
	return m.notice
}
