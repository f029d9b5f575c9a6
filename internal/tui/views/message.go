package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/report"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/schedule"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/components"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/styles"
)

// MessageModel shows why a run was aborted and exits on any key.
type MessageModel struct {
	lines  []string
	width  int
	height int
}

// NewEmptyInputModel reports that nothing was entered.
func NewEmptyInputModel() MessageModel {
	return MessageModel{lines: []string{styles.ErrorStyle.Render(report.EmptyInput)}}
}

// NewNoValidTasksModel lists every rejected entry followed by the abort
// notice.
func NewNoValidTasksModel(diags []schedule.Diagnostic) MessageModel {
	var lines []string
	for _, d := range diags {
		lines = append(lines, styles.ErrorStyle.Render(report.Diagnostic(d)))
	}
	lines = append(lines, "", report.NoValidTasks)
	return MessageModel{lines: lines}
}

// Init implements tea.Model.
func (m MessageModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MessageModel) Update(msg tea.Msg) (MessageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m MessageModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	content := strings.Join(m.lines, "\n")
	if padding := m.height - len(m.lines) - 1; padding > 0 {
		content += strings.Repeat("\n", padding)
	}
	return content + "\n" + components.NewStatusBar(components.HelpItem{Key: "any key", Desc: "Exit"}).Render(m.width)
}

// SetSize updates the model dimensions.
func (m *MessageModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Lines returns the message lines.
func (m MessageModel) Lines() []string {
	return m.lines
}
