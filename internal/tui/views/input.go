package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/prompt"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/components"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/msgs"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui/styles"
)

const inputPlaceholder = "Design, 2024-01-01, 2024-01-03; Build, 2024-01-04, 2024-01-10"

// InputModel collects the single line of task entries.
type InputModel struct {
	input     textinput.Model
	submitted bool
	width     int
	height    int
}

// NewInputModel creates a focused InputModel.
func NewInputModel() InputModel {
	ti := textinput.New()
	ti.Placeholder = inputPlaceholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Width = 60
	ti.Focus()

	return InputModel{input: ti}
}

// Init implements tea.Model.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m InputModel) Update(msg tea.Msg) (InputModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			// Exactly one read per run.
			if m.submitted {
				return m, nil
			}
			m.submitted = true
			m.input.Blur()
			raw := m.input.Value()
			return m, func() tea.Msg { return msgs.InputSubmittedMsg{Raw: raw} }
		}
	}

	if m.submitted {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m InputModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(prompt.Banner[0]))
	b.WriteString("\n")
	for _, line := range prompt.Banner[1:] {
		b.WriteString(styles.SubtleStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(prompt.Label)
	b.WriteString("\n")
	b.WriteString(styles.BoxStyle.Width(max(m.width-2, 10)).Render(m.input.View()))

	content := b.String()
	padding := m.height - strings.Count(content, "\n") - 2
	if padding > 0 {
		content += strings.Repeat("\n", padding)
	}

	statusBar := components.NewStatusBar(
		components.HelpItem{Key: "Enter", Desc: "Render"},
		components.HelpItem{Key: "Esc", Desc: "Quit"},
	)
	return content + "\n" + statusBar.Render(m.width)
}

// SetSize updates the model dimensions.
func (m *InputModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Prompt, border, padding and cursor take 8 columns.
	m.input.Width = max(width-8, 10)
}

// Value returns the current text.
func (m InputModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the current text.
func (m *InputModel) SetValue(s string) {
	m.input.SetValue(s)
}

// Submitted reports whether the input has been submitted.
func (m InputModel) Submitted() bool {
	return m.submitted
}
