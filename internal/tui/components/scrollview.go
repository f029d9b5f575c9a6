package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	scrollTrack = "│"
	scrollThumb = "█"
)

// ScrollView wraps bubbles/viewport.Model with a 1-column scrollbar on the
// right. It starts at the top and keeps its offset when content changes.
type ScrollView struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including scrollbar
	height   int
}

// NewScrollView creates a ScrollView. Width includes the scrollbar column.
func NewScrollView(width, height int) ScrollView {
	vp := viewport.New(max(width-1, 0), max(height, 0))
	vp.SetContent("")
	return ScrollView{
		viewport: vp,
		width:    width,
		height:   max(height, 0),
	}
}

// SetSize updates the dimensions, clamping the scroll offset.
func (s *ScrollView) SetSize(width, height int) {
	if s.width == width && s.height == height {
		return
	}
	s.width = width
	s.height = max(height, 0)
	s.viewport.Width = s.ContentWidth()
	s.viewport.Height = s.height
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// SetLines replaces the content.
func (s *ScrollView) SetLines(lines []string) {
	s.lines = append([]string(nil), lines...)
	s.viewport.SetContent(strings.Join(s.lines, "\n"))
	s.viewport.SetYOffset(s.viewport.YOffset)
}

// Update handles viewport key and mouse scrolling.
func (s ScrollView) Update(msg tea.Msg) (ScrollView, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View renders the visible lines followed by the scrollbar column.
func (s ScrollView) View() string {
	if s.height == 0 {
		return ""
	}

	content := strings.Split(s.viewport.View(), "\n")
	bar := Scrollbar(s.height, len(s.lines), s.viewport.YOffset)
	contentWidth := s.ContentWidth()

	out := make([]string, s.height)
	for i := range out {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		if pad := contentWidth - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line + bar[i]
	}
	return strings.Join(out, "\n")
}

// ContentWidth returns the width available for content.
func (s ScrollView) ContentWidth() int {
	return max(s.width-1, 0)
}

// AtTop reports whether the first line is visible.
func (s ScrollView) AtTop() bool {
	return s.viewport.AtTop()
}

// AtBottom reports whether the last line is visible.
func (s ScrollView) AtBottom() bool {
	return s.viewport.AtBottom()
}

// YOffset returns the index of the first visible line.
func (s ScrollView) YOffset() int {
	return s.viewport.YOffset
}

// Scrollbar returns one cell per visible row. Rows are blank when all
// content fits; otherwise a thumb sized to the visible fraction sits on a
// track at the position matching yOffset.
func Scrollbar(height, total, yOffset int) []string {
	if height <= 0 {
		return nil
	}

	cells := make([]string, height)
	if total <= height {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumb := max(height*height/total, 1)
	maxOffset := total - height
	top := 0
	if yOffset > 0 {
		top = min(yOffset, maxOffset) * (height - thumb) / maxOffset
	}

	for i := range cells {
		if i >= top && i < top+thumb {
			cells[i] = scrollThumb
		} else {
			cells[i] = scrollTrack
		}
	}
	return cells
}
