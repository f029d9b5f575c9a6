package chart

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	barRune      = '█'
	gridRune     = '┆'
	axisRune     = '─'
	tickMarkRune = '┬'
	cornerRune   = '└'
	spineRune    = '│'

	minPlotWidth = 10
	// Columns per tick so diagonal labels stay readable.
	tickSpacing = 4
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	gridStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	durationStyle = lipgloss.NewStyle().Bold(true)
	axisStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellText
	cellGrid
	cellBar
	cellDuration
	cellAxis
)

type cell struct {
	r    rune
	kind cellKind
}

// textGeometry holds the column arithmetic shared by every line of a text
// chart.
type textGeometry struct {
	labelWidth int
	plotWidth  int // plot spans columns 0..plotWidth inclusive
	canvas     int // plot columns plus room for labels on the right
	span       int
	layout     Layout
}

func newTextGeometry(l Layout, width int) textGeometry {
	labelWidth, durWidth := 1, 0
	for _, bar := range l.Bars {
		labelWidth = max(labelWidth, ansi.StringWidth(bar.Label))
		durWidth = max(durWidth, len(bar.DurationLabel()))
	}
	if limit := width / 3; labelWidth > limit {
		labelWidth = max(limit, 1)
	}

	// Diagonal tick labels reach len(TickLayout)-1 columns past their tick.
	tail := max(durWidth+1, len(TickLayout)-1)
	plotWidth := width - labelWidth - 2 - tail - 1
	if plotWidth < minPlotWidth {
		plotWidth = minPlotWidth
	}

	return textGeometry{
		labelWidth: labelWidth,
		plotWidth:  plotWidth,
		canvas:     plotWidth + 1 + tail,
		span:       max(l.SpanDays(), 1),
		layout:     l,
	}
}

func (g textGeometry) col(t time.Time) int {
	return int(math.Round(float64(g.layout.Offset(t)) * float64(g.plotWidth) / float64(g.span)))
}

// RenderText draws the layout as a terminal chart roughly width columns
// wide. Rows are printed top to bottom in the order returned by Rows, so the
// last bar of the layout is the first line.
func RenderText(l Layout, width int) string {
	if l.Empty() {
		return ""
	}

	g := newTextGeometry(l, width)
	ticks := l.Ticks(max(1, g.plotWidth/tickSpacing))
	tickCols := make([]int, len(ticks))
	for i, tick := range ticks {
		tickCols[i] = g.col(tick.Date)
	}

	totalWidth := g.labelWidth + 2 + g.canvas
	gutter := strings.Repeat(" ", g.labelWidth+2)

	var lines []string
	lines = append(lines, lipgloss.PlaceHorizontal(totalWidth, lipgloss.Center, titleStyle.Render(l.Title)))
	lines = append(lines, "")

	for _, bar := range l.Rows() {
		lines = append(lines, g.renderRow(bar, tickCols))
	}

	axis := make([]cell, g.plotWidth+1)
	for i := range axis {
		axis[i] = cell{axisRune, cellAxis}
	}
	for _, c := range tickCols {
		axis[c] = cell{tickMarkRune, cellAxis}
	}
	lines = append(lines, strings.Repeat(" ", g.labelWidth+1)+axisStyle.Render(string(cornerRune))+renderCells(axis))

	// Tick labels run diagonally down and to the right from each tick mark.
	for i := 0; i < len(TickLayout); i++ {
		row := make([]cell, g.canvas)
		for j, tick := range ticks {
			label := []rune(tick.Label)
			if p := tickCols[j] + i; i < len(label) && p < len(row) {
				row[p] = cell{label[i], cellText}
			}
		}
		lines = append(lines, gutter+renderCells(row))
	}

	lines = append(lines, gutter+strings.TrimRight(lipgloss.PlaceHorizontal(g.plotWidth+1, lipgloss.Center, l.XLabel), " "))

	return strings.Join(lines, "\n")
}

func (g textGeometry) renderRow(bar Bar, tickCols []int) string {
	cells := make([]cell, g.canvas)
	for _, c := range tickCols {
		cells[c] = cell{gridRune, cellGrid}
	}

	start, end := g.col(bar.Start), g.col(bar.End())
	if end <= start {
		end = start + 1
	}
	for c := start; c < end && c < len(cells); c++ {
		cells[c] = cell{barRune, cellBar}
	}
	for i, r := range bar.DurationLabel() {
		if p := end + 1 + i; p < len(cells) {
			cells[p] = cell{r, cellDuration}
		}
	}

	name := ansi.Truncate(bar.Label, g.labelWidth, "…")
	pad := g.labelWidth - ansi.StringWidth(name)
	if pad < 0 {
		pad = 0
	}

	return strings.Repeat(" ", pad) + name + " " + axisStyle.Render(string(spineRune)) + renderCells(cells)
}

// renderCells styles runs of same-kind cells and drops trailing blanks.
func renderCells(cells []cell) string {
	end := len(cells)
	for end > 0 && cells[end-1].kind == cellEmpty {
		end--
	}

	var b strings.Builder
	for i := 0; i < end; {
		j := i
		var run strings.Builder
		for j < end && cells[j].kind == cells[i].kind {
			r := cells[j].r
			if cells[j].kind == cellEmpty {
				r = ' '
			}
			run.WriteRune(r)
			j++
		}

		switch cells[i].kind {
		case cellGrid:
			b.WriteString(gridStyle.Render(run.String()))
		case cellBar:
			b.WriteString(barStyle.Render(run.String()))
		case cellDuration:
			b.WriteString(durationStyle.Render(run.String()))
		case cellAxis:
			b.WriteString(axisStyle.Render(run.String()))
		default:
			b.WriteString(run.String())
		}
		i = j
	}

	return b.String()
}
