// Package chart lays out tasks as horizontal bars on a date axis and renders
// the result to a terminal string or an SVG image.
package chart

import (
	"fmt"
	"time"

	"github.com/developerashkan/Gantt-Chart-Generator/internal/schedule"
)

const (
	// DefaultTitle is drawn above every chart.
	DefaultTitle = "Project Schedule Overview"
	// DefaultXLabel names the date axis.
	DefaultXLabel = "Date"
)

// Bar is one task placed on the chart. Y is the position on the vertical
// axis counted from the bottom, so the first task in the input sequence sits
// on the lowest row.
type Bar struct {
	Label string
	Start time.Time
	Days  int
	Y     int
}

// End returns the exclusive right edge of the bar.
func (b Bar) End() time.Time {
	return b.Start.AddDate(0, 0, b.Days)
}

// DurationLabel returns the text drawn next to the bar, e.g. "3d".
func (b Bar) DurationLabel() string {
	return fmt.Sprintf("%dd", b.Days)
}

// Layout is the renderer-independent chart model.
type Layout struct {
	Title  string
	XLabel string
	Bars   []Bar
	Min    time.Time // left edge of the date axis
	Max    time.Time // right edge of the date axis
}

// NewLayout places tasks in sequence order: tasks[0] becomes the bottom bar.
// Pass tasks through schedule.SortForDisplay first to get the earliest task
// on top.
func NewLayout(tasks []schedule.Task) Layout {
	l := Layout{
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		Bars:   make([]Bar, 0, len(tasks)),
	}

	for i, task := range tasks {
		bar := Bar{
			Label: task.Name,
			Start: task.Start,
			Days:  task.DurationDays(),
			Y:     i,
		}
		l.Bars = append(l.Bars, bar)

		if i == 0 || bar.Start.Before(l.Min) {
			l.Min = bar.Start
		}
		if i == 0 || bar.End().After(l.Max) {
			l.Max = bar.End()
		}
	}

	return l
}

// Empty reports whether there is nothing to draw.
func (l Layout) Empty() bool {
	return len(l.Bars) == 0
}

// SpanDays returns the width of the date axis in days.
func (l Layout) SpanDays() int {
	if l.Empty() {
		return 0
	}
	return schedule.DaysBetween(l.Min, l.Max)
}

// Offset returns how many days t lies to the right of the axis origin.
func (l Layout) Offset(t time.Time) int {
	return schedule.DaysBetween(l.Min, t)
}

// Rows returns the bars in visual order, top row first.
func (l Layout) Rows() []Bar {
	rows := make([]Bar, len(l.Bars))
	for i, bar := range l.Bars {
		rows[len(l.Bars)-1-i] = bar
	}
	return rows
}
