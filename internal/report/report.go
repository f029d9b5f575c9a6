// Package report holds the user-facing messages shared by the CLI and TUI.
package report

import (
	"fmt"

	"github.com/developerashkan/Gantt-Chart-Generator/internal/schedule"
	"github.com/dustin/go-humanize"
)

const (
	EmptyInput   = "❌ No input detected."
	NoValidTasks = "No valid tasks found. Chart generation aborted."
	Rendering    = "✅ Rendering chart..."
)

// Diagnostic formats a rejected entry with the failure marker.
func Diagnostic(d schedule.Diagnostic) string {
	if d.Unexpected() {
		return "❌ UNEXPECTED ERROR: " + d.Error()
	}
	return "❌ ERROR: " + d.Error()
}

// Saved describes a chart file that was written.
func Saved(path string, size int64) string {
	return fmt.Sprintf("Chart saved to %s (%s)", path, humanize.Bytes(uint64(size)))
}

// Summary is a one-line description of what is being drawn.
func Summary(tasks, rejected int) string {
	s := fmt.Sprintf("%d %s", tasks, plural(tasks, "task", "tasks"))
	if rejected > 0 {
		s += fmt.Sprintf(", %d rejected", rejected)
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
