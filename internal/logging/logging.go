// Package logging builds the leveled console logger used by gantt.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the logger.
type Options struct {
	Verbose         bool
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns info-level text logging without timestamps.
func DefaultOptions() Options {
	return Options{
		Formatter: log.TextFormatter,
		Prefix:    "gantt",
	}
}

// New creates a logger writing to w. Verbose enables debug output.
func New(w io.Writer, opts Options) *log.Logger {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything, for the TUI when no log
// file was requested.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseFormatter parses a formatter name. Unknown names fall back to text.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
