// Package msgs defines shared message types for TUI view transitions.
package msgs

// InputSubmittedMsg is sent once when the user presses Enter on the input
// view.
type InputSubmittedMsg struct {
	Raw string
}

// ChartSavedMsg reports the outcome of writing the chart to disk.
type ChartSavedMsg struct {
	Path string
	Size int64
	Err  error
}
