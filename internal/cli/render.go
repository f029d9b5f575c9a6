package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/chart"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/logging"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/prompt"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/report"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/schedule"
	"github.com/spf13/cobra"
)

const defaultTextWidth = 100

var (
	renderOut       string
	renderText      bool
	renderWidth     int
	renderVerbose   bool
	renderLogFormat string
)

// RenderOptions holds the options for the headless render pipeline.
type RenderOptions struct {
	OutPath string // SVG destination, ignored when Text is set
	Text    bool   // print the chart to the output instead of saving SVG
	Width   int    // text chart width in columns
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Read tasks from stdin and render the chart without the TUI",
	Long: `Print the input format banner, read one line of tasks from stdin, report
rejected entries and render the chart.

The chart is saved as SVG (default gantt.svg) or, with --text, printed to
stdout. Example input:

  Design, 2024-01-01, 2024-01-03; Build, 2024-01-04, 2024-01-10`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", chart.DefaultSVGPath, "Path of the SVG file to write")
	renderCmd.Flags().BoolVar(&renderText, "text", false, "Print the chart to stdout instead of writing SVG")
	renderCmd.Flags().IntVar(&renderWidth, "width", defaultTextWidth, "Width of the text chart in columns")
	renderCmd.Flags().BoolVar(&renderVerbose, "verbose", false, "Log pipeline details to stderr")
	renderCmd.Flags().StringVar(&renderLogFormat, "log-format", "text", "Log format: text, logfmt, json")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWidth <= 0 {
		return fmt.Errorf("--width must be positive, got %d", renderWidth)
	}

	logOpts := logging.DefaultOptions()
	logOpts.Verbose = renderVerbose
	logOpts.Formatter = logging.ParseFormatter(renderLogFormat)
	logger := logging.New(cmd.ErrOrStderr(), logOpts)

	opts := RenderOptions{
		OutPath: renderOut,
		Text:    renderText,
		Width:   renderWidth,
	}
	return Render(cmd.InOrStdin(), cmd.OutOrStdout(), opts, logger)
}

// Render runs one pass of the pipeline: banner, single read, validation,
// sorting and rendering. Running out of input or valid tasks is reported to
// out and is not an error.
func Render(in io.Reader, out io.Writer, opts RenderOptions, logger *log.Logger) error {
	if err := prompt.WriteBanner(out); err != nil {
		return err
	}

	raw, err := prompt.ReadLine(out, in, prompt.Label)
	if err != nil {
		return err
	}

	res, err := schedule.Build(raw)
	for _, d := range res.Diagnostics {
		fmt.Fprintln(out, report.Diagnostic(d))
		logger.Debug("entry rejected", "kind", d.Kind, "entry", d.Entry)
	}

	switch {
	case errors.Is(err, schedule.ErrEmptyInput):
		fmt.Fprintln(out, report.EmptyInput)
		return nil
	case errors.Is(err, schedule.ErrNoValidTasks):
		logger.Debug("aborting", "err", err)
		fmt.Fprintln(out, "\n"+report.NoValidTasks)
		return nil
	case err != nil:
		return err
	}

	logger.Debug("parsed input", "entries", res.Entries, "tasks", len(res.Tasks), "rejected", len(res.Diagnostics))
	fmt.Fprintln(out, "\n"+report.Rendering)

	layout := chart.NewLayout(res.Tasks)

	if opts.Text {
		fmt.Fprintln(out, chart.RenderText(layout, opts.Width))
		return nil
	}

	path := opts.OutPath
	if path == "" {
		path = chart.DefaultSVGPath
	}
	size, err := chart.SaveSVG(path, layout, chart.SVGOptions{})
	if err != nil {
		logger.Error("chart not saved", "path", path, "err", err)
		return err
	}
	logger.Debug("chart written", "path", path, "bytes", size, "bars", len(layout.Bars))

	fmt.Fprintln(out, report.Saved(path, size))
	return nil
}

// RenderStdio runs Render against the process standard streams.
func RenderStdio(opts RenderOptions, logger *log.Logger) error {
	return Render(os.Stdin, os.Stdout, opts, logger)
}
