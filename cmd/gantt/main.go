package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/cli"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/logging"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/tui"
	"github.com/developerashkan/Gantt-Chart-Generator/internal/version"
	"github.com/mattn/go-isatty"
)

func main() {
	// Root flags only: TUI or headless pipeline. Anything else is a subcommand.
	if len(os.Args) == 1 || strings.HasPrefix(os.Args[1], "-") {
		if err := runRoot(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(args []string) error {
	res, err := parseArgs(args)
	if err != nil {
		return err
	}
	if res.ShowHelp {
		fmt.Print(res.HelpText)
		return nil
	}
	if res.ShowVersion {
		fmt.Printf("gantt %s\n", version.String())
		return nil
	}

	if !stdinIsTerminal() {
		opts := logging.DefaultOptions()
		opts.Verbose = res.Verbose
		return cli.RenderStdio(cli.RenderOptions{OutPath: res.OutPath}, logging.New(os.Stderr, opts))
	}

	logger, closeLog, err := tuiLogger(res)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(tui.Options{OutPath: res.OutPath, Logger: logger})
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// tuiLogger opens the log file when one was requested. The alt screen owns
// the terminal, so without a file the logger discards everything.
func tuiLogger(res parseResult) (*log.Logger, func(), error) {
	if res.LogFile == "" {
		return logging.Discard(), func() {}, nil
	}

	f, err := os.OpenFile(res.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	opts := logging.DefaultOptions()
	opts.Verbose = res.Verbose
	opts.ReportTimestamp = true
	return logging.New(f, opts), func() { f.Close() }, nil
}
