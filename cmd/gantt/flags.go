package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/developerashkan/Gantt-Chart-Generator/internal/chart"
)

type parseResult struct {
	OutPath     string
	Verbose     bool
	LogFile     string
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

func parseArgs(args []string) (parseResult, error) {
	fs := flag.NewFlagSet("gantt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	outPath := fs.String("out", chart.DefaultSVGPath, "Path of the SVG file to write")
	verbose := fs.Bool("verbose", false, "Log debug details")
	logFile := fs.String("log-file", "", "Write TUI logs to this file")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: gantt [flags]")
		fmt.Fprintln(&b, "       gantt render [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Gantt turns a single line of tasks into a Gantt chart.")
		fmt.Fprintln(&b, "The interactive view opens when stdin is a terminal.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	if strings.TrimSpace(*outPath) == "" {
		return parseResult{}, fmt.Errorf("--out must not be empty\n\n%s", usage())
	}

	return parseResult{
		OutPath: *outPath,
		Verbose: *verbose,
		LogFile: *logFile,
	}, nil
}
