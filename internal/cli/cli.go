// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/lightbot/internal/app"
	"golang.org/x/term"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// terminalFunc reports whether a file is an interactive terminal.
type terminalFunc func(f *os.File) bool

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Defaults that depend on the environment are resolved here: logs are text on
// an interactive stderr and JSON otherwise, and the report is colored only
// when stdout is a terminal.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return parse(args, output, isTerminal)
}

func parse(args []string, output io.Writer, tty terminalFunc) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lightbot", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
lightbot - Runs LightBot programs against a toroidal light grid.

Usage:
  lightbot [options] [CONFIG_PATH...]

Arguments:
  CONFIG_PATH
    Path to a .hcl, .yaml, .yml or .toml file, or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the configuration file or directory.")
	cFlag := flagSet.String("c", "", "Path to the configuration file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. Defaults to text on a terminal, json otherwise.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", "text", "Report format. Options: 'text', 'yaml', 'msgpack'.")
	oFlag := flagSet.String("o", "", "Report format (shorthand).")
	colorFlag := flagSet.String("color", "auto", "Color the text report. Options: 'auto', 'always', 'never'.")
	maxDepthFlag := flagSet.Int("max-depth", 0, "Maximum REPEAT/CALL nesting. 0 uses the configured or default limit.")
	programFlag := flagSet.String("program", "", "Comma-separated names of the programs to run. Empty runs all.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	if *configFlag != "" {
		paths = append(paths, *configFlag)
	}
	if *cFlag != "" {
		paths = append(paths, *cFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Config paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No config path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "":
		logFormat = "json"
		if tty(os.Stderr) {
			logFormat = "text"
		}
	case "text", "json":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	outputFormat := strings.ToLower(*outputFlag)
	if *oFlag != "" {
		outputFormat = strings.ToLower(*oFlag)
	}

	var color bool
	switch strings.ToLower(*colorFlag) {
	case "auto":
		color = tty(os.Stdout)
	case "always":
		color = true
	case "never":
		color = false
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid color: must be 'auto', 'always', or 'never'"}
	}

	var programs []string
	for _, name := range strings.Split(*programFlag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			programs = append(programs, name)
		}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPaths:  paths,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		OutputFormat: outputFormat,
		Color:        color,
		MaxDepth:     *maxDepthFlag,
		Programs:     programs,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
