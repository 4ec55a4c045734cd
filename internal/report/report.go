// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package report collects the outcome of each program run and renders it for
// people (text) or for other tools (yaml, msgpack).
package report

import (
	"fmt"
	"io"
	"strings"
)

// Format selects how a Report is written.
type Format string

const (
	FormatText    Format = "text"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatYAML, FormatMsgpack}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("invalid output format %q: must be one of %s", s, strings.Join(names, ", "))
}

// Status is the outcome of one program.
type Status string

const (
	// StatusDone means the program ran and had nothing to check.
	StatusDone Status = "done"
	// StatusPassed means the program ran and met its expectations.
	StatusPassed Status = "passed"
	// StatusFailed means the program ran but its expectations did not match.
	StatusFailed Status = "failed"
	// StatusError means the program stopped with an error.
	StatusError Status = "error"
	// StatusSkipped means an earlier program stopped the run.
	StatusSkipped Status = "skipped"
)

// Position is the robot location, column first.
type Position struct {
	X int `yaml:"x" msgpack:"x"`
	Y int `yaml:"y" msgpack:"y"`
}

// Steps mirrors the interpreter counters for a single run.
type Steps struct {
	Commands int `yaml:"commands" msgpack:"commands"`
	Toggles  int `yaml:"toggles" msgpack:"toggles"`
	Repeats  int `yaml:"repeats" msgpack:"repeats"`
	Calls    int `yaml:"calls" msgpack:"calls"`
	Ignored  int `yaml:"ignored" msgpack:"ignored"`
	MaxDepth int `yaml:"max_depth" msgpack:"max_depth"`
}

// Result is the state after one program.
type Result struct {
	Program    string   `yaml:"program" msgpack:"program"`
	Status     Status   `yaml:"status" msgpack:"status"`
	Reset      bool     `yaml:"reset,omitempty" msgpack:"reset,omitempty"`
	Position   Position `yaml:"position" msgpack:"position"`
	Heading    string   `yaml:"heading" msgpack:"heading"`
	Map        []string `yaml:"map" msgpack:"map"`
	Steps      Steps    `yaml:"steps" msgpack:"steps"`
	Error      string   `yaml:"error,omitempty" msgpack:"error,omitempty"`
	Mismatches []string `yaml:"mismatches,omitempty" msgpack:"mismatches,omitempty"`
}

// Summary counts results by status.
type Summary struct {
	Total   int `yaml:"total" msgpack:"total"`
	Done    int `yaml:"done" msgpack:"done"`
	Passed  int `yaml:"passed" msgpack:"passed"`
	Failed  int `yaml:"failed" msgpack:"failed"`
	Errors  int `yaml:"errors" msgpack:"errors"`
	Skipped int `yaml:"skipped" msgpack:"skipped"`
}

// Report is an ordered list of results.
type Report struct {
	Results []Result `yaml:"results" msgpack:"results"`
	Summary Summary  `yaml:"summary" msgpack:"summary"`
}

// Add appends a result and updates the summary.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
	r.Summary.Total++
	switch res.Status {
	case StatusDone:
		r.Summary.Done++
	case StatusPassed:
		r.Summary.Passed++
	case StatusFailed:
		r.Summary.Failed++
	case StatusError:
		r.Summary.Errors++
	case StatusSkipped:
		r.Summary.Skipped++
	}
}

// OK reports whether no program failed or errored.
func (r *Report) OK() bool {
	return r.Summary.Failed == 0 && r.Summary.Errors == 0
}

// Options control rendering.
type Options struct {
	Format Format
	// Color enables ANSI colors in text output.
	Color bool
}

// Write renders r to w.
func Write(w io.Writer, r *Report, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, r, opts.Color)
	case FormatYAML:
		return writeYAML(w, r)
	case FormatMsgpack:
		return writeMsgpack(w, r)
	}
	return fmt.Errorf("unsupported output format %q", opts.Format)
}
