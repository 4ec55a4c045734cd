// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"
)

var statusColors = map[Status]color.Color{
	StatusDone:    color.Cyan,
	StatusPassed:  color.Green,
	StatusFailed:  color.Red,
	StatusError:   color.Red,
	StatusSkipped: color.Yellow,
}

func paint(s Status, enabled bool) string {
	c, ok := statusColors[s]
	if !enabled || !ok {
		return string(s)
	}
	return c.Sprint(string(s))
}

func writeText(w io.Writer, r *Report, useColor bool) error {
	bw := bufio.NewWriter(w)

	for _, res := range r.Results {
		fmt.Fprintf(bw, "== %s: %s\n", res.Program, paint(res.Status, useColor))
		if res.Status == StatusSkipped {
			continue
		}
		if res.Reset {
			fmt.Fprintln(bw, "reset: yes")
		}
		fmt.Fprintf(bw, "position: (%d, %d) facing %s\n", res.Position.X, res.Position.Y, res.Heading)
		fmt.Fprintln(bw, "map:")
		for _, row := range res.Map {
			fmt.Fprintf(bw, "  %s\n", row)
		}
		s := res.Steps
		fmt.Fprintf(bw, "steps: %d commands, %d toggles, %d repeats, %d calls, %d ignored, depth %d\n",
			s.Commands, s.Toggles, s.Repeats, s.Calls, s.Ignored, s.MaxDepth)
		if res.Error != "" {
			fmt.Fprintf(bw, "error: %s\n", res.Error)
		}
		for _, m := range res.Mismatches {
			fmt.Fprintf(bw, "mismatch: %s\n", m)
		}
	}

	sum := r.Summary
	fmt.Fprintf(bw, "summary: %d programs, %d done, %d passed, %d failed, %d errors, %d skipped\n",
		sum.Total, sum.Done, sum.Passed, sum.Failed, sum.Errors, sum.Skipped)
	return bw.Flush()
}
