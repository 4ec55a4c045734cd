// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/lightbot/internal/config"
	"github.com/specialistvlad/lightbot/internal/ctxlog"
	"github.com/specialistvlad/lightbot/internal/interpreter"
	"github.com/specialistvlad/lightbot/internal/report"
)

var (
	// ErrExpectationFailed is returned when a program leaves the world in a
	// state other than the one its expect block describes.
	ErrExpectationFailed = errors.New("expectations not met")
	// ErrUnknownProgram is returned when a requested program is not configured.
	ErrUnknownProgram = errors.New("program not defined")
)

// Run executes the selected programs in order against the shared session and
// writes the report. The first program that fails stops the run; the rest are
// reported as skipped.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	programs, err := a.selectPrograms()
	if err != nil {
		return err
	}
	if len(programs) == 0 {
		a.logger.Warn("No programs configured, nothing to run.")
	}

	rep := &report.Report{}
	var runErr error
	for _, p := range programs {
		if runErr != nil {
			rep.Add(report.Result{Program: p.Name, Status: report.StatusSkipped})
			continue
		}
		res, err := a.runProgram(ctx, p)
		rep.Add(res)
		if err != nil {
			runErr = fmt.Errorf("program %q: %w", p.Name, err)
		}
	}

	opts := report.Options{Format: report.Format(a.config.OutputFormat), Color: a.config.Color}
	if err := report.Write(a.outW, rep, opts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if runErr != nil {
		return runErr
	}
	if !rep.OK() {
		return fmt.Errorf("%w: %d of %d programs", ErrExpectationFailed, rep.Summary.Failed, rep.Summary.Total)
	}
	a.logger.Info("🏁 All programs finished.", "programs", rep.Summary.Total, "passed", rep.Summary.Passed)
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runProgram(ctx context.Context, p *config.Program) (report.Result, error) {
	logger := ctxlog.FromContext(ctx).With("program", p.Name)

	if p.Reset {
		a.session.Reset()
		logger.Debug("World reset to its initial state.")
	}

	logger.Info("🤖 Running program", "instructions", len(p.Instructions))
	stats, err := a.session.Run(ctx, p.Instructions)
	res := a.result(p, stats)
	if err != nil {
		logger.Error("Program failed", "error", err)
		res.Status = report.StatusError
		res.Error = err.Error()
		return res, err
	}

	if p.Expect == nil {
		res.Status = report.StatusDone
		return res, nil
	}
	res.Mismatches = a.check(p.Expect)
	if len(res.Mismatches) > 0 {
		logger.Warn("Expectations not met", "mismatches", res.Mismatches)
		res.Status = report.StatusFailed
		return res, nil
	}
	logger.Debug("Expectations met.")
	res.Status = report.StatusPassed
	return res, nil
}

func (a *App) result(p *config.Program, stats interpreter.Stats) report.Result {
	x, y := a.session.Position()
	return report.Result{
		Program:  p.Name,
		Reset:    p.Reset,
		Position: report.Position{X: x, Y: y},
		Heading:  a.session.Heading().String(),
		Map:      a.session.Map(),
		Steps: report.Steps{
			Commands: stats.Commands,
			Toggles:  stats.Toggles,
			Repeats:  stats.Repeats,
			Calls:    stats.Calls,
			Ignored:  stats.Ignored,
			MaxDepth: stats.MaxDepth,
		},
	}
}

// check compares the session state against want and describes each
// difference.
func (a *App) check(want *config.Expectation) []string {
	var mismatches []string
	if want.Position != nil {
		x, y := a.session.Position()
		got := config.Position{X: x, Y: y}
		if got != *want.Position {
			mismatches = append(mismatches, fmt.Sprintf("position: want %s, got %s", want.Position, got))
		}
	}
	if want.Map != nil {
		got := a.session.Map()
		if len(got) != len(want.Map) {
			mismatches = append(mismatches, fmt.Sprintf("map: want %d rows, got %d", len(want.Map), len(got)))
		} else {
			for i := range got {
				if got[i] != want.Map[i] {
					mismatches = append(mismatches, fmt.Sprintf("map row %d: want %q, got %q", i, want.Map[i], got[i]))
				}
			}
		}
	}
	return mismatches
}

// selectPrograms applies the -program filter, keeping config order.
func (a *App) selectPrograms() ([]*config.Program, error) {
	if len(a.config.Programs) == 0 {
		return a.model.Programs, nil
	}
	for _, name := range a.config.Programs {
		found := slices.ContainsFunc(a.model.Programs, func(p *config.Program) bool { return p.Name == name })
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
		}
	}
	var selected []*config.Program
	for _, p := range a.model.Programs {
		if slices.Contains(a.config.Programs, p.Name) {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
