// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package interpreter

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/lightbot/internal/ctxlog"
	"github.com/specialistvlad/lightbot/internal/program"
)

const (
	// DefaultMaxDepth is the nesting limit used when none is configured.
	DefaultMaxDepth = 256
	// MaxDepthLimit is the largest nesting limit an Executor accepts. Deeper
	// recursion would exhaust the goroutine stack, which is fatal rather than
	// an error.
	MaxDepthLimit = 100_000
)

// Robot is what a program drives.
type Robot interface {
	TurnLeft()
	TurnRight()
	MoveForward()
	// ToggleLight reports whether the cell under the robot changed.
	ToggleLight() bool
}

// Stats counts what an Executor has done.
type Stats struct {
	Commands int // primitive commands executed
	Toggles  int // LIGHT commands that changed a cell
	Repeats  int // REPEAT scopes entered
	Calls    int // functions called
	Ignored  int // unrecognized tokens skipped
	MaxDepth int // deepest nesting reached
}

// Executor runs instruction lists against a Robot using a function table.
// It keeps no state between calls other than its counters.
type Executor struct {
	robot    Robot
	table    *program.Table
	maxDepth int
	logger   *slog.Logger
	stats    Stats
}

// New creates an executor. A maxDepth of zero or less selects DefaultMaxDepth;
// anything above MaxDepthLimit is lowered to it.
func New(robot Robot, table *program.Table, maxDepth int) *Executor {
	switch {
	case maxDepth <= 0:
		maxDepth = DefaultMaxDepth
	case maxDepth > MaxDepthLimit:
		maxDepth = MaxDepthLimit
	}
	return &Executor{
		robot:    robot,
		table:    table,
		maxDepth: maxDepth,
		logger:   ctxlog.Discard(),
	}
}

// Execute runs list at the top level. The first failure stops the whole run;
// whatever the robot did before it is kept.
func (e *Executor) Execute(ctx context.Context, list []string) error {
	e.logger = ctxlog.FromContext(ctx)
	return e.exec(ctx, list, 0, "")
}

// Stats returns the counters accumulated so far.
func (e *Executor) Stats() Stats { return e.stats }

func (e *Executor) exec(ctx context.Context, list []string, depth int, fn string) error {
	if depth > e.stats.MaxDepth {
		e.stats.MaxDepth = depth
	}

	i := 0
	for i < len(list) {
		if err := ctx.Err(); err != nil {
			return err
		}
		token := list[i]

		switch program.Classify(token) {
		case program.KindLeft:
			e.robot.TurnLeft()
			e.stats.Commands++
			i++

		case program.KindRight:
			e.robot.TurnRight()
			e.stats.Commands++
			i++

		case program.KindForward:
			e.robot.MoveForward()
			e.stats.Commands++
			i++

		case program.KindLight:
			if e.robot.ToggleLight() {
				e.stats.Toggles++
			}
			e.stats.Commands++
			i++

		case program.KindRepeat:
			n, err := program.RepeatCount(token)
			if err != nil {
				return e.fail(token, fn, "", depth, err)
			}
			end, _ := program.FindClose(list, i)
			if n > 0 && depth+1 > e.maxDepth {
				return e.fail(token, fn, "", depth, ErrCallDepthExceeded)
			}
			e.stats.Repeats++
			body := list[i+1 : end]
			e.logger.Debug("Entering repeat.", "times", n, "body_len", len(body), "depth", depth+1)
			for k := 0; k < n; k++ {
				if err := e.exec(ctx, body, depth+1, fn); err != nil {
					return err
				}
			}
			i = end + 1

		case program.KindEndRepeat:
			// Only reachable for a closer that no REPEAT consumed.
			return nil

		case program.KindFunction:
			end, _ := program.FindClose(list, i)
			i = end + 1

		case program.KindCall:
			if err := e.call(ctx, token, depth, fn); err != nil {
				return err
			}
			i++

		default:
			e.stats.Ignored++
			i++
		}
	}
	return nil
}

func (e *Executor) call(ctx context.Context, token string, depth int, fn string) error {
	name, args, err := program.ParseCall(token)
	if err != nil {
		return e.fail(token, fn, "", depth, err)
	}
	def, ok := e.table.Lookup(name)
	if !ok {
		return e.fail(token, fn, name, depth, ErrUndefinedFunction)
	}
	body, err := program.Substitute(def.Body, def.Params, args)
	if err != nil {
		return e.fail(token, fn, name, depth, err)
	}
	if depth+1 > e.maxDepth {
		return e.fail(token, fn, name, depth, ErrCallDepthExceeded)
	}

	e.stats.Calls++
	e.logger.Debug("Calling function.", "function", name, "args", args, "depth", depth+1)
	return e.exec(ctx, body, depth+1, name)
}

func (e *Executor) fail(token, fn, name string, depth int, err error) error {
	e.logger.Debug("Execution failed.", "token", token, "function", fn, "depth", depth, "error", err)
	return &Error{Token: token, Function: fn, Name: name, Depth: depth, Err: err}
}
