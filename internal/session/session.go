// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package session owns one world and runs programs against it.
//
// A Session snapshots its world when it is created. Runs mutate the live world
// and accumulate: each Run starts from wherever the previous one left the robot
// and the lights, until Reset restores the snapshot. Every Run rebuilds the
// function table from its own instructions, so definitions never leak from one
// run into the next.
package session

import (
	"context"
	"fmt"

	"github.com/specialistvlad/lightbot/internal/ctxlog"
	"github.com/specialistvlad/lightbot/internal/interpreter"
	"github.com/specialistvlad/lightbot/internal/program"
	"github.com/specialistvlad/lightbot/internal/world"
)

// Session is the controller a caller talks to. It is not safe for concurrent
// use; independent callers should each own a Session.
type Session struct {
	world    *world.World
	snapshot world.Snapshot
	table    *program.Table
	maxDepth int
}

// Option configures a Session.
type Option func(*Session)

// WithMaxDepth limits how deeply REPEAT and CALL scopes may nest during a run.
// Zero or less keeps interpreter.DefaultMaxDepth, and values above
// interpreter.MaxDepthLimit are lowered to it.
func WithMaxDepth(depth int) Option {
	return func(s *Session) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// New creates a session over w and takes the snapshot Reset returns to.
func New(w *world.World, opts ...Option) *Session {
	s := &Session{
		world:    w,
		snapshot: w.Snapshot(),
		table:    program.NewTable(),
		maxDepth: interpreter.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run validates instructions, rebuilds the function table from them and
// executes them against the live world. It does not reset the world first.
//
// Malformed programs are rejected before anything moves. A failure during
// execution aborts the run and leaves the world as it was at that point.
func (s *Session) Run(ctx context.Context, instructions []string) (interpreter.Stats, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Session run started.", "instructions", len(instructions))

	s.table.Clear()
	if err := program.Validate(instructions); err != nil {
		return interpreter.Stats{}, fmt.Errorf("run failed: %w", err)
	}
	if err := s.table.Load(instructions); err != nil {
		s.table.Clear()
		return interpreter.Stats{}, fmt.Errorf("run failed: %w", err)
	}
	logger.Debug("Function table rebuilt.", "functions", s.table.Names())

	exec := interpreter.New(s.world, s.table, s.maxDepth)
	if err := exec.Execute(ctx, instructions); err != nil {
		return exec.Stats(), fmt.Errorf("run failed: %w", err)
	}

	stats := exec.Stats()
	x, y := s.world.Position()
	logger.Debug("Session run finished.", "x", x, "y", y, "commands", stats.Commands, "calls", stats.Calls)
	return stats, nil
}

// Reset restores the world to the state it had when the session was created.
func (s *Session) Reset() {
	s.world.Restore(s.snapshot)
}

// Position returns the robot's location as (x, y): column first, then row.
func (s *Session) Position() (x, y int) {
	return s.world.Position()
}

// Heading returns the direction the robot faces.
func (s *Session) Heading() world.Heading {
	return s.world.Agent().Heading
}

// Map returns the current grid, one string per row. The robot is not drawn.
func (s *Session) Map() []string {
	return s.world.Grid().Render()
}

// Functions returns the names defined by the most recent run.
func (s *Session) Functions() []string {
	return s.table.Names()
}
