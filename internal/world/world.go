// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package world

import "fmt"

// Agent is the robot's pose: where it stands and which way it faces.
type Agent struct {
	Row     int
	Col     int
	Heading Heading
}

// TurnLeft rotates the agent 90 degrees counter-clockwise.
func (a *Agent) TurnLeft() { a.Heading = a.Heading.Left() }

// TurnRight rotates the agent 90 degrees clockwise.
func (a *Agent) TurnRight() { a.Heading = a.Heading.Right() }

// World is a grid together with the robot on it.
type World struct {
	grid  *Grid
	agent Agent
}

// New creates a world from a grid and a starting pose. The pose must lie
// inside the grid.
func New(grid *Grid, agent Agent) *World {
	if agent.Row < 0 || agent.Row >= grid.Rows() || agent.Col < 0 || agent.Col >= grid.Cols() {
		panic(fmt.Sprintf("world: agent at (%d,%d) is outside a %dx%d grid", agent.Row, agent.Col, grid.Rows(), grid.Cols()))
	}
	return &World{grid: grid, agent: agent}
}

// Grid returns the live grid.
func (w *World) Grid() *Grid { return w.grid }

// Agent returns a copy of the current pose.
func (w *World) Agent() Agent { return w.agent }

// Position returns the robot's location as (x, y), column first.
func (w *World) Position() (x, y int) {
	return w.agent.Col, w.agent.Row
}

// TurnLeft rotates the robot counter-clockwise.
func (w *World) TurnLeft() { w.agent.TurnLeft() }

// TurnRight rotates the robot clockwise.
func (w *World) TurnRight() { w.agent.TurnRight() }

// MoveForward steps the robot one cell in the direction it faces. Walking off
// an edge re-enters from the opposite edge; the move never fails.
func (w *World) MoveForward() {
	dr, dc := w.agent.Heading.Delta()
	w.agent.Row = mod(w.agent.Row+dr, w.grid.rows)
	w.agent.Col = mod(w.agent.Col+dc, w.grid.cols)
}

// ToggleLight lights the cell under the robot and reports whether the cell
// changed. Cells that are already lit, and obstacles, stay as they are.
func (w *World) ToggleLight() bool {
	c := w.grid.At(w.agent.Row, w.agent.Col)
	next := c.Toggled()
	if next == c {
		return false
	}
	w.grid.Set(w.agent.Row, w.agent.Col, next)
	return true
}

// Snapshot is a point-in-time copy of a world. It shares no memory with the
// world it was taken from.
type Snapshot struct {
	grid  *Grid
	agent Agent
}

// Agent returns the pose stored in the snapshot.
func (s Snapshot) Agent() Agent { return s.agent }

// Render returns the grid stored in the snapshot as strings.
func (s Snapshot) Render() []string { return s.grid.Render() }

// Snapshot deep-copies the current grid and pose.
func (w *World) Snapshot() Snapshot {
	return Snapshot{grid: w.grid.Clone(), agent: w.agent}
}

// Restore overwrites the live grid and pose with the snapshot's contents. The
// snapshot itself is left untouched and can be restored again.
func (w *World) Restore(s Snapshot) {
	if s.grid == nil {
		panic("world: restore from an empty snapshot")
	}
	if s.grid.rows != w.grid.rows || s.grid.cols != w.grid.cols {
		panic(fmt.Sprintf("world: snapshot is %dx%d, world is %dx%d", s.grid.rows, s.grid.cols, w.grid.rows, w.grid.cols))
	}
	w.grid.copyFrom(s.grid)
	w.agent = s.agent
}
