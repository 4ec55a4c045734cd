// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package world

// Cell is the symbol stored at one grid position.
type Cell rune

const (
	// Floor is an unlit floor cell.
	Floor Cell = '.'
	// FloorLit is a floor cell that has been lit.
	FloorLit Cell = 'x'
	// Marker is an unlit target cell.
	Marker Cell = 'O'
	// MarkerLit is a target cell that has been lit.
	MarkerLit Cell = 'X'
)

// Lightable reports whether the light can change this cell. Only unlit
// floor and markers qualify.
func (c Cell) Lightable() bool {
	return c == Floor || c == Marker
}

// Lit reports whether the cell is in a lit state.
func (c Cell) Lit() bool {
	return c == FloorLit || c == MarkerLit
}

// Toggled returns the cell after the robot's light acts on it. Lighting is
// one way: unlit floor and markers become lit, and every other cell,
// including one that is already lit, is returned unchanged.
func (c Cell) Toggled() Cell {
	switch c {
	case Floor:
		return FloorLit
	case Marker:
		return MarkerLit
	}
	return c
}
