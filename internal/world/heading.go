// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package world

// Heading is the direction the robot is facing.
type Heading int

const (
	Up Heading = iota
	Right
	Down
	Left
)

// ParseHeading maps a start-marker symbol from a map (U, D, L, R) to a heading.
func ParseHeading(symbol rune) (Heading, bool) {
	switch symbol {
	case 'U':
		return Up, true
	case 'D':
		return Down, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	}
	return Up, false
}

// Left returns the heading after a 90 degree counter-clockwise turn.
// The cycle is Up -> Left -> Down -> Right -> Up.
func (h Heading) Left() Heading {
	return (h + 3) % 4
}

// Right returns the heading after a 90 degree clockwise turn.
func (h Heading) Right() Heading {
	return (h + 1) % 4
}

// Delta returns the unit row/column offset of one step in this direction.
func (h Heading) Delta() (dr, dc int) {
	switch h {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Symbol returns the map symbol used for a robot facing this way.
func (h Heading) Symbol() rune {
	return [...]rune{'U', 'R', 'D', 'L'}[h%4]
}

func (h Heading) String() string {
	return [...]string{"up", "right", "down", "left"}[h%4]
}
