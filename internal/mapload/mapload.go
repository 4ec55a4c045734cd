// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package mapload turns the textual description of a map into a world.World.
//
// A map is a non-empty list of equal-width rows. Each character is one cell:
// '.' is floor, 'O' is a target to light, and exactly one of 'U', 'D', 'L',
// 'R' marks where the robot starts and which way it faces. The start cell
// becomes plain floor. Every other character is kept as an obstacle.
package mapload

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/lightbot/internal/world"
)

var (
	// ErrEmptyMap is returned when there are no rows, or the rows are empty.
	ErrEmptyMap = errors.New("map is empty")
	// ErrRaggedRows is returned when rows differ in width.
	ErrRaggedRows = errors.New("map rows have different widths")
	// ErrNoStart is returned when no start marker appears in the map.
	ErrNoStart = errors.New("no start position found")
	// ErrMultipleStarts is returned when more than one start marker appears.
	ErrMultipleStarts = errors.New("more than one start position found")
)

// Parse builds a world from map rows.
func Parse(rows []string) (*world.World, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, ErrEmptyMap
	}

	cells := make([][]world.Cell, len(rows))
	var agent world.Agent
	found := false

	for r, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrRaggedRows, r, n, width)
		}
		line := make([]world.Cell, 0, width)
		c := 0
		for _, ch := range row {
			if heading, ok := world.ParseHeading(ch); ok {
				if found {
					return nil, fmt.Errorf("%w: at row %d, column %d and row %d, column %d", ErrMultipleStarts, agent.Row, agent.Col, r, c)
				}
				agent = world.Agent{Row: r, Col: c, Heading: heading}
				found = true
				ch = rune(world.Floor)
			}
			line = append(line, world.Cell(ch))
			c++
		}
		cells[r] = line
	}

	if !found {
		return nil, ErrNoStart
	}
	return world.New(world.NewGrid(cells), agent), nil
}

// SplitLines splits raw map text into rows. Carriage returns are dropped and
// a trailing newline does not produce an extra empty row.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// ParseText splits raw map text into rows and parses them.
func ParseText(text string) (*world.World, error) {
	return Parse(SplitLines(text))
}
