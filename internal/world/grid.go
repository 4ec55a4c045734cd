// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package world

import "fmt"

// Grid is a rectangular, wrap-around arrangement of cells. Its dimensions are
// fixed when it is created.
type Grid struct {
	cells [][]Cell
	rows  int
	cols  int
}

// NewGrid copies the given rows into a new grid. The rows must be non-empty and
// of equal width; violating that is a programming error and panics. Input that
// comes from users is validated by the mapload package before it gets here.
func NewGrid(cells [][]Cell) *Grid {
	if len(cells) == 0 || len(cells[0]) == 0 {
		panic("world: grid must have at least one row and one column")
	}
	cols := len(cells[0])
	g := &Grid{
		cells: make([][]Cell, len(cells)),
		rows:  len(cells),
		cols:  cols,
	}
	for r, row := range cells {
		if len(row) != cols {
			panic(fmt.Sprintf("world: row %d has width %d, expected %d", r, len(row), cols))
		}
		g.cells[r] = append([]Cell(nil), row...)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the cell at (row, col). Coordinates wrap around both axes.
func (g *Grid) At(row, col int) Cell {
	row, col = g.wrap(row, col)
	return g.cells[row][col]
}

// Set stores a cell at (row, col). Coordinates wrap around both axes.
func (g *Grid) Set(row, col int, c Cell) {
	row, col = g.wrap(row, col)
	g.cells[row][col] = c
}

// Render returns the grid as one string per row.
func (g *Grid) Render() []string {
	out := make([]string, g.rows)
	for r, row := range g.cells {
		out[r] = string(row)
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return NewGrid(g.cells)
}

// copyFrom overwrites this grid's cells with the cells of src in place. Both
// grids must have the same dimensions.
func (g *Grid) copyFrom(src *Grid) {
	for r := range g.cells {
		copy(g.cells[r], src.cells[r])
	}
}

func (g *Grid) wrap(row, col int) (int, int) {
	return mod(row, g.rows), mod(col, g.cols)
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
