// SPDX-License-Identifier: MIT

// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/mazepath.
package gridgraph

import "fmt"

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Wall blocks movement. Every cell of a fresh Grid is a Wall.
	Wall Cell = iota
	// Open is a passable cell.
	Open
)

// String returns "WALL" or "OPEN".
func (c Cell) String() string {
	switch c {
	case Wall:
		return "WALL"
	case Open:
		return "OPEN"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// neighborOffsets is the fixed orthogonal order: right, down, left, up.
// Generation and solve tie-breaking both depend on it.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is a rows×cols array of Wall/Open cells plus a start and end coordinate.
// Cells are stored row-major. A Grid is safe for concurrent readers as long
// as nobody mutates it; callers finish building it before sharing it.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end Coord
}
