// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Fixture and dump glyphs.
const (
	glyphWall  = '#'
	glyphOpen  = '.'
	glyphStart = 'S'
	glyphEnd   = 'E'
)

// NewGrid allocates a rows×cols grid with every cell set to Wall.
// Start defaults to (0,0) and End to (rows-1, cols-1).
// Returns ErrInvalidDimensions if rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewGrid(%d, %d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols), // zero value is Wall
		start: Coord{0, 0},
		end:   Coord{rows - 1, cols - 1},
	}, nil
}

// FromRows builds a grid from text rows, mainly for fixtures. Each row is
// ASCII, one byte per column: '#' is a wall and any other byte is open;
// 'S' and 'E' additionally mark start and end. Unmarked endpoints keep the
// NewGrid defaults.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidGlyph for malformed
// input.
func FromRows(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			if line[c] >= utf8.RuneSelf {
				return nil, fmt.Errorf("FromRows row %d col %d: %w", r, c, ErrInvalidGlyph)
			}
		}
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	g, err := NewGrid(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c := 0; c < cols; c++ {
			ch := line[c]
			if ch == glyphWall {
				continue
			}
			g.cells[g.index(r, c)] = Open
			switch ch {
			case glyphStart:
				g.start = Coord{r, c}
			case glyphEnd:
				g.end = Coord{r, c}
			}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// End returns the end coordinate.
func (g *Grid) End() Coord { return g.end }

// SetStart moves the start coordinate. It does not change any cell state.
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("SetStart%v: %w", c, ErrOutOfBounds)
	}
	g.start = c
	return nil
}

// SetEnd moves the end coordinate. It does not change any cell state.
func (g *Grid) SetEnd(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("SetEnd%v: %w", c, ErrOutOfBounds)
	}
	g.end = c
	return nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of cell c.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Wall, fmt.Errorf("At%v: %w", c, ErrOutOfBounds)
	}
	return g.cells[g.index(c.Row, c.Col)], nil
}

// IsOpen reports whether cell c is Open.
func (g *Grid) IsOpen(c Coord) (bool, error) {
	cell, err := g.At(c)
	if err != nil {
		return false, err
	}
	return cell == Open, nil
}

// SetOpen marks cell c as Open.
func (g *Grid) SetOpen(c Coord) error {
	return g.set(c, Open)
}

// SetWall marks cell c as Wall.
func (g *Grid) SetWall(c Coord) error {
	return g.set(c, Wall)
}

func (g *Grid) set(c Coord, v Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("set%v=%s: %w", c, v, ErrOutOfBounds)
	}
	g.cells[g.index(c.Row, c.Col)] = v
	return nil
}

// Neighbors4 returns the in-bounds orthogonal neighbours of c in the fixed
// order right, down, left, up. Cell state is not consulted.
// Returns ErrOutOfBounds if c itself is outside the grid.
func (g *Grid) Neighbors4(c Coord) ([]Coord, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("Neighbors4%v: %w", c, ErrOutOfBounds)
	}
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

// openAt is the unchecked read used by traversals that already hold an
// in-bounds coordinate.
func (g *Grid) openAt(r, c int) bool {
	return g.cells[g.index(r, c)] == Open
}

// OpenCount returns the number of Open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, v := range g.cells {
		if v == Open {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of 4-adjacent Open/Open pairs.
// Each pair is counted once by looking only right and down.
func (g *Grid) EdgeCount() int {
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.openAt(r, c) {
				continue
			}
			if c+1 < g.cols && g.openAt(r, c+1) {
				n++
			}
			if r+1 < g.rows && g.openAt(r+1, c) {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy, so a caller can derive a variant without
// touching a grid other solves may be reading.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells, start: g.start, end: g.end}
}

// String dumps the grid one row per line: '#' wall, '.' open, 'S' start,
// 'E' end. When start and end are distinct open cells the output
// round-trips through FromRows.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			at := Coord{r, c}
			switch {
			case at == g.start:
				b.WriteByte(glyphStart)
			case at == g.end:
				b.WriteByte(glyphEnd)
			case g.openAt(r, c):
				b.WriteByte(glyphOpen)
			default:
				b.WriteByte(glyphWall)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// index maps (r,c) to a row-major index: r*cols + c.
// Complexity: O(1).
func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}
