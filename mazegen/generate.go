// SPDX-License-Identifier: MIT
// Package: mazepath/mazegen
//
// generate.go: randomized iterative depth-first carving.
//
// Determinism:
//   • Candidate rooms are gathered in the order right, down, left, up.
//   • Exactly one Source.Intn draw per carve, none when backtracking.

package mazegen

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// roomStride is the distance between neighbouring rooms on the lattice.
const roomStride = 2

// roomOffsets lists stride-2 moves in the grid's neighbour order.
var roomOffsets = [4][2]int{
	{0, roomStride},  // right
	{roomStride, 0},  // down
	{0, -roomStride}, // left
	{-roomStride, 0}, // up
}

// origin is the room carving starts from.
var origin = gridgraph.Coord{Row: 0, Col: 0}

// Generate returns a new rows×cols grid holding a perfect maze over the room
// lattice, with start and end forced Open.
// Returns ErrInvalidDimensions for rows or cols below 1 and ErrOutOfBounds
// when WithStart/WithEnd fall outside the grid.
// Complexity: O(rows×cols) time and memory.
func Generate(rows, cols int, opts ...Option) (*gridgraph.Grid, error) {
	g, err := gridgraph.NewGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("mazegen: %w", err)
	}
	cfg := newConfig(opts...)

	// Resolve endpoints before doing any work.
	if cfg.start != nil {
		if err = g.SetStart(*cfg.start); err != nil {
			return nil, fmt.Errorf("mazegen: %w", err)
		}
	}
	if cfg.end != nil {
		if err = g.SetEnd(*cfg.end); err != nil {
			return nil, fmt.Errorf("mazegen: %w", err)
		}
	}

	c := &carver{grid: g, rng: cfg.rng, onCarve: cfg.onCarve}
	c.run()

	// Idempotent: only ever opens cells, so connectivity is never reduced.
	_ = g.SetOpen(g.Start())
	_ = g.SetOpen(g.End())

	return g, nil
}

// OnLattice reports whether at is a room cell (even row and even column).
// Endpoints off the lattice are opened but not guaranteed to be connected.
func OnLattice(at gridgraph.Coord) bool {
	return at.Row%roomStride == 0 && at.Col%roomStride == 0
}

// carver holds the mutable state of one carving run.
type carver struct {
	grid    *gridgraph.Grid
	rng     Source
	onCarve func(gridgraph.Coord)
	stack   []gridgraph.Coord
	cand    []gridgraph.Coord // reused candidate buffer
}

// run carves until the stack empties.
func (c *carver) run() {
	c.open(origin)
	c.stack = append(c.stack, origin)
	c.cand = make([]gridgraph.Coord, 0, len(roomOffsets))

	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		cand := c.walledRooms(top)
		if len(cand) == 0 {
			c.stack = c.stack[:len(c.stack)-1] // backtrack
			continue
		}
		next := cand[c.rng.Intn(len(cand))]
		wall := gridgraph.Coord{
			Row: (top.Row + next.Row) / 2,
			Col: (top.Col + next.Col) / 2,
		}
		c.open(wall)
		c.open(next)
		c.stack = append(c.stack, next)
	}
}

// walledRooms collects the in-bounds rooms two steps from at that are still walls.
func (c *carver) walledRooms(at gridgraph.Coord) []gridgraph.Coord {
	c.cand = c.cand[:0]
	for _, d := range roomOffsets {
		n := at.Add(d[0], d[1])
		if !c.grid.InBounds(n) {
			continue
		}
		if open, _ := c.grid.IsOpen(n); !open {
			c.cand = append(c.cand, n)
		}
	}
	return c.cand
}

// open marks at Open and reports it to the hook.
func (c *carver) open(at gridgraph.Coord) {
	_ = c.grid.SetOpen(at)
	if c.onCarve != nil {
		c.onCarve(at)
	}
}
