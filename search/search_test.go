package search_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []search.Strategy{search.BFS, search.DFS}

func mustRows(t *testing.T, lines ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromRows(lines)
	require.NoError(t, err)
	return g
}

func c(r, col int) gridgraph.Coord { return gridgraph.Coord{Row: r, Col: col} }

// TestBegin_Errors covers every precondition violation.
func TestBegin_Errors(t *testing.T) {
	_, err := search.Begin(nil, search.BFS)
	assert.ErrorIs(t, err, search.ErrGridNil)

	g := mustRows(t, "S.E")
	_, err = search.Begin(g, search.Strategy(7))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	walledEnd, err := gridgraph.NewGrid(1, 3)
	require.NoError(t, err)
	require.NoError(t, walledEnd.SetOpen(c(0, 0)))
	_, err = search.Begin(walledEnd, search.BFS)
	assert.ErrorIs(t, err, search.ErrUnsolvableConfiguration)

	walledStart := mustRows(t, "#.E")
	_, err = search.Begin(walledStart, search.DFS)
	assert.ErrorIs(t, err, search.ErrUnsolvableConfiguration)
}

// TestBegin_InitialState checks the frontier holds only start.
func TestBegin_InitialState(t *testing.T) {
	for _, st := range strategies {
		s, err := search.Begin(mustRows(t, "S.E"), st)
		require.NoError(t, err)

		assert.Equal(t, search.Running, s.Status())
		assert.Equal(t, st, s.Strategy())
		assert.Equal(t, 0, s.Steps())
		assert.Equal(t, []gridgraph.Coord{c(0, 0)}, s.Frontier())
		assert.Equal(t, []gridgraph.Coord{c(0, 0)}, s.Visited())
		_, ok := s.Current()
		assert.False(t, ok)
		_, ok = s.Path()
		assert.False(t, ok)
	}
}

// TestStep_SingleCell: start == end is found on the first step with no
// expansions counted.
func TestStep_SingleCell(t *testing.T) {
	for _, st := range strategies {
		g, err := mazegen.Generate(1, 1, mazegen.WithSeed(1))
		require.NoError(t, err)

		s, err := search.Begin(g, st)
		require.NoError(t, err)
		assert.Equal(t, search.Found, s.Step())
		assert.Equal(t, 0, s.Steps())

		path, ok := s.Path()
		require.True(t, ok)
		assert.Equal(t, []gridgraph.Coord{c(0, 0)}, path)
	}
}

// TestStep_Corridor: both strategies walk a 1×5 corridor identically.
func TestStep_Corridor(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.String(), func(t *testing.T) {
			s, err := search.Begin(mustRows(t, "S...E"), st)
			require.NoError(t, err)

			assert.Equal(t, search.Found, s.RunToCompletion())
			assert.Equal(t, 4, s.Steps())
			assert.Equal(t, 5, s.VisitedCount())

			path, ok := s.Path()
			require.True(t, ok)
			assert.Equal(t, []gridgraph.Coord{c(0, 0), c(0, 1), c(0, 2), c(0, 3), c(0, 4)}, path)
			assert.Equal(t, 5, s.PathLen())
		})
	}
}

// TestStep_Unreachable: a walled-off end exhausts the frontier.
func TestStep_Unreachable(t *testing.T) {
	for _, st := range strategies {
		s, err := search.Begin(mustRows(t, "S.#.E"), st)
		require.NoError(t, err)

		assert.Equal(t, search.Running, s.Step())
		assert.Equal(t, search.Running, s.Step())
		assert.Equal(t, search.Exhausted, s.Step())
		assert.Equal(t, 2, s.Steps())
		assert.False(t, s.IsVisited(c(0, 4)))

		_, ok := s.Path()
		assert.False(t, ok)
		assert.Equal(t, 0, s.PathLen())
	}
}

// TestStep_WalledOffEnd seals every neighbour of the end on a generated
// maze; both strategies must exhaust the reachable region.
func TestStep_WalledOffEnd(t *testing.T) {
	for _, st := range strategies {
		g, err := mazegen.Generate(9, 9, mazegen.WithSeed(11))
		require.NoError(t, err)
		neighbors, err := g.Neighbors4(g.End())
		require.NoError(t, err)
		for _, n := range neighbors {
			require.NoError(t, g.SetWall(n))
		}

		s, err := search.Begin(g, st)
		require.NoError(t, err)
		assert.Equal(t, search.Exhausted, s.RunToCompletion())
		assert.False(t, s.IsVisited(g.End()))
		assert.LessOrEqual(t, s.Steps(), g.OpenCount())

		_, ok := s.Path()
		assert.False(t, ok)
	}
}

// TestStep_TerminalIsNoop ensures extra steps change nothing.
func TestStep_TerminalIsNoop(t *testing.T) {
	s, err := search.Begin(mustRows(t, "S.E"), search.BFS)
	require.NoError(t, err)
	s.RunToCompletion()

	steps, visited := s.Steps(), s.Visited()
	for i := 0; i < 3; i++ {
		assert.Equal(t, search.Found, s.Step())
	}
	assert.Equal(t, steps, s.Steps())
	assert.Equal(t, visited, s.Visited())
}

// TestStep_NeighbourOrder pins right, down, left, up discovery and the
// removal order each frontier reports.
func TestStep_NeighbourOrder(t *testing.T) {
	g := mustRows(t,
		"S.",
		".E",
	)

	bfs, err := search.Begin(g, search.BFS)
	require.NoError(t, err)
	bfs.Step()
	assert.Equal(t, []gridgraph.Coord{c(0, 1), c(1, 0)}, bfs.Frontier())
	assert.Equal(t, search.Found, bfs.RunToCompletion())
	assert.Equal(t, 3, bfs.Steps())
	path, _ := bfs.Path()
	assert.Equal(t, []gridgraph.Coord{c(0, 0), c(0, 1), c(1, 1)}, path)

	dfs, err := search.Begin(g, search.DFS)
	require.NoError(t, err)
	dfs.Step()
	assert.Equal(t, []gridgraph.Coord{c(1, 0), c(0, 1)}, dfs.Frontier())
	assert.Equal(t, 2, dfs.FrontierLen())
	assert.Equal(t, search.Found, dfs.RunToCompletion())
	assert.Equal(t, 2, dfs.Steps())
	path, _ = dfs.Path()
	assert.Equal(t, []gridgraph.Coord{c(0, 0), c(1, 0), c(1, 1)}, path)

	cur, ok := dfs.Current()
	require.True(t, ok)
	assert.Equal(t, c(1, 1), cur)
}

// TestSearch_GeneratedMazes checks path validity, BFS optimality and the
// visited-set invariants on random perfect mazes.
func TestSearch_GeneratedMazes(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		g, err := mazegen.Generate(15, 25, mazegen.WithSeed(seed))
		require.NoError(t, err)
		shortest, err := g.Distance(g.Start(), g.End())
		require.NoError(t, err)
		require.GreaterOrEqual(t, shortest, 0)

		for _, st := range strategies {
			t.Run(fmt.Sprintf("seed=%d/%s", seed, st), func(t *testing.T) {
				s, err := search.Begin(g, st)
				require.NoError(t, err)

				prev := s.Visited()
				for s.Step() == search.Running {
					cur := s.Visited()
					require.GreaterOrEqual(t, len(cur), len(prev))
					assert.Equal(t, prev, cur[:len(prev)], "visited must only grow")
					prev = cur
					require.LessOrEqual(t, s.Steps(), g.OpenCount())
				}
				require.Equal(t, search.Found, s.Status())

				seen := make(map[gridgraph.Coord]bool)
				for _, v := range s.Visited() {
					assert.False(t, seen[v], "duplicate visited %v", v)
					seen[v] = true
					open, _ := g.IsOpen(v)
					assert.True(t, open)
				}

				path, ok := s.Path()
				require.True(t, ok)
				assertValidPath(t, g, path)
				// a perfect maze has one simple path, so DFS is minimal too
				assert.Len(t, path, shortest+1)
			})
		}
	}
}

// TestSearch_BFSShortestWithCycles: on an open room DFS may wander but BFS
// stays minimal.
func TestSearch_BFSShortestWithCycles(t *testing.T) {
	g := mustRows(t,
		"S....",
		".....",
		".....",
		"....E",
	)
	shortest, err := g.Distance(g.Start(), g.End())
	require.NoError(t, err)

	for _, st := range strategies {
		s, err := search.Begin(g, st)
		require.NoError(t, err)
		require.Equal(t, search.Found, s.RunToCompletion())
		path, ok := s.Path()
		require.True(t, ok)
		assertValidPath(t, g, path)
		if st == search.BFS {
			assert.Len(t, path, shortest+1)
		} else {
			assert.GreaterOrEqual(t, len(path), shortest+1)
		}
	}
}

// TestSearch_Determinism: external stepping and RunToCompletion agree.
func TestSearch_Determinism(t *testing.T) {
	g, err := mazegen.Generate(21, 31, mazegen.WithSeed(99))
	require.NoError(t, err)

	for _, st := range strategies {
		a, err := search.Begin(g, st)
		require.NoError(t, err)
		b, err := search.Begin(g, st)
		require.NoError(t, err)

		for a.Step() == search.Running {
		}
		b.RunToCompletion()

		assert.Equal(t, a.Status(), b.Status())
		assert.Equal(t, a.Steps(), b.Steps())
		assert.Equal(t, a.Visited(), b.Visited())
		pa, _ := a.Path()
		pb, _ := b.Path()
		assert.Equal(t, pa, pb)
	}
}

// TestSearch_Hooks verifies OnEnqueue/OnDequeue are called once per cell.
func TestSearch_Hooks(t *testing.T) {
	var enq, deq []gridgraph.Coord
	depths := make(map[gridgraph.Coord]int)
	s, err := search.Begin(mustRows(t, "S...E"), search.BFS,
		search.WithOnEnqueue(func(at gridgraph.Coord, d int) {
			enq = append(enq, at)
			depths[at] = d
		}),
		search.WithOnDequeue(func(at gridgraph.Coord, _ int) { deq = append(deq, at) }),
		search.WithOnDequeue(nil), // ignored
	)
	require.NoError(t, err)
	s.RunToCompletion()

	assert.Equal(t, s.Visited(), enq)
	assert.Len(t, deq, s.Steps()+1)
	assert.Equal(t, 4, depths[c(0, 4)])

	d, ok := s.Depth(c(0, 3))
	assert.True(t, ok)
	assert.Equal(t, 3, d)
}

// TestRun_Context: a cancelled context leaves the search resumable.
func TestRun_Context(t *testing.T) {
	s, err := search.Begin(mustRows(t, "S...E"), search.DFS)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, search.Running, st)
	assert.Equal(t, 0, s.Steps())

	st, err = s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, search.Found, st)
}

// TestParseStrategy covers names and the error path.
func TestParseStrategy(t *testing.T) {
	st, err := search.ParseStrategy(" BFS ")
	require.NoError(t, err)
	assert.Equal(t, search.BFS, st)

	st, err = search.ParseStrategy("dfs")
	require.NoError(t, err)
	assert.Equal(t, search.DFS, st)

	_, err = search.ParseStrategy("astar")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	assert.Equal(t, "Strategy(9)", search.Strategy(9).String())
	assert.Equal(t, "EXHAUSTED", search.Exhausted.String())
	assert.True(t, search.Found.Terminal())
	assert.False(t, search.Running.Terminal())
}

// assertValidPath checks endpoints, adjacency and openness of every cell.
func assertValidPath(t *testing.T, g *gridgraph.Grid, path []gridgraph.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, g.Start(), path[0])
	assert.Equal(t, g.End(), path[len(path)-1])
	for i, p := range path {
		open, err := g.IsOpen(p)
		require.NoError(t, err)
		assert.True(t, open, "path cell %v is a wall", p)
		if i == 0 {
			continue
		}
		dr, dc := p.Row-path[i-1].Row, p.Col-path[i-1].Col
		assert.Equal(t, 1, abs(dr)+abs(dc), "cells %v and %v are not adjacent", path[i-1], p)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
