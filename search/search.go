// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Search is the state of one in-flight solve. It is owned by a single caller
// and is not safe for concurrent use; independent Searches may share a Grid.
//
// Every method leaves the Search in a consistent, resumable snapshot, so a
// caller can stop calling Step at any point.
type Search struct {
	grid     *gridgraph.Grid
	strategy Strategy
	opts     Options
	end      gridgraph.Coord

	frontier frontier
	visited  map[gridgraph.Coord]struct{}
	order    []gridgraph.Coord // discovery order, append-only
	parent   map[gridgraph.Coord]gridgraph.Coord
	depth    map[gridgraph.Coord]int

	steps      int
	status     Status
	current    gridgraph.Coord
	hasCurrent bool
	path       []gridgraph.Coord
}

// Begin starts a search on g with the given strategy: the frontier holds
// only start, start is visited, and the status is Running.
// Returns ErrGridNil, ErrUnknownStrategy, or ErrUnsolvableConfiguration when
// start or end is a wall.
func Begin(g *gridgraph.Grid, strategy Strategy, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	open := g.OpenCount()
	fr := newFrontier(strategy, open)
	if fr == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}

	start, end := g.Start(), g.End()
	if ok, err := g.IsOpen(start); err != nil || !ok {
		return nil, fmt.Errorf("%w: start %v is a wall", ErrUnsolvableConfiguration, start)
	}
	if ok, err := g.IsOpen(end); err != nil || !ok {
		return nil, fmt.Errorf("%w: end %v is a wall", ErrUnsolvableConfiguration, end)
	}

	s := &Search{
		grid:     g,
		strategy: strategy,
		opts:     o,
		end:      end,
		frontier: fr,
		visited:  make(map[gridgraph.Coord]struct{}, open),
		order:    make([]gridgraph.Coord, 0, open),
		parent:   make(map[gridgraph.Coord]gridgraph.Coord, open),
		depth:    make(map[gridgraph.Coord]int, open),
		status:   Running,
	}
	s.discover(start, 0, nil)

	return s, nil
}

// discover marks at visited, records its parent and depth, calls OnEnqueue
// and pushes it. Visiting at discovery keeps every cell on the frontier at
// most once.
func (s *Search) discover(at gridgraph.Coord, d int, from *gridgraph.Coord) {
	s.visited[at] = struct{}{}
	s.order = append(s.order, at)
	s.depth[at] = d
	if from != nil {
		s.parent[at] = *from
	}
	s.opts.OnEnqueue(at, d)
	s.frontier.push(entry{at: at, depth: d})
}

// Step expands exactly one frontier entry and returns the resulting status.
// It is a no-op on a terminal Search. An empty frontier yields Exhausted;
// removing the end yields Found and records the path. Otherwise every open,
// unvisited neighbour (right, down, left, up) is discovered and the step
// count grows by one.
func (s *Search) Step() Status {
	if s.status != Running {
		return s.status
	}
	if s.frontier.len() == 0 {
		s.status = Exhausted
		return s.status
	}

	cur := s.frontier.pop()
	s.current, s.hasCurrent = cur.at, true
	s.opts.OnDequeue(cur.at, cur.depth)

	if cur.at == s.end {
		s.status = Found
		s.path = s.pathTo(cur.at)
		return s.status
	}

	neighbors, _ := s.grid.Neighbors4(cur.at)
	for _, n := range neighbors {
		if open, _ := s.grid.IsOpen(n); !open {
			continue
		}
		if _, seen := s.visited[n]; seen {
			continue
		}
		from := cur.at
		s.discover(n, cur.depth+1, &from)
	}
	s.steps++

	return s.status
}

// RunToCompletion calls Step until the status is terminal.
// The result is identical to driving Step externally.
func (s *Search) RunToCompletion() Status {
	for !s.Step().Terminal() {
	}
	return s.status
}

// Run is RunToCompletion with cancellation checked once per step.
// On cancellation the Search stays Running and can be resumed.
func (s *Search) Run(ctx context.Context) (Status, error) {
	for s.status == Running {
		select {
		case <-ctx.Done():
			return s.status, ctx.Err()
		default:
		}
		s.Step()
	}
	return s.status, nil
}

// Grid returns the grid being searched.
func (s *Search) Grid() *gridgraph.Grid { return s.grid }

// Strategy returns the frontier discipline.
func (s *Search) Strategy() Strategy { return s.strategy }

// Status returns the current state.
func (s *Search) Status() Status { return s.status }

// Steps returns the number of non-goal expansions performed.
func (s *Search) Steps() int { return s.steps }

// Current returns the cell removed by the most recent Step, if any.
func (s *Search) Current() (gridgraph.Coord, bool) { return s.current, s.hasCurrent }

// Visited returns a copy of the visited cells in discovery order.
// Successive calls only ever extend the previous result.
func (s *Search) Visited() []gridgraph.Coord {
	out := make([]gridgraph.Coord, len(s.order))
	copy(out, s.order)
	return out
}

// VisitedCount returns the number of visited cells.
func (s *Search) VisitedCount() int { return len(s.order) }

// IsVisited reports whether at has been discovered.
func (s *Search) IsVisited(at gridgraph.Coord) bool {
	_, ok := s.visited[at]
	return ok
}

// Depth returns the number of steps from start at which at was discovered.
func (s *Search) Depth(at gridgraph.Coord) (int, bool) {
	d, ok := s.depth[at]
	return d, ok
}

// Frontier returns the pending cells in the order they would be removed.
func (s *Search) Frontier() []gridgraph.Coord { return s.frontier.snapshot() }

// FrontierLen returns the number of pending cells.
func (s *Search) FrontierLen() int { return s.frontier.len() }
