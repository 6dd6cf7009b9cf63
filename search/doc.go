// SPDX-License-Identifier: MIT

// Package search solves a maze one expansion at a time, using either
// breadth-first (FIFO) or depth-first (LIFO) frontier discipline over the
// open cells of a gridgraph.Grid.
//
// What
//
//   - Begin(g, strategy, opts...) seeds the frontier with the grid's start.
//   - Step removes one cell, checks it against the end, and discovers its
//     open, unvisited neighbours in right, down, left, up order.
//   - RunToCompletion / Run(ctx) drive Step until Found or Exhausted.
//   - Observers (Status, Steps, Visited, Frontier, Current, Path) expose a
//     consistent snapshot between any two calls.
//
// Why
//
//	A visualizer needs to render the search between expansions, so the
//	algorithm is an explicit state machine instead of a blocking call.
//	Driving Step yourself and calling RunToCompletion give identical results.
//
// Semantics
//
//   - Cells are marked visited when discovered, not when removed, so each
//     cell enters the frontier at most once.
//   - Steps counts expansions that did not reach the end; the step that
//     removes the end and steps on a terminal Search do not count.
//   - Paths are rebuilt from a predecessor map. Under BFS the path has the
//     minimum number of cells; under DFS it is merely valid.
//
// Complexity (C = open cells)
//
//   - Time:   O(C) over the whole search, O(1) per Step
//   - Memory: O(C) for the visited set, predecessor map and frontier
//
// Errors
//
//   - ErrGridNil: nil grid passed to Begin.
//   - ErrUnknownStrategy: strategy is neither BFS nor DFS.
//   - ErrUnsolvableConfiguration: start or end is a wall.
//
// Usage
//
//	s, err := search.Begin(g, search.BFS)
//	if err != nil {
//	    // handle
//	}
//	for s.Step() == search.Running {
//	    render(s.Visited(), s.Frontier())
//	}
//	if path, ok := s.Path(); ok {
//	    fmt.Println(len(path))
//	}
package search
