// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/mazepath/gridgraph"

// entry pairs a frontier cell with its depth from start.
type entry struct {
	at    gridgraph.Coord
	depth int
}

// frontier is the removal discipline shared by both strategies.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
	// snapshot lists cells in the order they would be removed.
	snapshot() []gridgraph.Coord
}

// newFrontier returns the container for s, or nil for an unknown strategy.
func newFrontier(s Strategy, capHint int) frontier {
	switch s {
	case BFS:
		return &queue{items: make([]entry, 0, capHint)}
	case DFS:
		return &stack{items: make([]entry, 0, capHint)}
	}
	return nil
}

// queue is a FIFO frontier.
type queue struct {
	items []entry
}

func (q *queue) push(e entry) { q.items = append(q.items, e) }

func (q *queue) pop() entry {
	e := q.items[0]
	q.items = q.items[1:]
	return e
}

func (q *queue) len() int { return len(q.items) }

func (q *queue) snapshot() []gridgraph.Coord {
	out := make([]gridgraph.Coord, len(q.items))
	for i, e := range q.items {
		out[i] = e.at
	}
	return out
}

// stack is a LIFO frontier.
type stack struct {
	items []entry
}

func (s *stack) push(e entry) { s.items = append(s.items, e) }

func (s *stack) pop() entry {
	last := len(s.items) - 1
	e := s.items[last]
	s.items = s.items[:last]
	return e
}

func (s *stack) len() int { return len(s.items) }

func (s *stack) snapshot() []gridgraph.Coord {
	out := make([]gridgraph.Coord, len(s.items))
	for i := range s.items {
		out[i] = s.items[len(s.items)-1-i].at
	}
	return out
}
