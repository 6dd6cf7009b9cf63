// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for Begin. All are caller precondition violations.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrUnsolvableConfiguration is returned when start or end is a wall.
	ErrUnsolvableConfiguration = errors.New("search: start and end must be open")

	// ErrUnknownStrategy is returned for a Strategy other than BFS or DFS.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy fixes the frontier's removal discipline for the life of a Search.
type Strategy int

const (
	// BFS removes from the front (FIFO). The first path found to any cell
	// uses the minimum number of steps.
	BFS Strategy = iota
	// DFS removes from the back (LIFO). Paths are not minimal; the frontier
	// stays proportional to path depth rather than breadth.
	DFS
)

// String returns "bfs" or "dfs".
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "bfs"/"dfs" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Status is the state of a Search. Found and Exhausted are terminal.
type Status int

const (
	// Running means the frontier may still hold work.
	Running Status = iota
	// Found means the end was removed from the frontier; Path is defined.
	Found
	// Exhausted means the frontier emptied without reaching the end.
	Exhausted
)

// String returns "RUNNING", "FOUND" or "EXHAUSTED".
func (s Status) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Found:
		return "FOUND"
	case Exhausted:
		return "EXHAUSTED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == Found || s == Exhausted
}

// Option configures a Search via functional arguments.
type Option func(*Options)

// Options holds callbacks observing a Search.
type Options struct {
	// OnEnqueue is called when a cell is discovered, marked visited and
	// pushed. Receives the cell and its depth (steps from start).
	OnEnqueue func(at gridgraph.Coord, depth int)

	// OnDequeue is called when a cell is removed from the frontier,
	// before the end check.
	OnDequeue func(at gridgraph.Coord, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(gridgraph.Coord, int) {},
		OnDequeue: func(gridgraph.Coord, int) {},
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(at gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on removal.
func WithOnDequeue(fn func(at gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
