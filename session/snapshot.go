// SPDX-License-Identifier: MIT

package session

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

// Snapshot is a copy of the session state safe to hand to a renderer.
type Snapshot struct {
	MazeID  uuid.UUID
	Rows    int
	Cols    int
	Solving bool
	Message string

	// Fields below are zero when no search exists.
	HasSearch   bool
	Strategy    search.Strategy
	Status      search.Status
	Steps       int
	Visited     int
	FrontierLen int
	Current     gridgraph.Coord
	HasCurrent  bool
	Path        []gridgraph.Coord // set only when Status is Found
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		MazeID:  s.mazeID,
		Solving: s.solving,
		Message: s.message,
	}
	if s.grid != nil {
		snap.Rows, snap.Cols = s.grid.Rows(), s.grid.Cols()
	}
	if s.search == nil {
		return snap
	}

	snap.HasSearch = true
	snap.Strategy = s.search.Strategy()
	snap.Status = s.search.Status()
	snap.Steps = s.search.Steps()
	snap.Visited = s.search.VisitedCount()
	snap.FrontierLen = s.search.FrontierLen()
	snap.Current, snap.HasCurrent = s.search.Current()
	snap.Path, _ = s.search.Path()
	return snap
}
