// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/internal/metrics"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/search"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Status-line texts shown between actions.
const (
	MsgGenerated = "New maze generated! Choose an algorithm to solve."
	MsgLoaded    = "Maze loaded! Choose an algorithm to solve."
	MsgCleared   = "Cleared! Choose an algorithm to solve."
	MsgNotFound  = "❌ No solution found!"
	MsgAborted   = "Solve aborted."
)

// Session is the controller a presentation layer drives: one maze, at most
// one running search, and the status line describing them. All methods are
// safe for concurrent use.
type Session struct {
	mu sync.Mutex

	settings Settings
	rng      *rand.Rand
	log      *slog.Logger
	metrics  *metrics.Recorder
	tracer   trace.Tracer

	grid    *gridgraph.Grid
	initial *gridgraph.Grid // WithGrid, consumed by New
	mazeID  uuid.UUID

	search   *search.Search
	solving  bool
	reported int // steps already added to metrics
	solveCtx context.Context
	span     trace.Span
	message  string
}

// New validates settings, generates the first maze and returns the Session.
// With WithGrid the given maze is installed instead and settings take its
// dimensions and endpoints; nothing is generated.
func New(ctx context.Context, settings Settings, opts ...Option) (*Session, error) {
	seed := time.Now().UnixNano()
	if settings.Seed != nil {
		seed = *settings.Seed
	}
	s := &Session{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
	}
	defaults(s)
	for _, opt := range opts {
		opt(s)
	}

	if s.initial != nil {
		g := s.initial
		s.initial = nil
		s.settings.Rows, s.settings.Cols = g.Rows(), g.Cols()
		s.settings.Start, s.settings.End = g.Start(), g.End()
		s.install(g, MsgLoaded)
		s.log.InfoContext(ctx, "maze loaded", "maze_id", s.mazeID.String(), "rows", g.Rows(), "cols", g.Cols())
		return s, nil
	}

	if !mazegen.OnLattice(settings.Start) || !mazegen.OnLattice(settings.End) {
		s.log.Warn("endpoint off the room lattice; the maze may gain a cycle or isolate it",
			"start", settings.Start.String(), "end", settings.End.String())
	}

	if err := s.Regenerate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate replaces the maze with a fresh one. Refused while solving.
func (s *Session) Regenerate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solving {
		return ErrSolveInProgress
	}

	ctx, span := s.tracer.Start(ctx, "mazepath.generate", trace.WithAttributes(
		attribute.Int("maze.rows", s.settings.Rows),
		attribute.Int("maze.cols", s.settings.Cols),
	))
	defer span.End()

	began := time.Now()
	g, err := mazegen.Generate(s.settings.Rows, s.settings.Cols,
		mazegen.WithRand(s.rng),
		mazegen.WithStart(s.settings.Start),
		mazegen.WithEnd(s.settings.End),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return fmt.Errorf("session: generate: %w", err)
	}
	s.metrics.MazeGenerated(time.Since(began))

	s.install(g, MsgGenerated)
	span.SetAttributes(
		attribute.String("maze.id", s.mazeID.String()),
		attribute.Int("maze.open_cells", g.OpenCount()),
	)
	s.log.InfoContext(ctx, "maze generated",
		"maze_id", s.mazeID.String(), "rows", g.Rows(), "cols", g.Cols(),
		"open_cells", g.OpenCount(), "took", time.Since(began))
	return nil
}

// Load replaces the maze with g, e.g. a fixture parsed by
// gridgraph.FromRows. The Session keeps g; callers must not mutate it.
func (s *Session) Load(g *gridgraph.Grid) error {
	if g == nil {
		return ErrNoMaze
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solving {
		return ErrSolveInProgress
	}

	s.install(g, MsgLoaded)
	s.log.Info("maze loaded", "maze_id", s.mazeID.String(), "rows", g.Rows(), "cols", g.Cols())
	return nil
}

func (s *Session) install(g *gridgraph.Grid, msg string) {
	s.grid = g
	s.mazeID = uuid.New()
	s.search = nil
	s.message = msg
}

// Solve clears any previous solution and starts a search. Refused while
// another search runs.
func (s *Session) Solve(ctx context.Context, strategy search.Strategy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solving {
		return ErrSolveInProgress
	}

	sr, err := search.Begin(s.grid, strategy)
	if err != nil {
		return fmt.Errorf("session: solve: %w", err)
	}

	s.solveCtx, s.span = s.tracer.Start(ctx, "mazepath.solve", trace.WithAttributes(
		attribute.String("maze.id", s.mazeID.String()),
		attribute.String("search.strategy", strategy.String()),
	))
	s.search = sr
	s.solving = true
	s.reported = 0
	s.message = fmt.Sprintf("Solving with %s...", longName(strategy))
	s.metrics.SolveStarted(strategy.String())
	s.log.InfoContext(s.solveCtx, "solve started", "maze_id", s.mazeID.String(), "strategy", strategy.String())
	return nil
}

// Tick performs one search step and returns the resulting snapshot. On a
// terminal status the solve is finished and the guard released.
func (s *Session) Tick() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.solving {
		return s.snapshot(), ErrNoSolve
	}

	st := s.search.Step()
	s.flushSteps()
	if st.Terminal() {
		s.finish(st)
	}
	return s.snapshot(), nil
}

func (s *Session) flushSteps() {
	if d := s.search.Steps() - s.reported; d > 0 {
		s.metrics.Steps(s.search.Strategy().String(), d)
		s.reported += d
	}
}

func (s *Session) finish(st search.Status) {
	strategy := s.search.Strategy().String()
	steps := s.search.Steps()
	pathLen := s.search.PathLen()

	switch st {
	case search.Found:
		s.message = fmt.Sprintf("✅ Solution found! Path length: %d | Steps explored: %d", pathLen, steps)
	case search.Exhausted:
		s.message = MsgNotFound
	}

	s.span.SetAttributes(
		attribute.String("search.status", st.String()),
		attribute.Int("search.steps", steps),
		attribute.Int("search.visited", s.search.VisitedCount()),
		attribute.Int("search.path_length", pathLen),
	)
	s.span.SetStatus(codes.Ok, "")
	s.span.End()

	s.metrics.SolveFinished(strategy, st.String(), pathLen)
	s.log.InfoContext(s.solveCtx, "solve finished",
		"maze_id", s.mazeID.String(), "strategy", strategy, "status", st.String(),
		"steps", steps, "visited", s.search.VisitedCount(), "path_length", pathLen)

	s.solving = false
	s.span = nil
	s.solveCtx = nil
}

// Abort stops a running search and drops it. It is a no-op when idle.
func (s *Session) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.solving {
		return
	}

	s.flushSteps()
	s.span.SetStatus(codes.Error, "aborted")
	s.span.End()
	s.metrics.SolveAbandoned()
	s.log.WarnContext(s.solveCtx, "solve aborted",
		"maze_id", s.mazeID.String(), "steps", s.search.Steps())

	s.search = nil
	s.solving = false
	s.span = nil
	s.solveCtx = nil
	s.message = MsgAborted
}

// Clear drops the finished solution. Refused while solving.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solving {
		return ErrSolveInProgress
	}
	s.search = nil
	s.message = MsgCleared
	return nil
}

// Solving reports whether a search is running.
func (s *Session) Solving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solving
}

// Grid returns a copy of the current maze. Mutating it does not affect the
// Session or a running search.
func (s *Session) Grid() *gridgraph.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Visited returns the cells discovered by the current or last search in
// discovery order, or nil if there is none.
func (s *Session) Visited() []gridgraph.Coord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.search == nil {
		return nil
	}
	return s.search.Visited()
}

func longName(st search.Strategy) string {
	switch st {
	case search.BFS:
		return "BFS (Breadth-First Search)"
	case search.DFS:
		return "DFS (Depth-First Search)"
	}
	return st.String()
}
