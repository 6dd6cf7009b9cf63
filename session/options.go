// SPDX-License-Identifier: MIT

package session

import (
	"log/slog"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/internal/logger"
	"github.com/katalvlaran/mazepath/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/mazepath/session"

// Settings fixes the board every Regenerate produces.
type Settings struct {
	Rows, Cols int
	Seed       *int64 // nil seeds from the clock
	Start, End gridgraph.Coord
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the recorder. A nil recorder records nothing.
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Session) { s.metrics = r }
}

// WithTracer sets the tracer; nil keeps the global provider's tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithGrid makes New install g instead of generating a first maze. The
// Session keeps g; callers must not mutate it afterwards. nil is ignored.
func WithGrid(g *gridgraph.Grid) Option {
	return func(s *Session) {
		if g != nil {
			s.initial = g
		}
	}
}

func defaults(s *Session) {
	s.log = logger.Discard()
	s.tracer = otel.Tracer(tracerName)
}
