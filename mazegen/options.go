// SPDX-License-Identifier: MIT
// Package: mazepath/mazegen
//
// options.go: functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on nil inputs; Generate never panics.
//   • Later options override earlier ones.

package mazegen

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Source is the randomness Generate draws from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

// Option customizes a single Generate call.
type Option func(*config)

// config aggregates all knobs of one Generate call.
type config struct {
	rng     Source
	start   *gridgraph.Coord
	end     *gridgraph.Coord
	onCarve func(gridgraph.Coord)
}

// newConfig applies opts over the defaults: a time-seeded source, grid
// default endpoints and no hook.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// WithRand provides an explicit random source.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(src Source) Option {
	if src == nil {
		panic("mazegen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = src
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStart overrides the start coordinate (default (0,0)).
func WithStart(at gridgraph.Coord) Option {
	return func(c *config) {
		c.start = &at
	}
}

// WithEnd overrides the end coordinate (default (rows-1, cols-1)).
func WithEnd(at gridgraph.Coord) Option {
	return func(c *config) {
		c.end = &at
	}
}

// WithOnCarve registers a hook called for every cell the carver opens, in
// carve order: the origin room first, then wall and room pairs. Endpoint
// forcing at the end is not reported.
func WithOnCarve(fn func(at gridgraph.Coord)) Option {
	if fn == nil {
		panic("mazegen: WithOnCarve(nil)")
	}
	return func(c *config) {
		c.onCarve = fn
	}
}
