// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors for maze generation and
// search, registered on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mazepath"

// Recorder owns a registry and the collectors registered on it.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	mazesGenerated   prometheus.Counter
	generateDuration prometheus.Histogram
	solvesStarted    *prometheus.CounterVec
	solvesFinished   *prometheus.CounterVec
	steps            *prometheus.CounterVec
	pathLength       *prometheus.HistogramVec
	activeSolves     prometheus.Gauge
}

// New creates a Recorder with a fresh registry.
func New() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.mazesGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "mazes_generated_total",
		Help: "Total number of mazes generated.",
	})
	r.generateDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Name: "generate_duration_seconds",
		Help: "Time spent carving a maze.", Buckets: prometheus.DefBuckets,
	})
	r.solvesStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "solves_started_total",
		Help: "Searches started, by strategy.",
	}, []string{"strategy"})
	r.solvesFinished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "solves_finished_total",
		Help: "Searches that reached a terminal status, by strategy and outcome.",
	}, []string{"strategy", "outcome"})
	r.steps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "search_steps_total",
		Help: "Cells expanded without reaching the end, by strategy.",
	}, []string{"strategy"})
	r.pathLength = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Name: "path_length_cells",
		Help:    "Length of found solutions in cells.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"strategy"})
	r.activeSolves = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Name: "active_solves",
		Help: "Searches currently running.",
	})

	r.registry.MustRegister(
		r.mazesGenerated, r.generateDuration,
		r.solvesStarted, r.solvesFinished,
		r.steps, r.pathLength, r.activeSolves,
	)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// MazeGenerated records one finished generation.
func (r *Recorder) MazeGenerated(took time.Duration) {
	if r == nil {
		return
	}
	r.mazesGenerated.Inc()
	r.generateDuration.Observe(took.Seconds())
}

// SolveStarted records a new search.
func (r *Recorder) SolveStarted(strategy string) {
	if r == nil {
		return
	}
	r.solvesStarted.WithLabelValues(strategy).Inc()
	r.activeSolves.Inc()
}

// Steps adds n expansions for strategy.
func (r *Recorder) Steps(strategy string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.steps.WithLabelValues(strategy).Add(float64(n))
}

// SolveFinished records the outcome of a search. pathLen is observed only
// when positive.
func (r *Recorder) SolveFinished(strategy, outcome string, pathLen int) {
	if r == nil {
		return
	}
	r.solvesFinished.WithLabelValues(strategy, outcome).Inc()
	if pathLen > 0 {
		r.pathLength.WithLabelValues(strategy).Observe(float64(pathLen))
	}
	r.activeSolves.Dec()
}

// SolveAbandoned releases the active gauge for a search dropped before it
// finished.
func (r *Recorder) SolveAbandoned() {
	if r == nil {
		return
	}
	r.activeSolves.Dec()
}
