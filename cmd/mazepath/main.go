// SPDX-License-Identifier: MIT

// Command mazepath generates a maze, solves it with BFS or DFS at a chosen
// animation speed, and reports the outcome.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/internal/logger"
	"github.com/katalvlaran/mazepath/internal/metrics"
	"github.com/katalvlaran/mazepath/internal/tracing"
	"github.com/katalvlaran/mazepath/search"
	"github.com/katalvlaran/mazepath/session"
	"go.opentelemetry.io/otel"
)

const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
	ExitNoSolution = 3
	ExitInterrupt  = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type cliFlags struct {
	configPath  string
	envFile     string
	mazePath    string
	rows, cols  int
	seed        int64
	strategy    string
	speed       int
	instant     bool
	print       bool
	metricsAddr string
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, map[string]bool, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("mazepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&f.envFile, "env", "", "Path to a .env file (default ./.env if present)")
	fs.StringVar(&f.mazePath, "maze", "", "Solve a text maze ('#' wall, 'S' start, 'E' end) instead of generating one")
	fs.IntVar(&f.rows, "rows", config.DefaultRows, "Maze rows")
	fs.IntVar(&f.cols, "cols", config.DefaultCols, "Maze columns")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed (default: clock)")
	fs.StringVar(&f.strategy, "strategy", config.DefaultStrategy, "Search strategy: bfs or dfs")
	fs.IntVar(&f.speed, "speed", config.DefaultSpeed, "Animation speed 1..100 (delay is 101-speed ms)")
	fs.BoolVar(&f.instant, "instant", false, "Solve without animation delay")
	fs.BoolVar(&f.print, "print", false, "Print the maze and solution when done")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus /metrics on this address while running")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// resolveConfig layers defaults, YAML, environment and explicit flags.
func resolveConfig(f *cliFlags, set map[string]bool) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := config.FromEnv(&cfg, f.envFile); err != nil {
		return cfg, err
	}

	if set["rows"] {
		cfg.Rows = f.rows
	}
	if set["cols"] {
		cfg.Cols = f.cols
	}
	if set["seed"] {
		seed := f.seed
		cfg.Seed = &seed
	}
	if set["strategy"] {
		cfg.Strategy = f.strategy
	}
	if set["speed"] {
		cfg.Speed = f.speed
	}
	if set["instant"] {
		cfg.Instant = f.instant
	}
	if set["metrics-addr"] {
		cfg.MetricsAddr = f.metricsAddr
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsageError
	}

	cfg, err := resolveConfig(f, set)
	if err != nil {
		fmt.Fprintf(stderr, "mazepath: %v\n", err)
		return ExitUsageError
	}
	strategy, _ := cfg.SearchStrategy()

	log := logger.New(cfg.Log.Level, cfg.Log.Format, stderr)

	tp, err := tracing.NewProvider(ctx, tracing.Settings{
		Endpoint: cfg.Tracing.Endpoint,
		Protocol: cfg.Tracing.Protocol,
		Insecure: cfg.Tracing.Insecure,
	})
	if err != nil {
		log.Error("tracing setup failed", "error", err)
		return ExitFailure
	}
	otel.SetTracerProvider(tp.TracerProvider())
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	rec := metrics.New()
	if cfg.MetricsAddr != "" {
		stopMetrics, err := serveMetrics(cfg.MetricsAddr, rec, log)
		if err != nil {
			log.Error("metrics listener failed", "addr", cfg.MetricsAddr, "error", err)
			return ExitFailure
		}
		defer stopMetrics()
	}

	opts := []session.Option{session.WithLogger(log), session.WithMetrics(rec), session.WithTracer(tp.Tracer("mazepath"))}
	if f.mazePath != "" {
		g, err := readMaze(f.mazePath)
		if err != nil {
			log.Error("maze file rejected", "path", f.mazePath, "error", err)
			return ExitUsageError
		}
		opts = append(opts, session.WithGrid(g))
	}

	s, err := session.New(ctx, session.Settings{
		Rows: cfg.Rows, Cols: cfg.Cols, Seed: cfg.Seed,
		Start: cfg.StartCoord(), End: cfg.EndCoord(),
	}, opts...)
	if err != nil {
		log.Error("session setup failed", "error", err)
		return ExitFailure
	}

	if err := s.Solve(ctx, strategy); err != nil {
		log.Error("solve failed to start", "error", err)
		return ExitFailure
	}

	var final session.Snapshot
	if cfg.Instant {
		final, err = s.Finish(ctx)
	} else {
		final, err = s.Animate(ctx, cfg.Speed, func(snap session.Snapshot) {
			log.Debug("step", "steps", snap.Steps, "visited", snap.Visited,
				"frontier", snap.FrontierLen, "current", snap.Current.String())
		})
	}
	if err != nil {
		s.Abort()
		log.Warn("solve interrupted", "error", err)
		return ExitInterrupt
	}

	if f.print {
		fmt.Fprint(stdout, render(s.Grid(), s.Visited(), final.Path))
	}
	fmt.Fprintln(stdout, final.Message)

	if final.Status != search.Found {
		return ExitNoSolution
	}
	return ExitSuccess
}

func readMaze(path string) (*gridgraph.Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\r\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	return gridgraph.FromRows(lines)
}

func serveMetrics(addr string, rec *metrics.Recorder, log *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "error", err)
		}
	}()
	log.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
