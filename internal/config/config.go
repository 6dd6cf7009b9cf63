// SPDX-License-Identifier: MIT

// Package config loads mazepath settings from YAML, a .env file and
// MAZE_* environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

// Defaults are odd so the default end (Rows-1, Cols-1) is a lattice room
// and the default board is always solvable.
const (
	DefaultRows      = 21
	DefaultCols      = 31
	DefaultSpeed     = 50
	DefaultStrategy  = "bfs"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Point is a grid cell in configuration form.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Coord converts p to a gridgraph.Coord.
func (p Point) Coord() gridgraph.Coord { return gridgraph.Coord{Row: p.Row, Col: p.Col} }

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig selects the OTLP exporter. Empty Endpoint disables tracing.
type TracingConfig struct {
	Endpoint string `yaml:"endpoint"`
	Protocol string `yaml:"protocol"`
	Insecure bool   `yaml:"insecure"`
}

// Config is the full set of runtime settings.
type Config struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	Seed     *int64 `yaml:"seed"` // nil means time-seeded
	Strategy string `yaml:"strategy"`
	Speed    int    `yaml:"speed"` // 1..100, delay per step is 101-Speed ms
	Instant  bool   `yaml:"instant"`
	Start    *Point `yaml:"start"` // nil means (0,0)
	End      *Point `yaml:"end"`   // nil means (Rows-1, Cols-1)

	Log         LogConfig     `yaml:"log"`
	MetricsAddr string        `yaml:"metrics_addr"`
	Tracing     TracingConfig `yaml:"tracing"`
}

// Default returns the configuration used when nothing is supplied.
func Default() Config {
	return Config{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		Strategy: DefaultStrategy,
		Speed:    DefaultSpeed,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// StartCoord resolves the start cell.
func (c Config) StartCoord() gridgraph.Coord {
	if c.Start != nil {
		return c.Start.Coord()
	}
	return gridgraph.Coord{}
}

// EndCoord resolves the end cell against the current dimensions.
func (c Config) EndCoord() gridgraph.Coord {
	if c.End != nil {
		return c.End.Coord()
	}
	return gridgraph.Coord{Row: c.Rows - 1, Col: c.Cols - 1}
}

// SearchStrategy parses Strategy.
func (c Config) SearchStrategy() (search.Strategy, error) {
	st, err := search.ParseStrategy(c.Strategy)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return st, nil
}

// Validate reports every problem at once, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if c.Rows < 1 || c.Cols < 1 {
		errs = append(errs, fmt.Errorf("dimensions %dx%d must be at least 1x1", c.Rows, c.Cols))
	}
	if c.Speed < 1 || c.Speed > 100 {
		errs = append(errs, fmt.Errorf("speed %d outside 1..100", c.Speed))
	}
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.Rows >= 1 && c.Cols >= 1 {
		if p := c.StartCoord(); !c.contains(p) {
			errs = append(errs, fmt.Errorf("start %v outside %dx%d grid", p, c.Rows, c.Cols))
		}
		if p := c.EndCoord(); !c.contains(p) {
			errs = append(errs, fmt.Errorf("end %v outside %dx%d grid", p, c.Rows, c.Cols))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func (c Config) contains(p gridgraph.Coord) bool {
	return p.Row >= 0 && p.Row < c.Rows && p.Col >= 0 && p.Col < c.Cols
}
