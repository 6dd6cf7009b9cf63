// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvRows         = "MAZE_ROWS"
	EnvCols         = "MAZE_COLS"
	EnvSeed         = "MAZE_SEED"
	EnvStrategy     = "MAZE_STRATEGY"
	EnvSpeed        = "MAZE_SPEED"
	EnvLogLevel     = "MAZE_LOG_LEVEL"
	EnvLogFormat    = "MAZE_LOG_FORMAT"
	EnvMetricsAddr  = "MAZE_METRICS_ADDR"
	EnvOTLPEndpoint = "MAZE_OTLP_ENDPOINT"
	EnvOTLPProtocol = "MAZE_OTLP_PROTOCOL"
	EnvOTLPInsecure = "MAZE_OTLP_INSECURE"
)

// FromEnv loads envFile (".env" when empty; a missing default file is not an
// error) without overriding variables already set, then applies MAZE_*
// overrides to cfg. Only malformed values are rejected here; the merged
// result is not validated.
func FromEnv(cfg *Config, envFile string) error {
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load .env: %w", err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("config: load %s: %w", envFile, err)
	}

	var errs []error
	intVar := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s must be an integer: %v", key, err))
				return
			}
			*dst = n
		}
	}
	strVar := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	intVar(EnvRows, &cfg.Rows)
	intVar(EnvCols, &cfg.Cols)
	intVar(EnvSpeed, &cfg.Speed)
	strVar(EnvStrategy, &cfg.Strategy)
	strVar(EnvLogLevel, &cfg.Log.Level)
	strVar(EnvLogFormat, &cfg.Log.Format)
	strVar(EnvMetricsAddr, &cfg.MetricsAddr)
	strVar(EnvOTLPEndpoint, &cfg.Tracing.Endpoint)
	strVar(EnvOTLPProtocol, &cfg.Tracing.Protocol)

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be an integer: %v", EnvSeed, err))
		} else {
			cfg.Seed = &seed
		}
	}
	if v, ok := os.LookupEnv(EnvOTLPInsecure); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s must be a boolean: %v", EnvOTLPInsecure, err))
		} else {
			cfg.Tracing.Insecure = b
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
