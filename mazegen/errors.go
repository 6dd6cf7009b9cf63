// SPDX-License-Identifier: MIT
// Package: mazepath/mazegen
//
// errors.go: sentinel errors for the mazegen package.
//
// Error policy:
//   • Sentinels are shared with gridgraph so callers can branch with
//     errors.Is regardless of which layer rejected the input.
//   • Implementations attach context with %w; option constructors panic on
//     meaningless inputs, Generate itself never panics.

package mazegen

import "github.com/katalvlaran/mazepath/gridgraph"

// ErrInvalidDimensions indicates rows or cols below 1.
var ErrInvalidDimensions = gridgraph.ErrInvalidDimensions

// ErrOutOfBounds indicates a configured start or end outside the grid.
var ErrOutOfBounds = gridgraph.ErrOutOfBounds
