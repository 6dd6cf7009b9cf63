// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	// It is a programming error; coordinates are never clamped.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrInvalidDimensions indicates rows or cols below 1.
	ErrInvalidDimensions = errors.New("gridgraph: rows and cols must be at least 1")
	// ErrEmptyGrid indicates fixture input with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates fixture rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidGlyph indicates a non-ASCII byte in fixture input.
	ErrInvalidGlyph = errors.New("gridgraph: fixture glyphs must be ASCII")
)
