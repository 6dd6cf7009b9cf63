// SPDX-License-Identifier: MIT

// Package gridgraph treats a rectangular grid of Wall/Open cells as a graph,
// the storage layer every maze in this module lives in.
//
// What:
//
//   - Grid holds rows×cols cells (row-major), a start and an end coordinate.
//   - Every cell of a fresh grid is a Wall; generators open cells.
//   - Neighbors4 yields in-bounds orthogonal neighbours in the fixed order
//     right, down, left, up. Maze carving and search tie-breaking rely on it.
//   - ConnectedComponents, EdgeCount and IsPerfect analyse the open-cell graph.
//   - Distance is an independent unweighted shortest-path oracle.
//
// Why:
//
//   - Mazes: a perfect maze is exactly a grid whose open cells form a
//     spanning tree (one component, OpenCount-1 edges).
//   - Tests: fixtures via FromRows and a round-trippable String dump.
//
// Complexity:
//
//   - NewGrid, OpenCount, EdgeCount: O(rows×cols).
//   - ConnectedComponents, Distance: O(rows×cols), Memory: O(rows×cols).
//   - At, IsOpen, SetOpen, SetWall, Neighbors4: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols below 1.
//   - ErrOutOfBounds: coordinate outside the grid (never clamped).
//   - ErrEmptyGrid: FromRows input has no rows or no columns.
//   - ErrNonRectangular: FromRows rows have differing lengths.
//
// Concurrency:
//
//	A Grid has no internal locking. Build it first, then share it read-only;
//	any number of searches may read one Grid concurrently.
package gridgraph
