// SPDX-License-Identifier: MIT

// Package mazegen carves perfect mazes into a gridgraph.Grid.
//
// What:
//
//   - Cells whose row and column are both even are rooms; the odd cells
//     between them are removable walls.
//   - Generate runs randomized iterative depth-first carving from room (0,0)
//     with an explicit stack: peek, pick a random still-walled room two steps
//     away, open the wall between and the room, push; backtrack when stuck.
//   - Every carve joins one new room to the tree, so the result is a spanning
//     tree over all rooms: connected and acyclic (a perfect maze).
//   - Start and end are forced Open afterwards. This only ever opens cells.
//
// Determinism:
//
//	The output is a function of the random Source. WithSeed fixes it for
//	tests and golden fixtures; without an option a time-seeded source is used.
//	Candidate rooms are collected in the order right, down, left, up before
//	the random pick.
//
// Endpoints off the lattice:
//
//	A start or end with an odd row or column sits on a wall cell. It is forced
//	Open but nothing guarantees it touches the carved tree. OnLattice reports
//	the condition; Generate does not special-case it. For even-sized grids the
//	default end (rows-1, cols-1) is such a cell.
//
// Complexity:
//
//   - Time:   O(rows×cols); each room is pushed and popped once.
//   - Memory: O(rows×cols) for the grid plus O(rooms) for the stack.
//
// Errors:
//
//   - ErrInvalidDimensions if rows < 1 or cols < 1.
//   - ErrOutOfBounds if WithStart/WithEnd name a cell outside the grid.
package mazegen
