// Package mazepath generates perfect mazes on a grid and solves them one
// expansion at a time with breadth-first or depth-first search, so a
// renderer can animate the exploration between steps.
//
// 🚀 What is mazepath?
//
//	A small library plus CLI that brings together:
//		• Grid storage: Wall/Open cells, fixed right/down/left/up neighbour order
//		• Generation: randomized depth-first carving over a 2-stride room lattice
//		• Search: steppable BFS (shortest path) and DFS over the open cells
//		• Session: one maze, one solve at a time, status line, timed animation
//
// ✨ Why mazepath?
//
//   - Deterministic – inject a seed or random source, get the same maze
//   - Observable – visited set, frontier and current cell between any two steps
//   - Scheduler-agnostic – drive Step from a ticker, a UI loop or a test
//
// Packages:
//
//	gridgraph/ - Grid, Coord, component analysis and a BFS distance oracle
//	mazegen/   - perfect-maze generator with seedable randomness
//	search/    - stepwise BFS/DFS state machine with path reconstruction
//	session/   - controller with solve guard, messages, metrics and tracing
//	cmd/mazepath - command-line front end
//
// Quick ASCII example (S start, E end, # wall):
//
//	S....
//	####.
//	....E
//
//	BFS reaches E after 6 expansions along the single 7-cell path.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
