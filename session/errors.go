// SPDX-License-Identifier: MIT

package session

import "errors"

var (
	// ErrSolveInProgress is returned by Regenerate, Load, Solve and Clear
	// while a search is still running.
	ErrSolveInProgress = errors.New("session: solve in progress")

	// ErrNoSolve is returned by Tick when no search is running.
	ErrNoSolve = errors.New("session: no solve in progress")

	// ErrNoMaze is returned by Load for a nil grid.
	ErrNoMaze = errors.New("session: no maze")

	// ErrInvalidSpeed is returned by Animate for a speed outside 1..100.
	ErrInvalidSpeed = errors.New("session: speed must be within 1..100")
)
