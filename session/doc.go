// SPDX-License-Identifier: MIT

// Package session is the controller between a maze renderer and the
// mazegen/search core. It owns one maze at a time, runs at most one search,
// and keeps the one-line status message a UI shows.
//
// While a search runs, Regenerate, Load, Solve and Clear are refused with
// ErrSolveInProgress; the search finishes through Tick (driven by Animate,
// Finish or the caller's own timer) or is dropped with Abort.
//
// Every maze gets a fresh UUID. Generation and each solve are traced as
// OpenTelemetry spans, counted in Prometheus metrics, and logged through
// slog with the active trace/span IDs.
//
// Typical loop:
//
//	s, err := session.New(ctx, session.Settings{Rows: 21, Cols: 31, End: gridgraph.Coord{Row: 20, Col: 30}})
//	if err != nil {
//	    return err
//	}
//	if err := s.Solve(ctx, search.BFS); err != nil {
//	    return err
//	}
//	final, err := s.Animate(ctx, 50, render)
//	fmt.Println(final.Message)
package session
