package session_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
	"github.com/katalvlaran/mazepath/session"
)

// ExampleSession_Finish solves a loaded fixture instantly.
func ExampleSession_Finish() {
	ctx := context.Background()
	seed := int64(1)
	s, _ := session.New(ctx, session.Settings{Rows: 3, Cols: 3, Seed: &seed, End: gridgraph.Coord{Row: 2, Col: 2}})

	g, _ := gridgraph.FromRows([]string{
		"S..#",
		"##.#",
		"##.E",
	})
	_ = s.Load(g)
	_ = s.Solve(ctx, search.BFS)
	snap, _ := s.Finish(ctx)
	fmt.Println(snap.Message)
	fmt.Println(snap.Path)
	// Output:
	// ✅ Solution found! Path length: 6 | Steps explored: 5
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (2,3)]
}
