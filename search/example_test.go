package search_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/search"
)

// ExampleSearch_Step drives a BFS by hand over a small fixture.
func ExampleSearch_Step() {
	g, _ := gridgraph.FromRows([]string{
		"S.#",
		"#..",
		"##E",
	})
	s, _ := search.Begin(g, search.BFS)
	for s.Step() == search.Running {
		cur, _ := s.Current()
		fmt.Println("expanded", cur, "frontier", s.Frontier())
	}
	path, _ := s.Path()
	fmt.Println(s.Status(), "steps:", s.Steps(), "path:", path)
	// Output:
	// expanded (0,0) frontier [(0,1)]
	// expanded (0,1) frontier [(1,1)]
	// expanded (1,1) frontier [(1,2)]
	// expanded (1,2) frontier [(2,2)]
	// FOUND steps: 4 path: [(0,0) (0,1) (1,1) (1,2) (2,2)]
}
