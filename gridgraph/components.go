// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions of Open cells under
// 4-connectivity. Components are listed in row-major order of their first
// cell; each component lists cells in BFS discovery order.
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.openAt(r, c) {
				continue // wall
			}
			i0 := g.index(r, c)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []Coord
			for qi := 0; qi < len(queue); qi++ {
				u := g.Coordinate(queue[qi])
				comp = append(comp, u)
				for _, d := range neighborOffsets {
					v := u.Add(d[0], d[1])
					if !g.InBounds(v) || !g.openAt(v.Row, v.Col) {
						continue
					}
					vi := g.index(v.Row, v.Col)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// IsPerfect reports whether the Open cells form a spanning tree under
// 4-adjacency: exactly one component and exactly OpenCount()-1 edges.
// A grid with no open cells is not perfect.
func (g *Grid) IsPerfect() bool {
	open := g.OpenCount()
	if open == 0 {
		return false
	}
	if g.EdgeCount() != open-1 {
		return false
	}
	return len(g.ConnectedComponents()) == 1
}
