// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// Distance returns the minimum number of single steps between from and to
// moving only through Open cells, or -1 if to is unreachable. Both endpoints
// must be Open for a non-negative result.
//
// It is a plain level-order flood with a dist slice, independent of the
// search package, so callers can cross-check path lengths against it.
//
// Time: O(rows·cols), Memory: O(rows·cols).
func (g *Grid) Distance(from, to Coord) (int, error) {
	if !g.InBounds(from) {
		return -1, fmt.Errorf("Distance from %v: %w", from, ErrOutOfBounds)
	}
	if !g.InBounds(to) {
		return -1, fmt.Errorf("Distance to %v: %w", to, ErrOutOfBounds)
	}
	if !g.openAt(from.Row, from.Col) || !g.openAt(to.Row, to.Col) {
		return -1, nil
	}

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	src := g.index(from.Row, from.Col)
	dst := g.index(to.Row, to.Col)
	dist[src] = 0

	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return dist[u], nil
		}
		uc := g.Coordinate(u)
		for _, d := range neighborOffsets {
			v := uc.Add(d[0], d[1])
			if !g.InBounds(v) || !g.openAt(v.Row, v.Col) {
				continue
			}
			vi := g.index(v.Row, v.Col)
			if dist[vi] < 0 {
				dist[vi] = dist[u] + 1
				queue = append(queue, vi)
			}
		}
	}

	return -1, nil
}
