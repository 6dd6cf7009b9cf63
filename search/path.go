// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/mazepath/gridgraph"

// Path returns a copy of the solution from start to end. It is defined only
// when the status is Found; otherwise it returns nil, false.
func (s *Search) Path() ([]gridgraph.Coord, bool) {
	if s.status != Found {
		return nil, false
	}
	out := make([]gridgraph.Coord, len(s.path))
	copy(out, s.path)
	return out, true
}

// PathLen returns the number of cells on the solution, or 0 if not Found.
func (s *Search) PathLen() int {
	if s.status != Found {
		return 0
	}
	return len(s.path)
}

// pathTo walks the predecessor map back from dest and reverses it. The
// result equals the path a per-entry path copy would have carried, since
// every cell is discovered exactly once.
func (s *Search) pathTo(dest gridgraph.Coord) []gridgraph.Coord {
	// build reversed path
	path := make([]gridgraph.Coord, 0, s.depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := s.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
