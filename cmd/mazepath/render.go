// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// render overlays explored cells ('+') and the solution ('*') on the grid
// dump; start and end keep their letters.
func render(g *gridgraph.Grid, visited, path []gridgraph.Coord) string {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	canvas := make([][]byte, len(rows))
	for i, r := range rows {
		canvas[i] = []byte(r)
	}

	mark := func(cells []gridgraph.Coord, glyph byte) {
		for _, c := range cells {
			if c == g.Start() || c == g.End() {
				continue
			}
			canvas[c.Row][c.Col] = glyph
		}
	}
	mark(visited, '+')
	mark(path, '*')

	var b strings.Builder
	for _, line := range canvas {
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}
