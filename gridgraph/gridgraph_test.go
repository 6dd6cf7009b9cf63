package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewGrid / FromRows Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive dimensions.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows, tc.cols)
			if !errors.Is(err, gridgraph.ErrInvalidDimensions) {
				t.Errorf("NewGrid(%d,%d) error = %v; want ErrInvalidDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNewGrid_AllWalls checks the initial state and default endpoints.
func TestNewGrid_AllWalls(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, gridgraph.Coord{Row: 2, Col: 3}, g.End())
	assert.Zero(t, g.OpenCount())

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			open, err := g.IsOpen(gridgraph.Coord{Row: r, Col: c})
			require.NoError(t, err)
			assert.False(t, open, "cell (%d,%d) should start as a wall", r, c)
		}
	}
}

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Nil", nil, gridgraph.ErrEmptyGrid},
		{"EmptyCols", []string{""}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", []string{"..", "."}, gridgraph.ErrNonRectangular},
		{"MultiByteGlyph", []string{"S·E"}, gridgraph.ErrInvalidGlyph},
		{"MultiByteSameWidth", []string{"S.E", "·#"}, gridgraph.ErrInvalidGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.FromRows(tc.lines)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

// TestFromRows_StringRoundTrip parses a fixture and dumps it back.
func TestFromRows_StringRoundTrip(t *testing.T) {
	lines := []string{
		"S.#",
		"#..",
		"##E",
	}
	g, err := gridgraph.FromRows(lines)
	require.NoError(t, err)

	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, gridgraph.Coord{Row: 2, Col: 2}, g.End())
	assert.Equal(t, 5, g.OpenCount())
	assert.Equal(t, "S.#\n#..\n##E\n", g.String())
}

//----------------------------------------------------------------------------//
// Bounds and cell access
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 3)
	require.NoError(t, err)

	valid := []gridgraph.Coord{{0, 0}, {1, 2}, {1, 1}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds%v=false; want true", c)
		}
	}
	invalid := []gridgraph.Coord{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds%v=true; want false", c)
		}
	}
}

// TestCellAccess_OutOfBounds ensures every accessor refuses foreign coordinates.
func TestCellAccess_OutOfBounds(t *testing.T) {
	g, err := gridgraph.NewGrid(2, 2)
	require.NoError(t, err)
	bad := gridgraph.Coord{Row: 2, Col: 0}

	_, err = g.IsOpen(bad)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetOpen(bad), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetWall(bad), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetStart(bad), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetEnd(bad), gridgraph.ErrOutOfBounds)
	_, err = g.Neighbors4(bad)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = g.Distance(bad, gridgraph.Coord{})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	// Nothing was clamped into the grid.
	assert.Zero(t, g.OpenCount())
}

// TestSetOpenSetWall toggles one cell.
func TestSetOpenSetWall(t *testing.T) {
	g, err := gridgraph.NewGrid(1, 1)
	require.NoError(t, err)
	c := gridgraph.Coord{}

	require.NoError(t, g.SetOpen(c))
	open, _ := g.IsOpen(c)
	assert.True(t, open)

	require.NoError(t, g.SetWall(c))
	cell, _ := g.At(c)
	assert.Equal(t, gridgraph.Wall, cell)
	assert.Equal(t, "WALL", cell.String())
}

// TestNeighbors4_Order verifies the fixed right, down, left, up order and
// edge trimming at borders and corners.
func TestNeighbors4_Order(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	cases := []struct {
		name string
		at   gridgraph.Coord
		want []gridgraph.Coord
	}{
		{"Centre", gridgraph.Coord{1, 1}, []gridgraph.Coord{{1, 2}, {2, 1}, {1, 0}, {0, 1}}},
		{"TopLeft", gridgraph.Coord{0, 0}, []gridgraph.Coord{{0, 1}, {1, 0}}},
		{"BottomRight", gridgraph.Coord{2, 2}, []gridgraph.Coord{{2, 1}, {1, 2}}},
		{"TopEdge", gridgraph.Coord{0, 1}, []gridgraph.Coord{{0, 2}, {1, 1}, {0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.Neighbors4(tc.at)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestClone_Independent checks that mutating a clone leaves the source intact.
func TestClone_Independent(t *testing.T) {
	g, err := gridgraph.FromRows([]string{"S.E"})
	require.NoError(t, err)

	cp := g.Clone()
	require.NoError(t, cp.SetWall(gridgraph.Coord{Row: 0, Col: 1}))

	assert.Equal(t, 3, g.OpenCount())
	assert.Equal(t, 2, cp.OpenCount())
	assert.Equal(t, g.Start(), cp.Start())
	assert.Equal(t, g.End(), cp.End())
}

//----------------------------------------------------------------------------//
// Distance
//----------------------------------------------------------------------------//

// TestDistance covers a detour, an unreachable target and a walled endpoint.
func TestDistance(t *testing.T) {
	g, err := gridgraph.FromRows([]string{
		"S..",
		"##.",
		"E..",
		"###",
		"..#",
	})
	require.NoError(t, err)

	d, err := g.Distance(g.Start(), g.End())
	require.NoError(t, err)
	assert.Equal(t, 6, d)

	d, err = g.Distance(g.Start(), gridgraph.Coord{Row: 4, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, -1, d, "isolated pocket must be unreachable")

	d, err = g.Distance(g.Start(), gridgraph.Coord{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, -1, d, "wall target has no distance")

	d, err = g.Distance(g.Start(), g.Start())
	require.NoError(t, err)
	assert.Zero(t, d)
}
