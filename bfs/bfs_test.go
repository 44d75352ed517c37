package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

// requireValidPath checks endpoints and that every step is a legal move.
func requireValidPath(t *testing.T, g *gridmap.Grid, path []core.Point, start, end core.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		d := path[i].Sub(path[i-1])
		require.True(t, g.CanMoveTo(path[i-1].X, path[i-1].Y, d.X, d.Y), "illegal step %v -> %v", path[i-1], path[i])
	}
}

func TestFindPath_OpenGridLength(t *testing.T) {
	cases := []struct {
		name  string
		conn  gridmap.Connectivity
		start core.Point
		end   core.Point
		want  int // number of cells
	}{
		{"Conn8Diagonal", gridmap.Conn8, core.Pt(0, 0), core.Pt(6, 6), 7},
		{"Conn8Skewed", gridmap.Conn8, core.Pt(1, 5), core.Pt(7, 2), 7},
		{"Conn4Diagonal", gridmap.Conn4, core.Pt(0, 0), core.Pt(6, 6), 13},
		{"Conn4Skewed", gridmap.Conn4, core.Pt(1, 5), core.Pt(7, 2), 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridmap.New(8, 8, gridmap.WithConnectivity(tc.conn))
			require.NoError(t, err)
			f := bfs.New()
			f.InitMap(g)

			path := f.FindPath(tc.start, tc.end)
			requireValidPath(t, g, path, tc.start, tc.end)
			assert.Len(t, path, tc.want)
		})
	}
}

func TestFindPath_BlockedColumnDetour(t *testing.T) {
	g, err := gridmap.FromStrings([]string{
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
	})
	require.NoError(t, err)
	f := bfs.New()
	f.InitMap(g)

	path := f.FindPath(core.Pt(0, 0), core.Pt(4, 0))
	requireValidPath(t, g, path, core.Pt(0, 0), core.Pt(4, 0))
	assert.Contains(t, path, core.Pt(2, 4))
}

func TestFindPath_NoPath(t *testing.T) {
	g, err := gridmap.FromStrings([]string{
		"..#..",
		"..#..",
	})
	require.NoError(t, err)
	f := bfs.New()
	assert.Nil(t, f.FindPath(core.Pt(0, 0), core.Pt(4, 0)), "no map bound")

	f.InitMap(g)
	assert.Nil(t, f.FindPath(core.Pt(0, 0), core.Pt(4, 0)))
	assert.Nil(t, f.FindPath(core.Pt(0, 0), core.Pt(2, 0)), "blocked goal")
	assert.Nil(t, f.FindPath(core.Pt(-1, 0), core.Pt(1, 0)), "start off grid")
	assert.Equal(t, []core.Point{{X: 1, Y: 1}}, f.FindPath(core.Pt(1, 1), core.Pt(1, 1)))
}

func TestFindPath_ReusesScratchAcrossCalls(t *testing.T) {
	g, err := gridmap.New(6, 6)
	require.NoError(t, err)
	f := bfs.New()
	f.InitMap(g)
	for i := 0; i < 5; i++ {
		assert.Len(t, f.FindPath(core.Pt(0, 0), core.Pt(5, 0)), 6)
	}

	require.NoError(t, g.UpdateRegion(core.RectXYWH(3, 0, 1, 5), false))
	path := f.FindPath(core.Pt(0, 0), core.Pt(5, 0))
	requireValidPath(t, g, path, core.Pt(0, 0), core.Pt(5, 0))
	assert.Contains(t, path, core.Pt(3, 5), "updates are visible through the shared grid")
}

func TestOptions(t *testing.T) {
	g, err := gridmap.New(10, 1)
	require.NoError(t, err)

	visited := 0
	f := bfs.New(bfs.WithOnVisit(func(core.Point, int) { visited++ }), bfs.WithMaxDepth(3))
	f.InitMap(g)
	assert.Nil(t, f.FindPath(core.Pt(0, 0), core.Pt(9, 0)), "goal beyond max depth")
	assert.Equal(t, 4, visited)

	f = bfs.New(bfs.WithMaxDepth(-2))
	f.InitMap(g)
	assert.Len(t, f.FindPath(core.Pt(0, 0), core.Pt(9, 0)), 10)
}
