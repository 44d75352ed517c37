package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
)

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

func pathCost(path []core.Point) int {
	c := core.DefaultStepCosts()
	total := 0
	for i := 1; i < len(path); i++ {
		d := path[i].Sub(path[i-1])
		total += c.Cost(d.X, d.Y)
	}

	return total
}

func newFinder(t *testing.T, g *gridmap.Grid, kind heuristic.Kind, optimal bool) *astar.Finder {
	t.Helper()
	f := astar.New()
	f.InitMap(g)
	f.SetHeuristic(heuristic.For(kind))
	f.SetNeedsOptimalSolution(optimal)

	return f
}

func TestFindPath_OpenDiagonal(t *testing.T) {
	g, err := gridmap.New(5, 5)
	require.NoError(t, err)
	f := newFinder(t, g, heuristic.Diagonal, true)

	path := f.FindPath(core.Pt(0, 0), core.Pt(4, 4))
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}, path)
}

func TestFindPath_OptimalAcrossHeuristics(t *testing.T) {
	g, err := gridmap.FromStrings([]string{
		"..........",
		"..####....",
		".....#....",
		".....#.##.",
		"..#..#..#.",
		"..#.....#.",
		"..#######.",
		"..........",
	})
	require.NoError(t, err)
	start, end := core.Pt(0, 0), core.Pt(6, 5)

	ref := newFinder(t, g, heuristic.None, true).FindPath(start, end)
	requireValidPath(t, g, ref, start, end)
	want := pathCost(ref)

	for _, kind := range []heuristic.Kind{heuristic.Diagonal} {
		t.Run(kind.String(), func(t *testing.T) {
			path := newFinder(t, g, kind, true).FindPath(start, end)
			requireValidPath(t, g, path, start, end)
			assert.Equal(t, want, pathCost(path), "consistent heuristic keeps the optimum")
		})
	}
	for _, kind := range []heuristic.Kind{heuristic.Euclidean, heuristic.Manhattan, heuristic.SquaredEuclidean, heuristic.WeightedDiagonal} {
		t.Run(kind.String()+"/any", func(t *testing.T) {
			path := newFinder(t, g, kind, false).FindPath(start, end)
			requireValidPath(t, g, path, start, end)
			assert.GreaterOrEqual(t, pathCost(path), want)
		})
	}
}

func TestFindPath_Conn4Manhattan(t *testing.T) {
	g, err := gridmap.New(7, 7, gridmap.WithConnectivity(gridmap.Conn4))
	require.NoError(t, err)
	f := newFinder(t, g, heuristic.Manhattan, true)

	path := f.FindPath(core.Pt(6, 0), core.Pt(1, 4))
	requireValidPath(t, g, path, core.Pt(6, 0), core.Pt(1, 4))
	assert.Len(t, path, 10)
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
	f := newFinder(t, g, heuristic.Diagonal, true)

	path := f.FindPath(core.Pt(0, 0), core.Pt(4, 0))
	requireValidPath(t, g, path, core.Pt(0, 0), core.Pt(4, 0))
	assert.Contains(t, path, core.Pt(2, 4))
}

func TestFindPath_Unreachable(t *testing.T) {
	g, err := gridmap.FromStrings([]string{
		".#.",
		"##.",
	})
	require.NoError(t, err)
	f := newFinder(t, g, heuristic.Diagonal, true)
	assert.Nil(t, f.FindPath(core.Pt(0, 0), core.Pt(2, 1)))
	assert.Nil(t, f.FindPath(core.Pt(0, 0), core.Pt(1, 0)))
}
