package jps_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/jps"
)

// finder is the method set both JPS flavours share.
type finder interface {
	InitMap(*gridmap.Grid)
	OnMapRegionUpdated(core.Rect, bool)
	SetHeuristic(heuristic.Func)
	FindPath(start, end core.Point) []core.Point
}

var flavours = []struct {
	name string
	make func() finder
}{
	{"JPS", func() finder { return jps.New() }},
	{"JPSPlus", func() finder { return jps.NewPlus() }},
}

var modes = []struct {
	name string
	opts []gridmap.Option
}{
	{"Conn4", []gridmap.Option{gridmap.WithConnectivity(gridmap.Conn4)}},
	{"NoCornerCut", nil},
	{"OneCornerCut", []gridmap.Option{gridmap.WithDiagonalPassByObstacle(true)}},
}

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

func bind(g *gridmap.Grid, f finder) finder {
	return bindWith(g, f, heuristic.Diagonal)
}

func bindWith(g *gridmap.Grid, f finder, k heuristic.Kind) finder {
	f.InitMap(g)
	f.SetHeuristic(heuristic.For(k))

	return f
}

func TestFindPath_OpenGrid(t *testing.T) {
	start, end := core.Pt(1, 1), core.Pt(9, 4)
	for _, fl := range flavours {
		for _, m := range modes {
			t.Run(fl.name+"/"+m.name, func(t *testing.T) {
				g, err := gridmap.New(12, 8, m.opts...)
				require.NoError(t, err)
				path := bind(g, fl.make()).FindPath(start, end)
				requireValidPath(t, g, path, start, end)
				if g.Connectivity() == gridmap.Conn4 {
					assert.Len(t, path, 8+3+1)
				} else {
					assert.Len(t, path, 8+1)
					assert.Equal(t, 3*14+5*10, pathCost(path))
				}
			})
		}
	}
}

func TestFindPath_BlockedColumnDetour(t *testing.T) {
	rows := []string{
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
	}
	for _, fl := range flavours {
		for _, m := range modes {
			t.Run(fl.name+"/"+m.name, func(t *testing.T) {
				g, err := gridmap.FromStrings(rows, m.opts...)
				require.NoError(t, err)
				path := bind(g, fl.make()).FindPath(core.Pt(0, 0), core.Pt(4, 0))
				requireValidPath(t, g, path, core.Pt(0, 0), core.Pt(4, 0))
				assert.Contains(t, path, core.Pt(2, 4))
			})
		}
	}
}

// TestFindPath_RandomMaps requires Dijkstra's cost on scattered-obstacle
// maps, with and without a goal estimate.
func TestFindPath_RandomMaps(t *testing.T) {
	for seed := uint64(1); seed <= 12; seed++ {
		for _, m := range modes {
			g := scatter(t, 16, 12, seed, m.opts...)
			rng := rand.New(rand.NewPCG(seed, 1))
			queries := [][2]core.Point{{core.Pt(0, 0), core.Pt(15, 11)}}
			for i := 0; i < 4; i++ {
				queries = append(queries, [2]core.Point{randomCell(rng, g), randomCell(rng, g)})
			}

			for _, fl := range flavours {
				for _, hk := range heuristics {
					t.Run(fmt.Sprintf("%s/%s/%s/seed%d", fl.name, m.name, hk, seed), func(t *testing.T) {
						f := bindWith(g, fl.make(), hk)
						for _, q := range queries {
							requireSameCost(t, g, f, q[0], q[1])
						}
					})
				}
			}
		}
	}
}

// TestFindPath_RandomUpdates interleaves region updates with queries on one
// bound finder and compares every answer with a freshly initialized Dijkstra.
func TestFindPath_RandomUpdates(t *testing.T) {
	for _, fl := range flavours {
		for _, m := range modes {
			for _, hk := range heuristics {
				t.Run(fmt.Sprintf("%s/%s/%s", fl.name, m.name, hk), func(t *testing.T) {
					g := scatter(t, 14, 10, 3, m.opts...)
					f := bindWith(g, fl.make(), hk)
					rng := rand.New(rand.NewPCG(7, uint64(len(m.name))))
					for step := 0; step < 30; step++ {
						w, h := 1+rng.IntN(3), 1+rng.IntN(3)
						r := core.RectXYWH(rng.IntN(g.Width()-w+1), rng.IntN(g.Height()-h+1), w, h)
						passable := rng.IntN(2) == 0
						require.NoError(t, g.UpdateRegion(r, passable))
						f.OnMapRegionUpdated(r, passable)

						requireSameCost(t, g, f, randomCell(rng, g), randomCell(rng, g))
					}
				})
			}
		}
	}
}

var heuristics = []heuristic.Kind{heuristic.None, heuristic.Diagonal}

// requireSameCost checks f against Dijkstra on the current state of g.
func requireSameCost(t *testing.T, g *gridmap.Grid, f finder, start, end core.Point) {
	t.Helper()
	ref := dijkstra.New()
	ref.InitMap(g)
	want := ref.FindPath(start, end)
	got := f.FindPath(start, end)
	if want == nil {
		require.Nil(t, got, "%v -> %v should be unreachable", start, end)
		return
	}
	requireValidPath(t, g, got, start, end)
	require.Equal(t, pathCost(want), pathCost(got), "%v -> %v", start, end)
}

func randomCell(rng *rand.Rand, g *gridmap.Grid) core.Point {
	return core.Pt(rng.IntN(g.Width()), rng.IntN(g.Height()))
}

// scatter blocks about a quarter of the cells, keeping the corners open.
func scatter(t *testing.T, w, h int, seed uint64, opts ...gridmap.Option) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.New(w, h, opts...)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(seed, 0))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.IntN(4) == 0 {
				require.NoError(t, g.UpdateRegion(core.RectXYWH(x, y, 1, 1), false))
			}
		}
	}
	require.NoError(t, g.UpdateRegion(core.RectXYWH(0, 0, 1, 1), true))
	require.NoError(t, g.UpdateRegion(core.RectXYWH(w-1, h-1, 1, 1), true))

	return g
}

func TestFindPath_Trivial(t *testing.T) {
	g, err := gridmap.FromStrings([]string{"..#"})
	require.NoError(t, err)
	for _, fl := range flavours {
		f := fl.make()
		assert.Nil(t, f.FindPath(core.Pt(0, 0), core.Pt(1, 0)), "no map bound")
		f.InitMap(g)
		assert.Equal(t, []core.Point{{X: 0, Y: 0}}, f.FindPath(core.Pt(0, 0), core.Pt(0, 0)))
		assert.Nil(t, f.FindPath(core.Pt(0, 0), core.Pt(2, 0)))
	}
}

//----------------------------------------------------------------------------//
// JPS+ table
//----------------------------------------------------------------------------//

func TestPlus_Distance(t *testing.T) {
	g, err := gridmap.FromStrings([]string{
		".....",
		".#...",
		".....",
	})
	require.NoError(t, err)
	f := jps.NewPlus()
	f.InitMap(g)

	east := core.Direction{DX: 1}
	assert.Equal(t, 2, f.Distance(core.Pt(0, 0), east), "forced neighbor below (2,0)")
	assert.Equal(t, -2, f.Distance(core.Pt(2, 0), east), "two steps to the wall")
	assert.Equal(t, 0, f.Distance(core.Pt(4, 0), east))
	assert.Equal(t, 0, f.Distance(core.Pt(0, 0), core.Direction{DX: 1, DY: 1}), "corner blocked")
}

func TestPlus_RebuildAfterUpdate(t *testing.T) {
	g, err := gridmap.FromStrings([]string{
		".....",
		".#...",
		".....",
	})
	require.NoError(t, err)
	f := jps.NewPlus()
	f.InitMap(g)
	f.SetHeuristic(heuristic.For(heuristic.Diagonal))
	require.Equal(t, 2, f.Distance(core.Pt(0, 0), core.Direction{DX: 1}))

	r := core.RectXYWH(2, 0, 1, 1)
	require.NoError(t, g.UpdateRegion(r, false))
	f.OnMapRegionUpdated(r, false)
	assert.Equal(t, -1, f.Distance(core.Pt(0, 0), core.Direction{DX: 1}))

	path := f.FindPath(core.Pt(0, 0), core.Pt(4, 0))
	requireValidPath(t, g, path, core.Pt(0, 0), core.Pt(4, 0))
	assert.NotContains(t, path, core.Pt(2, 0))
}
