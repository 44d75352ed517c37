package dfs

import (
	"math/rand/v2"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Finder runs depth-first searches over a shared grid. The result is some
// path, usually far from shortest.
type Finder struct {
	grid   *gridmap.Grid
	opts   Options
	parent []int
	seen   []uint32
	gen    uint32
	stack  []frame
	buf    []core.Point
}

// New returns a Finder; call InitMap before FindPath.
func New(opts ...Option) *Finder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Finder{opts: o, buf: make([]core.Point, 0, 8)}
}

// InitMap binds g and sizes the scratch buffers to it.
func (f *Finder) InitMap(g *gridmap.Grid) {
	f.grid = g
	if g == nil {
		return
	}
	f.parent = make([]int, g.Area())
	f.seen = make([]uint32, g.Area())
	f.stack = make([]frame, 0, 64)
	f.gen = 0
}

// OnMapRegionUpdated is a no-op: DFS keeps no per-map state besides scratch.
func (f *Finder) OnMapRegionUpdated(core.Rect, bool) {}

// SetHeuristic is ignored; DFS is uninformed.
func (f *Finder) SetHeuristic(heuristic.Func) {}

// SetNeedsOptimalSolution is ignored; DFS never guarantees optimality.
func (f *Finder) SetNeedsOptimalSolution(bool) {}

// FindPath returns a path start..end found by depth-first expansion, or nil.
// The most recently pushed neighbor is explored first. With WithSeed the
// neighbor order is reshuffled per search from the same seed, so repeated
// calls on an unchanged grid return the same path.
func (f *Finder) FindPath(start, end core.Point) []core.Point {
	g := f.grid
	if g == nil || !g.Passable(start) || !g.Passable(end) {
		return nil
	}
	if start == end {
		return []core.Point{start}
	}

	f.gen++
	if f.gen == 0 {
		clear(f.seen)
		f.gen = 1
	}
	var rng *rand.Rand
	if f.opts.Shuffle {
		rng = rand.New(rand.NewPCG(f.opts.Seed, f.opts.Seed^0x9e3779b97f4a7c15))
	}

	e := g.Index(end)
	f.stack = append(f.stack[:0], frame{index: g.Index(start), parent: -1})
	for len(f.stack) > 0 {
		top := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		if f.seen[top.index] == f.gen {
			continue
		}
		f.seen[top.index] = f.gen
		f.parent[top.index] = top.parent
		p := g.Coordinate(top.index)
		if f.opts.OnVisit != nil {
			f.opts.OnVisit(p)
		}
		if top.index == e {
			return f.trace(e)
		}

		f.buf = g.Neighbors(p, f.buf)
		if rng != nil {
			rng.Shuffle(len(f.buf), func(i, j int) { f.buf[i], f.buf[j] = f.buf[j], f.buf[i] })
		}
		for _, v := range f.buf {
			if vi := g.Index(v); f.seen[vi] != f.gen {
				f.stack = append(f.stack, frame{index: vi, parent: top.index})
			}
		}
	}

	return nil
}

func (f *Finder) trace(end int) []core.Point {
	var path []core.Point
	for i := end; i >= 0; i = f.parent[i] {
		path = append(path, f.grid.Coordinate(i))
	}

	return core.Reverse(path)
}
