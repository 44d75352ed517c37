package bfs

import (
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Finder runs breadth-first searches over a shared grid. Scratch buffers
// are sized by InitMap and reused between searches.
type Finder struct {
	grid   *gridmap.Grid
	opts   Options
	parent []int
	depth  []int
	seen   []uint32
	gen    uint32
	queue  []int
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
	n := g.Area()
	f.parent = make([]int, n)
	f.depth = make([]int, n)
	f.seen = make([]uint32, n)
	f.queue = make([]int, 0, n)
	f.gen = 0
}

// OnMapRegionUpdated is a no-op: BFS keeps no per-map state besides scratch.
func (f *Finder) OnMapRegionUpdated(core.Rect, bool) {}

// SetHeuristic is ignored; BFS is uninformed.
func (f *Finder) SetHeuristic(heuristic.Func) {}

// SetNeedsOptimalSolution is ignored; BFS always returns a fewest-steps path.
func (f *Finder) SetNeedsOptimalSolution(bool) {}

// FindPath returns a fewest-steps path start..end, or nil when none exists.
// Complexity: O(W×H×d) time, O(W×H) memory (preallocated).
func (f *Finder) FindPath(start, end core.Point) []core.Point {
	g := f.grid
	// 1. Validate endpoints
	if g == nil || !g.Passable(start) || !g.Passable(end) {
		return nil
	}
	if start == end {
		return []core.Point{start}
	}

	// 2. Seed the queue with the start cell
	f.nextGen()
	s, e := g.Index(start), g.Index(end)
	f.mark(s, -1, 0)
	f.queue = append(f.queue[:0], s)

	// 3. Expand level by level
	for qi := 0; qi < len(f.queue); qi++ {
		u := f.queue[qi]
		up := g.Coordinate(u)
		f.opts.OnVisit(up, f.depth[u])
		if f.opts.MaxDepth > 0 && f.depth[u] >= f.opts.MaxDepth {
			continue
		}
		f.buf = g.Neighbors(up, f.buf)
		for _, v := range f.buf {
			vi := g.Index(v)
			if f.seen[vi] == f.gen {
				continue
			}
			f.mark(vi, u, f.depth[u]+1)
			if vi == e {
				return f.trace(e)
			}
			f.queue = append(f.queue, vi)
		}
	}

	return nil
}

func (f *Finder) nextGen() {
	f.gen++
	if f.gen == 0 {
		clear(f.seen)
		f.gen = 1
	}
}

func (f *Finder) mark(i, parent, depth int) {
	f.seen[i] = f.gen
	f.parent[i] = parent
	f.depth[i] = depth
}

// trace rebuilds start..end from parent links.
func (f *Finder) trace(end int) []core.Point {
	path := make([]core.Point, 0, f.depth[end]+1)
	for i := end; i >= 0; i = f.parent[i] {
		path = append(path, f.grid.Coordinate(i))
	}

	return core.Reverse(path)
}
