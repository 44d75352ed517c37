package dijkstra

import (
	"log/slog"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/internal/frontier"
)

// Finder computes minimum-cost paths with Dijkstra's algorithm over a
// bucketed open list keyed by accumulated step cost.
type Finder struct {
	grid *gridmap.Grid
	opts Options
	pool *frontier.Pool
	buf  []core.Point
}

// New returns a Finder; call InitMap before FindPath.
func New(opts ...Option) *Finder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Finder{opts: o, buf: make([]core.Point, 0, 8)}
}

// InitMap binds g and sizes the node pool and open list to it.
func (f *Finder) InitMap(g *gridmap.Grid) {
	f.grid, f.pool = g, nil
	if g == nil {
		return
	}
	maxPrio, width := frontier.Bound(g, f.opts.Costs, f.opts.BucketWidth, false)
	pool, err := frontier.NewPool(g.Area(), maxPrio, width, false, f.opts.Logger)
	if err != nil {
		f.opts.Logger.Error("dijkstra: init map", slog.Any("err", err))
		return
	}
	f.pool = pool
}

// OnMapRegionUpdated is a no-op: costs are read live from the shared grid.
func (f *Finder) OnMapRegionUpdated(core.Rect, bool) {}

// SetHeuristic is ignored; Dijkstra is uninformed.
func (f *Finder) SetHeuristic(heuristic.Func) {}

// SetNeedsOptimalSolution is ignored; Dijkstra always extracts the true minimum.
func (f *Finder) SetNeedsOptimalSolution(bool) {}

// FindPath returns a minimum-cost path start..end under the step costs, or nil.
// Complexity: O(W×H×(d + B)) where B is the largest bucket scanned.
func (f *Finder) FindPath(start, end core.Point) []core.Point {
	g := f.grid
	// 1. Validate endpoints
	if g == nil || f.pool == nil || !g.Passable(start) || !g.Passable(end) {
		return nil
	}
	if start == end {
		return []core.Point{start}
	}

	// 2. Seed the open list with the start at cost 0
	p := f.pool
	p.Reset()
	e := g.Index(end)
	if !p.Push(p.Node(g.Index(start)), -1, 0, 0) {
		return nil
	}

	// 3. Settle nodes in increasing cost order
	for p.Len() > 0 {
		n, _ := p.Pop(true)
		n.Closed = true
		if n.Index == e {
			return p.Trace(g, e)
		}
		f.relax(n)
	}

	return nil
}

// relax offers every legal neighbor of n a path through n.
func (f *Finder) relax(n *frontier.Node) {
	g := f.grid
	at := g.Coordinate(n.Index)
	f.buf = g.Neighbors(at, f.buf)
	for _, v := range f.buf {
		m := f.pool.Node(g.Index(v))
		if m.Closed {
			continue
		}
		cost := n.G + f.opts.Costs.Cost(v.X-at.X, v.Y-at.Y)
		if cost < m.G {
			f.pool.Push(m, n.Index, cost, 0)
		}
	}
}
