package astar

import (
	"log/slog"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/internal/frontier"
)

// Finder is an A* search: nodes are ordered by g + Straight*h, where g is
// the accumulated step cost and h the configured heuristic between the node
// and the goal. Equal priorities prefer the node closer to the goal.
type Finder struct {
	grid      *gridmap.Grid
	opts      Options
	pool      *frontier.Pool
	h         heuristic.Func
	needsBest bool
	buf       []core.Point
}

// New returns a Finder with no heuristic and optimal extraction.
func New(opts ...Option) *Finder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Finder{opts: o, needsBest: true, buf: make([]core.Point, 0, 8)}
}

// InitMap binds g and sizes the node pool and open list to it.
func (f *Finder) InitMap(g *gridmap.Grid) {
	f.grid, f.pool = g, nil
	if g == nil {
		return
	}
	maxPrio, width := frontier.Bound(g, f.opts.Costs, f.opts.BucketWidth, true)
	pool, err := frontier.NewPool(g.Area(), maxPrio, width, true, f.opts.Logger)
	if err != nil {
		f.opts.Logger.Error("astar: init map", slog.Any("err", err))
		return
	}
	f.pool = pool
}

// OnMapRegionUpdated is a no-op: passability is read live from the shared grid.
func (f *Finder) OnMapRegionUpdated(core.Rect, bool) {}

// SetHeuristic sets the goal estimate; nil degrades to Dijkstra ordering.
func (f *Finder) SetHeuristic(h heuristic.Func) { f.h = h }

// SetNeedsOptimalSolution selects exact extraction (true) or taking any
// node of the lowest bucket (false), which is faster but may return a
// slightly more expensive path.
func (f *Finder) SetNeedsOptimalSolution(v bool) { f.needsBest = v }

// FindPath returns a path start..end, or nil when the goal is unreachable.
// The path is minimum-cost when the heuristic is admissible and optimal
// extraction is enabled.
func (f *Finder) FindPath(start, end core.Point) []core.Point {
	g := f.grid
	// 1. Validate endpoints
	if g == nil || f.pool == nil || !g.Passable(start) || !g.Passable(end) {
		return nil
	}
	if start == end {
		return []core.Point{start}
	}

	// 2. Seed the open list
	p := f.pool
	p.Reset()
	e := g.Index(end)
	if !p.Push(p.Node(g.Index(start)), -1, 0, f.estimate(start, end)) {
		return nil
	}

	// 3. Expand the most promising node until the goal is closed
	for p.Len() > 0 {
		n, _ := p.Pop(f.needsBest)
		n.Closed = true
		if n.Index == e {
			return p.Trace(g, e)
		}
		at := g.Coordinate(n.Index)
		f.buf = g.Neighbors(at, f.buf)
		for _, v := range f.buf {
			m := p.Node(g.Index(v))
			if m.Closed {
				continue
			}
			cost := n.G + f.opts.Costs.Cost(v.X-at.X, v.Y-at.Y)
			if cost < m.G {
				p.Push(m, n.Index, cost, f.estimate(v, end))
			}
		}
	}

	return nil
}

// estimate scales the heuristic into step-cost units.
func (f *Finder) estimate(a, b core.Point) int {
	if f.h == nil {
		return 0
	}

	return f.opts.Costs.Straight * f.h(a, b)
}
