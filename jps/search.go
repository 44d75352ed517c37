package jps

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/internal/frontier"
)

// successorFunc appends to dst the jump points reachable from cur when cur
// was entered moving along dir ((0,0) for the start).
type successorFunc func(cur core.Point, dir core.Direction, end core.Point, dst []core.Point) []core.Point

// engine is the best-first loop over jump points shared by JPS and JPS+.
type engine struct {
	grid      *gridmap.Grid
	opts      Options
	pool      *frontier.Pool
	jump      jumper
	h         heuristic.Func
	needsBest bool
	succ      []core.Point
	dirs      []core.Direction
}

func newEngine(opts []Option) engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return engine{
		opts:      o,
		needsBest: true,
		succ:      make([]core.Point, 0, 8),
		dirs:      make([]core.Direction, 0, 8),
	}
}

func (e *engine) bind(g *gridmap.Grid, name string) {
	e.grid, e.pool = g, nil
	if g == nil {
		return
	}
	e.jump = jumper{g: g, rule: ruleOf(g)}
	maxPrio, width := frontier.Bound(g, e.opts.Costs, e.opts.BucketWidth, true)
	pool, err := frontier.NewPool(g.Area(), maxPrio, width, true, e.opts.Logger)
	if err != nil {
		e.opts.Logger.Error(name+": init map", slog.Any("err", err))
		return
	}
	e.pool = pool
}

// SetHeuristic sets the goal estimate; nil orders jump points by cost alone.
func (e *engine) SetHeuristic(h heuristic.Func) { e.h = h }

// SetNeedsOptimalSolution selects exact (true) or any-in-bucket (false) extraction.
func (e *engine) SetNeedsOptimalSolution(v bool) { e.needsBest = v }

func (e *engine) estimate(a, b core.Point) int {
	if e.h == nil {
		return 0
	}

	return e.opts.Costs.Straight * e.h(a, b)
}

// run searches start..end over the jump points produced by next and
// returns the path expanded into contiguous cells.
func (e *engine) run(start, end core.Point, next successorFunc) []core.Point {
	g := e.grid
	// 1. Validate endpoints
	if g == nil || e.pool == nil || !g.Passable(start) || !g.Passable(end) {
		return nil
	}
	if start == end {
		return []core.Point{start}
	}

	// 2. Seed the open list
	p := e.pool
	p.Reset()
	closed := mapset.New[int]()
	goal := g.Index(end)
	if !p.Push(p.Node(g.Index(start)), -1, 0, e.estimate(start, end)) {
		return nil
	}

	// 3. Expand jump points best-first
	for p.Len() > 0 {
		n, _ := p.Pop(e.needsBest)
		closed.Put(n.Index)
		if n.Index == goal {
			return expand(p.Trace(g, goal))
		}

		cur := g.Coordinate(n.Index)
		var dir core.Direction
		if n.Parent >= 0 {
			dir = core.StepToward(g.Coordinate(n.Parent), cur)
		}
		e.succ = next(cur, dir, end, e.succ[:0])
		for _, s := range e.succ {
			si := g.Index(s)
			if closed.Has(si) {
				continue
			}
			m := p.Node(si)
			cost := n.G + octile(e.opts.Costs, cur, s)
			if cost < m.G {
				p.Push(m, n.Index, cost, e.estimate(s, end))
			}
		}
	}

	return nil
}

// expand fills the straight and diagonal runs between jump points.
func expand(points []core.Point) []core.Point {
	if len(points) == 0 {
		return nil
	}
	path := make([]core.Point, 1, len(points)*2)
	path[0] = points[0]
	for i := 1; i < len(points); i++ {
		path = core.Expand(path, points[i-1], points[i])
	}

	return path
}
