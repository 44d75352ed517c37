package reprocess

import (
	"log/slog"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/frontier"
)

// ThetaOption configures a Theta.
type ThetaOption func(*Theta)

// WithStepCosts sets the unit price; edges cost round(Straight × length).
// Invalid costs are ignored.
func WithStepCosts(c core.StepCosts) ThetaOption {
	return func(t *Theta) {
		if c.Validate() == nil {
			t.costs = c
		}
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) ThetaOption {
	return func(t *Theta) {
		if l != nil {
			t.log = l
		}
	}
}

// Theta replans the span between a path's endpoints with Theta*: a node
// may take its grandparent as parent whenever the two see each other, so
// the result is a list of any-angle waypoints with line of sight between
// consecutive ones.
type Theta struct {
	costs core.StepCosts
	log   *slog.Logger
	grid  *gridmap.Grid
	area  int
	pool  *frontier.Pool
	buf   []core.Point
}

// NewTheta returns a Theta with the default costs and slog.Default().
func NewTheta(opts ...ThetaOption) *Theta {
	t := &Theta{costs: core.DefaultStepCosts(), log: slog.Default(), buf: make([]core.Point, 0, 8)}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Reprocess returns any-angle waypoints from path[0] to path[len-1], or a
// copy of path when it has fewer than three cells or no route is found.
func (t *Theta) Reprocess(path []core.Point, g *gridmap.Grid) []core.Point {
	if len(path) < 3 || g == nil {
		return clone(path)
	}
	start, end := path[0], path[len(path)-1]
	if !g.Passable(start) || !g.Passable(end) || !t.bind(g) {
		return clone(path)
	}

	// 1. Seed the open list
	p := t.pool
	p.Reset()
	closed := mapset.New[int]()
	goal := g.Index(end)
	p.Push(p.Node(g.Index(start)), -1, 0, t.length(start, end))

	// 2. Expand with grandparent relaxation
	for p.Len() > 0 {
		n, _ := p.Pop(true)
		closed.Put(n.Index)
		if n.Index == goal {
			return p.Trace(g, goal)
		}
		u := g.Coordinate(n.Index)
		t.buf = g.Neighbors(u, t.buf)
		for _, v := range t.buf {
			vi := g.Index(v)
			if closed.Has(vi) {
				continue
			}
			from, base := n.Index, n.G
			if n.Parent >= 0 {
				if gp := g.Coordinate(n.Parent); g.HasLineOfSight(gp, v) {
					from, base = n.Parent, p.Node(n.Parent).G
				}
			}
			cost := base + t.length(g.Coordinate(from), v)
			if m := p.Node(vi); cost < m.G {
				p.Push(m, from, cost, t.length(v, end))
			}
		}
	}

	t.log.Debug("theta: no route, keeping input", slog.String("start", start.String()), slog.String("end", end.String()))

	return clone(path)
}

// bind sizes the node pool for g, reusing it while the grid is unchanged.
func (t *Theta) bind(g *gridmap.Grid) bool {
	if t.pool != nil && t.grid == g && t.area == g.Area() {
		return true
	}
	maxPrio, width := frontier.Bound(g, t.costs, 0, true)
	pool, err := frontier.NewPool(g.Area(), maxPrio, width, true, t.log)
	if err != nil {
		t.log.Error("theta: init map", slog.Any("err", err))
		return false
	}
	t.grid, t.area, t.pool = g, g.Area(), pool

	return true
}

// length is the straight-line distance scaled by the straight step cost.
func (t *Theta) length(a, b core.Point) int {
	return int(math.Round(float64(t.costs.Straight) * math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))))
}
