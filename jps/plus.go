package jps

import (
	"log/slog"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Indices into core.Directions8.
const (
	dirE = iota
	dirS
	dirW
	dirN
)

// buildOrder computes horizontal rays first: vertical rays under Conn4 and
// every diagonal ray read them.
var buildOrder = [8]int{dirE, dirW, dirS, dirN, 4, 5, 6, 7}

// PlusFinder is JPS+: jump distances for every cell and direction are
// precomputed against the current map, so a query reads rays from a table
// instead of scanning the grid.
//
// Table entries: d > 0 means a jump point d steps away; d <= 0 means no
// jump point, with -d legal steps before the ray is blocked.
type PlusFinder struct {
	engine
	table [8][]int32
	dirty bool
}

// NewPlus returns a PlusFinder; call InitMap before FindPath.
func NewPlus(opts ...Option) *PlusFinder {
	return &PlusFinder{engine: newEngine(opts), dirty: true}
}

// InitMap binds g and schedules a table build for the next query.
func (f *PlusFinder) InitMap(g *gridmap.Grid) {
	f.bind(g, "jps+")
	for i := range f.table {
		f.table[i] = nil
	}
	f.dirty = true
}

// OnMapRegionUpdated marks the jump table stale. The next FindPath rebuilds
// it completely.
func (f *PlusFinder) OnMapRegionUpdated(r core.Rect, passable bool) {
	f.dirty = true
	f.opts.Logger.Debug("jps+: table invalidated", slog.String("region", r.String()), slog.Bool("passable", passable))
}

// FindPath returns a path start..end or nil when the goal is unreachable.
func (f *PlusFinder) FindPath(start, end core.Point) []core.Point {
	if f.grid == nil {
		return nil
	}
	if f.dirty {
		f.Rebuild()
	}

	return f.run(start, end, f.successors)
}

// Rebuild recomputes the jump table from the bound grid.
// Complexity: O(8×W×H).
func (f *PlusFinder) Rebuild() {
	g := f.grid
	if g == nil {
		return
	}
	f.jump = jumper{g: g, rule: ruleOf(g)}
	for i := range f.table {
		if len(f.table[i]) != g.Area() {
			f.table[i] = make([]int32, g.Area())
		}
	}
	for _, di := range buildOrder {
		f.buildRay(di)
	}
	f.dirty = false
}

// buildRay fills one direction, visiting cells so that c+d precedes c.
func (f *PlusFinder) buildRay(di int) {
	g := f.grid
	d := core.Directions8[di]
	t := f.table[di]
	x0, x1, xs := sweep(d.DX, g.Width())
	y0, y1, ys := sweep(d.DY, g.Height())

	for y := y0; y != y1; y += ys {
		for x := x0; x != x1; x += xs {
			i := y*g.Width() + x
			if !g.CanMoveTo(x, y, d.DX, d.DY) {
				t[i] = 0
				continue
			}
			nx, ny := x+d.DX, y+d.DY
			if f.isJumpPoint(nx, ny, d) {
				t[i] = 1
				continue
			}
			if n := t[ny*g.Width()+nx]; n > 0 {
				t[i] = n + 1
			} else {
				t[i] = n - 1
			}
		}
	}
}

// sweep orders one axis so that the neighbor along step is visited first.
func sweep(step, n int) (from, to, by int) {
	if step > 0 {
		return n - 1, -1, -1
	}

	return 0, n, 1
}

// isJumpPoint is the goal-free jump test for (x,y) entered along d.
func (f *PlusFinder) isJumpPoint(x, y int, d core.Direction) bool {
	if f.jump.forced(x, y, d.DX, d.DY) {
		return true
	}
	i := y*f.grid.Width() + x
	switch {
	case d.Diagonal():
		return f.table[core.DirectionIndex(d.DX, 0)][i] > 0 || f.table[core.DirectionIndex(0, d.DY)][i] > 0
	case d.DX == 0 && f.jump.rule == orthogonal:
		return f.table[dirE][i] > 0 || f.table[dirW][i] > 0
	default:
		return false
	}
}

// Distance exposes the table entry for p along d (see PlusFinder).
// It rebuilds a stale table first.
func (f *PlusFinder) Distance(p core.Point, d core.Direction) int {
	if f.grid == nil || !f.grid.IsInBounds(p.X, p.Y) {
		return 0
	}
	if f.dirty {
		f.Rebuild()
	}
	di := core.DirectionIndex(d.DX, d.DY)
	if di < 0 {
		return 0
	}

	return int(f.table[di][f.grid.Index(p)])
}

func (f *PlusFinder) successors(cur core.Point, dir core.Direction, end core.Point, dst []core.Point) []core.Point {
	i := f.grid.Index(cur)
	gx, gy := end.X-cur.X, end.Y-cur.Y
	f.dirs = f.jump.directions(cur.X, cur.Y, dir.DX, dir.DY, f.dirs)
	for _, d := range f.dirs {
		dist := int(f.table[core.DirectionIndex(d.DX, d.DY)][i])
		reach := core.Abs(dist)
		switch {
		case d.Orthogonal() && onRay(gx, gy, d) && core.Abs(gx+gy) <= reach:
			// goal straight ahead
			dst = append(dst, end)
		case d.DX == 0 && f.jump.rule == orthogonal && gy != 0 && core.Sign(gy) == d.DY && core.Abs(gy) <= reach:
			// vertical ray crosses the goal row
			dst = append(dst, d.Apply(cur, core.Abs(gy)))
		case d.Diagonal() && core.Sign(gx) == d.DX && core.Sign(gy) == d.DY &&
			min(core.Abs(gx), core.Abs(gy)) <= reach:
			// diagonal ray reaches the goal row or column
			dst = append(dst, d.Apply(cur, min(core.Abs(gx), core.Abs(gy))))
		case dist > 0:
			dst = append(dst, d.Apply(cur, dist))
		}
	}

	return dst
}

// onRay reports whether offset (gx,gy) lies ahead along orthogonal d.
func onRay(gx, gy int, d core.Direction) bool {
	if d.DX != 0 {
		return gy == 0 && core.Sign(gx) == d.DX
	}

	return gx == 0 && core.Sign(gy) == d.DY
}
