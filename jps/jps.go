package jps

import (
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Finder is a jump point search. It expands only jump points, scanning the
// grid along straight and diagonal rays between them, and returns the path
// expanded back into contiguous cells.
type Finder struct {
	engine
}

// New returns a Finder; call InitMap before FindPath.
func New(opts ...Option) *Finder {
	return &Finder{engine: newEngine(opts)}
}

// InitMap binds g and sizes the node pool to it.
func (f *Finder) InitMap(g *gridmap.Grid) { f.bind(g, "jps") }

// OnMapRegionUpdated is a no-op: rays are scanned live on the shared grid.
func (f *Finder) OnMapRegionUpdated(core.Rect, bool) {}

// FindPath returns a path start..end or nil when the goal is unreachable.
func (f *Finder) FindPath(start, end core.Point) []core.Point {
	return f.run(start, end, f.successors)
}

func (f *Finder) successors(cur core.Point, dir core.Direction, end core.Point, dst []core.Point) []core.Point {
	f.dirs = f.jump.directions(cur.X, cur.Y, dir.DX, dir.DY, f.dirs)
	for _, d := range f.dirs {
		if jp, ok := f.jumpFrom(cur.X+d.DX, cur.Y+d.DY, d.DX, d.DY, end); ok {
			dst = append(dst, jp)
		}
	}

	return dst
}

// jumpFrom scans from (x,y), entered along (dx,dy), to the next jump point.
// Each advance requires a legal step, so the run is a valid path.
func (f *Finder) jumpFrom(x, y, dx, dy int, end core.Point) (core.Point, bool) {
	j := f.jump
	for {
		if !j.open(x, y) {
			return core.Point{}, false
		}
		if x == end.X && y == end.Y {
			return end, true
		}
		if j.forced(x, y, dx, dy) {
			return core.Point{X: x, Y: y}, true
		}
		switch {
		case dx != 0 && dy != 0:
			// diagonal moves stop where a straight ray finds a jump point
			if f.hits(x+dx, y, dx, 0, end) || f.hits(x, y+dy, 0, dy, end) {
				return core.Point{X: x, Y: y}, true
			}
		case dx == 0 && j.rule == orthogonal:
			// without diagonals, vertical moves stop where a horizontal ray does
			if f.hits(x+1, y, 1, 0, end) || f.hits(x-1, y, -1, 0, end) {
				return core.Point{X: x, Y: y}, true
			}
		}
		if !j.g.CanMoveTo(x, y, dx, dy) {
			return core.Point{}, false
		}
		x, y = x+dx, y+dy
	}
}

func (f *Finder) hits(x, y, dx, dy int, end core.Point) bool {
	_, ok := f.jumpFrom(x, y, dx, dy, end)

	return ok
}
