package gridmap

import (
	"strings"

	"github.com/katalvlaran/gridpath/core"
)

// New constructs a width×height Grid with every cell passable.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H).
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Grid{width: width, height: height, cells: make([]bool, width*height), opts: o}
	for i := range g.cells {
		g.cells[i] = true
	}

	return g, nil
}

// FromCells builds a Grid from cells indexed [x][y] (true = passable).
// The input is deep-copied. Returns ErrEmptyGrid or ErrNonRectangular.
func FromCells(cells [][]bool, opts ...Option) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(cells), len(cells[0])
	for _, col := range cells {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h, opts...)
	if err != nil {
		return nil, err
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.cells[g.index(x, y)] = cells[x][y]
		}
	}

	return g, nil
}

// FromStrings builds a Grid from text rows: '#' is blocked, anything else is
// passable. rows[0] is y = 0 and the byte offset within a row is x.
func FromStrings(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, r := range rows {
		if len(r) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, len(rows), opts...)
	if err != nil {
		return nil, err
	}
	for y, r := range rows {
		for x := 0; x < w; x++ {
			g.cells[g.index(x, y)] = r[x] != '#'
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Area returns Width×Height.
func (g *Grid) Area() int { return g.width * g.height }

// Bounds returns the whole grid as a Rect.
func (g *Grid) Bounds() core.Rect { return core.RectXYWH(0, 0, g.width, g.height) }

// Connectivity reports the configured movement set.
func (g *Grid) Connectivity() Connectivity { return g.opts.Conn }

// CanDiagonallyPassByObstacle reports whether one-obstacle corner cutting is allowed.
func (g *Grid) CanDiagonallyPassByObstacle() bool { return g.opts.DiagonalPassByObstacle }

// Index maps (x,y) to the row-major cell index y*Width + x.
// The caller guarantees (x,y) is in bounds.
func (g *Grid) Index(p core.Point) int { return g.index(p.X, p.Y) }

// Coordinate converts a row-major index back to a point.
func (g *Grid) Coordinate(idx int) core.Point {
	return core.Point{X: idx % g.width, Y: idx / g.width}
}

func (g *Grid) index(x, y int) int { return y*g.width + x }

// IsInBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) IsInBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPassable reports whether (x,y) can be entered. Outside the grid the
// answer is !checkEdge: callers that treat the border as a wall pass true.
func (g *Grid) IsPassable(x, y int, checkEdge bool) bool {
	if !g.IsInBounds(x, y) {
		return !checkEdge
	}

	return g.cells[g.index(x, y)]
}

// Passable is IsPassable(p.X, p.Y, true).
func (g *Grid) Passable(p core.Point) bool {
	return g.IsPassable(p.X, p.Y, true)
}

// CanMoveTo reports whether a unit step (dx,dy) from (x,y) is legal:
//
//  1. the destination must be in bounds and passable;
//  2. orthogonal steps are then allowed;
//  3. diagonal steps need Conn8 and are refused when both corner cells are
//     blocked, or when one is blocked and corner cutting is disabled.
//
// Zero and non-unit steps are refused.
func (g *Grid) CanMoveTo(x, y, dx, dy int) bool {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return false
	}
	if !g.IsPassable(x+dx, y+dy, true) {
		return false
	}
	if dx == 0 || dy == 0 {
		return true
	}
	if g.opts.Conn != Conn8 {
		return false
	}
	c1 := g.IsPassable(x+dx, y, true)
	c2 := g.IsPassable(x, y+dy, true)
	switch {
	case c1 && c2:
		return true
	case c1 || c2:
		return g.opts.DiagonalPassByObstacle
	default:
		return false
	}
}

// Neighbors appends to buf[:0] every cell reachable from p in one legal step,
// in the fixed order E, S, W, N and, for Conn8, SE, SW, NW, NE.
func (g *Grid) Neighbors(p core.Point, buf []core.Point) []core.Point {
	buf = buf[:0]
	dirs := core.Directions8[:]
	if g.opts.Conn == Conn4 {
		dirs = core.Directions4[:]
	}
	for _, d := range dirs {
		if g.CanMoveTo(p.X, p.Y, d.DX, d.DY) {
			buf = append(buf, core.Point{X: p.X + d.DX, Y: p.Y + d.DY})
		}
	}

	return buf
}

// UpdateRegion sets every cell of r to passable. The whole region must lie
// inside the grid; otherwise nothing is written and ErrRegionOutOfBounds is returned.
// Complexity: O(|r|).
func (g *Grid) UpdateRegion(r core.Rect, passable bool) error {
	if !r.Within(g.Bounds()) {
		return ErrRegionOutOfBounds
	}
	for y := r.MinY; y < r.MaxY; y++ {
		row := g.cells[g.index(r.MinX, y):g.index(r.MaxX, y)]
		for i := range row {
			row[i] = passable
		}
	}

	return nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, opts: g.opts, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)

	return c
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, ok := range g.cells {
		if ok {
			n++
		}
	}

	return n
}

// String renders the grid one row per line, '#' for blocked and '.' for passable.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
