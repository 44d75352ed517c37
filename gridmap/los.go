package gridmap

import "github.com/katalvlaran/gridpath/core"

// HasLineOfSight reports whether a straight Bresenham trace from a to b
// visits only passable cells and every step along it passes CanMoveTo.
// a == b is always true. The trace always starts at the lexicographically
// smaller endpoint, so HasLineOfSight(a, b) == HasLineOfSight(b, a).
//
// Under Conn4 any trace that needs a diagonal step is refused.
// Complexity: O(max(|dx|,|dy|)).
func (g *Grid) HasLineOfSight(a, b core.Point) bool {
	if a == b {
		return true
	}
	if b.Less(a) {
		a, b = b, a
	}
	if !g.Passable(a) {
		return false
	}

	dx := core.Abs(b.X - a.X)
	dy := -core.Abs(b.Y - a.Y)
	sx, sy := core.Sign(b.X-a.X), core.Sign(b.Y-a.Y)
	e := dx + dy
	cur := a
	for cur != b {
		e2 := 2 * e
		stepX, stepY := 0, 0
		if e2 >= dy {
			e += dy
			stepX = sx
		}
		if e2 <= dx {
			e += dx
			stepY = sy
		}
		if !g.CanMoveTo(cur.X, cur.Y, stepX, stepY) {
			return false
		}
		cur = cur.Add(stepX, stepY)
	}

	return true
}
