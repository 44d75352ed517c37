package jps

import (
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

// rule is the movement model a grid implies for jumping.
type rule int

const (
	// orthogonal: Conn4, no diagonal moves.
	orthogonal rule = iota
	// noCorner: diagonals need both corner cells open.
	noCorner
	// oneCorner: diagonals need at least one corner cell open.
	oneCorner
)

func ruleOf(g *gridmap.Grid) rule {
	switch {
	case g.Connectivity() == gridmap.Conn4:
		return orthogonal
	case g.CanDiagonallyPassByObstacle():
		return oneCorner
	default:
		return noCorner
	}
}

// jumper evaluates forced neighbors and pruned successor directions.
type jumper struct {
	g    *gridmap.Grid
	rule rule
}

func (j jumper) open(x, y int) bool { return j.g.IsPassable(x, y, true) }

// forced reports whether (x,y), entered while moving along (dx,dy), has a
// neighbor that only a path through (x,y) reaches optimally.
func (j jumper) forced(x, y, dx, dy int) bool {
	switch j.rule {
	case oneCorner:
		switch {
		case dx != 0 && dy != 0:
			return (j.open(x-dx, y+dy) && !j.open(x-dx, y)) ||
				(j.open(x+dx, y-dy) && !j.open(x, y-dy))
		case dx != 0:
			return (j.open(x+dx, y+1) && !j.open(x, y+1)) ||
				(j.open(x+dx, y-1) && !j.open(x, y-1))
		default:
			return (j.open(x+1, y+dy) && !j.open(x+1, y)) ||
				(j.open(x-1, y+dy) && !j.open(x-1, y))
		}
	default: // orthogonal and noCorner share the straight rules; diagonals have none
		switch {
		case dx != 0 && dy != 0:
			return false
		case dx != 0:
			return (j.open(x, y-1) && !j.open(x-dx, y-1)) ||
				(j.open(x, y+1) && !j.open(x-dx, y+1))
		default:
			return (j.open(x-1, y) && !j.open(x-1, y-dy)) ||
				(j.open(x+1, y) && !j.open(x+1, y-dy))
		}
	}
}

// directions appends to dst[:0] the directions worth jumping in from (x,y)
// when it was reached moving along (dx,dy). (0,0) means no parent: every
// legal direction is returned. Directions whose first step is illegal are dropped.
func (j jumper) directions(x, y, dx, dy int, dst []core.Direction) []core.Direction {
	dst = dst[:0]
	add := func(ddx, ddy int) {
		if j.g.CanMoveTo(x, y, ddx, ddy) {
			dst = append(dst, core.Direction{DX: ddx, DY: ddy})
		}
	}

	if dx == 0 && dy == 0 {
		for _, d := range core.Directions8 {
			add(d.DX, d.DY)
		}

		return dst
	}

	switch j.rule {
	case orthogonal:
		if dx != 0 {
			add(0, -1)
			add(0, 1)
			add(dx, 0)
		} else {
			add(-1, 0)
			add(1, 0)
			add(0, dy)
		}
	case noCorner:
		switch {
		case dx != 0 && dy != 0:
			add(0, dy)
			add(dx, 0)
			add(dx, dy)
		case dx != 0:
			add(dx, 0)
			add(dx, 1)
			add(dx, -1)
			add(0, 1)
			add(0, -1)
		default:
			add(0, dy)
			add(1, dy)
			add(-1, dy)
			add(1, 0)
			add(-1, 0)
		}
	case oneCorner:
		switch {
		case dx != 0 && dy != 0:
			add(0, dy)
			add(dx, 0)
			add(dx, dy)
			if !j.open(x-dx, y) {
				add(-dx, dy)
			}
			if !j.open(x, y-dy) {
				add(dx, -dy)
			}
		case dx != 0:
			add(dx, 0)
			if !j.open(x, y+1) {
				add(dx, 1)
			}
			if !j.open(x, y-1) {
				add(dx, -1)
			}
		default:
			add(0, dy)
			if !j.open(x+1, y) {
				add(1, dy)
			}
			if !j.open(x-1, y) {
				add(-1, dy)
			}
		}
	}

	return dst
}

// octile prices a straight or 45° segment from a to b.
func octile(c core.StepCosts, a, b core.Point) int {
	dx, dy := core.Abs(b.X-a.X), core.Abs(b.Y-a.Y)
	lo, hi := min(dx, dy), max(dx, dy)

	return c.Diagonal*lo + c.Straight*(hi-lo)
}
