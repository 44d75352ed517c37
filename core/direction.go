package core

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// Orthogonal reports whether d moves along exactly one axis.
func (d Direction) Orthogonal() bool {
	return (d.DX == 0) != (d.DY == 0)
}

// Diagonal reports whether d moves along both axes.
func (d Direction) Diagonal() bool {
	return d.DX != 0 && d.DY != 0
}

// Apply returns p moved n steps along d.
func (d Direction) Apply(p Point, n int) Point {
	return Point{X: p.X + d.DX*n, Y: p.Y + d.DY*n}
}

// Directions4 lists the orthogonal steps in neighbour iteration order: E, S, W, N.
var Directions4 = [4]Direction{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
}

// Directions8 lists all unit steps: the orthogonal ones first, then the
// diagonals SE, SW, NW, NE.
var Directions8 = [8]Direction{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

// DirectionIndex maps a unit step to its position in Directions8, or -1.
func DirectionIndex(dx, dy int) int {
	for i, d := range Directions8 {
		if d.DX == dx && d.DY == dy {
			return i
		}
	}

	return -1
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// StepToward returns the unit direction from a toward b (each axis clamped to -1..1).
func StepToward(a, b Point) Direction {
	return Direction{DX: Sign(b.X - a.X), DY: Sign(b.Y - a.Y)}
}

// Expand walks from a toward b one unit step at a time, appending every
// visited cell after a (b included) to dst. a and b must lie on a common
// row, column or 45° diagonal; jump-point segments always do.
func Expand(dst []Point, a, b Point) []Point {
	d := StepToward(a, b)
	for p := a; p != b; {
		p = p.Add(d.DX, d.DY)
		dst = append(dst, p)
	}

	return dst
}

// Reverse reverses path in place and returns it.
func Reverse(path []Point) []Point {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
