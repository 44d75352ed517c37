// SPDX-License-Identifier: MIT
//
// File: geometry.go
// Role: Cell coordinates and rectangular regions shared by every grid package.
// Policy:
//   - Value types only; no allocation on the hot path.
//   - Rect uses half-open bounds [Min, Max) on both axes.

package core

import "fmt"

// Point is an integer cell coordinate on a 2D grid.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Less orders points by X, then by Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned cell region with exclusive upper bounds:
// a cell (x,y) is inside when MinX <= x < MaxX and MinY <= y < MaxY.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// RectXYWH builds a Rect from its lower corner and size.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Width returns the number of columns covered by r (0 if empty).
func (r Rect) Width() int {
	if r.MaxX <= r.MinX {
		return 0
	}

	return r.MaxX - r.MinX
}

// Height returns the number of rows covered by r (0 if empty).
func (r Rect) Height() int {
	if r.MaxY <= r.MinY {
		return 0
	}

	return r.MaxY - r.MinY
}

// Empty reports whether r covers no cell.
func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Within reports whether r is non-empty and lies entirely inside outer.
func (r Rect) Within(outer Rect) bool {
	return !r.Empty() &&
		r.MinX >= outer.MinX && r.MaxX <= outer.MaxX &&
		r.MinY >= outer.MinY && r.MaxY <= outer.MaxY
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}

	return r.MinX < o.MaxX && o.MinX < r.MaxX && r.MinY < o.MaxY && o.MinY < r.MaxY
}

// String renders the rect as "[minX,minY..maxX,maxY)".
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
