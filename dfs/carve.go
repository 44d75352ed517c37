package dfs

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Carve generates a maze with iterative DFS corridor carving.
//
// The grid starts fully blocked. From start, the walker repeatedly picks a
// random orthogonal cell two steps away that is still blocked, opens it and
// the cell between, and backtracks when no such cell remains. end is opened
// afterwards; if it lies off the carved lattice it is joined to the maze by
// a straight-then-straight corridor toward start.
//
// The returned order lists every opened cell in opening order, starting
// with start. Equal seeds produce equal mazes.
// Complexity: O(W×H).
func Carve(width, height int, start, end core.Point, seed uint64, opts ...gridmap.Option) (*gridmap.Grid, []core.Point, error) {
	// 1. Build a fully blocked grid
	g, err := gridmap.New(width, height, opts...)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range []core.Point{start, end} {
		if !g.IsInBounds(p.X, p.Y) {
			return nil, nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, width, height)
		}
	}
	if err = g.UpdateRegion(g.Bounds(), false); err != nil {
		return nil, nil, err
	}

	// open keeps the first write error; carving stops as soon as one is seen.
	var openErr error
	order := make([]core.Point, 0, g.Area()/2+1)
	open := func(p core.Point) {
		if openErr != nil || g.Passable(p) {
			return
		}
		if openErr = g.UpdateRegion(core.RectXYWH(p.X, p.Y, 1, 1), true); openErr == nil {
			order = append(order, p)
		}
	}

	// 2. Carve two-cell strides from start
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	dirs := core.Directions4
	open(start)
	stack := []core.Point{start}
	for len(stack) > 0 && openErr == nil {
		cur := stack[len(stack)-1]
		rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		advanced := false
		for _, d := range dirs {
			next := d.Apply(cur, 2)
			if !g.IsInBounds(next.X, next.Y) || g.Passable(next) {
				continue
			}
			open(d.Apply(cur, 1))
			open(next)
			stack = append(stack, next)
			advanced = true

			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	// 3. Join end to the maze
	if openErr == nil && !g.Passable(end) {
		joinToward(g, end, start, open)
	}
	if openErr != nil {
		return nil, nil, fmt.Errorf("dfs: carve %v: %w", start, openErr)
	}

	return g, order, nil
}

// joinToward opens cells from p toward target, along X first and then Y,
// until the corridor touches an open cell it did not open itself.
func joinToward(g *gridmap.Grid, p, target core.Point, open func(core.Point)) {
	open(p)
	prev := p
	for p != target && !touchesMaze(g, p, prev) {
		next := p
		if p.X != target.X {
			next.X += core.Sign(target.X - p.X)
		} else {
			next.Y += core.Sign(target.Y - p.Y)
		}
		if g.Passable(next) {
			return
		}
		open(next)
		prev, p = p, next
	}
}

// touchesMaze reports whether an orthogonal neighbor of p other than prev is open.
func touchesMaze(g *gridmap.Grid, p, prev core.Point) bool {
	for _, d := range core.Directions4 {
		q := p.Add(d.DX, d.DY)
		if q != prev && g.Passable(q) {
			return true
		}
	}

	return false
}
