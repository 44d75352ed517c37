package gridmap

import (
	"container/list"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/core"
)

// Bridge returns the fewest blocked cells that, once made passable, join a
// to b along an orthogonal route. Cells are listed from a toward b; an empty
// result means b is already reachable that way. a and b themselves are
// included when blocked.
//
// Behavior:
//  1. 0-1 BFS from a: entering a passable cell costs 0, a blocked one 1.
//  2. Stop when b is dequeued.
//  3. Walk predecessors back to a, keeping the blocked cells.
//
// Orthogonal steps between passable cells are legal under every movement
// rule, so the opened route is walkable for Conn4 and Conn8 alike.
//
// Time:   O(W·H).
// Memory: O(W·H) for distances and predecessors.
func (g *Grid) Bridge(a, b core.Point) ([]core.Point, error) {
	for _, p := range [2]core.Point{a, b} {
		if !g.IsInBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: %s", ErrPointOutOfBounds, p)
		}
	}
	cost := func(i int) int {
		if g.cells[i] {
			return 0
		}

		return 1
	}

	n := len(g.cells)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}
	src, dst := g.index(a.X, a.Y), g.index(b.X, b.Y)
	dist[src] = cost(src)

	// 0-1 BFS: free moves at the front, conversions at the back
	dq := list.New()
	dq.PushBack(src)
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if u == dst {
			break
		}
		p := g.Coordinate(u)
		for _, d := range core.Directions4 {
			q := d.Apply(p, 1)
			if !g.IsInBounds(q.X, q.Y) {
				continue
			}
			v := g.index(q.X, q.Y)
			step := cost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v], prev[v] = nd, u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	var out []core.Point
	for at := dst; at >= 0; at = prev[at] {
		if !g.cells[at] {
			out = append(out, g.Coordinate(at))
		}
	}

	return core.Reverse(out), nil
}
