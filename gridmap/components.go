package gridmap

import "github.com/katalvlaran/gridpath/core"

// Components finds every maximal set of passable cells that are mutually
// reachable under the grid's movement rules. Components are reported in
// row-major order of their first cell; cells inside a component are in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]core.Point {
	seen := make([]bool, len(g.cells))
	var comps [][]core.Point
	buf := make([]core.Point, 0, 8)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.index(x, y)
			if !g.cells[i0] || seen[i0] {
				continue
			}
			// BFS to collect component
			seen[i0] = true
			comp := []core.Point{{X: x, Y: y}}
			for qi := 0; qi < len(comp); qi++ {
				buf = g.Neighbors(comp[qi], buf)
				for _, v := range buf {
					vi := g.index(v.X, v.Y)
					if !seen[vi] {
						seen[vi] = true
						comp = append(comp, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// Reachable reports whether b can be reached from a. Both must be passable.
// Complexity: O(W·H·d) worst case.
func (g *Grid) Reachable(a, b core.Point) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(a.X, a.Y)] = true
	queue := []core.Point{a}
	buf := make([]core.Point, 0, 8)
	for qi := 0; qi < len(queue); qi++ {
		buf = g.Neighbors(queue[qi], buf)
		for _, v := range buf {
			if v == b {
				return true
			}
			vi := g.index(v.X, v.Y)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
