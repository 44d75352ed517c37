package reprocess

import (
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Smooth removes waypoints by greedy forward lookahead: it walks the path
// keeping an anchor cell and, at the first cell the anchor cannot see, keeps
// the cell just before it as the new anchor.
// The result is a subsequence of the input with the same first and last cell.
type Smooth struct{}

// Reprocess returns the smoothed path. Inputs shorter than three cells are
// returned as a copy.
// Complexity: O(n × L), L = longest line-of-sight trace.
func (Smooth) Reprocess(path []core.Point, g *gridmap.Grid) []core.Point {
	if len(path) < 3 || g == nil {
		return clone(path)
	}

	out := []core.Point{path[0]}
	cur := 0
	for i := 2; i < len(path); i++ {
		if !g.HasLineOfSight(path[cur], path[i]) {
			out = append(out, path[i-1])
			cur = i - 1
		}
	}
	out = append(out, path[len(path)-1])

	return out
}

func clone(path []core.Point) []core.Point {
	if path == nil {
		return nil
	}
	out := make([]core.Point, len(path))
	copy(out, path)

	return out
}
