// Package gridmap provides the passable/blocked cell grid that every search
// algorithm of gridpath reads.
//
// What:
//
//   - Grid: a fixed W×H bitmap of passable cells, mutated only by UpdateRegion.
//   - Movement rules: Conn4 or Conn8, plus the diagonal corner rule
//     (both corners blocked: refused; one corner blocked: allowed only with
//     WithDiagonalPassByObstacle).
//   - Bresenham line of sight, symmetric by construction.
//   - Connected components of passable cells under the movement rules.
//   - Bridge: the fewest blocked cells to open so that two cells connect.
//
// Complexity:
//
//   - IsPassable, CanMoveTo:     O(1).
//   - Neighbors:                 O(d), d = 4 or 8.
//   - UpdateRegion:              O(|region|).
//   - HasLineOfSight:            O(max(|dx|,|dy|)).
//   - Components, Reachable:     O(W×H×d), Memory: O(W×H).
//   - Bridge:                    O(W×H) (0-1 BFS), Memory: O(W×H).
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8), default Conn8.
//   - WithDiagonalPassByObstacle(bool), default false.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or empty input.
//   - ErrNonRectangular: ragged input.
//   - ErrRegionOutOfBounds: UpdateRegion with an empty or out-of-grid region.
//   - ErrPointOutOfBounds: Bridge endpoint outside the grid.
package gridmap
