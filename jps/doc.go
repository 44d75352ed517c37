// Package jps implements jump point search (Finder) and its precomputed
// variant JPS+ (PlusFinder) over a gridmap.Grid.
//
// What:
//
//   - Both finders run best-first search over jump points only, ordered by
//     g + Straight*h, and expand the result back into contiguous cells.
//   - The movement model follows the grid: Conn4, diagonal with both corners
//     open, or diagonal with at most one corner blocked. Forced-neighbor and
//     pruning rules are shared by both finders.
//   - PlusFinder stores, per cell and direction, the distance to the next
//     jump point or wall. Any region update marks the table stale and the
//     next query rebuilds it completely.
//
// Complexity:
//
//   - Finder.FindPath:     O(W×H) ray scanning worst case, few queue operations.
//   - PlusFinder.Rebuild:  O(8×W×H) time, 8×W×H int32 memory.
//   - PlusFinder.FindPath: O(jump points expanded) once the table is fresh.
//
// Options:
//
//   - WithStepCosts, WithBucketWidth, WithLogger (as in package astar).
package jps
