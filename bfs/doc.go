// Package bfs provides breadth-first search over a gridmap.Grid, returning a
// path with the fewest steps between two cells.
//
// BFS explores cells in increasing step distance from the start, in the
// grid's fixed neighbor order, with an optional visit hook and depth limit.
// Every step counts the same regardless of direction, so under Conn8 the
// result is shortest in steps (Chebyshev on an open grid), not in cost.
//
// Complexity:
//
//   - Time:   O(W×H×d), d = 4 or 8.
//   - Memory: O(W×H), allocated once per InitMap.
//
// Options:
//
//   - WithOnVisit(fn): called for each dequeued cell with its depth.
//   - WithMaxDepth(d): do not expand beyond depth d.
package bfs
