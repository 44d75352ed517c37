// Package dfs provides depth-first search over a gridmap.Grid and a DFS
// corridor carver for maze generation.
//
// What:
//
//   - Finder: stack-based search; returns the first path it reaches, which
//     is valid but rarely short. WithSeed shuffles neighbor order.
//   - Carve: iterative backtracking carver producing a maze grid and the
//     order in which cells were opened.
//
// Complexity:
//
//   - FindPath: O(W×H×d) time, O(W×H) memory.
//   - Carve:    O(W×H) time and memory.
//
// Errors:
//
//   - ErrOutOfBounds: Carve endpoint outside the grid.
//   - gridmap.ErrEmptyGrid: Carve with non-positive dimensions.
package dfs
