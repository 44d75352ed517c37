// Package dijkstra implements uniform-cost search over a gridmap.Grid.
//
// Nodes are settled in increasing accumulated step cost using a bucketed
// priority queue; a neighbor whose tentative cost improves is removed from
// the open list and reinserted under the new cost.
//
// Complexity:
//
//	– Time:  O(W×H×(d + B)), d = neighbors per cell, B = largest bucket scanned.
//	– Space: O(W×H) for the node pool, allocated once per InitMap.
//
// Options:
//
//	– WithStepCosts:   straight/diagonal step prices (default 10/14).
//	– WithBucketWidth: open-list bucket span (default: straight cost).
//	– WithLogger:      slog destination for frontier errors.
//
// Example usage:
//
//	f := dijkstra.New()
//	f.InitMap(grid)
//	path := f.FindPath(core.Pt(0, 0), core.Pt(9, 9))
package dijkstra
