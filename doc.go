// Package gridpath is a frame-sliced path-finding engine for 2D grids of
// passable and blocked cells.
//
// 🚀 What is gridpath?
//
//	A library for interactive loops (games, simulations) that need many
//	path queries without stalling a frame:
//		• Passable grid: 4/8-connectivity, corner-cutting rules, line of sight
//		• Searches: BFS, DFS, Dijkstra, A*, JPS, JPS+
//		• Heuristics: Manhattan, Euclidean, squared Euclidean, Chebyshev, weighted diagonal
//		• Bucket priority queue: O(1) insert for bounded integer priorities
//		• Reprocessing: line-of-sight smoothing, Theta* any-angle waypoints
//		• Frame scheduler: whole requests drained by priority under a per-tick budget
//
// Under the hood, everything is organized into subpackages:
//
//	core/        - Point, Rect, Direction and StepCosts value types
//	gridmap/     - the passable grid, line of sight, components, bridging
//	heuristic/   - distance estimates selectable by Kind
//	bucketqueue/ - bucketed priority queue with best/any extraction
//	bfs/, dfs/   - uninformed searches; dfs also carves mazes
//	dijkstra/    - uniform-cost search
//	astar/       - informed best-first search
//	jps/         - jump point search and its precomputed JPS+ variant
//	reprocess/   - Smooth and Theta path post-processing
//	scheduler/   - generic cooperative per-tick task runner
//	pathfinder/  - request validation, dispatch, caching, metrics
//	config/      - YAML configuration for the above
//
// Quick example:
//
//	g, _ := gridmap.FromStrings([]string{
//		"..#..",
//		"..#..",
//		".....",
//	})
//	pf := pathfinder.New()
//	_ = pf.SetPassableMap(g)
//	req := &pathfinder.Request{Start: core.Pt(0, 0), End: core.Pt(4, 0), Algorithm: pathfinder.AStar}
//	_ = pf.AddFindPathRequest(req, pathfinder.DefaultPriority)
//	pf.Tick(ctx) // req.RawPath now detours through (2,2)
//
//	go get github.com/katalvlaran/gridpath
package gridpath
