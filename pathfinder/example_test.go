package pathfinder_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/pathfinder"
)

// ExamplePathFinder_AddFindPathRequest queues a request and completes it on
// the next tick.
func ExamplePathFinder_AddFindPathRequest() {
	g, _ := gridmap.New(5, 5)
	pf := pathfinder.New()
	_ = pf.SetPassableMap(g)

	req := &pathfinder.Request{
		Start:                core.Pt(0, 0),
		End:                  core.Pt(4, 4),
		Algorithm:            pathfinder.AStar,
		Heuristic:            heuristic.Diagonal,
		Reprocess:            pathfinder.ReprocessDefault,
		NeedsOptimalSolution: true,
		OnComplete: func(r *pathfinder.Request) {
			fmt.Println("raw:", r.RawPath)
			fmt.Println("smoothed:", r.ReprocessedPath)
		},
	}
	_ = pf.AddFindPathRequest(req, pathfinder.DefaultPriority)
	fmt.Println("pending:", pf.PendingRequests())

	pf.Tick(context.Background())
	fmt.Println(req.State())
	// Output:
	// pending: 1
	// raw: [(0,0) (1,1) (2,2) (3,3) (4,4)]
	// smoothed: [(0,0) (4,4)]
	// completed
}

// ExamplePathFinder_UpdatePassableMap reroutes a cached JPS+ search after a
// wall is raised.
func ExamplePathFinder_UpdatePassableMap() {
	g, _ := gridmap.New(3, 3)
	pf := pathfinder.New()
	_ = pf.SetPassableMap(g)

	req := &pathfinder.Request{
		Start:                core.Pt(0, 0),
		End:                  core.Pt(2, 0),
		Algorithm:            pathfinder.JPSPlus,
		NeedsOptimalSolution: true,
	}
	_ = pf.ExecuteRequest(req)
	fmt.Println(req.RawPath)

	_ = pf.UpdatePassableMap(core.RectXYWH(1, 0, 1, 2), false)
	_ = pf.ExecuteRequest(req)
	fmt.Println(req.RawPath)
	// Output:
	// [(0,0) (1,0) (2,0)]
	// [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
}
