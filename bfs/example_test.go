package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

// ExampleFinder_FindPath routes around a wall with 4-way movement.
func ExampleFinder_FindPath() {
	g, _ := gridmap.FromStrings([]string{
		".#.",
		".#.",
		"...",
	}, gridmap.WithConnectivity(gridmap.Conn4))

	f := bfs.New()
	f.InitMap(g)
	fmt.Println(f.FindPath(core.Pt(0, 0), core.Pt(2, 0)))
	// Output: [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
}
