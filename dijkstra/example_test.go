package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridmap"
)

// ExampleFinder_FindPath shows the cheapest route through a gap in a wall.
func ExampleFinder_FindPath() {
	g, _ := gridmap.FromStrings([]string{
		"...",
		"#.#",
		"...",
	})
	f := dijkstra.New()
	f.InitMap(g)
	fmt.Println(f.FindPath(core.Pt(1, 0), core.Pt(1, 2)))
	// Output: [(1,0) (1,1) (1,2)]
}
