package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

func TestHasLineOfSight_Basic(t *testing.T) {
	g := mustGrid(t, []string{".#..."})
	assert.False(t, g.HasLineOfSight(core.Pt(0, 0), core.Pt(4, 0)))
	assert.True(t, g.HasLineOfSight(core.Pt(2, 0), core.Pt(4, 0)))
	assert.True(t, g.HasLineOfSight(core.Pt(1, 0), core.Pt(1, 0)), "reflexive even on a blocked cell")
}

func TestHasLineOfSight_CornerRule(t *testing.T) {
	rows := []string{
		".#",
		"..",
	}
	assert.False(t, mustGrid(t, rows).HasLineOfSight(core.Pt(0, 0), core.Pt(1, 1)))
	assert.True(t, mustGrid(t, rows, gridmap.WithDiagonalPassByObstacle(true)).
		HasLineOfSight(core.Pt(0, 0), core.Pt(1, 1)))
}

// TestHasLineOfSight_ReflexiveSymmetric checks every ordered pair of cells.
func TestHasLineOfSight_ReflexiveSymmetric(t *testing.T) {
	g := mustGrid(t, []string{
		"......",
		"..#...",
		"....#.",
		".#....",
		"...#..",
	})
	var cells []core.Point
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cells = append(cells, core.Pt(x, y))
		}
	}
	for _, a := range cells {
		assert.True(t, g.HasLineOfSight(a, a), "reflexive at %v", a)
		for _, b := range cells {
			assert.Equal(t, g.HasLineOfSight(a, b), g.HasLineOfSight(b, a), "symmetric %v %v", a, b)
		}
	}
}
