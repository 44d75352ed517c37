package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

func TestBridge(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		a, b core.Point
		want []core.Point
	}{
		{"already connected", []string{"...", "...", "..."}, core.Pt(0, 0), core.Pt(2, 2), nil},
		{"single wall", []string{"..#..", "#####"}, core.Pt(0, 0), core.Pt(4, 0), []core.Point{core.Pt(2, 0)}},
		{"thick wall", []string{"..###.."}, core.Pt(0, 0), core.Pt(6, 0),
			[]core.Point{core.Pt(2, 0), core.Pt(3, 0), core.Pt(4, 0)}},
		{"uses existing gap", []string{"..#..", "..#..", "....."}, core.Pt(0, 0), core.Pt(4, 0), nil},
		{"blocked target", []string{"..#", "..."}, core.Pt(0, 0), core.Pt(2, 0), []core.Point{core.Pt(2, 0)}},
		{"blocked source", []string{"#..", "..."}, core.Pt(0, 0), core.Pt(2, 1), []core.Point{core.Pt(0, 0)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows)
			got, err := g.Bridge(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			for _, p := range got {
				require.NoError(t, g.UpdateRegion(core.RectXYWH(p.X, p.Y, 1, 1), true))
			}
			assert.True(t, g.Reachable(tc.a, tc.b))
		})
	}
}

func TestBridge_OutOfBounds(t *testing.T) {
	g := mustGrid(t, []string{"..", ".."})
	_, err := g.Bridge(core.Pt(0, 0), core.Pt(2, 0))
	assert.ErrorIs(t, err, gridmap.ErrPointOutOfBounds)
	_, err = g.Bridge(core.Pt(-1, 0), core.Pt(1, 1))
	assert.ErrorIs(t, err, gridmap.ErrPointOutOfBounds)
}
