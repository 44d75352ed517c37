package gridmap

import (
	"errors"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates columns of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all columns must have the same length")
	// ErrRegionOutOfBounds indicates an update region that is empty or leaves the grid.
	ErrRegionOutOfBounds = errors.New("gridmap: region out of bounds")
	// ErrPointOutOfBounds indicates a cell outside the grid.
	ErrPointOutOfBounds = errors.New("gridmap: point out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional movement: E, S, W, N.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals SE, SW, NW, NE.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}

	return "conn8"
}

// Options contains the movement rules of a Grid.
type Options struct {
	// DiagonalPassByObstacle allows a diagonal step when exactly one of the
	// two corner cells is blocked.
	DiagonalPassByObstacle bool
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with Conn8 and no corner cutting.
func DefaultOptions() Options {
	return Options{
		DiagonalPassByObstacle: false,
		Conn:                   Conn8,
	}
}

// WithDiagonalPassByObstacle toggles one-obstacle corner cutting.
func WithDiagonalPassByObstacle(allow bool) Option {
	return func(o *Options) { o.DiagonalPassByObstacle = allow }
}

// WithConnectivity sets 4- or 8-directional movement.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// Grid is a fixed-size rectangle of passable/blocked cells.
// Cells are stored row-major (index y*width + x). Dimensions never change
// after construction; passability changes only through UpdateRegion.
type Grid struct {
	width, height int
	cells         []bool
	opts          Options
}
