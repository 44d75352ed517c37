// Package dfs defines types and options for depth-first grid search and
// DFS corridor carving.
package dfs

import (
	"errors"

	"github.com/katalvlaran/gridpath/core"
)

// ErrOutOfBounds indicates a carve endpoint outside the requested grid.
var ErrOutOfBounds = errors.New("dfs: endpoint out of bounds")

// Option configures optional behavior of DFS search.
type Option func(*Options)

// Options holds configurable parameters for DFS search.
type Options struct {
	// OnVisit, if non-nil, is invoked when a cell is popped and first visited.
	OnVisit func(p core.Point)

	// Seed drives the per-cell neighbor shuffle when Shuffle is set.
	Seed uint64

	// Shuffle randomizes neighbor order deterministically from Seed.
	// When false the grid's fixed order is used.
	Shuffle bool
}

// DefaultOptions returns Options with fixed neighbor order and no hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: nil,
		Seed:    0,
		Shuffle: false,
	}
}

// WithOnVisit sets the visit hook.
func WithOnVisit(fn func(p core.Point)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithSeed enables the neighbor shuffle with the given seed. Equal seeds
// yield equal paths on equal grids.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Shuffle = true
	}
}

// frame is one stack entry: a cell and the cell that pushed it.
type frame struct {
	index  int
	parent int
}
