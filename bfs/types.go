package bfs

import (
	"github.com/katalvlaran/gridpath/core"
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Finder.
type Options struct {
	// OnVisit is called when a cell is dequeued, with its depth from the start.
	OnVisit func(p core.Point, depth int)

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	MaxDepth int
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(core.Point, int) {},
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on every dequeued cell.
func WithOnVisit(fn func(p core.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search to d steps from the start.
//
//	d > 0:  limit to depth d
//	d <= 0: no depth limit
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.MaxDepth = d
	}
}
