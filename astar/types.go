// Package astar defines configuration options for A* search
// over a gridmap.Grid.
package astar

import (
	"log/slog"

	"github.com/katalvlaran/gridpath/core"
)

// Options configures a Finder.
//
// Costs       – price of straight and diagonal steps; both must be positive.
// BucketWidth – open-list bucket span; 0 selects Costs.Straight.
// Logger      – destination for frontier diagnostics.
type Options struct {
	Costs       core.StepCosts
	BucketWidth int
	Logger      *slog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the octile costs {10, 14}, automatic bucket width
// and slog.Default().
func DefaultOptions() Options {
	return Options{
		Costs:       core.DefaultStepCosts(),
		BucketWidth: 0,
		Logger:      slog.Default(),
	}
}

// WithStepCosts sets the step prices. Invalid costs are ignored.
func WithStepCosts(c core.StepCosts) Option {
	return func(o *Options) {
		if c.Validate() == nil {
			o.Costs = c
		}
	}
}

// WithBucketWidth sets the open-list bucket span; w <= 0 selects automatic.
func WithBucketWidth(w int) Option {
	return func(o *Options) {
		o.BucketWidth = max(w, 0)
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
