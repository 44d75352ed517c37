package pathfinder

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/scheduler"
)

// DefaultCacheSize is the number of completed results kept for requests
// with CanUseCache set.
const DefaultCacheSize = 256

// Options configures a PathFinder.
type Options struct {
	// LineOfSightFirstCheck completes a request with the two-point path
	// [start, end] when the endpoints see each other, without queuing it.
	LineOfSightFirstCheck bool
	// Costs prices steps for the weighted searches and Theta*.
	Costs core.StepCosts
	// BucketWidth is the open-list bucket span; 0 selects Costs.Straight.
	BucketWidth int
	// CacheSize bounds the result cache; 0 disables it.
	CacheSize int
	// Scheduler holds options passed to the request scheduler.
	Scheduler []scheduler.Option
	// Clock times executions for the duration histogram.
	Clock func() time.Time
	// Logger receives request diagnostics.
	Logger *slog.Logger
	// Registerer receives the engine's metrics. Nil selects a private registry.
	Registerer prometheus.Registerer
	// TracerProvider creates the span around each execution.
	TracerProvider trace.TracerProvider
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns options with the line-of-sight shortcut off,
// octile costs, DefaultCacheSize and the global otel provider.
func DefaultOptions() Options {
	return Options{
		Costs:          core.DefaultStepCosts(),
		CacheSize:      DefaultCacheSize,
		Clock:          time.Now,
		Logger:         slog.Default(),
		TracerProvider: otel.GetTracerProvider(),
	}
}

// WithLineOfSightFirstCheck toggles the line-of-sight shortcut.
func WithLineOfSightFirstCheck(on bool) Option {
	return func(o *Options) { o.LineOfSightFirstCheck = on }
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
	return func(o *Options) { o.BucketWidth = max(w, 0) }
}

// WithCacheSize bounds the result cache; n <= 0 disables it.
func WithCacheSize(n int) Option {
	return func(o *Options) { o.CacheSize = max(n, 0) }
}

// WithMaxTasksPerTick caps the requests executed per Tick; n <= 0 removes the cap.
func WithMaxTasksPerTick(n int) Option {
	return func(o *Options) { o.Scheduler = append(o.Scheduler, scheduler.WithMaxTasksPerTick(n)) }
}

// WithTickBudget bounds the time spent per Tick; d <= 0 removes the bound.
func WithTickBudget(d time.Duration) Option {
	return func(o *Options) { o.Scheduler = append(o.Scheduler, scheduler.WithTickBudget(d)) }
}

// WithClock replaces time.Now for tick budgets and execution timing; nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now == nil {
			return
		}
		o.Clock = now
		o.Scheduler = append(o.Scheduler, scheduler.WithClock(now))
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

// WithRegisterer registers the engine's metrics with r. Registering two
// PathFinders with the same registerer panics on the duplicate collectors.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = r }
}

// WithTracerProvider sets the tracer provider; nil is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}
