package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors for task submission and Run.
var (
	// ErrNilTask indicates the zero value of the task type was submitted.
	ErrNilTask = errors.New("scheduler: nil task")
	// ErrDuplicateTask indicates a task that is already pending.
	ErrDuplicateTask = errors.New("scheduler: task already queued")
	// ErrBadInterval indicates a non-positive Run interval.
	ErrBadInterval = errors.New("scheduler: tick interval must be positive")
)

// Defaults for a Scheduler.
const (
	DefaultMaxTasksPerTick = 4
	DefaultTickBudget      = 2 * time.Millisecond
)

// Task is a unit of work run whole inside one tick. Lower Priority runs first;
// the value is read once, when the task is added.
type Task interface {
	comparable
	Priority() float64
	Execute(ctx context.Context)
}

// Options configures a Scheduler.
type Options struct {
	// MaxTasksPerTick caps executions per tick; 0 means no cap.
	MaxTasksPerTick int
	// TickBudget stops a tick once this much time has elapsed; 0 means no budget.
	TickBudget time.Duration
	// Clock supplies the current time for budget checks.
	Clock func() time.Time
	// Logger receives tick summaries at Debug level.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns DefaultMaxTasksPerTick, DefaultTickBudget,
// time.Now and slog.Default().
func DefaultOptions() Options {
	return Options{
		MaxTasksPerTick: DefaultMaxTasksPerTick,
		TickBudget:      DefaultTickBudget,
		Clock:           time.Now,
		Logger:          slog.Default(),
	}
}

// WithMaxTasksPerTick caps executions per tick; n <= 0 removes the cap.
func WithMaxTasksPerTick(n int) Option {
	return func(o *Options) { o.MaxTasksPerTick = max(n, 0) }
}

// WithTickBudget sets the per-tick time budget; d <= 0 removes it.
func WithTickBudget(d time.Duration) Option {
	return func(o *Options) { o.TickBudget = max(d, 0) }
}

// WithClock replaces time.Now; nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
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

// TickStats summarizes one Tick.
type TickStats struct {
	Executed  int
	Remaining int
	Elapsed   time.Duration
}
