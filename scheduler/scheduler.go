package scheduler

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs queued tasks in priority order, a bounded number per tick.
//
// AddTask, CancelTask and the queries are safe to call from any goroutine,
// including from inside a running task. Task execution is serialized: two
// ticks never overlap.
type Scheduler[T Task] struct {
	mu      sync.Mutex
	queue   taskHeap[T]
	pending map[T]*entry[T]
	seq     uint64

	tickMu sync.Mutex
	opts   Options
}

// New returns an empty Scheduler.
func New[T Task](opts ...Option) *Scheduler[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Scheduler[T]{pending: make(map[T]*entry[T]), opts: o}
}

// AddTask queues t under its current Priority.
// Returns ErrNilTask for the zero value and ErrDuplicateTask if t is pending.
func (s *Scheduler[T]) AddTask(t T) error {
	var zero T
	if t == zero {
		return ErrNilTask
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.pending[t]; dup {
		return ErrDuplicateTask
	}
	s.seq++
	e := &entry[T]{task: t, priority: t.Priority(), seq: s.seq}
	heap.Push(&s.queue, e)
	s.pending[t] = e

	return nil
}

// CancelTask removes t if it has not started and reports whether it did.
// A cancelled task is never executed.
func (s *Scheduler[T]) CancelTask(t T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.pending[t]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, e.index)
	delete(s.pending, t)

	return true
}

// Contains reports whether t is pending.
func (s *Scheduler[T]) Contains(t T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[t]

	return ok
}

// Len returns the number of pending tasks.
func (s *Scheduler[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.queue)
}

// Pending returns the pending tasks in execution order.
func (s *Scheduler[T]) Pending() []T {
	s.mu.Lock()
	snapshot := make(taskHeap[T], len(s.queue))
	for i, e := range s.queue {
		c := *e
		snapshot[i] = &c
	}
	s.mu.Unlock()

	out := make([]T, 0, len(snapshot))
	for snapshot.Len() > 0 {
		out = append(out, heap.Pop(&snapshot).(*entry[T]).task)
	}

	return out
}

// Clear drops every pending task without running it and returns how many were dropped.
func (s *Scheduler[T]) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.queue)
	s.queue = nil
	clear(s.pending)

	return n
}

// Tick executes pending tasks in priority order until MaxTasksPerTick tasks
// have run, TickBudget has elapsed, ctx is done, or the queue is empty.
// When anything is pending at least one task runs, whatever the budget.
func (s *Scheduler[T]) Tick(ctx context.Context) TickStats {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	start := s.opts.Clock()
	var st TickStats
	for ctx.Err() == nil {
		if s.opts.MaxTasksPerTick > 0 && st.Executed >= s.opts.MaxTasksPerTick {
			break
		}
		if s.opts.TickBudget > 0 && st.Executed > 0 && s.opts.Clock().Sub(start) >= s.opts.TickBudget {
			break
		}
		t, ok := s.pop()
		if !ok {
			break
		}
		t.Execute(ctx)
		st.Executed++
	}
	st.Remaining = s.Len()
	st.Elapsed = s.opts.Clock().Sub(start)
	if st.Executed > 0 {
		s.opts.Logger.Debug("scheduler tick",
			slog.Int("executed", st.Executed),
			slog.Int("remaining", st.Remaining),
			slog.Duration("elapsed", st.Elapsed))
	}

	return st
}

func (s *Scheduler[T]) pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&s.queue).(*entry[T])
	delete(s.pending, e.task)

	return e.task, true
}

// Run calls Tick every interval until ctx is done, then returns ctx.Err().
// A non-positive interval returns ErrBadInterval without ticking.
func (s *Scheduler[T]) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrBadInterval, interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}
