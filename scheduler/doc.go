// Package scheduler provides a cooperative, frame-sliced task runner.
//
// What:
//
//   - Scheduler[T]: a priority queue of whole tasks drained a bounded
//     amount per Tick. Lower priority values run first; equal priorities run
//     in submission order.
//   - The per-tick bound is a task count, a time budget, or both. A tick
//     always runs at least one task when any is pending, so a single slow
//     task cannot starve the queue.
//   - Tasks are never suspended: a task is either pending or has run to
//     completion. CancelTask only affects pending tasks.
//
// Why:
//
//   - Interactive loops (games, simulations) must keep each frame short;
//     expensive work is queued and spread across frames.
//
// Complexity:
//
//   - AddTask, CancelTask: O(log n).
//   - Tick:               O(k log n) plus task time, k = tasks executed.
//
// Errors:
//
//   - ErrNilTask:       zero-value task.
//   - ErrDuplicateTask: task already pending.
package scheduler
