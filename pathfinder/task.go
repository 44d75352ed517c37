package pathfinder

import "context"

// searchTask carries one queued Request through the scheduler.
type searchTask struct {
	pf       *PathFinder
	req      *Request
	priority float64
}

// Priority implements scheduler.Task.
func (t *searchTask) Priority() float64 { return t.priority }

// Execute implements scheduler.Task.
func (t *searchTask) Execute(ctx context.Context) { t.pf.runTask(ctx, t) }
