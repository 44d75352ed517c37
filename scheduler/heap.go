package scheduler

// entry is a pending task with its priority snapshot and submission order.
type entry[T Task] struct {
	task     T
	priority float64
	seq      uint64
	index    int
}

// taskHeap is a min-heap of entries ordered by priority, then by submission.
type taskHeap[T Task] []*entry[T]

func (h taskHeap[T]) Len() int { return len(h) }

func (h taskHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h taskHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *taskHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // Avoid memory leak
	*h = old[:n-1]
	e.index = -1

	return e
}
