package bucketqueue

import "fmt"

// Queue is a priority queue over integer priorities grouped into fixed-width
// buckets. Bucket b holds priorities [b*width, (b+1)*width).
//
// Buckets are plain slices and every item's slot is indexed, so all
// operations are deterministic for a given call sequence.
type Queue[T Item] struct {
	buckets [][]T
	slots   map[T]slot
	width   int
	minB    int // lowest non-empty bucket, len(buckets) when empty
	maxB    int // highest non-empty bucket, -1 when empty
	less    func(a, b T) bool
}

// New builds a queue able to hold priorities 0..maxPriorityValue with
// maxPriorityValue/bucketWidth + 1 buckets.
// Returns ErrBadConfig if maxPriorityValue < 0 or bucketWidth <= 0.
func New[T Item](maxPriorityValue, bucketWidth int, opts ...Option[T]) (*Queue[T], error) {
	if maxPriorityValue < 0 || bucketWidth <= 0 {
		return nil, fmt.Errorf("%w: max=%d width=%d", ErrBadConfig, maxPriorityValue, bucketWidth)
	}
	var o Options[T]
	for _, opt := range opts {
		opt(&o)
	}
	n := maxPriorityValue/bucketWidth + 1
	q := &Queue[T]{
		buckets: make([][]T, n),
		slots:   make(map[T]slot, o.Capacity),
		width:   bucketWidth,
		less:    o.TieBreak,
	}
	q.reset()

	return q, nil
}

func (q *Queue[T]) reset() {
	q.minB = len(q.buckets)
	q.maxB = -1
}

// BucketCount returns the number of buckets.
func (q *Queue[T]) BucketCount() int { return len(q.buckets) }

// BucketWidth returns the priority span of one bucket.
func (q *Queue[T]) BucketWidth() int { return q.width }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.slots) }

// Contains reports whether item is queued.
func (q *Queue[T]) Contains(item T) bool {
	_, ok := q.slots[item]

	return ok
}

// Insert adds item under its current PriorityValue.
// Complexity: O(1) expected.
func (q *Queue[T]) Insert(item T) error {
	p := item.PriorityValue()
	b := -1
	if p >= 0 {
		b = p / q.width
	}
	if b < 0 || b >= len(q.buckets) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, p, len(q.buckets)*q.width)
	}
	if _, dup := q.slots[item]; dup {
		return ErrDuplicate
	}

	q.slots[item] = slot{bucket: b, index: len(q.buckets[b])}
	q.buckets[b] = append(q.buckets[b], item)
	if b < q.minB {
		q.minB = b
	}
	if b > q.maxB {
		q.maxB = b
	}

	return nil
}

// Remove deletes item and reports whether it was queued.
// Complexity: O(1) expected, plus a bucket scan when the tracked min or max bucket empties.
func (q *Queue[T]) Remove(item T) bool {
	s, ok := q.slots[item]
	if !ok {
		return false
	}
	q.removeAt(s.bucket, s.index)

	return true
}

// removeAt swap-deletes position i of bucket b and repairs the min/max trackers.
func (q *Queue[T]) removeAt(b, i int) T {
	bucket := q.buckets[b]
	item := bucket[i]
	last := len(bucket) - 1
	if i != last {
		moved := bucket[last]
		bucket[i] = moved
		q.slots[moved] = slot{bucket: b, index: i}
	}
	var zero T
	bucket[last] = zero
	q.buckets[b] = bucket[:last]
	delete(q.slots, item)

	if last > 0 {
		return item
	}
	if len(q.slots) == 0 {
		q.reset()

		return item
	}
	if b == q.minB {
		for q.minB < len(q.buckets) && len(q.buckets[q.minB]) == 0 {
			q.minB++
		}
	}
	if b == q.maxB {
		for q.maxB >= 0 && len(q.buckets[q.maxB]) == 0 {
			q.maxB--
		}
	}

	return item
}

// ExtractMin removes and returns an item from the lowest non-empty bucket.
// With needsBest the bucket is scanned for the lowest PriorityValue, ties
// going to the tie-break preference and then to bucket order; otherwise the
// most recently added item of the bucket is taken in O(1).
func (q *Queue[T]) ExtractMin(needsBest bool) (T, bool) {
	if len(q.slots) == 0 {
		var zero T
		return zero, false
	}
	b := q.minB
	i := len(q.buckets[b]) - 1
	if needsBest {
		i = q.pick(q.buckets[b], func(p, best int) bool { return p < best })
	}

	return q.removeAt(b, i), true
}

// ExtractMax is ExtractMin's mirror on the highest non-empty bucket.
func (q *Queue[T]) ExtractMax(needsBest bool) (T, bool) {
	if len(q.slots) == 0 {
		var zero T
		return zero, false
	}
	b := q.maxB
	i := len(q.buckets[b]) - 1
	if needsBest {
		i = q.pick(q.buckets[b], func(p, best int) bool { return p > best })
	}

	return q.removeAt(b, i), true
}

// pick returns the index of the preferred item of a non-empty bucket.
func (q *Queue[T]) pick(bucket []T, better func(p, best int) bool) int {
	bi, bp := 0, bucket[0].PriorityValue()
	for i := 1; i < len(bucket); i++ {
		p := bucket[i].PriorityValue()
		switch {
		case better(p, bp):
			bi, bp = i, p
		case p == bp && q.less != nil && q.less(bucket[i], bucket[bi]):
			bi = i
		}
	}

	return bi
}

// Peek returns the item ExtractMin(true) would return without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.slots) == 0 {
		var zero T
		return zero, false
	}
	bucket := q.buckets[q.minB]

	return bucket[q.pick(bucket, func(p, best int) bool { return p < best })], true
}

// Clear removes every item. Only the occupied bucket range is visited.
func (q *Queue[T]) Clear() {
	for b := q.minB; b <= q.maxB; b++ {
		bucket := q.buckets[b]
		clear(bucket)
		q.buckets[b] = bucket[:0]
	}
	clear(q.slots)
	q.reset()
}

// Items returns a snapshot of queued items in bucket order.
func (q *Queue[T]) Items() []T {
	out := make([]T, 0, len(q.slots))
	for b := q.minB; b <= q.maxB; b++ {
		out = append(out, q.buckets[b]...)
	}

	return out
}
