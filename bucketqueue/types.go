package bucketqueue

import "errors"

// Sentinel errors for queue operations. A failed call leaves the queue unchanged.
var (
	// ErrBadConfig indicates a negative max priority or a non-positive bucket width.
	ErrBadConfig = errors.New("bucketqueue: invalid configuration")
	// ErrOutOfRange indicates a priority outside [0, BucketCount*BucketWidth).
	ErrOutOfRange = errors.New("bucketqueue: priority out of range")
	// ErrDuplicate indicates an item that is already queued.
	ErrDuplicate = errors.New("bucketqueue: item already queued")
)

// Item is anything the queue can order. PriorityValue must stay constant
// while the item is queued; to change it, Remove, update, and Insert again.
type Item interface {
	comparable
	PriorityValue() int
}

// Options tunes extraction.
type Options[T any] struct {
	// TieBreak, when set, decides between items of equal priority in
	// best-mode extraction: less(a, b) == true prefers a.
	TieBreak func(a, b T) bool
	// Capacity pre-sizes the item index.
	Capacity int
}

// Option configures Options.
type Option[T any] func(*Options[T])

// WithTieBreak sets the equal-priority preference used by best-mode extraction.
func WithTieBreak[T any](less func(a, b T) bool) Option[T] {
	return func(o *Options[T]) { o.TieBreak = less }
}

// WithCapacity pre-sizes the item index for n items.
func WithCapacity[T any](n int) Option[T] {
	return func(o *Options[T]) { o.Capacity = n }
}

// slot locates a queued item.
type slot struct {
	bucket int
	index  int
}
