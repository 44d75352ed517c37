// Package bucketqueue implements an integer-bucketed priority queue for
// search frontiers whose priorities are bounded, non-negative integers.
//
// What:
//
//   - Queue[T]: generic over any comparable Item exposing PriorityValue() int.
//   - Items with priority p live in bucket p/width; the lowest and highest
//     non-empty buckets are tracked incrementally.
//   - Best-mode extraction scans one bucket for the true extreme; "any" mode
//     takes the bucket's newest item in O(1).
//
// Why:
//
//   - Grid searches push and pop millions of nodes whose costs are small
//     integers; bucketing avoids the O(log n) of a binary heap.
//
// Complexity:
//
//   - Insert, Remove, Contains: O(1) expected.
//   - ExtractMin/ExtractMax:    O(bucket size) best mode, O(1) otherwise,
//     plus a bucket scan when the tracked extreme bucket empties.
//   - Clear, Items:             O(occupied bucket range + n).
//
// Options:
//
//   - WithTieBreak(less): equal-priority preference in best mode.
//   - WithCapacity(n): pre-size the item index.
//
// Errors:
//
//   - ErrBadConfig: maxPriorityValue < 0 or bucketWidth <= 0.
//   - ErrOutOfRange: priority outside [0, BucketCount*BucketWidth).
//   - ErrDuplicate: item already queued.
package bucketqueue
