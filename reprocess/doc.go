// Package reprocess post-processes raw grid paths.
//
// What:
//
//   - Smooth: greedy line-of-sight collapse. Output is a subsequence of the
//     input with the same endpoints, never longer.
//   - Theta: Theta* replanning between the endpoints. Output is a list of
//     waypoints where every consecutive pair has line of sight.
//
// Both take the grid at call time and treat a nil grid or a short input
// as nothing to do, returning a copy of the input.
package reprocess
