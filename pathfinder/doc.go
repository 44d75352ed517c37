// Package pathfinder binds the grid searches, path reprocessors and the frame
// scheduler into a request/response engine.
//
// What:
//
//   - Request: start, end and the per-request choice of AlgorithmKind,
//     heuristic.Kind and ReprocessKind. The engine fills RawPath and
//     ReprocessedPath and calls OnComplete.
//   - PathFinder: validates requests, optionally short-circuits them by line
//     of sight, and queues the rest by blended priority. Each Tick runs a
//     bounded number of whole requests.
//   - Algorithms and reprocessors are created on first use, cached per kind
//     and kept bound to the current map. SetPassableMap and
//     UpdatePassableMap reach every cached algorithm before any further
//     request runs.
//
// Errors:
//
//   - ErrNilRequest, ErrSameEndpoints, ErrEndpointOutOfBounds,
//     ErrEndpointBlocked, ErrNoMap, ErrAlreadyQueued: request rejected,
//     nothing queued.
//   - gridmap.ErrRegionOutOfBounds (wrapped): map update skipped.
//   - Undeclared kinds panic with ErrUnsupportedKind or
//     heuristic.ErrUnknownKind.
//
// An unreachable goal is not an error: the request completes with empty
// paths.
//
// Observability:
//
//   - Prometheus: gridpath_pathfinder_{requests_total, executions_total,
//     execution_seconds, queue_depth, cache_hits_total}.
//   - OpenTelemetry: one "pathfinder.execute" span per execution.
//   - slog: Warn on rejections, Debug on queueing, execution and map changes.
package pathfinder
