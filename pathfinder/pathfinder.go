package pathfinder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/jps"
	"github.com/katalvlaran/gridpath/reprocess"
	"github.com/katalvlaran/gridpath/scheduler"
)

const tracerName = "github.com/katalvlaran/gridpath/pathfinder"

// PathFinder validates path requests, queues them on a frame scheduler and
// runs them against one shared passable map.
//
// Map changes and executions are serialized by a single lock, and every map
// change reaches each cached algorithm before the lock is released. All
// methods are safe for concurrent use. OnComplete callbacks run without the
// lock held, so they may submit new requests.
type PathFinder struct {
	mu           sync.Mutex
	grid         *gridmap.Grid
	algorithms   map[AlgorithmKind]Algorithm
	reprocessors map[ReprocessKind]Reprocessor
	results      *resultCache

	sched   *scheduler.Scheduler[*searchTask]
	opts    Options
	log     *slog.Logger
	metrics *metrics
	tracer  trace.Tracer
}

// New returns a PathFinder without a map; call SetPassableMap before
// submitting requests.
func New(opts ...Option) *PathFinder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	schedOpts := append([]scheduler.Option{scheduler.WithLogger(o.Logger)}, o.Scheduler...)

	return &PathFinder{
		algorithms:   make(map[AlgorithmKind]Algorithm),
		reprocessors: make(map[ReprocessKind]Reprocessor),
		results:      newResultCache(o.CacheSize),
		sched:        scheduler.New[*searchTask](schedOpts...),
		opts:         o,
		log:          o.Logger,
		metrics:      newMetrics(o.Registerer),
		tracer:       o.TracerProvider.Tracer(tracerName),
	}
}

// SetPassableMap replaces the map and re-initializes every cached algorithm.
// The PathFinder keeps g by reference: later changes must go through
// UpdatePassableMap.
func (pf *PathFinder) SetPassableMap(g *gridmap.Grid) error {
	if g == nil {
		return ErrNoMap
	}

	pf.mu.Lock()
	defer pf.mu.Unlock()
	pf.grid = g
	for _, a := range pf.algorithms {
		a.InitMap(g)
	}
	pf.results.purge()
	pf.log.Debug("pathfinder: map set", slog.String("engine", pf.describe()))

	return nil
}

// UpdatePassableMap writes passable over r and notifies every cached
// algorithm. An r not fully inside the map is rejected and nothing changes.
func (pf *PathFinder) UpdatePassableMap(r core.Rect, passable bool) error {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	if pf.grid == nil {
		return ErrNoMap
	}
	if err := pf.grid.UpdateRegion(r, passable); err != nil {
		pf.log.Error("pathfinder: map update skipped", slog.String("region", r.String()), slog.Any("err", err))
		return fmt.Errorf("pathfinder: update %s: %w", r, err)
	}
	for _, a := range pf.algorithms {
		a.OnMapRegionUpdated(r, passable)
	}
	pf.results.purge()
	pf.log.Debug("pathfinder: map updated", slog.String("region", r.String()), slog.Bool("passable", passable))

	return nil
}

// String renders the map size, movement rule, cached algorithm count and
// queue depth, e.g. "pathfinder(10x6 conn8 corner-cut=false algorithms=2 pending=1)".
func (pf *PathFinder) String() string {
	pf.mu.Lock()
	defer pf.mu.Unlock()

	return pf.describe()
}

// describe is String without locking. pf.mu must be held.
func (pf *PathFinder) describe() string {
	if pf.grid == nil {
		return fmt.Sprintf("pathfinder(no map pending=%d)", pf.sched.Len())
	}

	return fmt.Sprintf("pathfinder(%dx%d %s corner-cut=%t algorithms=%d pending=%d)",
		pf.grid.Width(), pf.grid.Height(), pf.grid.Connectivity(),
		pf.grid.CanDiagonallyPassByObstacle(), len(pf.algorithms), pf.sched.Len())
}

// PassableMap returns the current map, or nil.
func (pf *PathFinder) PassableMap() *gridmap.Grid {
	pf.mu.Lock()
	defer pf.mu.Unlock()

	return pf.grid
}

// AddFindPathRequest validates req and queues it for a later Tick.
//
// The queue position is priority + h(start, end) / h(origin, far corner)
// under the request's heuristic, so nearer goals go first among equal
// priorities. With the line-of-sight shortcut enabled, a request whose
// endpoints see each other completes immediately instead.
//
// Invalid requests are marked StateRejected and the error is returned.
// Panics with an error wrapping ErrUnsupportedKind or
// heuristic.ErrUnknownKind for undeclared kinds.
func (pf *PathFinder) AddFindPathRequest(req *Request, priority int) error {
	if req == nil {
		return pf.reject(nil, ErrNilRequest)
	}
	mustSupport(req)

	pf.mu.Lock()
	if req.task != nil {
		pf.mu.Unlock()
		pf.log.Warn("pathfinder: request rejected",
			slog.String("request", req.String()), slog.Any("err", ErrAlreadyQueued))
		return ErrAlreadyQueued
	}
	if err := pf.validate(req); err != nil {
		pf.mu.Unlock()
		return pf.reject(req, err)
	}
	if pf.opts.LineOfSightFirstCheck && pf.grid.HasLineOfSight(req.Start, req.End) {
		req.RawPath = []core.Point{req.Start, req.End}
		req.ReprocessedPath = slices.Clone(req.RawPath)
		req.setState(StateCompleted)
		pf.mu.Unlock()
		pf.metrics.requests.WithLabelValues(outcomeLineOfSight).Inc()
		pf.complete(req)
		return nil
	}

	t := &searchTask{pf: pf, req: req, priority: pf.blendedPriority(req, priority)}
	if err := pf.sched.AddTask(t); err != nil {
		pf.mu.Unlock()
		return pf.reject(req, err)
	}
	req.task = t
	req.RawPath, req.ReprocessedPath = nil, nil
	req.setState(StateQueued)
	pf.mu.Unlock()

	pf.metrics.requests.WithLabelValues(outcomeQueued).Inc()
	pf.metrics.queueDepth.Set(float64(pf.sched.Len()))
	pf.log.Debug("pathfinder: request queued",
		slog.String("request", req.String()),
		slog.Float64("priority", t.priority))

	return nil
}

// ExecuteRequest validates req and runs it synchronously, then calls
// OnComplete. A request that is currently queued is refused with
// ErrAlreadyQueued. Panics like AddFindPathRequest for undeclared kinds.
func (pf *PathFinder) ExecuteRequest(req *Request) error {
	if req == nil {
		return pf.reject(nil, ErrNilRequest)
	}
	mustSupport(req)

	pf.mu.Lock()
	if req.task != nil {
		pf.mu.Unlock()
		return ErrAlreadyQueued
	}
	if err := pf.validate(req); err != nil {
		pf.mu.Unlock()
		return pf.reject(req, err)
	}
	pf.execute(context.Background(), req)
	pf.mu.Unlock()
	pf.complete(req)

	return nil
}

// CancelRequest removes a queued request before it runs and reports whether
// it did. Requests already executed, running or never queued are left alone.
func (pf *PathFinder) CancelRequest(req *Request) bool {
	if req == nil {
		return false
	}

	pf.mu.Lock()
	defer pf.mu.Unlock()
	t := req.task
	if t == nil || !pf.sched.CancelTask(t) {
		return false
	}
	req.task = nil
	req.setState(StateCancelled)
	pf.metrics.requests.WithLabelValues(outcomeCancelled).Inc()
	pf.metrics.queueDepth.Set(float64(pf.sched.Len()))

	return true
}

// Tick runs queued requests up to the scheduler's per-tick bound.
func (pf *PathFinder) Tick(ctx context.Context) scheduler.TickStats {
	st := pf.sched.Tick(ctx)
	pf.metrics.queueDepth.Set(float64(st.Remaining))

	return st
}

// Run ticks every interval until ctx is done and returns ctx.Err().
// A non-positive interval returns scheduler.ErrBadInterval.
func (pf *PathFinder) Run(ctx context.Context, interval time.Duration) error {
	return pf.sched.Run(ctx, interval)
}

// PendingRequests returns the number of queued requests.
func (pf *PathFinder) PendingRequests() int { return pf.sched.Len() }

func (pf *PathFinder) runTask(ctx context.Context, t *searchTask) {
	pf.mu.Lock()
	req := t.req
	if req.task != t {
		pf.mu.Unlock()
		return
	}
	req.task = nil
	pf.execute(ctx, req)
	pf.mu.Unlock()

	pf.metrics.queueDepth.Set(float64(pf.sched.Len()))
	pf.complete(req)
}

// execute runs the search and reprocessing for a validated request.
// pf.mu must be held.
func (pf *PathFinder) execute(ctx context.Context, req *Request) {
	_, span := pf.tracer.Start(ctx, "pathfinder.execute", trace.WithAttributes(
		attribute.String("algorithm", req.Algorithm.String()),
		attribute.String("heuristic", req.Heuristic.String()),
		attribute.String("reprocess", req.Reprocess.String()),
		attribute.Bool("optimal", req.NeedsOptimalSolution),
		attribute.String("start", req.Start.String()),
		attribute.String("end", req.End.String()),
	))
	defer span.End()

	key := keyOf(req)
	if req.CanUseCache {
		if r, ok := pf.results.get(key); ok {
			req.RawPath, req.ReprocessedPath = r.raw, r.reprocessed
			req.setState(StateCompleted)
			pf.metrics.cacheHits.Inc()
			pf.metrics.executions.WithLabelValues(req.Algorithm.String(), resultCached).Inc()
			span.SetAttributes(attribute.Bool("cache_hit", true))
			span.SetStatus(codes.Ok, "")
			return
		}
	}

	begin := pf.opts.Clock()
	a := pf.algorithm(req.Algorithm)
	a.SetHeuristic(heuristic.For(req.Heuristic))
	a.SetNeedsOptimalSolution(req.NeedsOptimalSolution)
	raw := a.FindPath(req.Start, req.End)

	var out []core.Point
	if rp := pf.reprocessor(req.Reprocess); rp != nil && len(raw) > 0 {
		out = rp.Reprocess(raw, pf.grid)
	} else {
		out = slices.Clone(raw)
	}
	req.RawPath, req.ReprocessedPath = raw, out
	req.setState(StateCompleted)
	if req.CanUseCache {
		pf.results.put(key, result{raw: raw, reprocessed: out})
	}
	elapsed := pf.opts.Clock().Sub(begin)

	outcome := resultFound
	if len(raw) == 0 {
		outcome = resultNotFound
	}
	pf.metrics.executions.WithLabelValues(req.Algorithm.String(), outcome).Inc()
	pf.metrics.duration.WithLabelValues(req.Algorithm.String()).Observe(elapsed.Seconds())
	span.SetAttributes(
		attribute.Int("raw_len", len(raw)),
		attribute.Int("reprocessed_len", len(out)),
	)
	span.SetStatus(codes.Ok, outcome)
	pf.log.Debug("pathfinder: request executed",
		slog.String("request", req.String()),
		slog.Duration("elapsed", elapsed))
}

func (pf *PathFinder) complete(req *Request) {
	if req.OnComplete != nil {
		req.OnComplete(req)
	}
}

// validate checks req against the current map. pf.mu must be held.
func (pf *PathFinder) validate(req *Request) error {
	if pf.grid == nil {
		return ErrNoMap
	}
	if req.Start == req.End {
		return fmt.Errorf("%w: %s", ErrSameEndpoints, req.Start)
	}
	for _, p := range [2]core.Point{req.Start, req.End} {
		if !pf.grid.IsInBounds(p.X, p.Y) {
			return fmt.Errorf("%w: %s", ErrEndpointOutOfBounds, p)
		}
		if !pf.grid.Passable(p) {
			return fmt.Errorf("%w: %s", ErrEndpointBlocked, p)
		}
	}

	return nil
}

func (pf *PathFinder) reject(req *Request, err error) error {
	attrs := []any{slog.Any("err", err)}
	if req != nil {
		req.setState(StateRejected)
		attrs = append(attrs, slog.String("request", req.String()))
	}
	pf.metrics.requests.WithLabelValues(outcomeRejected).Inc()
	pf.log.Warn("pathfinder: request rejected", attrs...)

	return err
}

// blendedPriority is priority + h(start, end) / h(origin, far corner).
// pf.mu must be held.
func (pf *PathFinder) blendedPriority(req *Request, priority int) float64 {
	p := float64(priority)
	if req.Heuristic == heuristic.None {
		return p
	}
	norm := heuristic.Calculate(req.Heuristic, core.Point{}, core.Pt(pf.grid.Width()-1, pf.grid.Height()-1))
	if norm == 0 {
		return p
	}

	return p + float64(heuristic.Calculate(req.Heuristic, req.Start, req.End))/float64(norm)
}

// algorithm returns the cached instance for k, creating and binding it on
// first use. pf.mu must be held.
func (pf *PathFinder) algorithm(k AlgorithmKind) Algorithm {
	if a, ok := pf.algorithms[k]; ok {
		return a
	}
	a := pf.newAlgorithm(k)
	a.InitMap(pf.grid)
	pf.algorithms[k] = a

	return a
}

func (pf *PathFinder) newAlgorithm(k AlgorithmKind) Algorithm {
	c, w, l := pf.opts.Costs, pf.opts.BucketWidth, pf.log
	switch k {
	case BFS:
		return bfs.New()
	case DFS:
		return dfs.New()
	case Dijkstra:
		return dijkstra.New(dijkstra.WithStepCosts(c), dijkstra.WithBucketWidth(w), dijkstra.WithLogger(l))
	case AStar:
		return astar.New(astar.WithStepCosts(c), astar.WithBucketWidth(w), astar.WithLogger(l))
	case JPS:
		return jps.New(jps.WithStepCosts(c), jps.WithBucketWidth(w), jps.WithLogger(l))
	case JPSPlus:
		return jps.NewPlus(jps.WithStepCosts(c), jps.WithBucketWidth(w), jps.WithLogger(l))
	default:
		panic(fmt.Errorf("%w: %s", ErrUnsupportedKind, k))
	}
}

// reprocessor returns the cached reprocessor for k, or nil for ReprocessNone.
// pf.mu must be held.
func (pf *PathFinder) reprocessor(k ReprocessKind) Reprocessor {
	if k == ReprocessNone {
		return nil
	}
	if r, ok := pf.reprocessors[k]; ok {
		return r
	}
	var r Reprocessor
	switch k {
	case ReprocessDefault:
		r = reprocess.Smooth{}
	case ReprocessTheta:
		r = reprocess.NewTheta(reprocess.WithStepCosts(pf.opts.Costs), reprocess.WithLogger(pf.log))
	default:
		panic(fmt.Errorf("%w: %s", ErrUnsupportedKind, k))
	}
	pf.reprocessors[k] = r

	return r
}

func mustSupport(req *Request) {
	switch {
	case !req.Algorithm.Valid():
		panic(fmt.Errorf("%w: %s", ErrUnsupportedKind, req.Algorithm))
	case !req.Reprocess.Valid():
		panic(fmt.Errorf("%w: %s", ErrUnsupportedKind, req.Reprocess))
	case !req.Heuristic.Valid():
		panic(fmt.Errorf("%w: %d", heuristic.ErrUnknownKind, int(req.Heuristic)))
	}
}
