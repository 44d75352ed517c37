package pathfinder

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Request validation errors. A rejected request is never queued.
var (
	ErrNilRequest          = errors.New("pathfinder: nil request")
	ErrSameEndpoints       = errors.New("pathfinder: start equals end")
	ErrEndpointOutOfBounds = errors.New("pathfinder: endpoint out of bounds")
	ErrEndpointBlocked     = errors.New("pathfinder: endpoint not passable")
	ErrNoMap               = errors.New("pathfinder: no passable map set")
	ErrAlreadyQueued       = errors.New("pathfinder: request already queued")
)

// ErrUnsupportedKind is wrapped by the panic raised for an undeclared
// AlgorithmKind or ReprocessKind, and returned when decoding an unknown name.
var ErrUnsupportedKind = errors.New("pathfinder: unsupported kind")

// DefaultPriority is the base priority used by hosts that have no ordering
// preference between their requests.
const DefaultPriority = 1

// State is the lifecycle stage of a Request.
type State int32

const (
	StatePending State = iota
	StateQueued
	StateCompleted
	StateCancelled
	StateRejected
)

var stateNames = [...]string{"pending", "queued", "completed", "cancelled", "rejected"}

// String returns the lowercase name of s.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Request describes one path query. The caller fills the inputs; the engine
// writes RawPath and ReprocessedPath and then calls OnComplete. An empty
// RawPath on completion means the end is unreachable.
//
// A Request may be resubmitted once it is no longer queued.
type Request struct {
	Start, End           core.Point
	Algorithm            AlgorithmKind
	Heuristic            heuristic.Kind
	Reprocess            ReprocessKind
	NeedsOptimalSolution bool
	CanUseCache          bool
	OnComplete           func(*Request)

	RawPath         []core.Point
	ReprocessedPath []core.Point

	state atomic.Int32
	task  *searchTask
}

// State returns the request's current lifecycle stage.
func (r *Request) State() State { return State(r.state.Load()) }

func (r *Request) setState(s State) { r.state.Store(int32(s)) }

// String renders the endpoints, kinds, lifecycle stage and path lengths, e.g.
// "(0,0)->(4,4) astar/diagonal reprocess=default optimal=true state=completed raw=5 waypoints=2".
// The path lengths are only stable once the request is no longer queued.
func (r *Request) String() string {
	if r == nil {
		return "<nil request>"
	}

	return fmt.Sprintf("%s->%s %s/%s reprocess=%s optimal=%t state=%s raw=%d waypoints=%d",
		r.Start, r.End, r.Algorithm, r.Heuristic, r.Reprocess,
		r.NeedsOptimalSolution, r.State(), len(r.RawPath), len(r.ReprocessedPath))
}

// Algorithm is the contract every search implements. FindPath returns both
// endpoints and every cell between them, or nil when no route exists.
type Algorithm interface {
	InitMap(g *gridmap.Grid)
	OnMapRegionUpdated(r core.Rect, passable bool)
	SetHeuristic(h heuristic.Func)
	SetNeedsOptimalSolution(v bool)
	FindPath(start, end core.Point) []core.Point
}

// Reprocessor turns a contiguous raw path into waypoints. It must return a
// new slice and leave path untouched.
type Reprocessor interface {
	Reprocess(path []core.Point, g *gridmap.Grid) []core.Point
}
