// Package frontier holds the node pool and bucketed open list shared by the
// cost-ordered grid searches (Dijkstra, A*, JPS, Theta*).
package frontier

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridpath/bucketqueue"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/gridmap"
)

// maxBuckets caps the bucket array; wider buckets are used instead.
const maxBuckets = 1 << 16

// Node is the per-cell search record. Records are reused across searches;
// a record whose gen differs from the pool's is treated as untouched.
type Node struct {
	Index  int // row-major cell index
	Parent int // row-major index of the predecessor, -1 for the start
	G      int // accumulated cost from the start
	H      int // scaled heuristic estimate to the goal
	Closed bool

	prio int
	gen  uint32
}

// PriorityValue implements bucketqueue.Item.
func (n *Node) PriorityValue() int { return n.prio }

// Pool owns one Node per grid cell and the open list over them.
type Pool struct {
	nodes   []Node
	gen     uint32
	open    *bucketqueue.Queue[*Node]
	maxPrio int
	log     *slog.Logger
}

// Bound returns the largest priority a search over g can produce and a
// bucket width keeping the bucket count bounded. width <= 0 selects the
// straight step cost. withHeuristic adds room for a scaled estimate.
func Bound(g *gridmap.Grid, costs core.StepCosts, width int, withHeuristic bool) (maxPrio, bucketWidth int) {
	maxPrio = g.Area() * costs.Max()
	if withHeuristic {
		// widest estimate any Kind produces over the grid: squared diagonal
		w, h := g.Width(), g.Height()
		maxPrio += costs.Straight * (w*w + h*h)
	}
	if maxPrio < 0 || maxPrio > math.MaxInt32 {
		maxPrio = math.MaxInt32
	}
	bucketWidth = width
	if bucketWidth <= 0 {
		bucketWidth = costs.Straight
	}
	if minWidth := maxPrio/(maxBuckets-1) + 1; bucketWidth < minWidth {
		bucketWidth = minWidth
	}

	return maxPrio, bucketWidth
}

// NewPool sizes a pool for area cells. With tieBreakOnH, equal priorities
// prefer the node with the smaller H.
func NewPool(area, maxPrio, bucketWidth int, tieBreakOnH bool, log *slog.Logger) (*Pool, error) {
	opts := []bucketqueue.Option[*Node]{bucketqueue.WithCapacity[*Node](64)}
	if tieBreakOnH {
		opts = append(opts, bucketqueue.WithTieBreak(func(a, b *Node) bool { return a.H < b.H }))
	}
	open, err := bucketqueue.New[*Node](maxPrio, bucketWidth, opts...)
	if err != nil {
		return nil, fmt.Errorf("frontier: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	p := &Pool{nodes: make([]Node, area), open: open, maxPrio: maxPrio, log: log}
	for i := range p.nodes {
		p.nodes[i].Index = i
	}

	return p, nil
}

// Reset starts a new search in O(occupied buckets).
func (p *Pool) Reset() {
	p.open.Clear()
	p.gen++
	if p.gen == 0 {
		for i := range p.nodes {
			p.nodes[i].gen = 0
		}
		p.gen = 1
	}
}

// Node returns the record for cell idx, fresh if untouched in this search.
func (p *Pool) Node(idx int) *Node {
	n := &p.nodes[idx]
	if n.gen != p.gen {
		n.gen = p.gen
		n.Parent = -1
		n.G = math.MaxInt
		n.H = 0
		n.Closed = false
	}

	return n
}

// Touched reports whether cell idx was reached in this search.
func (p *Pool) Touched(idx int) bool {
	return p.nodes[idx].gen == p.gen
}

// Push (re)queues n with the given costs and parent. The priority
// g + h is clamped to the queue range. A rejected insertion is logged and
// the node is left out of the frontier; it reports false.
func (p *Pool) Push(n *Node, parent, g, h int) bool {
	p.open.Remove(n)
	n.Parent = parent
	n.G = g
	n.H = h
	n.prio = min(max(g+h, 0), p.maxPrio)
	if err := p.open.Insert(n); err != nil {
		p.log.Error("frontier insert failed", slog.Int("index", n.Index), slog.Int("priority", n.prio), slog.Any("err", err))
		return false
	}

	return true
}

// Pop takes the next node: the true minimum with best, otherwise any node
// of the lowest bucket.
func (p *Pool) Pop(best bool) (*Node, bool) {
	return p.open.ExtractMin(best)
}

// Open reports whether n is on the open list.
func (p *Pool) Open(n *Node) bool { return p.open.Contains(n) }

// Len returns the open list size.
func (p *Pool) Len() int { return p.open.Len() }

// Trace walks parent links from end back to the start and returns the cells
// start..end. Consecutive cells are whatever the search linked; callers
// with non-adjacent parents expand the result.
func (p *Pool) Trace(g *gridmap.Grid, end int) []core.Point {
	var path []core.Point
	for i := end; i >= 0; i = p.nodes[i].Parent {
		path = append(path, g.Coordinate(i))
	}

	return core.Reverse(path)
}
