package pathfinder

import (
	"slices"

	"github.com/zyedidia/generic/cache"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/heuristic"
)

// resultKey identifies every input that can change a result on a fixed map.
type resultKey struct {
	start, end core.Point
	algorithm  AlgorithmKind
	heuristic  heuristic.Kind
	reprocess  ReprocessKind
	optimal    bool
}

func keyOf(r *Request) resultKey {
	return resultKey{
		start:     r.Start,
		end:       r.End,
		algorithm: r.Algorithm,
		heuristic: r.Heuristic,
		reprocess: r.Reprocess,
		optimal:   r.NeedsOptimalSolution,
	}
}

type result struct {
	raw, reprocessed []core.Point
}

// resultCache is an LRU of completed results valid for the current map only.
// A nil *resultCache is a disabled cache.
type resultCache struct {
	size int
	lru  *cache.Cache[resultKey, result]
}

func newResultCache(size int) *resultCache {
	if size <= 0 {
		return nil
	}

	return &resultCache{size: size, lru: cache.New[resultKey, result](size)}
}

func (c *resultCache) get(k resultKey) (result, bool) {
	if c == nil {
		return result{}, false
	}
	r, ok := c.lru.Get(k)
	if !ok {
		return result{}, false
	}

	return result{raw: slices.Clone(r.raw), reprocessed: slices.Clone(r.reprocessed)}, true
}

func (c *resultCache) put(k resultKey, r result) {
	if c == nil {
		return
	}
	c.lru.Put(k, result{raw: slices.Clone(r.raw), reprocessed: slices.Clone(r.reprocessed)})
}

// purge drops every entry.
func (c *resultCache) purge() {
	if c == nil || c.lru.Size() == 0 {
		return
	}
	c.lru = cache.New[resultKey, result](c.size)
}

func (c *resultCache) len() int {
	if c == nil {
		return 0
	}

	return c.lru.Size()
}
