package flac

import (
	"container/heap"

	"github.com/katalvlaran/dst-flac/dstgraph"
)

// pqKey orders scheduled vertices by simulated saturation time, breaking
// ties in favor of the candidate whose arc tail is the root — spec's
// tie-break so that a run reaching the root resolves a genuine tie toward
// finishing rather than toward a candidate that cannot end the run.
type pqKey struct {
	time        float64
	tailNotRoot bool
}

func (k pqKey) less(o pqKey) bool {
	if k.time != o.time {
		return k.time < o.time
	}
	if k.tailNotRoot != o.tailNotRoot {
		return !k.tailNotRoot // tailNotRoot == false (tail is root) sorts first
	}

	return false
}

type pqItem struct {
	v     dstgraph.Vertex
	key   pqKey
	index int
}

type pqHeap []*pqItem

func (h pqHeap) Len() int            { return len(h) }
func (h pqHeap) Less(i, j int) bool  { return h[i].key.less(h[j].key) }
func (h pqHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *pqHeap) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *pqHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}

// scheduler is FLAC's saturation-time priority queue: every vertex with a
// nonempty source set and at least one unsaturated entering arc appears in
// it exactly once, keyed by when its current candidate arc is due to
// saturate. It supports O(log n) insert, extract-min, and decrease-key —
// the operation saturateArcAndUpdate needs to accelerate a vertex already
// waiting in the queue when a new source merges into it — by keeping each
// item's heap position in pqItem.index and calling heap.Fix.
type scheduler struct {
	h      pqHeap
	lookup map[dstgraph.Vertex]*pqItem
}

func newScheduler() *scheduler {
	return &scheduler{lookup: make(map[dstgraph.Vertex]*pqItem)}
}

// Insert schedules v fresh. v must not already be present.
func (s *scheduler) Insert(v dstgraph.Vertex, key pqKey) {
	item := &pqItem{v: v, key: key}
	s.lookup[v] = item
	heap.Push(&s.h, item)
}

// DecreaseKey lowers v's scheduled key, re-heapifying in place. Reports
// false if v is not currently scheduled or newKey is not actually smaller.
func (s *scheduler) DecreaseKey(v dstgraph.Vertex, newKey pqKey) bool {
	item, ok := s.lookup[v]
	if !ok || !newKey.less(item.key) {
		return false
	}
	item.key = newKey
	heap.Fix(&s.h, item.index)

	return true
}

// Key returns v's current scheduled key, if present.
func (s *scheduler) Key(v dstgraph.Vertex) (pqKey, bool) {
	item, ok := s.lookup[v]
	if !ok {
		return pqKey{}, false
	}

	return item.key, true
}

// Remove drops v from the queue if present. A no-op otherwise — callers
// use it to express "this vertex has no more candidates" without needing
// to know whether it was ever scheduled.
func (s *scheduler) Remove(v dstgraph.Vertex) {
	item, ok := s.lookup[v]
	if !ok {
		return
	}
	heap.Remove(&s.h, item.index)
	delete(s.lookup, v)
}

// ExtractMin pops and returns the vertex with the smallest key.
func (s *scheduler) ExtractMin() (dstgraph.Vertex, pqKey, bool) {
	if s.h.Len() == 0 {
		return "", pqKey{}, false
	}
	item := heap.Pop(&s.h).(*pqItem)
	delete(s.lookup, item.v)

	return item.v, item.key, true
}

func (s *scheduler) Len() int { return s.h.Len() }
