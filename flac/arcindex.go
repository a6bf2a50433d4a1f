package flac

import (
	"sort"

	"github.com/katalvlaran/dst-flac/dstgraph"
)

type arcPairKey struct{ tail, head dstgraph.Vertex }

// arcIndex maintains, for every vertex, its entering arcs sorted by
// dstgraph.Arc.Less (cost, then tail, then head) — the order FLAC consumes
// candidates in when looking for "the cheapest unsaturated entering arc".
//
// Unlike the saturated/sources/schedule bookkeeping in state, arcIndex
// persists across FLAC runs within a single Solve call: the outer loop
// zeroes the cost of every committed arc between runs (see Reprice), and
// later runs must see that new, lower cost. The index never resorts
// lazily — a cost change is always a Reprice call that removes the stale
// entry and re-inserts the fresh one, keeping every slice sorted at rest.
type arcIndex struct {
	byHead map[dstgraph.Vertex][]dstgraph.Arc
	lookup map[arcPairKey]dstgraph.Arc
}

func newArcIndex(inst *dstgraph.Instance) *arcIndex {
	idx := &arcIndex{
		byHead: make(map[dstgraph.Vertex][]dstgraph.Arc),
		lookup: make(map[arcPairKey]dstgraph.Arc),
	}
	for _, v := range inst.Vertices() {
		arcs := inst.EnteringArcs(v)
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].Less(arcs[j]) })
		idx.byHead[v] = arcs
		for _, a := range arcs {
			idx.lookup[arcPairKey{a.Tail, a.Head}] = a
		}
	}

	return idx
}

// Len reports how many entering arcs v has.
func (idx *arcIndex) Len(v dstgraph.Vertex) int { return len(idx.byHead[v]) }

// At returns the i-th cheapest entering arc of v (0-based), or ok == false
// if i is out of range.
func (idx *arcIndex) At(v dstgraph.Vertex, i int) (dstgraph.Arc, bool) {
	s := idx.byHead[v]
	if i < 0 || i >= len(s) {
		return dstgraph.Arc{}, false
	}

	return s[i], true
}

// Get returns the current (possibly repriced) cost of the arc tail→head.
func (idx *arcIndex) Get(tail, head dstgraph.Vertex) (dstgraph.Arc, bool) {
	a, ok := idx.lookup[arcPairKey{tail, head}]

	return a, ok
}

// Reprice updates the arc tail→head to newCost, removing its stale entry
// from the sorted list and re-inserting a fresh one — the index never
// mutates an entry in place, since that would violate the ordering it
// promises. A no-op if the arc is unknown.
func (idx *arcIndex) Reprice(tail, head dstgraph.Vertex, newCost int64) {
	old, ok := idx.Get(tail, head)
	if !ok {
		return
	}
	idx.remove(old)
	fresh := dstgraph.Arc{Tail: tail, Head: head, Cost: newCost}
	idx.insert(fresh)
	idx.lookup[arcPairKey{tail, head}] = fresh
}

func (idx *arcIndex) remove(a dstgraph.Arc) {
	s := idx.byHead[a.Head]
	i := sort.Search(len(s), func(i int) bool { return !s[i].Less(a) })
	if i < len(s) && s[i].Equal(a) {
		idx.byHead[a.Head] = append(s[:i], s[i+1:]...)
	}
}

func (idx *arcIndex) insert(a dstgraph.Arc) {
	s := idx.byHead[a.Head]
	i := sort.Search(len(s), func(i int) bool { return a.Less(s[i]) })
	s = append(s, dstgraph.Arc{})
	copy(s[i+1:], s[i:])
	s[i] = a
	idx.byHead[a.Head] = s
}
