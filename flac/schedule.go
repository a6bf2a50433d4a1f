package flac

import "github.com/katalvlaran/dst-flac/dstgraph"

// updateNextSaturatedArc advances v past its current candidate entering
// arc (s.nextArc[v], if any) to the next-cheapest unsaturated one in
// s.idx, and reschedules v in the priority queue at the time that
// candidate is now due to saturate.
//
// The saturation-time delta is the candidate's marginal cost divided by
// v's current inflow rate (the number of distinct terminals its source
// set carries): the first candidate saturates after cost/rate simulated
// time units; each subsequent candidate only needs to cover the cost gap
// against the one before it, since the earlier portion of its cost was
// already "paid down" while the previous candidate was being watched.
//
// If v has no further entering arcs to consider, v is dropped from the
// schedule entirely (a no-op if it was never scheduled, e.g. a terminal
// with no entering arcs at all).
func (s *state) updateNextSaturatedArc(v dstgraph.Vertex) {
	prev, hadPrev := s.nextArc[v]
	idx := s.cursor[v]

	a, ok := s.idx.At(v, idx)
	if !ok {
		delete(s.nextArc, v)
		s.pq.Remove(v)

		return
	}
	s.cursor[v] = idx + 1
	s.nextArc[v] = a

	rate := float64(s.sourcesOf(v).Len())
	var delta float64
	if hadPrev {
		delta = float64(a.Cost-prev.Cost) / rate
	} else {
		delta = float64(a.Cost) / rate
	}

	key := pqKey{time: s.time + delta, tailNotRoot: a.Tail != s.inst.Root()}
	s.pq.Insert(v, key)
}

// backwardFrontier returns, for w, the index one past the last entering
// arc whose saturation status is already decided — i.e. every index
// strictly before w's current candidate (s.nextArc[w]), or every index at
// all if w has been fully exhausted this run.
func (s *state) backwardFrontier(w dstgraph.Vertex) int {
	if _, ok := s.nextArc[w]; ok {
		return s.cursor[w] - 1
	}

	return s.cursor[w]
}
