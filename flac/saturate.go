package flac

import "github.com/katalvlaran/dst-flac/dstgraph"

// saturateArcAndUpdate commits arc a = (u, v) as saturated and propagates
// its consequences backward from u: every vertex w already reachable from
// u over saturated arcs gains v's sources, its inflow rate changes
// accordingly, and its schedule is updated to reflect the new rate —
// either accelerated in place (if w was already waiting on a candidate)
// or introduced to the schedule for the first time (if this is the first
// source w has ever received).
func (s *state) saturateArcAndUpdate(a dstgraph.Arc) {
	s.markSaturated(a)
	vSrc := s.sourcesOf(a.Head)

	visited := map[dstgraph.Vertex]bool{a.Tail: true}
	queue := []dstgraph.Vertex{a.Tail}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]

		prevRate := s.sourcesOf(w).Len()
		s.sourcesOf(w).Union(vSrc)
		newRate := s.sourcesOf(w).Len()

		switch {
		case prevRate > 0:
			if key, ok := s.pq.Key(w); ok {
				accelerated := s.time + (key.time-s.time)*float64(prevRate)/float64(newRate)
				s.pq.DecreaseKey(w, pqKey{time: accelerated, tailNotRoot: key.tailNotRoot})
			}
		default:
			s.updateNextSaturatedArc(w)
		}

		limit := s.backwardFrontier(w)
		n := s.idx.Len(w)
		if limit > n {
			limit = n
		}
		for i := 0; i < limit; i++ {
			e, _ := s.idx.At(w, i)
			if !s.isSaturated(e) {
				continue
			}
			if t := e.Tail; !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
	}
}
