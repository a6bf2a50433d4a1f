package flac

import "github.com/katalvlaran/dst-flac/dstgraph"

// findConflict reports whether committing the arc u→v would merge two
// components of the in-progress flow that already share a terminal — the
// structural situation that would make the eventual arborescence either
// cyclic or give some vertex in-degree greater than one.
//
// It walks backward from u over already-saturated arcs (u itself, then
// the tails of its saturated entering arcs, and so on), and for
// every vertex w visited along the way — including u itself — tests
// whether w's source set intersects v's. A vertex already standing for
// one of v's terminals means u is already, transitively, on a path to that
// terminal; attaching u→v on top of that would double-connect it.
func (s *state) findConflict(u, v dstgraph.Vertex) bool {
	target := s.sourcesOf(v)

	visited := map[dstgraph.Vertex]bool{u: true}
	stack := []dstgraph.Vertex{u}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.sourcesOf(w).Intersects(target) {
			return true
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
				stack = append(stack, t)
			}
		}
	}

	return false
}
