package flac

import "github.com/katalvlaran/dst-flac/dstgraph"

// buildTree walks forward from the root over this run's saturated arcs,
// collecting every arc reached (the run's contribution to the cumulative
// arborescence) and every outstanding terminal reached along the way.
// Arcs saturated this run but not forward-reachable from the root — a
// candidate branch that lost the race to reach the root first — are left
// out; their effects are discarded along with the rest of this run's
// state.
func (s *state) buildTree() (tree []dstgraph.Arc, reached []dstgraph.Vertex) {
	root := s.inst.Root()
	visited := map[dstgraph.Vertex]bool{root: true}
	stack := []dstgraph.Vertex{root}

	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, a := range s.inst.OutgoingArcs(w) {
			if !s.isSaturated(a) {
				continue
			}
			tree = append(tree, a)
			if visited[a.Head] {
				continue
			}
			visited[a.Head] = true
			// Only an outstanding terminal's source set holds the terminal
			// itself (newState seeds it); retired terminals never do.
			if _, own := s.sources[a.Head][a.Head]; own && s.inst.IsTerminal(a.Head) {
				reached = append(reached, a.Head)
			}
			stack = append(stack, a.Head)
		}
	}

	return tree, reached
}
