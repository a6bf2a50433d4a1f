package flac

import "github.com/katalvlaran/dst-flac/dstgraph"

// sourceSet is the set of terminals reachable from a vertex via a directed
// path of already-saturated arcs. It is map-backed rather than
// union-find-backed: conflict detection (findConflict) needs a true
// intersection test between two vertices' source sets, not just a
// representative-equality check, so a disjoint-set forest — which answers
// "are these the same set" in near-constant time but cannot enumerate a
// set's members cheaply — is the wrong tool here even though this module
// uses union-find's sibling structure, sorted adjacency, elsewhere.
type sourceSet map[dstgraph.Vertex]struct{}

func newSourceSet() sourceSet { return make(sourceSet) }

func newSourceSetOf(v dstgraph.Vertex) sourceSet {
	return sourceSet{v: struct{}{}}
}

// Len reports the number of terminals in the set.
func (s sourceSet) Len() int { return len(s) }

// Union merges other's members into s in place.
func (s sourceSet) Union(other sourceSet) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Intersects reports whether s and other share at least one terminal.
func (s sourceSet) Intersects(other sourceSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for v := range small {
		if _, ok := big[v]; ok {
			return true
		}
	}

	return false
}
