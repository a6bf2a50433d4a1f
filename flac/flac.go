package flac

import "github.com/katalvlaran/dst-flac/dstgraph"

type arcPair struct{ tail, head dstgraph.Vertex }

// state is FLAC's per-run state. It is constructed fresh (reinit) at the
// start of every invocation of run and discarded when run returns — only
// the arcIndex survives across runs, owned by the caller (Solve's driver),
// since G_F's cost-zeroing between runs must be visible to the next run's
// candidate ordering.
type state struct {
	inst *dstgraph.Instance
	idx  *arcIndex

	time      float64
	pq        *scheduler
	sources   map[dstgraph.Vertex]sourceSet
	cursor    map[dstgraph.Vertex]int
	nextArc   map[dstgraph.Vertex]dstgraph.Arc
	saturated map[arcPair]struct{}
}

// newState builds the per-run state for a FLAC invocation over the given
// outstanding terminal set (terminals not yet covered by a prior run in
// this Solve call). Every outstanding terminal starts as its own trivial
// source and is scheduled against its cheapest entering arc, if it has
// one.
func newState(inst *dstgraph.Instance, idx *arcIndex, outstanding map[dstgraph.Vertex]struct{}) *state {
	st := &state{
		inst:      inst,
		idx:       idx,
		pq:        newScheduler(),
		sources:   make(map[dstgraph.Vertex]sourceSet),
		cursor:    make(map[dstgraph.Vertex]int),
		nextArc:   make(map[dstgraph.Vertex]dstgraph.Arc),
		saturated: make(map[arcPair]struct{}),
	}
	for t := range outstanding {
		st.sources[t] = newSourceSetOf(t)
		st.updateNextSaturatedArc(t)
	}

	return st
}

func (s *state) isSaturated(a dstgraph.Arc) bool {
	_, ok := s.saturated[arcPair{a.Tail, a.Head}]

	return ok
}

func (s *state) markSaturated(a dstgraph.Arc) {
	s.saturated[arcPair{a.Tail, a.Head}] = struct{}{}
}

func (s *state) sourcesOf(v dstgraph.Vertex) sourceSet {
	set, ok := s.sources[v]
	if !ok {
		set = newSourceSet()
		s.sources[v] = set
	}

	return set
}

// run simulates FLAC's flow saturation until either the root is reached
// (ok == true, with the saturated arcs reachable from the root and the
// outstanding terminals that reach covers) or the schedule runs dry before
// that happens (ok == false — this run cannot reach the root from the
// terminals it started with).
func (s *state) run() (tree []dstgraph.Arc, reached []dstgraph.Vertex, ok bool) {
	for {
		v, key, has := s.pq.ExtractMin()
		if !has {
			return nil, nil, false
		}
		a := s.nextArc[v]
		s.time = key.time
		u := a.Tail

		if u == s.inst.Root() {
			s.markSaturated(a)
			tree, reached = s.buildTree()

			return tree, reached, true
		}

		conflict := s.findConflict(u, v)
		s.updateNextSaturatedArc(v)
		if !conflict {
			s.saturateArcAndUpdate(a)
		}
	}
}
