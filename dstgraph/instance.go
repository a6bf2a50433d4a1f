package dstgraph

import "sort"

// Instance is an immutable directed graph with non-negative integer arc
// costs, a designated root vertex, and a terminal set. It is the concrete
// type that satisfies the instance-provider contract the flac package's
// solver core consumes (root, terminals, vertices, entering/outgoing
// arcs, cost).
//
// Instance is built once via Builder and never mutated afterward; flac's
// driver keeps its own mutable cost-map copy rather than touching this
// type (see flac.arcIndex).
type Instance struct {
	root      Vertex
	terminals map[Vertex]struct{}
	vertices  []Vertex // sorted, deterministic enumeration order
	out       map[Vertex][]Arc
	in        map[Vertex][]Arc
}

// Root returns the instance's designated root vertex.
func (inst *Instance) Root() Vertex { return inst.root }

// Terminals returns the terminal set in sorted order. The returned slice
// is a fresh copy; callers may mutate it freely.
func (inst *Instance) Terminals() []Vertex {
	out := make([]Vertex, 0, len(inst.terminals))
	for t := range inst.terminals {
		out = append(out, t)
	}
	sort.Strings(out)

	return out
}

// IsTerminal reports whether v belongs to the instance's terminal set.
func (inst *Instance) IsTerminal(v Vertex) bool {
	_, ok := inst.terminals[v]

	return ok
}

// Vertices returns every vertex ID in the instance, sorted ascending.
func (inst *Instance) Vertices() []Vertex {
	out := make([]Vertex, len(inst.vertices))
	copy(out, inst.vertices)

	return out
}

// HasVertex reports whether id names a vertex of the instance.
func (inst *Instance) HasVertex(id Vertex) bool {
	i := sort.SearchStrings(inst.vertices, id)

	return i < len(inst.vertices) && inst.vertices[i] == id
}

// EnteringArcs returns every arc whose head is v, in no particular order
// (callers that need cost order build their own index — see
// flac.arcIndex). The returned slice is a fresh copy.
func (inst *Instance) EnteringArcs(v Vertex) []Arc {
	arcs := inst.in[v]
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}

// OutgoingArcs returns every arc whose tail is v, in no particular order.
// The returned slice is a fresh copy.
func (inst *Instance) OutgoingArcs(v Vertex) []Arc {
	arcs := inst.out[v]
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}

// Cost reports the cost of the arc tail→head and whether that arc exists.
func (inst *Instance) Cost(tail, head Vertex) (int64, bool) {
	for _, a := range inst.out[tail] {
		if a.Head == head {
			return a.Cost, true
		}
	}

	return 0, false
}

// NumVertices returns the number of vertices in the instance.
func (inst *Instance) NumVertices() int { return len(inst.vertices) }
