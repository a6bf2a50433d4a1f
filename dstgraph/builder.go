package dstgraph

import (
	"fmt"
	"sort"
)

// pendingArc is an arc recorded by the builder before validation — kept
// separate from Arc so that Builder.Build can report which call produced
// a bad value without threading extra state through Arc itself.
type pendingArc struct {
	tail, head Vertex
	cost       int64
}

// Builder assembles an Instance incrementally and validates it once, at
// Build time — the same single-orchestrator discipline this module's
// topology generators use (collect mutations, validate everything in one
// deterministic pass, return sentinel errors rather than panic).
//
// If AddVertex is never called, Build infers the vertex set from the
// root, the terminals, and every arc endpoint (a permissive default
// matching "instance loading is out of scope" — the builder does not
// insist on an explicit catalog). Once AddVertex has been called at least
// once, the vertex set becomes strict: any arc, terminal, or root
// referencing an unregistered ID is rejected with ErrUnknownVertex.
type Builder struct {
	vertices  map[Vertex]struct{}
	strict    bool
	root      Vertex
	terminals map[Vertex]struct{}
	arcs      []pendingArc
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		vertices:  make(map[Vertex]struct{}),
		terminals: make(map[Vertex]struct{}),
	}
}

// AddVertex registers v explicitly and switches the builder into strict
// mode (see Builder doc). Idempotent.
func (b *Builder) AddVertex(v Vertex) *Builder {
	b.strict = true
	b.vertices[v] = struct{}{}

	return b
}

// SetRoot designates the instance's root vertex.
func (b *Builder) SetRoot(v Vertex) *Builder {
	b.root = v

	return b
}

// AddTerminal adds v to the terminal set. Idempotent.
func (b *Builder) AddTerminal(v Vertex) *Builder {
	b.terminals[v] = struct{}{}

	return b
}

// AddArc records a directed arc tail→head with the given cost. Validation
// (non-negative cost, known endpoints, no duplicate ordered pair) is
// deferred to Build.
func (b *Builder) AddArc(tail, head Vertex, cost int64) *Builder {
	b.arcs = append(b.arcs, pendingArc{tail: tail, head: head, cost: cost})

	return b
}

// Build validates every recorded mutation and returns the resulting
// Instance, or the first structural violation encountered, in this order:
//  1. no root designated (ErrNoRoot)
//  2. an empty terminal ID (ErrEmptyVertexID)
//  3. per arc, in the order added: an empty endpoint ID
//     (ErrEmptyVertexID) or a negative cost (ErrNegativeCost)
//  4. unknown vertex reference, strict mode only (ErrUnknownVertex)
//  5. duplicate ordered arc pair (ErrDuplicateArc)
func (b *Builder) Build() (*Instance, error) {
	if b.root == "" {
		return nil, ErrNoRoot
	}
	if containsEmpty(b.terminals) {
		return nil, ErrEmptyVertexID
	}
	for _, a := range b.arcs {
		if a.tail == "" || a.head == "" {
			return nil, ErrEmptyVertexID
		}
		if a.cost < 0 {
			return nil, fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, a.tail, a.head, a.cost)
		}
	}

	known := b.vertices
	if !b.strict {
		known = make(map[Vertex]struct{}, len(b.arcs)*2+len(b.terminals)+1)
		known[b.root] = struct{}{}
		for t := range b.terminals {
			known[t] = struct{}{}
		}
		for _, a := range b.arcs {
			known[a.tail] = struct{}{}
			known[a.head] = struct{}{}
		}
	} else {
		if _, ok := known[b.root]; !ok {
			return nil, fmt.Errorf("%w: root %q", ErrUnknownVertex, b.root)
		}
		for t := range b.terminals {
			if _, ok := known[t]; !ok {
				return nil, fmt.Errorf("%w: terminal %q", ErrUnknownVertex, t)
			}
		}
		for _, a := range b.arcs {
			if _, ok := known[a.tail]; !ok {
				return nil, fmt.Errorf("%w: arc tail %q", ErrUnknownVertex, a.tail)
			}
			if _, ok := known[a.head]; !ok {
				return nil, fmt.Errorf("%w: arc head %q", ErrUnknownVertex, a.head)
			}
		}
	}

	seen := make(map[Vertex]map[Vertex]struct{}, len(known))
	out := make(map[Vertex][]Arc, len(known))
	in := make(map[Vertex][]Arc, len(known))
	for _, a := range b.arcs {
		if seen[a.tail] == nil {
			seen[a.tail] = make(map[Vertex]struct{})
		}
		if _, dup := seen[a.tail][a.head]; dup {
			return nil, fmt.Errorf("%w: %s→%s", ErrDuplicateArc, a.tail, a.head)
		}
		seen[a.tail][a.head] = struct{}{}

		arc := Arc{Tail: a.tail, Head: a.head, Cost: a.cost}
		out[a.tail] = append(out[a.tail], arc)
		in[a.head] = append(in[a.head], arc)
	}

	vertices := make([]Vertex, 0, len(known))
	for v := range known {
		vertices = append(vertices, v)
	}
	sort.Strings(vertices)

	terminals := make(map[Vertex]struct{}, len(b.terminals))
	for t := range b.terminals {
		terminals[t] = struct{}{}
	}

	return &Instance{
		root:      b.root,
		terminals: terminals,
		vertices:  vertices,
		out:       out,
		in:        in,
	}, nil
}

func containsEmpty(set map[Vertex]struct{}) bool {
	_, ok := set[""]

	return ok
}
