package dstgraph

import "errors"

// Sentinel errors for instance construction. Structural violations are
// reported this way rather than by panicking — the solver core treats them
// as the "Programming error" outcome of spec §7, an ordinary error return,
// not a crash.
var (
	// ErrEmptyVertexID indicates a vertex with an empty ID was supplied.
	ErrEmptyVertexID = errors.New("dstgraph: vertex ID is empty")

	// ErrNegativeCost indicates an arc was given a negative cost.
	ErrNegativeCost = errors.New("dstgraph: arc cost is negative")

	// ErrUnknownVertex indicates an arc or the root/terminal set referenced
	// a vertex ID that was never registered.
	ErrUnknownVertex = errors.New("dstgraph: reference to unknown vertex")

	// ErrDuplicateArc indicates two arcs were added for the same ordered
	// (tail, head) pair. This module does not support parallel arcs: the
	// sorted entering-arc index (flac.arcIndex) keys on (cost, tail, head),
	// and a duplicate ordered pair would make "the cheapest unsaturated
	// entering arc" ambiguous between two *equal* triples.
	ErrDuplicateArc = errors.New("dstgraph: duplicate arc between same endpoints")

	// ErrNoRoot indicates Builder.Build was called without a designated
	// root vertex.
	ErrNoRoot = errors.New("dstgraph: no root vertex designated")
)

// Vertex identifies a node of an Instance by a unique string ID.
type Vertex = string

// Arc is a directed edge between two vertices, carrying a non-negative
// integer cost. Arc values are immutable and comparable; (Tail, Head)
// uniquely identifies an arc within an Instance.
type Arc struct {
	Tail Vertex
	Head Vertex
	Cost int64
}

// Less defines the total order on arcs required by the sorted
// entering-arc index: cost first, tail as tiebreak, head as final
// tiebreak. It reads the Cost field of the receiver and rhs directly, so
// callers wanting live re-comparison after a cost change must look the
// arc back up from wherever the current cost is kept (an Instance always
// holds the original costs) rather than reuse a stale copy.
func (a Arc) Less(b Arc) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.Tail != b.Tail {
		return a.Tail < b.Tail
	}
	return a.Head < b.Head
}

// Equal reports whether a and b share the same endpoints.
func (a Arc) Equal(b Arc) bool {
	return a.Tail == b.Tail && a.Head == b.Head
}
