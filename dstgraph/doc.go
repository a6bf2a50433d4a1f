// Package dstgraph provides the directed, non-negatively weighted graph
// instance that the flac package solves Directed Steiner Tree problems
// over.
//
// An Instance fixes a root vertex and a terminal set on top of a plain
// directed graph of int64 arc costs. It is deliberately narrower than a
// general-purpose graph library: no undirected edges, no multi-edges, no
// per-edge directedness overrides — a Steiner instance never needs any of
// that, so none of it is exposed here. Builder does not reject self-loop
// arcs (tail == head).
//
// Construction validates the three structural preconditions the solver
// core assumes and refuses to see: non-negative costs, arcs referencing
// known vertices only, and no duplicate ordered arc pairs. Once built, an
// Instance is immutable; flac.Solve never mutates it.
package dstgraph
