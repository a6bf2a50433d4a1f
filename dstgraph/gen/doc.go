// Package gen builds dstgraph.Instance fixtures for tests and benchmarks,
// trimmed to the two topology families a directed Steiner tree solver
// actually needs to exercise against: a sparse random digraph with a
// marked terminal subset, and a grid. Option constructors panic on
// meaningless arguments and generators report bad parameters through
// sentinel errors; the random generator samples arcs in Erdős–Rényi trial
// order. No other topology families are provided.
package gen
