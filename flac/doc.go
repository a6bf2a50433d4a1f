// Package flac implements a heuristic solver for the Directed Steiner
// Tree problem: given a directed graph of non-negative integer arc
// costs, a root vertex, and a set of terminals, produce a feasible
// arborescence rooted at the root that spans every terminal while trying
// to keep total cost low.
//
// The solver is the combination of two algorithms:
//
//   - FLAC grows a simulated multi-source flow backward from the
//     terminals toward the root, saturating arcs in order of a
//     continuously advancing simulated clock, and stops as soon as the
//     flow reaches the root. It returns a low-density partial
//     arborescence: a tree that reaches *some* terminals cheaply.
//   - Solve (the "G_F" outer loop) repeatedly invokes FLAC, commits the
//     returned tree into a cumulative solution, zeroes the cost of every
//     committed arc so later FLAC runs are biased to reuse it, removes
//     the newly covered terminals from the outstanding set, and repeats
//     until every terminal is covered or a run fails to reach the root.
//
// FLAC's internals — the per-vertex sorted entering-arc index, the
// saturation-time priority queue, the source-set bookkeeping, and the
// conflict detector that keeps the result acyclic — are the hard part
// and are not exported; Solve and its Option/Result types are the only
// public surface.
//
// Complexity: each FLAC run processes at most one saturation event per
// vertex per distinct "current candidate", so a single run costs
// O((V+E) log V) against the priority queue; Solve invokes FLAC at most
// once per terminal in a correct execution, since every successful run
// retires at least one terminal (see WithMaxIterations).
package flac
