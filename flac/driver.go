package flac

import (
	"fmt"

	"github.com/katalvlaran/dst-flac/dstgraph"
)

// Solve computes a heuristic directed Steiner arborescence over inst,
// rooted at inst.Root() and spanning every terminal in inst.Terminals().
//
// It repeatedly runs FLAC against the outstanding (not yet covered)
// terminal set, commits each run's tree into the cumulative solution,
// zeroes the cost of every committed arc (so later runs prefer reusing
// already-built infrastructure over paying for it twice), and retires the
// terminals that run's tree reached. It stops when every terminal is
// covered (Result.Feasible == true) or a run fails to reach the root
// before its candidates are exhausted (Result.Feasible == false).
//
// Solve returns a non-nil error only for a malformed instance or an
// iteration-limit violation — both programming errors, not properties of
// the input graph. Infeasibility is reported through Result, not error.
func Solve(inst *dstgraph.Instance, opts ...Option) (Result, error) {
	if inst == nil {
		return Result{}, ErrNilInstance
	}
	if inst.Root() == "" {
		return Result{}, ErrNoRoot
	}

	cfg := defaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	idx := newArcIndex(inst)

	outstanding := make(map[dstgraph.Vertex]struct{})
	for _, t := range inst.Terminals() {
		if t != inst.Root() {
			outstanding[t] = struct{}{}
		}
	}

	committed := make(map[arcPair]struct{})
	var solution []dstgraph.Arc

	iteration := 0
	for len(outstanding) > 0 {
		iteration++
		if cfg.maxIterations > 0 && iteration > cfg.maxIterations {
			return Result{}, fmt.Errorf("%w: limit=%d", ErrIterationLimit, cfg.maxIterations)
		}

		run := newState(inst, idx, outstanding)
		tree, reached, ok := run.run()
		if !ok {
			if cfg.verbose {
				cfg.logger("flac: run %d could not reach the root; instance is infeasible", iteration)
			}

			return Result{Feasible: false}, nil
		}

		for _, a := range tree {
			key := arcPair{a.Tail, a.Head}
			if _, dup := committed[key]; dup {
				continue
			}
			committed[key] = struct{}{}
			solution = append(solution, a)
			idx.Reprice(a.Tail, a.Head, 0)
		}
		for _, t := range reached {
			delete(outstanding, t)
		}

		if cfg.observer != nil {
			cfg.observer(iteration, tree, reached)
		}
		if cfg.verbose {
			cfg.logger("flac: run %d committed %d arcs, retired %v, %d terminals remaining",
				iteration, len(tree), reached, len(outstanding))
		}
	}

	var total int64
	for _, a := range solution {
		c, _ := inst.Cost(a.Tail, a.Head)
		total += c
	}

	return Result{Feasible: true, Arborescence: solution, TotalCost: total}, nil
}
