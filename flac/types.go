package flac

import (
	"fmt"

	"github.com/katalvlaran/dst-flac/dstgraph"
)

// Result is the outcome of Solve.
//
// Feasible distinguishes "every terminal was covered" from "the instance
// has no feasible arborescence" — both are normal return values, not
// errors. A Result with Feasible == false carries a zero Arborescence and
// TotalCost; callers must not treat an empty Arborescence alone as success,
// since a root-equals-every-terminal instance also legitimately produces
// an empty, feasible, zero-cost Arborescence (see
// TestSolve_AllTerminalsAtRoot).
type Result struct {
	Feasible     bool
	Arborescence []dstgraph.Arc
	TotalCost    int64
}

// Observer is invoked once per FLAC run inside Solve's outer loop, after
// that run's tree has been committed. iteration is 1-based. tree is the
// set of arcs that run saturated and found reachable from the root; newly
// is the subset of terminals that tree's reach retired this round.
type Observer func(iteration int, tree []dstgraph.Arc, newly []dstgraph.Vertex)

// Logger receives free-form progress messages when WithVerbose is set.
// Its signature matches this module's existing fmt.Sprintf-style logging
// convention rather than a structured logging package, since Solve's
// progress messages are unstructured narration, not machine-parsed events.
type Logger func(format string, args ...interface{})

// Options collects Solve's tunables. Construct via the With* functions
// below; the zero value is never exposed directly.
type Options struct {
	observer      Observer
	verbose       bool
	logger        Logger
	maxIterations int
}

// Option configures a Solve call.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		logger: func(format string, args ...interface{}) { fmt.Printf(format+"\n", args...) },
	}
}

// WithObserver registers a callback invoked after each FLAC run commits its
// tree. Panics if obs is nil, since a nil observer silently configured is
// more likely a caller bug than an intentional no-op.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(fmt.Errorf("%w: WithObserver: nil observer", ErrInvalidOption))
	}
	return func(o *Options) { o.observer = obs }
}

// WithVerbose enables narration of each FLAC run's outcome via the
// configured Logger (fmt.Printf to stdout by default).
func WithVerbose(v bool) Option {
	return func(o *Options) { o.verbose = v }
}

// WithLogger overrides the destination for verbose narration. Panics if
// log is nil.
func WithLogger(log Logger) Option {
	if log == nil {
		panic(fmt.Errorf("%w: WithLogger: nil logger", ErrInvalidOption))
	}
	return func(o *Options) { o.logger = log }
}

// WithMaxIterations caps the number of FLAC runs Solve will invoke before
// giving up with ErrIterationLimit. maxIter == 0 means unbounded (the
// default — correct executions never need more than one run per
// terminal). Panics if maxIter is negative; zero is accepted as a
// spelling of "unbounded".
func WithMaxIterations(maxIter int) Option {
	if maxIter < 0 {
		panic(fmt.Errorf("%w: WithMaxIterations: negative limit %d", ErrInvalidOption, maxIter))
	}
	return func(o *Options) { o.maxIterations = maxIter }
}
