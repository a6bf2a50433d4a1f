package gen

import "errors"

// Sentinel errors for generator parameter validation.
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols) is
	// smaller than the generator's minimum.
	ErrTooFewVertices = errors.New("gen: parameter too small")

	// ErrInvalidProbability indicates an edge probability fell outside
	// the closed interval [0,1].
	ErrInvalidProbability = errors.New("gen: probability out of range")

	// ErrInvalidFraction indicates a terminal fraction fell outside the
	// half-open interval (0,1].
	ErrInvalidFraction = errors.New("gen: terminal fraction out of range")

	// ErrNeedRandSource indicates GridDST was asked for jittered costs
	// without a seed (see WithJitterSeed).
	ErrNeedRandSource = errors.New("gen: rng is required")

	// ErrUnknownTerminal indicates GridDST was given a terminal coordinate
	// outside the grid's bounds.
	ErrUnknownTerminal = errors.New("gen: terminal outside grid bounds")
)
