package flac

import "errors"

// Sentinel errors returned by Solve. They distinguish programming errors
// (bad instance, bad options) from the ordinary "no feasible tree" outcome,
// which is reported via Result.Feasible rather than an error — an
// infeasible instance is not a mistake, it is a valid answer.
var (
	// ErrNilInstance is returned when Solve is called with a nil instance.
	ErrNilInstance = errors.New("flac: instance is nil")

	// ErrNoRoot is returned when the instance has no usable root vertex.
	ErrNoRoot = errors.New("flac: instance has no root vertex")

	// ErrIterationLimit is returned when Solve's outer loop exceeds the
	// configured maximum number of FLAC invocations. With a limit of at
	// least the number of terminals this never triggers (every successful
	// FLAC run retires at least one terminal), so hitting it means either the
	// configured limit is unreasonably low or the instance is larger than
	// the limit anticipated.
	ErrIterationLimit = errors.New("flac: exceeded maximum FLAC iterations")

	// ErrInvalidOption is the panic value used by Option constructors that
	// receive an out-of-domain argument (mirrors this module's functional
	// option convention: fail at construction, not at first use).
	ErrInvalidOption = errors.New("flac: invalid option")
)
