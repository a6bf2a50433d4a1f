package gen

// Option customizes a generator call. Construct via the With* functions;
// option constructors validate and panic on meaningless arguments, matching
// this module's functional-option convention — generators themselves never
// panic, only their option constructors do.
type Option func(*config)

type config struct {
	maxCost    int64
	jitter     bool
	jitterSeed int64
	haveSeed   bool
}

func defaultConfig() config {
	return config{maxCost: 10}
}

// WithMaxCost bounds the inclusive upper end of the uniform [1, maxCost]
// range arc costs are sampled from. Panics if maxCost < 1.
func WithMaxCost(maxCost int64) Option {
	if maxCost < 1 {
		panic("gen: WithMaxCost: maxCost must be >= 1")
	}
	return func(c *config) { c.maxCost = maxCost }
}

// WithJitteredCosts asks GridDST to draw arc costs from [1, maxCost]
// instead of the uniform cost 1 it otherwise gives every grid edge.
// Requires a seed source: either combine with WithJitterSeed, or
// GridDST returns ErrNeedRandSource.
func WithJitteredCosts() Option {
	return func(c *config) { c.jitter = true }
}

// WithJitterSeed supplies the seed GridDST uses when jittering costs; it
// also implies WithJitteredCosts.
func WithJitterSeed(seed int64) Option {
	return func(c *config) { c.jitter = true; c.jitterSeed = seed; c.haveSeed = true }
}
