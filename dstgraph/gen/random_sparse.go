package gen

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/dst-flac/dstgraph"
)

const minRandomSparseVertices = 2

// RandomSparseDST samples an Erdős–Rényi-style directed instance: n
// vertices "0".."n-1" with vertex "0" as root, each ordered pair (i, j),
// i != j, included as an arc independently with probability p and a cost
// drawn uniformly from [1, maxCost] (see WithMaxCost), and a terminalFrac
// fraction of the non-root vertices marked as terminals. Sampling order
// (i ascending, then j ascending) and the terminal pick are both
// deterministic for a fixed seed.
func RandomSparseDST(n int, p, terminalFrac float64, seed int64, opts ...Option) (*dstgraph.Instance, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%w: n=%d < min=%d", ErrTooFewVertices, n, minRandomSparseVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%.6f", ErrInvalidProbability, p)
	}
	if terminalFrac <= 0 || terminalFrac > 1 {
		return nil, fmt.Errorf("%w: terminalFrac=%.6f", ErrInvalidFraction, terminalFrac)
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	rng := rand.New(rand.NewSource(seed))

	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}

	b := dstgraph.NewBuilder().AddVertex(ids[0]).SetRoot(ids[0])
	for i := 1; i < n; i++ {
		b.AddVertex(ids[i])
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() > p {
				continue
			}
			cost := 1 + rng.Int63n(cfg.maxCost)
			b.AddArc(ids[i], ids[j], cost)
		}
	}

	numTerminals := int(float64(n-1) * terminalFrac)
	if numTerminals < 1 {
		numTerminals = 1
	}
	perm := rng.Perm(n - 1)
	for k := 0; k < numTerminals; k++ {
		b.AddTerminal(ids[perm[k]+1])
	}

	return b.Build()
}
