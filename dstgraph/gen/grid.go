package gen

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/dst-flac/dstgraph"
)

const minGridDim = 2

// GridDST builds a rows×cols 4-neighborhood directed grid (vertex IDs
// "r,c", row-major), rooted at "0,0", with arcs running both ways between
// every pair of orthogonally adjacent cells so a feasible arborescence
// can route around obstacles implied by terminal placement. Every arc
// costs 1 unless WithJitteredCosts/WithJitterSeed is supplied, in which
// case costs are drawn uniformly from [1, maxCost]. terminals names the
// subset of "r,c" coordinates to mark as terminal; every entry must lie
// within the grid.
func GridDST(rows, cols int, terminals []dstgraph.Vertex, opts ...Option) (*dstgraph.Instance, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%w: rows=%d cols=%d < min=%d", ErrTooFewVertices, rows, cols, minGridDim)
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	var rng *rand.Rand
	if cfg.jitter {
		if !cfg.haveSeed {
			return nil, ErrNeedRandSource
		}
		rng = rand.New(rand.NewSource(cfg.jitterSeed))
	}

	id := func(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }

	known := make(map[dstgraph.Vertex]struct{}, rows*cols)
	b := dstgraph.NewBuilder().SetRoot(id(0, 0))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := id(r, c)
			known[v] = struct{}{}
			b.AddVertex(v)
		}
	}

	cost := func() int64 {
		if rng == nil {
			return 1
		}
		return 1 + rng.Int63n(cfg.maxCost)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := id(r, c)
			if c+1 < cols {
				w := id(r, c+1)
				b.AddArc(v, w, cost())
				b.AddArc(w, v, cost())
			}
			if r+1 < rows {
				w := id(r+1, c)
				b.AddArc(v, w, cost())
				b.AddArc(w, v, cost())
			}
		}
	}

	for _, t := range terminals {
		if _, ok := known[t]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTerminal, t)
		}
		b.AddTerminal(t)
	}

	return b.Build()
}
