package gen_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dst-flac/dstgraph/gen"
)

func TestRandomSparseDST_Deterministic(t *testing.T) {
	a, err := gen.RandomSparseDST(12, 0.3, 0.25, 42)
	if err != nil {
		t.Fatalf("RandomSparseDST: %v", err)
	}
	b, err := gen.RandomSparseDST(12, 0.3, 0.25, 42)
	if err != nil {
		t.Fatalf("RandomSparseDST: %v", err)
	}
	if a.NumVertices() != b.NumVertices() {
		t.Fatalf("same seed produced different vertex counts: %d vs %d", a.NumVertices(), b.NumVertices())
	}
	for _, v := range a.Vertices() {
		if a.IsTerminal(v) != b.IsTerminal(v) {
			t.Fatalf("same seed produced different terminal sets at %q", v)
		}
	}
}

func TestRandomSparseDST_TooFewVertices(t *testing.T) {
	_, err := gen.RandomSparseDST(1, 0.5, 0.5, 1)
	if !errors.Is(err, gen.ErrTooFewVertices) {
		t.Fatalf("err = %v, want ErrTooFewVertices", err)
	}
}

func TestRandomSparseDST_InvalidProbability(t *testing.T) {
	_, err := gen.RandomSparseDST(5, 1.5, 0.5, 1)
	if !errors.Is(err, gen.ErrInvalidProbability) {
		t.Fatalf("err = %v, want ErrInvalidProbability", err)
	}
}

func TestRandomSparseDST_InvalidFraction(t *testing.T) {
	_, err := gen.RandomSparseDST(5, 0.5, 0, 1)
	if !errors.Is(err, gen.ErrInvalidFraction) {
		t.Fatalf("err = %v, want ErrInvalidFraction", err)
	}
}

func TestGridDST_Basic(t *testing.T) {
	inst, err := gen.GridDST(3, 3, []string{"2,2"})
	if err != nil {
		t.Fatalf("GridDST: %v", err)
	}
	if inst.Root() != "0,0" {
		t.Fatalf("Root() = %q, want 0,0", inst.Root())
	}
	if !inst.IsTerminal("2,2") {
		t.Fatalf("expected 2,2 to be terminal")
	}
	cost, ok := inst.Cost("0,0", "0,1")
	if !ok || cost != 1 {
		t.Fatalf("Cost(0,0 -> 0,1) = (%d,%v), want (1,true)", cost, ok)
	}
}

func TestGridDST_UnknownTerminal(t *testing.T) {
	_, err := gen.GridDST(2, 2, []string{"9,9"})
	if !errors.Is(err, gen.ErrUnknownTerminal) {
		t.Fatalf("err = %v, want ErrUnknownTerminal", err)
	}
}

func TestGridDST_JitterNeedsSeed(t *testing.T) {
	_, err := gen.GridDST(2, 2, nil, gen.WithJitteredCosts())
	if !errors.Is(err, gen.ErrNeedRandSource) {
		t.Fatalf("err = %v, want ErrNeedRandSource", err)
	}
}

func TestGridDST_TooSmall(t *testing.T) {
	_, err := gen.GridDST(1, 3, nil)
	if !errors.Is(err, gen.ErrTooFewVertices) {
		t.Fatalf("err = %v, want ErrTooFewVertices", err)
	}
}
