package flac_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dst-flac/dstgraph"
	"github.com/katalvlaran/dst-flac/flac"
)

// ScenarioSuite exercises the concrete worked examples the package's
// design is built against — a greedy solver is only as trustworthy as
// its behavior on the cases that motivated its rules.
type ScenarioSuite struct {
	suite.Suite
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func build(t *testing.T, root string, terminals []string, arcs [][3]interface{}) *dstgraph.Instance {
	t.Helper()
	b := dstgraph.NewBuilder().SetRoot(root)
	for _, term := range terminals {
		b.AddTerminal(term)
	}
	for _, a := range arcs {
		b.AddArc(a[0].(string), a[1].(string), int64(a[2].(int)))
	}
	inst, err := b.Build()
	require.NoError(t, err)

	return inst
}

// S1 — trivial single arc.
func (s *ScenarioSuite) TestTrivial() {
	inst := build(s.T(), "0", []string{"1"}, [][3]interface{}{
		{"0", "1", 5},
	})
	res, err := flac.Solve(inst)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Feasible)
	require.Equal(s.T(), int64(5), res.TotalCost)
	require.ElementsMatch(s.T(), []dstgraph.Arc{{Tail: "0", Head: "1", Cost: 5}}, res.Arborescence)
}

// S2 — two terminals sharing a path, reached in a single FLAC pass.
func (s *ScenarioSuite) TestSharedPath() {
	inst := build(s.T(), "0", []string{"2", "3"}, [][3]interface{}{
		{"0", "1", 10}, {"1", "2", 1}, {"1", "3", 1},
	})
	res, err := flac.Solve(inst)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Feasible)
	require.Equal(s.T(), int64(12), res.TotalCost)
	require.Len(s.T(), res.Arborescence, 3)
}

// S3 — competing equal-cost paths; either is acceptable, but total cost
// must be the shared minimum.
func (s *ScenarioSuite) TestCompetingPaths() {
	inst := build(s.T(), "0", []string{"3"}, [][3]interface{}{
		{"0", "1", 1}, {"0", "2", 1}, {"1", "3", 5}, {"2", "3", 5},
	})
	res, err := flac.Solve(inst)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Feasible)
	require.Equal(s.T(), int64(6), res.TotalCost)
}

// S4 — zeroing the first run's committed arcs biases the second run to
// reuse the shared prefix instead of the direct, costlier arc.
func (s *ScenarioSuite) TestSharedPrefixAfterZeroing() {
	inst := build(s.T(), "0", []string{"2", "3"}, [][3]interface{}{
		{"0", "1", 1}, {"1", "2", 1}, {"1", "3", 1}, {"0", "3", 10},
	})
	res, err := flac.Solve(inst)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Feasible)
	require.Equal(s.T(), int64(3), res.TotalCost)
	require.ElementsMatch(s.T(), []dstgraph.Arc{
		{Tail: "0", Head: "1", Cost: 1},
		{Tail: "1", Head: "2", Cost: 1},
		{Tail: "1", Head: "3", Cost: 1},
	}, res.Arborescence)
}

// S5 — a terminal with no entering arc makes the instance infeasible.
func (s *ScenarioSuite) TestInfeasible() {
	inst := build(s.T(), "0", []string{"1", "2"}, [][3]interface{}{
		{"0", "1", 1},
	})
	res, err := flac.Solve(inst)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Feasible)
}

// S6 — both incoming arcs of the terminal saturate at the same instant;
// the run must still end with in-degree 1 at the terminal.
func (s *ScenarioSuite) TestConflictAvoidance() {
	inst := build(s.T(), "0", []string{"3"}, [][3]interface{}{
		{"0", "1", 1}, {"0", "2", 1}, {"1", "3", 1}, {"2", "3", 1},
	})
	res, err := flac.Solve(inst)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Feasible)
	require.Equal(s.T(), int64(2), res.TotalCost)

	indeg := map[string]int{}
	for _, a := range res.Arborescence {
		indeg[a.Head]++
	}
	for v, d := range indeg {
		require.LessOrEqualf(s.T(), d, 1, "vertex %q has in-degree %d", v, d)
	}
}

// P8 — every terminal equal to the root yields an empty, feasible, zero
// cost arborescence.
func TestSolve_AllTerminalsAtRoot(t *testing.T) {
	inst, err := dstgraph.NewBuilder().
		SetRoot("0").
		AddTerminal("0").
		AddArc("0", "1", 5).
		Build()
	require.NoError(t, err)

	res, err := flac.Solve(inst)
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Equal(t, int64(0), res.TotalCost)
	require.Empty(t, res.Arborescence)
}

func TestSolve_NilInstance(t *testing.T) {
	_, err := flac.Solve(nil)
	require.ErrorIs(t, err, flac.ErrNilInstance)
}

func TestSolve_ObserverAndVerbose(t *testing.T) {
	inst := build(t, "0", []string{"1"}, [][3]interface{}{{"0", "1", 3}})
	var calls int
	res, err := flac.Solve(inst, flac.WithObserver(func(iteration int, tree []dstgraph.Arc, newly []dstgraph.Vertex) {
		calls++
	}), flac.WithVerbose(true), flac.WithLogger(func(format string, args ...interface{}) {}))
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Equal(t, 1, calls)
}

func TestSolve_IterationLimit(t *testing.T) {
	// Two terminals attached directly to the root race to finish the run
	// that reaches the root first; the loser needs its own, later run —
	// so this instance genuinely needs two FLAC invocations.
	inst := build(t, "0", []string{"1", "2"}, [][3]interface{}{
		{"0", "1", 1}, {"0", "2", 1},
	})
	_, err := flac.Solve(inst, flac.WithMaxIterations(1))
	require.ErrorIs(t, err, flac.ErrIterationLimit)

	res, err := flac.Solve(inst, flac.WithMaxIterations(0))
	require.NoError(t, err)
	require.True(t, res.Feasible)
	require.Equal(t, int64(2), res.TotalCost)
}
