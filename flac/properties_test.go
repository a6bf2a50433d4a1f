package flac_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dst-flac/dstgraph/gen"
	"github.com/katalvlaran/dst-flac/flac"
)

// TestSolve_RandomInstances_Properties runs P2–P3 across a batch of
// deterministic random instances: the tree is acyclic with in-degree ≤ 1
// everywhere, and the reported cost matches a direct recomputation from
// the original instance. P1 (every terminal reachable from the root) is
// checked by TestSolve_RandomInstances_TerminalsReached.
func TestSolve_RandomInstances_Properties(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		inst, err := gen.RandomSparseDST(10, 0.35, 0.3, seed)
		require.NoError(t, err)

		res, err := flac.Solve(inst)
		require.NoError(t, err)
		if !res.Feasible {
			continue
		}

		indeg := map[string]int{}
		outAdj := map[string][]string{}
		for _, a := range res.Arborescence {
			indeg[a.Head]++
			outAdj[a.Tail] = append(outAdj[a.Tail], a.Head)
		}
		for v, d := range indeg {
			require.LessOrEqualf(t, d, 1, "vertex %q has in-degree %d", v, d)
		}

		require.False(t, cyclicCheck(outAdj, inst.Root()), "arborescence must be acyclic")

		var want int64
		for _, a := range res.Arborescence {
			c, ok := inst.Cost(a.Tail, a.Head)
			require.True(t, ok)
			want += c
		}
		require.Equal(t, want, res.TotalCost)
	}
}

// cyclicCheck is a plain DFS cycle detector used only to phrase the
// acyclicity assertion above in one line; a real cycle would mean some
// vertex is visited twice on the active DFS path.
func cyclicCheck(adj map[string][]string, root string) bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	var dfs func(v string) bool
	dfs = func(v string) bool {
		color[v] = gray
		for _, w := range adj[v] {
			switch color[w] {
			case gray:
				return true
			case white:
				if dfs(w) {
					return true
				}
			}
		}
		color[v] = black
		return false
	}
	return dfs(root)
}

func TestSolve_RandomInstances_TerminalsReached(t *testing.T) {
	inst, err := gen.RandomSparseDST(14, 0.4, 0.35, 7)
	require.NoError(t, err)

	res, err := flac.Solve(inst)
	require.NoError(t, err)
	if !res.Feasible {
		t.Skip("instance sampled infeasible for this seed")
	}

	reachableFrom := map[string][]string{}
	for _, a := range res.Arborescence {
		reachableFrom[a.Tail] = append(reachableFrom[a.Tail], a.Head)
	}
	visited := map[string]bool{inst.Root(): true}
	queue := []string{inst.Root()}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		for _, next := range reachableFrom[w] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	for _, term := range inst.Terminals() {
		require.True(t, visited[term], "terminal %q not reachable from root in arborescence", term)
	}
}
