package boruvka_test

import (
	"context"
	"math/bits"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpar/boruvka"
	"github.com/katalvlaran/lvlpar/builder"
	"github.com/katalvlaran/lvlpar/csr"
)

// kruskalOracle computes the minimum spanning forest weight and edge count
// sequentially (sorted edges + union-find), as the reference to check the
// parallel computation against.
func kruskalOracle(n int, edges []csr.WeightedEdge) (int64, int) {
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return edges[order[i]].W < edges[order[j]].W
	})

	parent := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	var total int64
	count := 0
	for _, i := range order {
		e := edges[i]
		if e.U == e.V {
			continue
		}
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		parent[ru] = rv
		total += e.W
		count++
	}

	return total, count
}

// spanningForestCheck verifies the selected edges are acyclic and connect
// exactly n − components vertices.
func spanningForestCheck(t *testing.T, n int, edges []csr.WeightedEdge, res *boruvka.Result) {
	t.Helper()

	parent := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	for i, in := range res.InMST {
		if !in {
			continue
		}
		ru, rv := find(edges[i].U), find(edges[i].V)
		require.NotEqual(t, ru, rv, "selected edge %d closes a cycle", i)
		parent[ru] = rv
	}
	assert.Equal(t, n-res.Components, res.Edges, "forest size must be V − components")
}

// TestMST_EndToEndScenario pins the canonical 4-vertex scenario: three edges
// of total weight 4, one component, everything contracted to a single root.
func TestMST_EndToEndScenario(t *testing.T) {
	edges := []csr.WeightedEdge{
		{U: 0, V: 1, W: 1},
		{U: 1, V: 2, W: 2},
		{U: 2, V: 3, W: 1},
		{U: 0, V: 3, W: 3},
		{U: 1, V: 3, W: 4},
	}
	g, err := csr.BuildUndirected(4, edges)
	require.NoError(t, err)

	res, err := boruvka.MinimumSpanningTree(g)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Edges)
	assert.EqualValues(t, 4, res.TotalWeight)
	assert.Equal(t, 1, res.Components)
	assert.True(t, res.InMST[0], "0—1 (w=1) must be selected")
	assert.True(t, res.InMST[1], "1—2 (w=2) must be selected")
	assert.True(t, res.InMST[2], "2—3 (w=1) must be selected")
	assert.False(t, res.InMST[3])
	assert.False(t, res.InMST[4])
	spanningForestCheck(t, 4, edges, res)
}

// TestMST_EqualWeightTriangle pins the all-ties triangle: canonical selection
// keeps the successor graph to mutual pairs, so every run yields the same
// 2-edge tree even with one chunk per half-edge.
func TestMST_EqualWeightTriangle(t *testing.T) {
	edges := []csr.WeightedEdge{
		{U: 0, V: 1, W: 1}, {U: 0, V: 2, W: 1}, {U: 1, V: 2, W: 1},
	}
	g, err := csr.BuildUndirected(3, edges)
	require.NoError(t, err)

	want := []bool{true, true, false}
	for i := 0; i < 50; i++ {
		res, err := boruvka.MinimumSpanningTree(g, boruvka.WithWorkers(6), boruvka.WithGrain(1))
		require.NoError(t, err)
		assert.Equal(t, 2, res.Edges)
		assert.EqualValues(t, 2, res.TotalWeight)
		assert.Equal(t, 1, res.Components)
		assert.Equal(t, want, res.InMST)
	}
}

// TestMST_TieStorm verifies single-claim behavior end to end: a complete
// graph where every edge ties still yields exactly V−1 edges.
func TestMST_TieStorm(t *testing.T) {
	const n = 6
	edges := make([]csr.WeightedEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, csr.WeightedEdge{U: i, V: j, W: 1})
		}
	}
	g, err := csr.BuildUndirected(n, edges)
	require.NoError(t, err)

	res, err := boruvka.MinimumSpanningTree(g, boruvka.WithWorkers(8), boruvka.WithGrain(1))
	require.NoError(t, err)

	assert.Equal(t, n-1, res.Edges)
	assert.EqualValues(t, n-1, res.TotalWeight)
	assert.Equal(t, 1, res.Components)
	spanningForestCheck(t, n, edges, res)
}

// TestMST_ParallelEdges verifies duplicate edges between the same pair
// contribute the lighter one only.
func TestMST_ParallelEdges(t *testing.T) {
	edges := []csr.WeightedEdge{
		{U: 0, V: 1, W: 5},
		{U: 0, V: 1, W: 1},
	}
	g, err := csr.BuildUndirected(2, edges)
	require.NoError(t, err)

	res, err := boruvka.MinimumSpanningTree(g)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Edges)
	assert.EqualValues(t, 1, res.TotalWeight)
	assert.False(t, res.InMST[0])
	assert.True(t, res.InMST[1])
}

// TestMST_EqualParallelEdges verifies two equal-weight edges between the same
// pair contribute exactly one.
func TestMST_EqualParallelEdges(t *testing.T) {
	edges := []csr.WeightedEdge{
		{U: 0, V: 1, W: 1},
		{U: 0, V: 1, W: 1},
	}
	g, err := csr.BuildUndirected(2, edges)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		res, err := boruvka.MinimumSpanningTree(g, boruvka.WithWorkers(4), boruvka.WithGrain(1))
		require.NoError(t, err)
		assert.Equal(t, 1, res.Edges)
		assert.EqualValues(t, 1, res.TotalWeight)
	}
}

// TestMST_DisconnectedForest verifies each component contracts to its own
// root and the result is a forest.
func TestMST_DisconnectedForest(t *testing.T) {
	// Two triangles with no edge between them.
	edges := []csr.WeightedEdge{
		{U: 0, V: 1, W: 1}, {U: 1, V: 2, W: 2}, {U: 0, V: 2, W: 3},
		{U: 3, V: 4, W: 1}, {U: 4, V: 5, W: 2}, {U: 3, V: 5, W: 3},
	}
	g, err := csr.BuildUndirected(6, edges)
	require.NoError(t, err)

	res, err := boruvka.MinimumSpanningTree(g)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Components)
	assert.Equal(t, 4, res.Edges, "V − components = 6 − 2")
	assert.EqualValues(t, 6, res.TotalWeight)
	spanningForestCheck(t, 6, edges, res)
}

// TestMST_Degenerate covers the empty, single-vertex and edge-less inputs.
func TestMST_Degenerate(t *testing.T) {
	// nil graph
	_, err := boruvka.MinimumSpanningTree(nil)
	assert.ErrorIs(t, err, boruvka.ErrGraphNil)

	// no vertices at all
	g, err := csr.BuildUndirected(0, nil)
	require.NoError(t, err)
	res, err := boruvka.MinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Zero(t, res.Edges)
	assert.Zero(t, res.Components)
	assert.Zero(t, res.Rounds)

	// single vertex: trivially its own component
	g, err = csr.BuildUndirected(1, nil)
	require.NoError(t, err)
	res, err = boruvka.MinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Zero(t, res.Edges)
	assert.Equal(t, 1, res.Components)

	// isolated vertices only: every vertex roots itself without a round
	g, err = csr.BuildUndirected(5, nil)
	require.NoError(t, err)
	res, err = boruvka.MinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Zero(t, res.Edges)
	assert.Equal(t, 5, res.Components)

	// self-loops cannot join a tree
	g, err = csr.BuildUndirected(2, []csr.WeightedEdge{{U: 0, V: 0, W: 1}, {U: 1, V: 1, W: 1}})
	require.NoError(t, err)
	res, err = boruvka.MinimumSpanningTree(g)
	require.NoError(t, err)
	assert.Zero(t, res.Edges)
	assert.Equal(t, 2, res.Components)
}

// TestMST_TerminationBound verifies the outer loop stays within
// ceil(log2 V) rounds on a connected input.
func TestMST_TerminationBound(t *testing.T) {
	const n = 1024
	edges, err := builder.Path(n, 7)
	require.NoError(t, err)
	g, err := csr.BuildUndirected(n, edges)
	require.NoError(t, err)

	res, err := boruvka.MinimumSpanningTree(g)
	require.NoError(t, err)

	bound := bits.Len(uint(n - 1)) // ceil(log2 n)
	assert.LessOrEqual(t, res.Rounds, bound, "outer loop must halve components per round")
	assert.Equal(t, n-1, res.Edges)
	assert.Equal(t, 1, res.Components)
}

// TestMST_AgainstKruskalOracle cross-checks weight and size on random
// connected multigraphs of varied shapes.
func TestMST_AgainstKruskalOracle(t *testing.T) {
	cases := []struct {
		name      string
		n, extras int
		seed      int64
	}{
		{name: "sparse", n: 50, extras: 30, seed: 1},
		{name: "medium", n: 200, extras: 400, seed: 2},
		{name: "dense_duplicates", n: 40, extras: 2000, seed: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edges, err := builder.RandomConnected(tc.n, tc.extras, tc.seed)
			require.NoError(t, err)
			g, err := csr.BuildUndirected(tc.n, edges)
			require.NoError(t, err)

			res, err := boruvka.MinimumSpanningTree(g)
			require.NoError(t, err)

			wantWeight, wantCount := kruskalOracle(tc.n, edges)
			assert.Equal(t, wantCount, res.Edges)
			assert.Equal(t, wantWeight, res.TotalWeight)
			assert.Equal(t, 1, res.Components)
			spanningForestCheck(t, tc.n, edges, res)
		})
	}
}

// TestMST_DistinctWeightsUnique verifies that with all-distinct weights the
// selected edge set is unique, hence identical across worker counts.
func TestMST_DistinctWeightsUnique(t *testing.T) {
	const n = 64
	edges := make([]csr.WeightedEdge, 0, 2*n)
	w := int64(1)
	for i := 1; i < n; i++ {
		edges = append(edges, csr.WeightedEdge{U: i - 1, V: i, W: w})
		w += 3
	}
	for i := 0; i+7 < n; i += 5 {
		edges = append(edges, csr.WeightedEdge{U: i, V: i + 7, W: w})
		w += 3
	}
	g, err := csr.BuildUndirected(n, edges)
	require.NoError(t, err)

	serial, err := boruvka.MinimumSpanningTree(g, boruvka.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := boruvka.MinimumSpanningTree(g, boruvka.WithWorkers(16), boruvka.WithGrain(1))
	require.NoError(t, err)

	assert.Equal(t, serial.InMST, parallel.InMST, "distinct weights pin the edge set")
	assert.Equal(t, serial.TotalWeight, parallel.TotalWeight)
}

// TestMST_Cancellation verifies a cancelled context aborts the run with the
// context's error and no retries.
func TestMST_Cancellation(t *testing.T) {
	edges, err := builder.RandomConnected(200, 200, 11)
	require.NoError(t, err)
	g, err := csr.BuildUndirected(200, edges)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = boruvka.MinimumSpanningTree(g, boruvka.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
