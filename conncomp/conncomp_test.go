package conncomp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpar/builder"
	"github.com/katalvlaran/lvlpar/conncomp"
	"github.com/katalvlaran/lvlpar/csr"
)

// TestComponents_TwoIslands verifies labels converge to the minimum vertex id
// of each component.
func TestComponents_TwoIslands(t *testing.T) {
	// Component {0,1,2} and component {3,4}; vertex 5 isolated.
	g, err := csr.BuildUndirected(6, []csr.WeightedEdge{
		{U: 0, V: 1, W: 1},
		{U: 1, V: 2, W: 1},
		{U: 3, V: 4, W: 1},
	})
	require.NoError(t, err)

	res, err := conncomp.Components(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 0, 3, 3, 5}, res.Labels)
	assert.Equal(t, 3, res.Count)
}

// TestComponents_SingleVertex verifies the smallest valid input.
func TestComponents_SingleVertex(t *testing.T) {
	g, err := csr.BuildUndirected(1, nil)
	require.NoError(t, err)

	res, err := conncomp.Components(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, res.Labels)
	assert.Equal(t, 1, res.Count)
}

// TestComponents_LongChainConverges verifies the fixed-point loop on a deep
// component under aggressive chunking.
func TestComponents_LongChainConverges(t *testing.T) {
	const n = 512
	edges, err := builder.Path(n, 1)
	require.NoError(t, err)
	g, err := csr.BuildUndirected(n, edges)
	require.NoError(t, err)

	res, err := conncomp.Components(g, conncomp.WithWorkers(8), conncomp.WithGrain(1))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Count)
	for v, l := range res.Labels {
		assert.Zero(t, l, "vertex %d must adopt the component minimum", v)
	}
}

// TestComponents_SelfLoopsIgnored verifies loops never merge anything.
func TestComponents_SelfLoopsIgnored(t *testing.T) {
	g, err := csr.BuildUndirected(3, []csr.WeightedEdge{
		{U: 0, V: 0, W: 1},
		{U: 1, V: 2, W: 1},
	})
	require.NoError(t, err)

	res, err := conncomp.Components(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 1}, res.Labels)
	assert.Equal(t, 2, res.Count)
}

// TestComponents_Validation covers the nil-graph sentinel and cancellation.
func TestComponents_Validation(t *testing.T) {
	_, err := conncomp.Components(nil)
	assert.ErrorIs(t, err, conncomp.ErrGraphNil)

	edges, err := builder.Cycle(64, 9)
	require.NoError(t, err)
	g, err := csr.BuildUndirected(64, edges)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = conncomp.Components(g, conncomp.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
