// Package builder generates deterministic weighted edge lists for tests and
// benchmarks of the lvlpar algorithms.
//
// Contract (shared by every generator):
//   - n ≥ 1 (else ErrTooFewVertices); extras ≥ 0 (else ErrNegativeExtras).
//   - Fixed, documented trial order plus a seeded RNG, so a given call always
//     produces the same edge list.
//   - Weights are drawn uniformly from [1, 100].
//   - Generators return only sentinel errors; they never panic at runtime.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlpar/csr"
)

// Sentinel errors for generator validation.
var (
	// ErrTooFewVertices indicates a generator needs at least one vertex.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNegativeExtras indicates a negative extra-edge count.
	ErrNegativeExtras = errors.New("builder: negative extra edge count")
)

// Weight domain for all generators.
const (
	minWeight = 1
	maxWeight = 100
)

// randWeight draws a weight from [minWeight, maxWeight].
func randWeight(r *rand.Rand) int64 {
	return int64(minWeight + r.Intn(maxWeight-minWeight+1))
}

// Path returns the chain 0—1—…—(n-1) with seeded random weights.
func Path(n int, seed int64) ([]csr.WeightedEdge, error) {
	if n < 1 {
		return nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
	}
	r := rand.New(rand.NewSource(seed))
	edges := make([]csr.WeightedEdge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, csr.WeightedEdge{U: i - 1, V: i, W: randWeight(r)})
	}

	return edges, nil
}

// Cycle returns the ring over n vertices: the path plus the closing edge
// (n-1)—0. For n ≤ 2 it degenerates to the path (no duplicate closing edge).
func Cycle(n int, seed int64) ([]csr.WeightedEdge, error) {
	edges, err := Path(n, seed)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	if n > 2 {
		r := rand.New(rand.NewSource(seed + 1))
		edges = append(edges, csr.WeightedEdge{U: n - 1, V: 0, W: randWeight(r)})
	}

	return edges, nil
}

// Complete returns every unordered pair {i,j} with i<j, in stable (i asc,
// j asc) order, with seeded random weights.
func Complete(n int, seed int64) ([]csr.WeightedEdge, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
	}
	r := rand.New(rand.NewSource(seed))
	edges := make([]csr.WeightedEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, csr.WeightedEdge{U: i, V: j, W: randWeight(r)})
		}
	}

	return edges, nil
}

// RandomConnected returns a connected multigraph: the chain 0—1—…—(n-1) for
// guaranteed connectivity, followed by extras random non-loop edges.
// Duplicate pairs are allowed on purpose — parallel edges exercise the
// duplicate handling of contraction-based algorithms.
func RandomConnected(n, extras int, seed int64) ([]csr.WeightedEdge, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomConnected: n=%d: %w", n, ErrTooFewVertices)
	}
	if extras < 0 {
		return nil, fmt.Errorf("RandomConnected: extras=%d: %w", extras, ErrNegativeExtras)
	}
	if n == 1 {
		// a single vertex admits no non-loop edges, extras included
		return []csr.WeightedEdge{}, nil
	}

	r := rand.New(rand.NewSource(seed))
	edges := make([]csr.WeightedEdge, 0, n-1+extras)
	for i := 1; i < n; i++ {
		edges = append(edges, csr.WeightedEdge{U: i - 1, V: i, W: randWeight(r)})
	}
	for len(edges) < n-1+extras {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			// skip loops; they cannot join a spanning tree
			continue
		}
		edges = append(edges, csr.WeightedEdge{U: u, V: v, W: randWeight(r)})
	}

	return edges, nil
}
