package boruvka_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpar/boruvka"
	"github.com/katalvlaran/lvlpar/csr"
)

// ExampleMinimumSpanningTree builds the classic 4-vertex ring with a chord
// and picks the three cheap edges. Every vertex has a unique minimum
// incident weight here, so the selected edge set is fixed across runs.
func ExampleMinimumSpanningTree() {
	g, err := csr.BuildUndirected(4, []csr.WeightedEdge{
		{U: 0, V: 1, W: 1},
		{U: 1, V: 2, W: 2},
		{U: 2, V: 3, W: 1},
		{U: 0, V: 3, W: 3},
		{U: 1, V: 3, W: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := boruvka.MinimumSpanningTree(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("edges:", res.Edges)
	fmt.Println("weight:", res.TotalWeight)
	for i, in := range res.InMST {
		if in {
			fmt.Println("selected input edge", i)
		}
	}
	// Output:
	// edges: 3
	// weight: 4
	// selected input edge 0
	// selected input edge 1
	// selected input edge 2
}

// ExampleMinimumSpanningTree_forest shows a disconnected input: each
// component contributes its own tree and the result is a minimum forest.
func ExampleMinimumSpanningTree_forest() {
	// Two separate segments: 0—1 and 2—3—4.
	g, err := csr.BuildUndirected(5, []csr.WeightedEdge{
		{U: 0, V: 1, W: 7},
		{U: 2, V: 3, W: 1},
		{U: 3, V: 4, W: 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := boruvka.MinimumSpanningTree(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("components:", res.Components)
	fmt.Println("edges:", res.Edges)
	fmt.Println("weight:", res.TotalWeight)
	// Output:
	// components: 2
	// edges: 3
	// weight: 10
}
