package csr

import "fmt"

// Graph is an immutable symmetric CSR representation of an undirected,
// weighted input graph.
//
// Each input edge i contributes two half-edges, one per orientation; a
// half-edge's id is its position in ColIndices/Weights/HalfOrigin. Self-loops
// in the input are skipped (they can never join a spanning tree and would let
// a vertex claim itself), but their input ids stay reserved so membership
// bitmaps keep input numbering.
type Graph struct {
	// NumVertices is the dense vertex count; ids are 0..NumVertices-1.
	NumVertices int

	// NumInput is the number of undirected input edges, self-loops included.
	NumInput int

	// RowOffsets has length NumVertices+1; vertex v's half-edges occupy
	// positions RowOffsets[v]..RowOffsets[v+1]-1.
	RowOffsets []int64

	// ColIndices[h] is the destination vertex of half-edge h.
	ColIndices []int64

	// Weights[h] is the weight of half-edge h (both orientations share the
	// input edge's weight).
	Weights []int64

	// HalfOrigin[h] is the input edge id half-edge h was built from.
	HalfOrigin []int64
}

// NumHalfEdges returns the number of stored half-edges (2 per non-loop input edge).
func (g *Graph) NumHalfEdges() int { return len(g.ColIndices) }

// BuildUndirected constructs a symmetric CSR graph over n vertices from an
// undirected weighted edge list.
//
// Error Conditions:
//   - ErrInvalidGraph : n < 0, or any endpoint outside [0, n).
//
// Steps:
//  1. Validate the vertex count and every endpoint (fail fast, no partial state).
//  2. Count per-vertex degrees, skipping self-loops.
//  3. Prefix-sum degrees into RowOffsets.
//  4. Scatter both orientations of each edge into the column arrays,
//     recording the input edge id per half-edge.
//
// Complexity: O(V + E) time, O(V + E) memory.
func BuildUndirected(n int, edges []WeightedEdge) (*Graph, error) {
	// 1. Validate dimensions and endpoints before allocating anything.
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrInvalidGraph, n)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge %d endpoints (%d,%d) outside [0,%d)",
				ErrInvalidGraph, i, e.U, e.V, n)
		}
	}

	g := &Graph{
		NumVertices: n,
		NumInput:    len(edges),
		RowOffsets:  make([]int64, n+1),
	}

	// 2. Degree count per vertex; self-loops contribute no half-edges.
	degree := make([]int64, n)
	half := 0
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		degree[e.U]++
		degree[e.V]++
		half += 2
	}

	// 3. Exclusive prefix sum of degrees gives the row offsets.
	var sum int64
	for v := 0; v < n; v++ {
		g.RowOffsets[v] = sum
		sum += degree[v]
	}
	g.RowOffsets[n] = sum

	// 4. Scatter both orientations; cursor tracks the next free slot per row.
	g.ColIndices = make([]int64, half)
	g.Weights = make([]int64, half)
	g.HalfOrigin = make([]int64, half)
	cursor := make([]int64, n)
	copy(cursor, g.RowOffsets[:n])
	for i, e := range edges {
		if e.U == e.V {
			continue
		}
		hu := cursor[e.U]
		g.ColIndices[hu] = int64(e.V)
		g.Weights[hu] = e.W
		g.HalfOrigin[hu] = int64(i)
		cursor[e.U]++

		hv := cursor[e.V]
		g.ColIndices[hv] = int64(e.U)
		g.Weights[hv] = e.W
		g.HalfOrigin[hv] = int64(i)
		cursor[e.V]++
	}

	return g, nil
}
