package csr

import "fmt"

// Arena is one generation of the mutable element arrays an algorithm round
// operates on. It is exclusively owned by the phase currently running;
// strategies borrow it for the duration of a single operator application.
//
// Ownership of individual slots follows the data-parallel contract: each
// logical thread writes only the per-vertex or per-edge slots it owns, except
// ClaimLock, which is arbitrated with compare-and-swap.
type Arena struct {
	// Gen is the arena generation, starting at 1 and incremented each
	// contraction round. Resizing allocates a new generation; an Arena is
	// never grown or shrunk in place.
	Gen int

	// NumVertices and NumEdges are this generation's dense element counts.
	NumVertices int
	NumEdges    int

	// Per-vertex arrays.

	// Successor[v] is v's currently chosen outgoing neighbor; after
	// pointer-jump convergence Successor[Successor[v]] == Successor[v].
	Successor []int64
	// ClaimLock[v] arbitrates concurrent minimum-edge claims; it moves from
	// Unclaimed to v exactly once per round via compare-and-swap.
	ClaimLock []int64
	// MinWeight[v] is the minimum incident edge weight, supplied by the
	// reduction collaborator each round; read-only afterwards.
	MinWeight []int64
	// MinEdge[v] is the position of v's canonical minimum incident edge (the
	// lexicographic minimum by (weight, destination), first row position on an
	// exact tie), or Erased for a vertex with no surviving edges. Written
	// together with MinWeight and consumed by successor selection.
	MinEdge []int64
	// SuperVertex[v] is the root v maps to once union-find compression
	// converges; stable for the remainder of the round.
	SuperVertex []int64
	// RowOffset has length NumVertices+1 and is rebuilt each round from the
	// contracted segment boundaries.
	RowOffset []int64

	// Per-edge columns. The four of them are erased together.

	// EdgeKey[e] is the current source vertex id of edge e.
	EdgeKey []int64
	// EdgeDst[e] is the current destination vertex id of edge e.
	EdgeDst []int64
	// EdgeWeight[e] is the weight of edge e.
	EdgeWeight []int64
	// OriginEdge[e] maps edge e back to the half-edge id it started as in the
	// input graph, so membership bitmaps stay addressed by input ids across
	// contractions.
	OriginEdge []int64
	// EdgeActive[e] is 1 iff edge e survives the current contraction; merged
	// via logical OR and never cleared within a round.
	EdgeActive []uint8
}

// NewArena builds the first-generation arena directly from the input graph.
//
// Initial values honor the element-store collaborator contract:
// successor = self, claim lock = Unclaimed, min weight = NoEdgeWeight,
// min edge = Erased, edge columns = input half-edges, origin = the
// half-edge's own id, activity flags = 0.
//
// Complexity: O(V + E).
func NewArena(g *Graph) *Arena {
	a, err := NewRoundArena(1, g.NumVertices, g.NumHalfEdges())
	if err != nil {
		// Graph dimensions are validated at build time; they cannot be negative here.
		panic(err)
	}

	// Expand the CSR rows into an explicit per-edge source column.
	for v := 0; v < g.NumVertices; v++ {
		for h := g.RowOffsets[v]; h < g.RowOffsets[v+1]; h++ {
			a.EdgeKey[h] = int64(v)
		}
	}
	copy(a.EdgeDst, g.ColIndices)
	copy(a.EdgeWeight, g.Weights)
	for e := range a.OriginEdge {
		a.OriginEdge[e] = int64(e)
	}
	copy(a.RowOffset, g.RowOffsets)

	return a
}

// NewRoundArena allocates an empty arena generation sized to the contracted
// vertex/edge counts of a new round.
//
// Per-vertex state starts at the contract's well-defined initial values;
// edge columns start zeroed and are filled by the renumbering step.
//
// Error Conditions:
//   - ErrAllocation : nv < 0 or ne < 0.
//
// Complexity: O(V + E).
func NewRoundArena(gen, nv, ne int) (*Arena, error) {
	if nv < 0 || ne < 0 {
		return nil, fmt.Errorf("%w: %d vertices, %d edges", ErrAllocation, nv, ne)
	}

	a := &Arena{
		Gen:         gen,
		NumVertices: nv,
		NumEdges:    ne,
		Successor:   make([]int64, nv),
		ClaimLock:   make([]int64, nv),
		MinWeight:   make([]int64, nv),
		MinEdge:     make([]int64, nv),
		SuperVertex: make([]int64, nv),
		RowOffset:   make([]int64, nv+1),
		EdgeKey:     make([]int64, ne),
		EdgeDst:     make([]int64, ne),
		EdgeWeight:  make([]int64, ne),
		OriginEdge:  make([]int64, ne),
		EdgeActive:  make([]uint8, ne),
	}
	for v := 0; v < nv; v++ {
		a.Successor[v] = int64(v)
		a.ClaimLock[v] = Unclaimed
		a.MinWeight[v] = NoEdgeWeight
		a.MinEdge[v] = Erased
	}

	return a, nil
}

// Len reports the number of current edges; together with Endpoints it lets an
// Arena act as the edge topology for engine.Advance.
func (a *Arena) Len() int { return a.NumEdges }

// Endpoints returns the current (source, destination) of edge e.
// Both are Erased for a contracted-away edge.
func (a *Arena) Endpoints(e int) (int, int) {
	return int(a.EdgeKey[e]), int(a.EdgeDst[e])
}

// EdgeErased reports whether edge e has been contracted away.
func (a *Arena) EdgeErased(e int) bool { return a.EdgeKey[e] == Erased }

// EraseEdge retires edge e: all four edge columns take the Erased sentinel together.
func (a *Arena) EraseEdge(e int) {
	a.EdgeKey[e] = Erased
	a.EdgeDst[e] = Erased
	a.EdgeWeight[e] = Erased
	a.OriginEdge[e] = Erased
}
