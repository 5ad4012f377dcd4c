// Package reduce is the reduction collaborator of the lvlpar engine: the
// host-side segmented computations that feed operator phases but are not
// themselves data-parallel strategies.
//
// What
//
//   - MinIncident: per-vertex canonical minimum incident edge (a segmented
//     argmin over CSR rows, lexicographic by weight then destination),
//     required before successor selection runs.
//   - SegmentStarts: boundary flags over a key column sorted by key, feeding
//     row-offset reconstruction.
//   - FirstInGroup: first-position flags per duplicate group under a sorted
//     visiting order, feeding the edge-survival flag merge.
//
// All three are single-pass and deterministic; they run between operator
// barriers, so they observe and produce consistent element-store state.
package reduce

import "github.com/katalvlaran/lvlpar/csr"

// MinIncident fills a.MinWeight and a.MinEdge with each vertex's canonical
// minimum incident edge: the lexicographic minimum by (weight, destination),
// first row position on an exact tie, skipping erased edges. Vertices with no
// (surviving) incident edges get csr.NoEdgeWeight and csr.Erased, so they
// never claim a successor and root themselves.
//
// The destination tie-break makes the claimed edge well defined when several
// incident edges share the minimum weight; a consistent per-vertex choice is
// what limits successor cycles to mutual pairs.
//
// Requires a.RowOffset to describe the current edge grouping by source.
// Complexity: O(V + E).
func MinIncident(a *csr.Arena) {
	for v := 0; v < a.NumVertices; v++ {
		best := csr.NoEdgeWeight
		bestDst := int64(-1)
		bestEdge := csr.Erased
		for e := a.RowOffset[v]; e < a.RowOffset[v+1]; e++ {
			if a.EdgeErased(int(e)) {
				continue
			}
			w, d := a.EdgeWeight[e], a.EdgeDst[e]
			if w < best || (w == best && d < bestDst) {
				best, bestDst, bestEdge = w, d, e
			}
		}
		a.MinWeight[v] = best
		a.MinEdge[v] = bestEdge
	}
}

// SegmentStarts returns a flag per position of keys: 1 iff the position
// starts a new run of equal keys. keys must already be grouped (sorted) by
// key for the flags to mark segment boundaries.
//
// Complexity: O(E).
func SegmentStarts(keys []int64) []uint8 {
	flags := make([]uint8, len(keys))
	for e := range keys {
		if e == 0 || keys[e] != keys[e-1] {
			flags[e] = 1
		}
	}

	return flags
}

// FirstInGroup returns a flag per position of the key columns: 1 iff the
// position is visited first within its (key1,key2) group under order.
// order lists positions sorted so that equal (key1,key2) pairs are adjacent;
// positions absent from order keep a zero flag.
//
// Complexity: O(E).
func FirstInGroup(order []int, key1, key2 []int64) []uint8 {
	flags := make([]uint8, len(key1))
	for i, pos := range order {
		if i == 0 {
			flags[pos] = 1
			continue
		}
		prev := order[i-1]
		if key1[pos] != key1[prev] || key2[pos] != key2[prev] {
			flags[pos] = 1
		}
	}

	return flags
}
