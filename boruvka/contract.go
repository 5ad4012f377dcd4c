package boruvka

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlpar/csr"
	"github.com/katalvlaran/lvlpar/engine"
	"github.com/katalvlaran/lvlpar/reduce"
)

// contract finishes one Borůvka round after edgeMark has retired
// intra-component edges and remapped survivors to supervertex endpoints.
// It deduplicates parallel edges between the same supervertex pair, compacts
// the edge list, renumbers supervertices densely and materializes the next
// arena generation.
//
// Steps:
//  1. Sort the surviving positions by (key, dst, weight, input edge id), so
//     duplicate supervertex pairs are adjacent with the cheapest first. The
//     final tie-break uses the direction-independent input edge id: both
//     orientations of an undirected edge must elect the same input edge, or a
//     later 2-cycle over the pair would resolve against two different inputs.
//  2. FirstInGroup marks the cheapest edge of each (key,dst) group; FlagMerge
//     ORs those marks into EdgeActive.
//  3. FinalCompact erases every inactive position.
//  4. Renumber the supervertex roots to dense ids, ascending by root id.
//  5. Gather the active edges, in sorted order, into the next generation.
//  6. RowOffsetRebuild writes each key's segment start into the new row
//     offsets; rows of edge-less supervertices inherit the next boundary.
//
// Complexity: O(E log E) for the sort, O(V + E) for everything else.
func contract(a *csr.Arena, survivors engine.Frontier, halfInput []int64, o Options) (*csr.Arena, error) {
	eo := o.engineOpts()

	// 1. Deterministic grouping order over the surviving positions. The
	//    frontier's backing array is read-only input, so sort a copy.
	order := append([]int(nil), survivors.IDs()...)
	sort.Slice(order, func(i, j int) bool {
		pi, pj := order[i], order[j]
		if a.EdgeKey[pi] != a.EdgeKey[pj] {
			return a.EdgeKey[pi] < a.EdgeKey[pj]
		}
		if a.EdgeDst[pi] != a.EdgeDst[pj] {
			return a.EdgeDst[pi] < a.EdgeDst[pj]
		}
		if a.EdgeWeight[pi] != a.EdgeWeight[pj] {
			return a.EdgeWeight[pi] < a.EdgeWeight[pj]
		}

		return halfInput[a.OriginEdge[pi]] < halfInput[a.OriginEdge[pj]]
	})

	// 2. Mark the cheapest edge per duplicate group and merge into EdgeActive.
	flags := reduce.FirstInGroup(order, a.EdgeKey, a.EdgeDst)
	positions := engine.Full(a.Len())
	if _, err := engine.Filter(positions, flagMergeOr{a: a, flags: flags}, eo...); err != nil {
		return nil, fmt.Errorf("flag merge: %w", err)
	}

	// 3. Terminal compaction write: inactive positions are fully erased.
	if _, err := engine.Filter(positions, finalCompact{a: a}, eo...); err != nil {
		return nil, fmt.Errorf("final compact: %w", err)
	}

	// 4. Dense renumbering of supervertex roots, ascending by root id, so the
	//    sorted edge order carries over to the new numbering unchanged.
	newID := make([]int64, a.NumVertices)
	nv := 0
	for v := 0; v < a.NumVertices; v++ {
		if int(a.SuperVertex[v]) == v {
			newID[v] = int64(nv)
			nv++
		} else {
			newID[v] = csr.Erased
		}
	}

	// 5. Gather active edges into the next generation, keeping sorted order.
	ne := 0
	for _, pos := range order {
		if !a.EdgeErased(pos) {
			ne++
		}
	}
	next, err := csr.NewRoundArena(a.Gen+1, nv, ne)
	if err != nil {
		return nil, err
	}
	hasEdge := make([]bool, nv)
	i := 0
	for _, pos := range order {
		if a.EdgeErased(pos) {
			continue
		}
		key := newID[a.EdgeKey[pos]]
		next.EdgeKey[i] = key
		next.EdgeDst[i] = newID[a.EdgeDst[pos]]
		next.EdgeWeight[i] = a.EdgeWeight[pos]
		next.OriginEdge[i] = a.OriginEdge[pos]
		hasEdge[key] = true
		i++
	}

	// 6. Rebuild CSR row boundaries from the new segment starts, then close
	//    the offsets: edge-less rows inherit the following boundary.
	seg := reduce.SegmentStarts(next.EdgeKey)
	if _, err = engine.Filter(engine.Full(ne), rowOffsetRebuild{a: next, segStart: seg}, eo...); err != nil {
		return nil, fmt.Errorf("row offset rebuild: %w", err)
	}
	next.RowOffset[nv] = int64(ne)
	for v := nv - 1; v >= 0; v-- {
		if !hasEdge[v] {
			next.RowOffset[v] = next.RowOffset[v+1]
		}
	}

	return next, nil
}
