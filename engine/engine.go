package engine

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Advance applies strat to every edge in the frontier: for each active edge
// e = (src,dst), PredicateEdge(src,dst,e) gates ActionEdge(src,dst,e), and an
// action returning true admits e to the returned next frontier.
//
// Advance is total over the frontier, guarantees no ordering between edges,
// and does not return until every worker has finished — the return is the
// phase barrier. Returns ErrEdgeListNil, ErrFrontierMismatch,
// ErrOptionViolation, or the context error on cancellation.
//
// Complexity: O(|frontier|) work split across Workers goroutines.
func Advance[S EdgeStrategy](edges EdgeList, f Frontier, strat S, opts ...Option) (Frontier, error) {
	if edges == nil {
		return Frontier{}, ErrEdgeListNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Frontier{}, err
	}
	if f.Universe() != edges.Len() {
		return Frontier{}, fmt.Errorf("%w: frontier over %d elements, edge list has %d",
			ErrFrontierMismatch, f.Universe(), edges.Len())
	}

	return apply(o, f, func(e int) bool {
		src, dst := edges.Endpoints(e)
		if !strat.PredicateEdge(src, dst, e) {
			return false
		}

		return strat.ActionEdge(src, dst, e)
	})
}

// Filter applies strat to every element in the frontier: PredicateVertex(v)
// gates ActionVertex(v), and an action returning true admits v to the
// returned next frontier.
//
// Same totality, ordering and barrier guarantees as Advance.
//
// Complexity: O(|frontier|) work split across Workers goroutines.
func Filter[S VertexStrategy](f Frontier, strat S, opts ...Option) (Frontier, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Frontier{}, err
	}

	return apply(o, f, func(v int) bool {
		if !strat.PredicateVertex(v) {
			return false
		}

		return strat.ActionVertex(v)
	})
}

// apply runs visit over every active element in parallel chunks and gathers
// the admitted elements into the next frontier.
//
// Chunks are contiguous frontier ranges of at least Grain elements; each
// chunk appends admitted ids to its own buffer, and buffers are concatenated
// in chunk order, so the next frontier's id order is deterministic for a
// fixed frontier and grain regardless of scheduling.
func apply(o Options, f Frontier, visit func(el int) bool) (Frontier, error) {
	n := f.Len()
	if n == 0 {
		return Sparse(f.Universe(), nil), nil
	}

	chunk := chunkLen(n, o)
	numChunks := (n + chunk - 1) / chunk
	locals := make([][]int, numChunks)

	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for c := 0; c < numChunks; c++ {
		lo := c * chunk
		hi := min(lo+chunk, n)
		g.Go(func() error {
			// Cancellation is observed at chunk granularity; elements within
			// a chunk always run to completion so totality holds per chunk.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var admitted []int
			for i := lo; i < hi; i++ {
				if el := f.element(i); visit(el) {
					admitted = append(admitted, el)
				}
			}
			locals[c] = admitted

			return nil
		})
	}
	// The barrier: no caller proceeds until every element of this
	// application has been visited.
	if err := g.Wait(); err != nil {
		return Frontier{}, err
	}

	total := 0
	for _, l := range locals {
		total += len(l)
	}
	merged := make([]int, 0, total)
	for _, l := range locals {
		merged = append(merged, l...)
	}

	return Sparse(f.Universe(), merged), nil
}

// chunkLen sizes chunks so each worker gets a contiguous share, but never
// below the configured grain.
func chunkLen(n int, o Options) int {
	per := (n + o.Workers - 1) / o.Workers
	if per < o.Grain {
		per = o.Grain
	}

	return per
}
