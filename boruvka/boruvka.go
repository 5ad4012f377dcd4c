package boruvka

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlpar/csr"
	"github.com/katalvlaran/lvlpar/engine"
	"github.com/katalvlaran/lvlpar/reduce"
)

// MinimumSpanningTree computes the minimum spanning forest of g.
//
// Each outer round walks the phase machine
//
//	FindMinEdge → SelectSuccessor → RemoveCycles → CompressUnionFind →
//	Contract → Renumber
//
// and the loop halts when the contracted edge count reaches 0 or the
// contracted vertex count reaches 1 — guaranteed within ceil(log2 V) rounds,
// because every component at least halves per round. Disconnected inputs are
// fine: each component contracts to its own root and the result is a forest
// with Result.Edges == NumVertices − Result.Components.
//
// No phase is retried on failure; collaborator failures (invalid options,
// cancellation) abort the whole computation.
//
// Error Conditions:
//   - ErrGraphNil                : g is nil.
//   - engine.ErrOptionViolation  : invalid worker/grain settings.
//   - the context error          : the run was cancelled mid-phase.
//
// Complexity: O((V + E) log V) work, O(V + E) memory per arena generation.
func MinimumSpanningTree(g *csr.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input and assemble options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. The membership bitmap lives outside the arenas: it is addressed by
	//    input half-edge id and survives every contraction.
	mst := make([]uint8, g.NumHalfEdges())

	// 3. Outer Borůvka loop over arena generations.
	a := csr.NewArena(g)
	rounds := 0
	for a.NumVertices > 1 && a.NumEdges > 0 {
		rounds++
		next, passes, err := round(a, mst, g.HalfOrigin, o)
		if err != nil {
			return nil, fmt.Errorf("boruvka: round %d: %w", rounds, err)
		}
		o.Logger.Debug("contraction round complete",
			zap.Int("round", rounds),
			zap.Int("generation", next.Gen),
			zap.Int("vertices", next.NumVertices),
			zap.Int("edges", next.NumEdges),
			zap.Int("jump_passes", passes),
		)
		a = next
	}

	// 4. Fold the per-half-edge bits back onto input edge ids. At most one
	//    orientation of an input edge carries a bit (2-cycle removal clears
	//    the other), but folding through InMST keeps the count honest.
	res := &Result{
		InMST:      make([]bool, g.NumInput),
		Components: a.NumVertices,
		Rounds:     rounds,
	}
	for h, bit := range mst {
		if bit == 0 {
			continue
		}
		if in := g.HalfOrigin[h]; !res.InMST[in] {
			res.InMST[in] = true
			res.Edges++
			res.TotalWeight += g.Weights[h]
		}
	}

	return res, nil
}

// round executes one pass of the phase state machine on arena a and returns
// the next arena generation plus the number of pointer-jump passes it took to
// reach the union-find fixed point.
func round(a *csr.Arena, mst []uint8, halfInput []int64, o Options) (*csr.Arena, int, error) {
	eo := o.engineOpts()
	edges := engine.Full(a.Len())

	// FindMinEdge: the reduction collaborator precomputes, per vertex, the
	// canonical minimum incident edge successor selection will claim.
	reduce.MinIncident(a)

	// SelectSuccessor: one canonical minimum-edge claim per vertex.
	if _, err := engine.Advance(a, edges, successorSelect{a: a, mst: mst}, eo...); err != nil {
		return nil, 0, fmt.Errorf("select successor: %w", err)
	}

	// RemoveCycles: break the 2-cycles mutual selection produces.
	if _, err := engine.Advance(a, edges, cycleRemove{a: a, mst: mst}, eo...); err != nil {
		return nil, 0, fmt.Errorf("remove cycles: %w", err)
	}

	// CompressUnionFind: pointer jumping to a fixed point. The flag is
	// re-armed before each pass; a pass that leaves it set is the fixed point
	// (every successor is a self-loop root). Convergence takes O(log depth)
	// passes since each application at least halves remaining path lengths.
	verts := engine.Full(a.NumVertices)
	passes := 0
	var converged atomic.Bool
	for {
		converged.Store(true)
		if _, err := engine.Filter(verts, pointerJump{a: a, converged: &converged}, eo...); err != nil {
			return nil, passes, fmt.Errorf("pointer jump pass %d: %w", passes+1, err)
		}
		passes++
		if converged.Load() {
			break
		}
	}
	for v := range a.SuperVertex {
		a.SuperVertex[v] = a.Successor[v]
	}

	// Contract: retire intra-component edges, keep the survivors frontier.
	survivors, err := engine.Advance(a, edges, edgeMark{a: a}, eo...)
	if err != nil {
		return nil, passes, fmt.Errorf("edge mark: %w", err)
	}

	// Renumber: dedupe, compact and materialize the next generation.
	next, err := contract(a, survivors, halfInput, o)
	if err != nil {
		return nil, passes, err
	}

	return next, passes, nil
}
