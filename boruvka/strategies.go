package boruvka

import (
	"sync/atomic"

	"github.com/katalvlaran/lvlpar/csr"
	"github.com/katalvlaran/lvlpar/engine"
)

// The eight strategies below are the per-element bodies of the Borůvka
// phases. Each is a stateless predicate/action pair that borrows the arena
// for one operator application; predicates are unconditionally true, but the
// split is part of the operator contract and is kept load-bearing.
//
// Every action writes only slots owned by its own element (its src vertex or
// its edge position), with one exception: the compare-and-swap on ClaimLock,
// which keeps the claim-once contract explicit under unordered execution.

// successorSelect claims, per source vertex, its canonical minimum incident
// edge — the (weight, destination)-lexicographic argmin the reduction
// collaborator recorded in MinEdge. The claimant takes the CAS on
// ClaimLock[src], records its destination as the successor and sets the
// membership bit of its origin half-edge.
//
// Canonical selection bounds successor cycles: weights are non-increasing
// around any cycle, hence all equal, and the destination order then collapses
// the cycle to a mutual pair. A scheduling-dependent choice among tying edges
// could instead select a rotation (0→1→2→0 on an equal-weight triangle) that
// no later phase breaks, over-counting the tree.
type successorSelect struct {
	a   *csr.Arena
	mst []uint8 // per-half-edge membership bitmap, indexed by OriginEdge
}

func (successorSelect) PredicateEdge(int, int, int) bool { return true }

func (s successorSelect) ActionEdge(src, dst, e int) bool {
	if s.a.EdgeErased(e) || int64(e) != s.a.MinEdge[src] {
		return false
	}
	if atomic.CompareAndSwapInt64(&s.a.ClaimLock[src], csr.Unclaimed, int64(src)) {
		s.a.Successor[src] = int64(dst)
		s.mst[s.a.OriginEdge[e]] = 1
	}

	return false
}

// cycleRemove breaks the 2-cycles successor selection can produce when two
// vertices choose each other. Only the claimed edge of a vertex acts (its
// membership bit is set, and at most one bit per source row is set per
// round), so exactly one edge evaluates the cycle check for each vertex.
// The lower-indexed endpoint of a mutual pair becomes the root of its own
// star and drops its bit, so the pair stays in the tree exactly once, via
// the higher-indexed endpoint's claim.
//
// The comparison is on vertex ids, never on edge order, which keeps the
// tie-break deterministic under unordered parallel execution. Successor
// slots are read atomically because the lower endpoints of distinct mutual
// pairs redirect themselves concurrently.
type cycleRemove struct {
	a   *csr.Arena
	mst []uint8
}

func (cycleRemove) PredicateEdge(int, int, int) bool { return true }

func (c cycleRemove) ActionEdge(src, _, e int) bool {
	if c.a.EdgeErased(e) || c.mst[c.a.OriginEdge[e]] == 0 {
		return false
	}
	succ := atomic.LoadInt64(&c.a.Successor[src])
	if succ <= int64(src) {
		return false
	}
	if atomic.LoadInt64(&c.a.Successor[succ]) != int64(src) {
		return false
	}
	atomic.StoreInt64(&c.a.Successor[src], int64(src))
	c.mst[c.a.OriginEdge[e]] = 0

	return false
}

// pointerJump is one pass of union-find path halving: each vertex replaces
// its parent pointer with its grandparent's. Any vertex that still moves
// clears the shared convergence flag; the orchestrator re-arms the flag and
// repeats the pass until one leaves it untouched.
//
// Reads race with other vertices' writes by design; observing either the old
// or the new parent is fine because both are ancestors, so every pass at
// least halves the remaining path length.
type pointerJump struct {
	a         *csr.Arena
	converged *atomic.Bool
}

func (pointerJump) PredicateVertex(int) bool { return true }

func (p pointerJump) ActionVertex(v int) bool {
	parent := atomic.LoadInt64(&p.a.Successor[v])
	grand := atomic.LoadInt64(&p.a.Successor[parent])
	if parent != grand {
		atomic.StoreInt64(&p.a.Successor[v], grand)
		p.converged.Store(false)
	}

	return false
}

// edgeMark retires intra-component edges (both endpoints map to the same
// supervertex) by erasing all four edge columns, and remaps the endpoints of
// surviving edges to their supervertex ids. Survivors are admitted to the
// next frontier, which the contraction step consumes as the surviving set.
type edgeMark struct {
	a *csr.Arena
}

func (edgeMark) PredicateEdge(int, int, int) bool { return true }

func (m edgeMark) ActionEdge(src, dst, e int) bool {
	if m.a.EdgeErased(e) {
		return false
	}
	su, sv := m.a.SuperVertex[src], m.a.SuperVertex[dst]
	if su == sv {
		m.a.EraseEdge(e)

		return false
	}
	m.a.EdgeKey[e] = su
	m.a.EdgeDst[e] = sv

	return true
}

// rowOffsetRebuild reconstructs CSR row boundaries for the contracted graph:
// wherever the externally computed segment-start flag is set, the position is
// written into the row offset of that position's key. One writer per key,
// because exactly one position starts each segment.
type rowOffsetRebuild struct {
	a        *csr.Arena
	segStart []uint8
}

func (rowOffsetRebuild) PredicateVertex(int) bool { return true }

func (r rowOffsetRebuild) ActionVertex(e int) bool {
	if r.segStart[e] == 1 {
		r.a.RowOffset[r.a.EdgeKey[e]] = int64(e)
	}

	return false
}

// flagMergeOr accumulates a per-position selection flag into EdgeActive via
// logical OR. Within one contraction round a set flag is never cleared, so
// repeated merges are monotone 0→1.
type flagMergeOr struct {
	a     *csr.Arena
	flags []uint8
}

func (flagMergeOr) PredicateVertex(int) bool { return true }

func (f flagMergeOr) ActionVertex(e int) bool {
	f.a.EdgeActive[e] |= f.flags[e]

	return false
}

// finalCompact is the terminal write of a contraction round: positions whose
// activity flag stayed 0 have all four edge columns erased together; active
// positions are left untouched and admitted to the next frontier.
type finalCompact struct {
	a *csr.Arena
}

func (finalCompact) PredicateVertex(int) bool { return true }

func (c finalCompact) ActionVertex(e int) bool {
	if c.a.EdgeActive[e] == 0 {
		c.a.EraseEdge(e)

		return false
	}

	return true
}

// VertexNoop is the placeholder Filter strategy: predicate always true,
// action intentionally empty, frontier membership preserved. It exists for
// membership-only passes (marking elements "still active" without mutation)
// and as the minimal instantiation of the operator contract.
type VertexNoop struct{}

// PredicateVertex always admits the element.
func (VertexNoop) PredicateVertex(int) bool { return true }

// ActionVertex mutates nothing and keeps the element in the frontier.
func (VertexNoop) ActionVertex(int) bool { return true }

// compile-time checks that every strategy satisfies its operator contract.
var (
	_ engine.EdgeStrategy   = successorSelect{}
	_ engine.EdgeStrategy   = cycleRemove{}
	_ engine.EdgeStrategy   = edgeMark{}
	_ engine.VertexStrategy = pointerJump{}
	_ engine.VertexStrategy = rowOffsetRebuild{}
	_ engine.VertexStrategy = flagMergeOr{}
	_ engine.VertexStrategy = finalCompact{}
	_ engine.VertexStrategy = VertexNoop{}
)
