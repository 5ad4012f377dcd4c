// Package engine provides the two data-parallel operator patterns every
// lvlpar algorithm is built from: edge-parallel Advance and vertex-parallel
// Filter, each parameterized by a strategy supplying a predicate and an action.
//
// What
//
//   - Advance(edges, frontier, strategy): one logical thread per active edge
//     e = (s,d); if PredicateEdge(s,d,e) holds, ActionEdge(s,d,e) runs. The
//     action may mutate element-store fields it owns and may admit e to the
//     next frontier by returning true.
//   - Filter(frontier, strategy): one logical thread per active element
//     (vertex, or any dense position set); same predicate/action shape.
//   - Frontier: the active set an application iterates over, either the full
//     dense range [0,universe) or an explicit sparse id list.
//
// Both patterns are total (every active element is visited exactly once per
// application) and side-effect-only: the action's boolean is the single
// return channel, and it only steers frontier membership.
//
// Why
//
//	Iterative graph algorithms decompose into rounds of "apply this tiny
//	function to every edge/vertex, then synchronize". Keeping the operator
//	generic over the strategy type gives static dispatch on the per-element
//	hot path while the algorithm packages stay declarative.
//
// Ordering & Races
//
//	No ordering is guaranteed between elements of one application. A strategy
//	whose actions can collide on the same memory slot must arbitrate with an
//	atomic primitive (see boruvka's successor selection); every other field
//	must be written only by the thread that owns its index.
//
// Barriers
//
//	An Advance/Filter call does not return until every worker has finished,
//	so the call boundary is the synchronization barrier between phases.
//	Convergence arguments (pointer jumping in particular) rely on that:
//	all elements complete pass k before any element starts pass k+1.
//
// Options
//
//   - DefaultOptions(): background Context, GOMAXPROCS workers, grain 1024.
//   - WithContext(ctx):  cancellation between chunks.
//   - WithWorkers(n):    concurrent worker goroutines (n > 0).
//   - WithGrain(n):      minimum elements per chunk (n > 0).
//
// Errors
//
//   - ErrEdgeListNil      if Advance is given a nil topology.
//   - ErrFrontierMismatch if the frontier's universe does not match the topology.
//   - ErrOptionViolation  for invalid option values.
//   - The context error when a run is cancelled mid-application.
package engine
