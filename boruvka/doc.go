// Package boruvka provides a parallel Minimum Spanning Tree (strictly, a
// minimum spanning forest) built from eight small data-parallel strategies
// sequenced by a phase orchestrator over the lvlpar engine.
//
// What & Why
//
//   - Borůvka's algorithm: every component selects its minimum-weight
//     outgoing edge, all selected edges join the tree, components contract
//     into supervertices, repeat. Each round at least halves the number of
//     components, so the outer loop runs at most ceil(log2 V) rounds — which
//     is what makes the algorithm a natural fit for bulk-parallel execution,
//     unlike the inherently sequential Prim/Kruskal orderings.
//
//   - The hard parts are (a) picking a well-defined minimum edge per vertex
//     when several incident edges tie, (b) the 2-cycles mutual selection
//     produces, and (c) collapsing selection trees to their roots without any
//     per-element ordering. They map onto the strategies below.
//
// The Eight Strategies
//
//   - SuccessorSelect (Advance) — per edge (s,d): if e is s's canonical
//     minimum edge (the (weight, destination)-lexicographic argmin,
//     precomputed per vertex), take the compare-and-swap on s's claim lock,
//     record d as s's successor and set the membership bit of e's origin
//     half-edge. Canonical selection keeps every successor cycle a mutual
//     pair; an arbitrary choice among tying edges could select a rotation
//     that no later phase breaks.
//   - CycleRemove (Advance) — only claimed edges act; if s and its successor
//     chose each other, the lower-indexed endpoint becomes a self-loop root
//     and drops its bit, so the pair is kept exactly once. Vertex-id
//     comparison keeps the tie-break deterministic under unordered execution.
//   - PointerJump (Filter, iterated) — union-find path halving: replace each
//     parent pointer with the grandparent's until a full pass moves nothing.
//   - EdgeMark (Advance) — erase intra-component edges, remap survivors to
//     supervertex endpoints.
//   - RowOffsetRebuild (Filter) — write segment starts into the contracted
//     CSR row offsets.
//   - FlagMerge/Or (Filter) — OR per-position survival marks into EdgeActive;
//     monotone within a round.
//   - FinalCompact (Filter) — erase every position whose activity flag stayed
//     0; the terminal write producing the next round's edge list.
//   - VertexNoop (Filter) — the placeholder membership-only strategy.
//
// Phase Machine (per round)
//
//	FindMinEdge → SelectSuccessor → RemoveCycles → CompressUnionFind →
//	Contract → Renumber → (loop | Terminate)
//
// FindMinEdge and Renumber are collaborator steps (reduce package and
// contract.go); termination is edge count 0 or vertex count 1.
//
// Result
//
//	Result.InMST is a bitmap over input edge ids; on termination its set
//	count equals NumVertices − Components, and TotalWeight is the forest
//	weight. Selection is canonical — each vertex claims its lexicographically
//	minimum (weight, destination) incident edge — so repeated runs produce
//	the same forest regardless of worker count or scheduling.
//
// Usage
//
//	g, err := csr.BuildUndirected(4, []csr.WeightedEdge{
//	    {U: 0, V: 1, W: 1}, {U: 1, V: 2, W: 2}, {U: 2, V: 3, W: 1},
//	})
//	res, err := boruvka.MinimumSpanningTree(g,
//	    boruvka.WithWorkers(8),
//	    boruvka.WithLogger(logger),
//	)
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) log V) total work across at most ceil(log2 V) rounds
//   - Memory: O(V + E) per arena generation
package boruvka
