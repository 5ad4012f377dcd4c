// Package csr provides the columnar element store the lvlpar operators read
// and write: an immutable compressed-sparse-row (CSR) input graph plus a
// per-round mutable Arena of element arrays.
//
// What
//
//   - Graph: symmetric CSR built once from an undirected weighted edge list.
//     Every input edge is stored as two half-edges (one per orientation), each
//     with its own dense id; HalfOrigin maps a half-edge back to its input
//     edge. Algorithms that must attribute work to an input edge (for example
//     an MST membership bitmap) fold the two orientations at the end.
//   - Arena: one generation of the mutable per-vertex and per-edge arrays an
//     algorithm round operates on (successor links, claim locks, contracted
//     edge columns, activity flags, rebuilt row offsets). A contraction round
//     never resizes an Arena in place: it allocates the next generation at the
//     new vertex/edge counts, which keeps lifetimes trivial to reason about.
//
// Why
//
//	Data-parallel operators want flat, index-addressed state: one logical
//	thread per edge or vertex, each touching only the slots it owns. Columnar
//	arrays make that ownership explicit and make the single shared field (the
//	atomic claim lock) impossible to miss.
//
// Sentinels
//
//   - Erased (-1): an edge column slot whose edge has been contracted away.
//     Branch through Arena.EdgeErased rather than comparing against the raw
//     constant.
//   - Unclaimed (-1): a claim lock that no vertex has won yet. No valid vertex
//     id can collide with it, because ids are dense and non-negative.
//   - NoEdgeWeight (MaxInt64): the minimum-incident-weight of a vertex with no
//     incident edges; no real edge weight can match it.
//
// Errors
//
//   - ErrInvalidGraph - negative counts or dangling endpoint indices.
//   - ErrAllocation   - an element store sized with negative dimensions.
//
// Complexity: Graph construction is O(V + E); Arena construction is O(V + E).
package csr
