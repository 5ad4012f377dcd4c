// Package lvlpar is a data-parallel graph-computation engine built from two
// composable operators — edge-parallel Advance and vertex-parallel Filter —
// each parameterized by an algorithm-specific strategy.
//
// 🚀 What is lvlpar?
//
//	A compact, deterministic engine for iterative graph algorithms over
//	columnar CSR state:
//		• engine/   — the Advance/Filter operator contract, frontiers, worker pool
//		• csr/      — CSR input graphs and the per-round element-array Arena
//		• reduce/   — segmented reductions feeding the operators
//		• boruvka/  — Borůvka minimum-spanning-tree built from eight strategies
//		• conncomp/ — connected components on the same operator contract
//		• builder/  — deterministic CSR graph generators for tests and benchmarks
//
// ✨ Why lvlpar?
//
//   - Race-free by contract – the single mutable cross-thread field is an
//     atomic claim lock; everything else is owned per element
//   - Barrier semantics – every operator application completes before the
//     next begins, so convergence arguments stay simple
//   - Pure Go – goroutine worker pools, no cgo
//
// Quick ASCII example (Borůvka on a square with a diagonal):
//
//	0───1
//	│ ╲ │
//	3───2
//
// each vertex claims its cheapest edge, components contract, and the loop
// repeats until one supervertex remains.
//
// Dive into boruvka/doc.go for the full phase walk-through.
//
//	go get github.com/katalvlaran/lvlpar
package lvlpar
