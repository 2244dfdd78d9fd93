// Package tda is an in-memory toolkit for topological data analysis:
// build filtered simplicial complexes from point clouds, and compute
// homology groups and persistence barcodes from them.
//
// 🚀 What is tda?
//
//	A pure-computation library that brings together:
//		• Vietoris–Rips complexes: from a metric and a scale, via maximal cliques
//		• Boundary operators: ∂ₖ over ℤ and over 𝔽₂
//		• Integer homology: cyclic-group decompositions via Smith Normal Form
//		• 𝔽₂ homology: Betti numbers from bit-packed rank computations
//		• Filtrations: multi-scale complexes with renumbered face indices
//		• Persistence: finite and infinite barcodes per dimension
//
// ✨ Why choose tda?
//
//   - Deterministic – every output is a pure function of the input
//   - Index-based – simplices reference faces by array index, never by pointer
//   - Exact – integer arithmetic with overflow detection, no floating-point homology
//   - Concurrency-ready – independent per-dimension reductions parallelize on request
//
// Everything is organized under seven subpackages:
//
//	simplex/     — complexes, filtrations, and their structural invariants
//	clique/      — Bron–Kerbosch maximal-clique enumeration
//	matrix/      — dense ℤ and bit-packed 𝔽₂ matrices: rank, echelon, SNF
//	boundary/    — boundary operators of a complex, both coefficient rings
//	homology/    — H_k(·; ℤ) and 𝔽₂ Betti numbers
//	rips/        — Vietoris–Rips complex and filtration builders
//	persistence/ — the incremental barcode algorithm over 𝔽₂
//
// Data flows points → rips → persistence for barcodes, and
// rips → boundary → homology for homology groups.
package tda
