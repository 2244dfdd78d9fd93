// Package homology computes homology groups of a simplicial complex: over ℤ
// as lists of cyclic-group orders via Smith Normal Form, and over 𝔽₂ as
// Betti numbers via bit-packed rank computations.
//
// Conventions for the integer path:
//
//   - Int(sc) returns one list per dimension 0…dim.
//   - Each entry k > 1 is a ℤ/kℤ summand, each 0 a free ℤ summand; trivial
//     factors (1) are dropped before returning.
//   - H₀ comes from SNF(∂₁) padded with zeros up to the vertex count;
//     H_k (0 < k < dim) from SNF of the image of ∂ₖ₊₁ in a basis of ker ∂ₖ,
//     padded with zeros up to the kernel rank; H_dim is free of rank
//     nullity(∂_dim).
//
// The 𝔽₂ path is the cheap one and a first-class citizen:
//
//	βₖ = #k-simplices − rank ∂ₖ − rank ∂ₖ₊₁
//
// with rank ∂₀ = rank ∂_{dim+1} = 0. On torsion-free complexes the Betti
// numbers equal the number of zero entries in the integer diagonals; torsion
// (e.g. ℝP²) makes them diverge, which is exactly the information the
// integer path buys.
//
// Concurrency: per-dimension reductions touch disjoint matrices, so
// WithParallel fans them out over goroutines; outputs are identical to the
// serial run by construction.
package homology
