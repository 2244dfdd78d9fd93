// Package rips builds Vietoris–Rips complexes and filtrations from a point
// set and a distance function.
//
// What:
//
//   - Complex(scale, d, points): the VR complex at one scale — vertices are
//     the points, and a vertex set spans a simplex iff all pairwise
//     distances are strictly below the scale. Built from the maximal
//     cliques of the proximity graph, largest first, with every face
//     interned exactly once.
//   - Filtration(scales, d, points): the multi-scale version. The complex
//     is built once at the largest scale; each simplex is then stamped with
//     the first step of the descending scale list at which all its edges
//     fit, layers are sorted by entry step, and face indices are renumbered
//     to the post-sort positions.
//   - FiltrationFromComplex(scales, sc, weight): same stamping for a
//     complex built elsewhere, with edge lengths supplied by weight.
//
// Edge predicate:
//
//   - Strictly d(xᵢ, xⱼ) < scale, applied consistently everywhere. Points at
//     exactly the scale distance are not connected.
//
// Options:
//
//   - WithCachedDistances: precompute the N×N distance table ("fast" mode,
//     O(N²) memory) instead of re-evaluating the metric on demand ("light"
//     mode, the default). Outputs are identical.
//   - WithCliqueEnumerator: substitute the maximal-clique black box; the
//     default is clique.Maximal.
//
// Errors:
//
//   - ErrNilMetric: no distance function supplied.
//   - ErrScalesNotDescending: the scale list must be strictly descending.
//
// Empty inputs are answers, not errors: no points yields the (0, ∅)
// complex, an empty scale list yields an empty filtration.
package rips
