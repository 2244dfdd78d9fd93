// Package simplex defines the shared data model of the library: abstract
// simplices, simplicial complexes, and filtrations.
//
// What:
//
//   - Simplex: an ascending list of vertex indices plus index-valued
//     back-pointers to its codimension-1 faces.
//   - Complex: a vertex count and per-dimension layers of simplices,
//     Layers[0] holding the edges.
//   - FilteredSimplex / Filtration: the same structure with a filtration
//     index on every simplex, sorted so that earlier simplices come first.
//
// Why indices instead of pointers:
//
//   - Renumbering after a filtration sort is a cheap array rewrite.
//   - No cyclic references, no lifetime tangles; a layer owns its simplices.
//
// Invariants (checked by Validate):
//
//   - Every vertex index is in [0, NumVertices).
//   - Every face index is a valid position one layer down.
//   - Vertex lists are strictly ascending; a layer holds no duplicates.
//   - A k-simplex (k ≥ 2) lists exactly k+1 faces; edges list none.
//   - Filtration layers are sorted by index ascending; face-index lists are
//     sorted descending; a face never enters later than its cofaces.
//
// Errors:
//
//   - ErrVertexRange, ErrFaceRange: an index escapes its sibling array.
//   - ErrVertsNotSorted, ErrDuplicateSimplex, ErrFaceCount: malformed layers.
//   - ErrLayerNotSorted, ErrFacesNotSorted, ErrFaceAfterCoface: filtration
//     ordering violations.
package simplex
