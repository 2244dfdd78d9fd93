package simplex

import (
	"strconv"
	"strings"
)

// Key returns a canonical string key for an ascending vertex list, suitable
// for structural-equality lookups when interning simplices.
// Complexity: O(len(verts)).
func Key(verts []int) string {
	var b strings.Builder
	for i, v := range verts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Validate checks the structural invariants of the complex: vertex and face
// ranges, ascending vertex lists, per-layer uniqueness, face counts, and that
// every listed face is a vertex subset of its coface. A nil receiver returns
// ErrNilComplex.
//
// Time: O(total simplex count · D), D = max dimension + 1.
func (c *Complex) Validate() error {
	if c == nil {
		return ErrNilComplex
	}

	for li, layer := range c.Layers {
		seen := make(map[string]struct{}, len(layer))
		for _, s := range layer {
			if err := c.validateSimplex(li, s.Verts, s.Faces); err != nil {
				return err
			}
			k := Key(s.Verts)
			if _, dup := seen[k]; dup {
				return ErrDuplicateSimplex
			}
			seen[k] = struct{}{}
		}
	}

	return nil
}

// validateSimplex checks one simplex of layer li (dimension li+1).
func (c *Complex) validateSimplex(li int, verts, faces []int) error {
	if err := checkVerts(verts, li+1, c.NumVertices); err != nil {
		return err
	}
	// edges carry no face list; higher simplices list exactly dim+1 faces
	if li == 0 {
		if len(faces) != 0 {
			return ErrFaceCount
		}

		return nil
	}
	if len(faces) != len(verts) {
		return ErrFaceCount
	}
	prev := c.Layers[li-1]
	for _, fi := range faces {
		if fi < 0 || fi >= len(prev) {
			return ErrFaceRange
		}
		if !isSubset(prev[fi].Verts, verts) {
			return ErrFaceNotSubset
		}
	}

	return nil
}

// Validate checks the filtration invariants on top of the structural ones:
// non-negative indices, per-layer sort by index ascending, face-index lists
// sorted descending, and monotone entry (a face never enters after a coface).
// A nil receiver returns ErrNilFiltration.
func (f *Filtration) Validate() error {
	if f == nil {
		return ErrNilFiltration
	}
	if f.VertexIndex != nil && len(f.VertexIndex) != f.NumVertices {
		return ErrVertexIndexLen
	}
	for _, vi := range f.VertexIndex {
		if vi < 0 {
			return ErrNegativeIndex
		}
	}

	for li, layer := range f.Layers {
		seen := make(map[string]struct{}, len(layer))
		prevIdx := 0
		for _, s := range layer {
			if s.Index < 0 {
				return ErrNegativeIndex
			}
			if s.Index < prevIdx {
				return ErrLayerNotSorted
			}
			prevIdx = s.Index

			if err := checkVerts(s.Verts, li+1, f.NumVertices); err != nil {
				return err
			}
			k := Key(s.Verts)
			if _, dup := seen[k]; dup {
				return ErrDuplicateSimplex
			}
			seen[k] = struct{}{}

			if err := f.validateFaces(li, s); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateFaces checks range, descending order, subset containment, and entry
// monotonicity of one filtered simplex's face list.
func (f *Filtration) validateFaces(li int, s FilteredSimplex) error {
	if li == 0 {
		if len(s.Faces) != 0 {
			return ErrFaceCount
		}
		// edge endpoints must not enter after the edge
		for _, v := range s.Verts {
			if f.VertexEntry(v) > s.Index {
				return ErrFaceAfterCoface
			}
		}

		return nil
	}
	if len(s.Faces) != len(s.Verts) {
		return ErrFaceCount
	}
	prev := f.Layers[li-1]
	for i, fi := range s.Faces {
		if fi < 0 || fi >= len(prev) {
			return ErrFaceRange
		}
		if i > 0 && s.Faces[i-1] < fi {
			return ErrFacesNotSorted
		}
		if !isSubset(prev[fi].Verts, s.Verts) {
			return ErrFaceNotSubset
		}
		if prev[fi].Index > s.Index {
			return ErrFaceAfterCoface
		}
	}

	return nil
}

// checkVerts verifies a strictly ascending vertex list of dimension dim with
// indices below n.
func checkVerts(verts []int, dim, n int) error {
	if len(verts) != dim+1 {
		return ErrFaceCount
	}
	for i, v := range verts {
		if v < 0 || v >= n {
			return ErrVertexRange
		}
		if i > 0 && verts[i-1] >= v {
			return ErrVertsNotSorted
		}
	}

	return nil
}

// isSubset reports whether sub ⊆ super; both must be ascending.
func isSubset(sub, super []int) bool {
	j := 0
	for _, v := range sub {
		for j < len(super) && super[j] < v {
			j++
		}
		if j >= len(super) || super[j] != v {
			return false
		}
		j++
	}

	return true
}
