// Package boundary turns a simplicial complex into its boundary operators
// ∂₁…∂_dim, over ℤ and over 𝔽₂.
//
// ∂ₖ has one row per (k−1)-simplex and one column per k-simplex. Over ℤ the
// signs follow the canonical convention: with the vertex list ascending, the
// face obtained by removing the i-th vertex carries sign (−1)^i. This makes
// ∂ₖ∘∂ₖ₊₁ = 0 hold identically, which the test suite asserts; integer
// homology is only trustworthy because of it. Over 𝔽₂ signs vanish and each
// column simply flags the face indices.
//
// ∂₁ is synthesized straight from edge endpoints: −1 at the lower endpoint,
// +1 at the upper one (1 and 1 over 𝔽₂).
package boundary

import (
	"github.com/katalvlaran/tda/matrix"
	"github.com/katalvlaran/tda/simplex"
)

// Int returns the integer boundary operators [∂₁, …, ∂_dim] of sc. A complex
// of isolated vertices yields an empty slice. The complex is validated first;
// structural defects surface as simplex.Err* sentinels.
//
// Time: O(total simplex count · D²), D = max dimension + 1.
func Int(sc *simplex.Complex) ([]*matrix.Int, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	out := make([]*matrix.Int, len(sc.Layers))
	for k := 1; k <= len(sc.Layers); k++ {
		m := matrix.NewInt(sc.Size(k-1), sc.Size(k))
		for col, s := range sc.Layers[k-1] {
			if k == 1 {
				// edge endpoints are ascending: tail gets −1, head +1
				m.MustSet(s.Verts[0], col, -1)
				m.MustSet(s.Verts[1], col, 1)

				continue
			}
			for _, fi := range s.Faces {
				removed := removedVertexPosition(sc.Layers[k-2][fi].Verts, s.Verts)
				sign := int64(1)
				if removed%2 == 1 {
					sign = -1
				}
				m.MustSet(fi, col, sign)
			}
		}
		out[k-1] = m
	}

	return out, nil
}

// Bool returns the 𝔽₂ boundary operators [∂₁, …, ∂_dim] of sc: column σ has
// a set bit at every face of σ (at both endpoints for an edge).
func Bool(sc *simplex.Complex) ([]*matrix.Bool, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	out := make([]*matrix.Bool, len(sc.Layers))
	for k := 1; k <= len(sc.Layers); k++ {
		m := matrix.NewBool(sc.Size(k-1), sc.Size(k))
		for col, s := range sc.Layers[k-1] {
			if k == 1 {
				m.MustSet(s.Verts[0], col, true)
				m.MustSet(s.Verts[1], col, true)

				continue
			}
			for _, fi := range s.Faces {
				m.MustSet(fi, col, true)
			}
		}
		out[k-1] = m
	}

	return out, nil
}

// removedVertexPosition finds the position in coface (ascending) of the one
// vertex missing from face (ascending). Validation guarantees the input is a
// codimension-1 pair.
func removedVertexPosition(face, coface []int) int {
	for i, v := range coface {
		if i >= len(face) || face[i] != v {
			return i
		}
	}

	return len(coface) - 1
}
