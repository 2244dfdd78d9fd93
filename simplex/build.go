package simplex

import "sort"

// FromLayers assembles a Complex from raw per-dimension vertex lists,
// computing every face-index back-pointer by lookup. layerVerts[k] lists the
// (k+1)-dimensional simplices as vertex slices; vertex order inside a slice
// is free, duplicates across a layer are rejected. Every face of a listed
// simplex must itself be listed one layer down.
//
// This is the entry point for hand-built complexes (triangulations that do
// not arise from a metric), and the test-fixture workhorse.
//
// Time: O(total simplex count · D²), D = max dimension + 1.
func FromLayers(n int, layerVerts [][][]int) (*Complex, error) {
	c := &Complex{NumVertices: n, Layers: make([][]Simplex, len(layerVerts))}

	// positions[li] maps a canonical vertex key to its index in Layers[li].
	positions := make([]map[string]int, len(layerVerts))
	for li, lv := range layerVerts {
		layer := make([]Simplex, 0, len(lv))
		pos := make(map[string]int, len(lv))
		for _, verts := range lv {
			vs := append([]int(nil), verts...)
			sort.Ints(vs)
			key := Key(vs)
			if _, dup := pos[key]; dup {
				return nil, ErrDuplicateSimplex
			}
			var faces []int
			if li > 0 {
				faces = make([]int, 0, len(vs))
				for drop := 0; drop < len(vs); drop++ {
					sub := make([]int, 0, len(vs)-1)
					sub = append(sub, vs[:drop]...)
					sub = append(sub, vs[drop+1:]...)
					fi, ok := positions[li-1][Key(sub)]
					if !ok {
						return nil, ErrFaceRange
					}
					faces = append(faces, fi)
				}
			}
			pos[key] = len(layer)
			layer = append(layer, Simplex{Verts: vs, Faces: faces})
		}
		positions[li] = pos
		c.Layers[li] = layer
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
