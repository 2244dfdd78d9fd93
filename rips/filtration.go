package rips

import (
	"sort"

	"github.com/katalvlaran/tda/simplex"
)

// Filtration builds the Vietoris–Rips filtration of points over a strictly
// descending scale list. The complex is constructed once at scales[0]; each
// simplex is stamped with its entry step (the first step at which all its
// edges are shorter than the step's scale, so step 0 is the finest complex
// at scales[m−1]); layers are sorted by entry step and face indices are
// renumbered to the post-sort positions, face lists descending.
//
// An empty scale list or an empty point set yields an empty filtration.
func Filtration[P any](scales []float64, d Metric[P], points []P, opts ...Option) (*simplex.Filtration, error) {
	if d == nil {
		return nil, ErrNilMetric
	}
	if err := checkScales(scales); err != nil {
		return nil, err
	}
	if len(scales) == 0 || len(points) == 0 {
		return &simplex.Filtration{}, nil
	}

	o := gatherOptions(opts...)
	dist := newDistances(d, points, o.cacheDistances)
	sc := buildComplex(len(points), scales[0], dist, o)

	return assignFiltration(scales, sc, dist)
}

// FiltrationFromComplex stamps an existing complex, assumed built at
// scales[0], using weight for edge lengths. The complex is validated first;
// an edge at or beyond scales[0] is rejected with ErrEdgeBeyondScale.
func FiltrationFromComplex(scales []float64, sc *simplex.Complex, weight func(u, v int) float64) (*simplex.Filtration, error) {
	if weight == nil {
		return nil, ErrNilWeight
	}
	if err := checkScales(scales); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if len(scales) == 0 {
		return &simplex.Filtration{}, nil
	}

	return assignFiltration(scales, sc, weight)
}

// checkScales enforces strict descent. An empty or single-entry list is fine.
func checkScales(scales []float64) error {
	for i := 1; i < len(scales); i++ {
		if scales[i] >= scales[i-1] {
			return ErrScalesNotDescending
		}
	}

	return nil
}

// entryStep returns the filtration step at which an edge of the given length
// enters: the number of scales ≤ length. Step 0 means shorter than every
// scale (present from the start); the maximum valid step is len(scales)−1,
// reached only by edges below scales[0].
func entryStep(scales []float64, length float64) int {
	t := sort.Search(len(scales), func(i int) bool { return scales[i] <= length })

	return len(scales) - t
}

// assignFiltration stamps every simplex with the maximum entry step over its
// edges, then sorts and renumbers.
func assignFiltration(scales []float64, sc *simplex.Complex, dist distances) (*simplex.Filtration, error) {
	f := &simplex.Filtration{
		NumVertices: sc.NumVertices,
		Layers:      make([][]simplex.FilteredSimplex, len(sc.Layers)),
	}
	for li, layer := range sc.Layers {
		fl := make([]simplex.FilteredSimplex, len(layer))
		for i, s := range layer {
			idx := 0
			for a := 0; a < len(s.Verts); a++ {
				for b := a + 1; b < len(s.Verts); b++ {
					if st := entryStep(scales, dist(s.Verts[a], s.Verts[b])); st > idx {
						idx = st
					}
				}
			}
			if idx >= len(scales) {
				return nil, ErrEdgeBeyondScale
			}
			fl[i] = simplex.FilteredSimplex{
				Index: idx,
				Verts: append([]int(nil), s.Verts...),
				Faces: append([]int(nil), s.Faces...),
			}
		}
		f.Layers[li] = fl
	}

	sortFiltration(f)

	return f, nil
}

// sortFiltration stable-sorts each layer by entry step, bottom-up, rewriting
// face indices through the previous layer's permutation, and normalizes each
// face list to descending order (the persistence input contract).
func sortFiltration(f *simplex.Filtration) {
	var prevPerm []int // previous layer: old position → new position
	for li, layer := range f.Layers {
		if li > 0 {
			for i := range layer {
				for j, fi := range layer[i].Faces {
					layer[i].Faces[j] = prevPerm[fi]
				}
			}
		}

		order := make([]int, len(layer))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return layer[order[a]].Index < layer[order[b]].Index
		})

		sorted := make([]simplex.FilteredSimplex, len(layer))
		perm := make([]int, len(layer))
		for newPos, oldPos := range order {
			sorted[newPos] = layer[oldPos]
			perm[oldPos] = newPos
		}
		for i := range sorted {
			sort.Sort(sort.Reverse(sort.IntSlice(sorted[i].Faces)))
		}

		f.Layers[li] = sorted
		prevPerm = perm
	}
}
