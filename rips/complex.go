package rips

import (
	"sort"

	"github.com/katalvlaran/tda/simplex"
)

// Metric is a distance-like function on the caller's point type. It must be
// symmetric and non-negative; no triangle inequality is required.
type Metric[P any] func(a, b P) float64

// distances abstracts the light/fast modes behind a single pair lookup.
type distances func(i, j int) float64

// newDistances fixes the distance source for a build: either the metric
// itself (light) or a precomputed table (fast).
func newDistances[P any](d Metric[P], points []P, cache bool) distances {
	if !cache {
		return func(i, j int) float64 { return d(points[i], points[j]) }
	}
	n := len(points)
	table := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := d(points[i], points[j])
			table[i*n+j] = v
			table[j*n+i] = v
		}
	}

	return func(i, j int) float64 { return table[i*n+j] }
}

// Complex builds the Vietoris–Rips complex of points at the given scale:
// every maximal clique of the strict proximity graph becomes a maximal
// simplex, and all faces down to the edges are interned layer by layer.
//
// The empty point set yields the (0, ∅) complex. A scale at or below the
// minimum pairwise distance yields a complex of isolated vertices.
//
// Time: clique enumeration plus O(total simplex count · D) interning work,
// D = size of the largest clique.
func Complex[P any](scale float64, d Metric[P], points []P, opts ...Option) (*simplex.Complex, error) {
	if d == nil {
		return nil, ErrNilMetric
	}
	o := gatherOptions(opts...)
	n := len(points)
	if n == 0 {
		return &simplex.Complex{}, nil
	}

	dist := newDistances(d, points, o.cacheDistances)

	return buildComplex(n, scale, dist, o), nil
}

// buildComplex assembles the complex from the proximity graph induced by
// dist at the given scale.
func buildComplex(n int, scale float64, dist distances, o options) *simplex.Complex {
	adj := func(i, j int) bool { return dist(i, j) < scale }

	// group maximal cliques by size, singletons discarded
	bySize := make(map[int][][]int)
	maxSize := 0
	for _, c := range o.enum(n, adj) {
		if len(c) < 2 {
			continue
		}
		bySize[len(c)] = append(bySize[len(c)], sortedCopy(c))
		if len(c) > maxSize {
			maxSize = len(c)
		}
	}
	if maxSize == 0 {
		return &simplex.Complex{NumVertices: n}
	}

	sc := &simplex.Complex{
		NumVertices: n,
		Layers:      make([][]simplex.Simplex, maxSize-1),
	}
	intern := make([]map[string]int, maxSize-1)
	for i := range intern {
		intern[i] = make(map[string]int)
	}

	// add places verts into layer li unless already present.
	add := func(li int, verts []int) int {
		key := simplex.Key(verts)
		if pos, ok := intern[li][key]; ok {
			return pos
		}
		pos := len(sc.Layers[li])
		vs := make([]int, len(verts))
		copy(vs, verts)
		sc.Layers[li] = append(sc.Layers[li], simplex.Simplex{Verts: vs})
		intern[li][key] = pos

		return pos
	}

	// top-down: maximal cliques of size s join their layer before that
	// layer's faces are generated one level down
	for s := maxSize; s >= 2; s-- {
		li := s - 2
		for _, c := range bySize[s] {
			add(li, c)
		}
		if s == 2 {
			break // edges keep an empty face list
		}
		for idx := 0; idx < len(sc.Layers[li]); idx++ {
			verts := sc.Layers[li][idx].Verts
			faces := make([]int, 0, len(verts))
			sub := make([]int, len(verts)-1)
			for drop := 0; drop < len(verts); drop++ {
				copy(sub, verts[:drop])
				copy(sub[drop:], verts[drop+1:])
				faces = append(faces, add(li-1, sub))
			}
			sc.Layers[li][idx].Faces = faces
		}
	}

	return sc
}

// sortedCopy returns an ascending copy of vs. Clique enumerators already
// emit ascending lists; this guards replacements that do not.
func sortedCopy(vs []int) []int {
	out := make([]int, len(vs))
	copy(out, vs)
	sort.Ints(out)

	return out
}
