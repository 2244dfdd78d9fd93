package simplex

// Simplex is an abstract simplex held by a Complex layer.
//
// Verts lists the vertex indices in strictly ascending order; the order is
// fixed at construction so that structural equality works between vertex
// subsets. Faces lists the positions of the codimension-1 faces inside the
// previous layer. Edges (dim 1) keep Faces empty: their endpoints already
// name their faces.
type Simplex struct {
	Verts []int
	Faces []int
}

// Dim returns the dimension of the simplex (|Verts| − 1).
func (s Simplex) Dim() int { return len(s.Verts) - 1 }

// Complex is a simplicial complex: a vertex count plus per-dimension layers.
// Layers[k] holds the (k+1)-dimensional simplices, so Layers[0] is the edge
// layer. Vertices are implicit: every index in [0, NumVertices) is a vertex.
type Complex struct {
	NumVertices int
	Layers      [][]Simplex
}

// Dim returns the dimension of the highest layer (len(Layers), whether or not
// that layer is empty), or 0 for a complex of isolated vertices.
func (c *Complex) Dim() int { return len(c.Layers) }

// Size returns the number of k-dimensional simplices. Size(0) is the vertex
// count; out-of-range dimensions report 0.
func (c *Complex) Size(k int) int {
	switch {
	case k == 0:
		return c.NumVertices
	case k < 0 || k > len(c.Layers):
		return 0
	default:
		return len(c.Layers[k-1])
	}
}

// FilteredSimplex is a simplex annotated with the filtration step at which it
// enters the complex. Index 0 means "present from the start".
type FilteredSimplex struct {
	Index int
	Verts []int
	Faces []int
}

// Dim returns the dimension of the filtered simplex.
func (s FilteredSimplex) Dim() int { return len(s.Verts) - 1 }

// Filtration is a nested sequence of complexes encoded on a single simplex
// arena. Layers[k] holds the (k+1)-dimensional filtered simplices sorted by
// Index ascending; Layers[0] is the edge layer.
//
// Two shapes are supported:
//
//   - simple: VertexIndex is nil and all vertices enter at step 0;
//   - general: VertexIndex[i] is the entry step of vertex i.
type Filtration struct {
	NumVertices int
	VertexIndex []int
	Layers      [][]FilteredSimplex
}

// Dim returns the dimension of the highest layer, or 0 for vertices only.
func (f *Filtration) Dim() int { return len(f.Layers) }

// Size returns the number of k-dimensional filtered simplices, with the same
// conventions as Complex.Size.
func (f *Filtration) Size(k int) int {
	switch {
	case k == 0:
		return f.NumVertices
	case k < 0 || k > len(f.Layers):
		return 0
	default:
		return len(f.Layers[k-1])
	}
}

// VertexEntry returns the filtration step at which vertex v enters: 0 in the
// simple shape, VertexIndex[v] otherwise.
func (f *Filtration) VertexEntry(v int) int {
	if f.VertexIndex == nil {
		return 0
	}

	return f.VertexIndex[v]
}

// MaxIndex returns the largest filtration index present, or 0 when the
// filtration is empty.
func (f *Filtration) MaxIndex() int {
	m := 0
	for _, v := range f.VertexIndex {
		if v > m {
			m = v
		}
	}
	for _, layer := range f.Layers {
		// layers are sorted by index ascending, so the last entry is enough
		if n := len(layer); n > 0 && layer[n-1].Index > m {
			m = layer[n-1].Index
		}
	}

	return m
}
