package persistence

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/katalvlaran/tda/simplex"
)

// IndexBarcodes computes the barcode diagram of f in every dimension,
// births and deaths expressed as filtration steps. The result has one slice
// per dimension 0…f.Dim(); zero-length bars are already filtered out. The
// filtration is validated first.
//
// Time: near-linear in the number of boundary entries on typical
// filtrations thanks to the marking optimization; worst case cubic in the
// simplex count. Memory: the slot chains, O(#simplices²) bits
// (#simplices²/w words) worst case.
func IndexBarcodes(f *simplex.Filtration) ([][]Bar[int], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	dim := f.Dim()
	bars := make([][]Bar[int], dim+1)
	for k := range bars {
		bars[k] = []Bar[int]{}
	}

	// marked[k][p]: position p of layer k created a k-cycle.
	// slots[k][p]: reduced chain whose pivot is position p of layer k.
	marked := make([][]bool, dim+1)
	slots := make([][]*roaring.Bitmap, dim+1)

	// dimension 0: no boundaries, every vertex is marked
	marked[0] = make([]bool, f.NumVertices)
	for i := range marked[0] {
		marked[0][i] = true
	}
	slots[0] = make([]*roaring.Bitmap, f.NumVertices)

	entry := func(k, pos int) int {
		if k == 0 {
			return f.VertexEntry(pos)
		}

		return f.Layers[k-1][pos].Index
	}

	for k := 1; k <= dim; k++ {
		layer := f.Layers[k-1]
		marked[k] = make([]bool, len(layer))
		slots[k] = make([]*roaring.Bitmap, len(layer))

		for pos, s := range layer {
			chain := boundaryChain(s, k, marked[k-1])

			// reduce: as long as the pivot's slot is taken, cancel against it
			for !chain.IsEmpty() {
				stored := slots[k-1][chain.Minimum()]
				if stored == nil {
					break
				}
				chain.Xor(stored)
			}

			if chain.IsEmpty() {
				marked[k][pos] = true

				continue
			}

			p := int(chain.Minimum())
			slots[k-1][p] = chain
			if birth, death := entry(k-1, p), s.Index; birth != death {
				bars[k-1] = append(bars[k-1], Bar[int]{Birth: birth, Death: Finite(death)})
			}
		}
	}

	// marked simplices whose slot stayed empty never got cancelled: their
	// cycles survive to the end
	for k := 0; k <= dim; k++ {
		for pos, m := range marked[k] {
			if m && slots[k][pos] == nil {
				bars[k] = append(bars[k], Bar[int]{Birth: entry(k, pos), Death: Infinity[int]()})
			}
		}
	}

	return bars, nil
}

// boundaryChain collects the marked faces of s as a bitmap: face positions
// for k ≥ 2, vertex endpoints for edges. Unmarked faces are skipped — their
// classes were already cancelled by earlier pairings.
func boundaryChain(s simplex.FilteredSimplex, k int, markedBelow []bool) *roaring.Bitmap {
	chain := roaring.New()
	if k == 1 {
		for _, v := range s.Verts {
			if markedBelow[v] {
				chain.Add(uint32(v))
			}
		}

		return chain
	}
	for _, fi := range s.Faces {
		if markedBelow[fi] {
			chain.Add(uint32(fi))
		}
	}

	return chain
}

// ScaleBarcodes computes barcodes with births and deaths mapped back to the
// descending scale list the filtration was stamped from: step i corresponds
// to scales[m−1−i]. Infinite deaths stay infinite. Every filtration index
// must have a matching scale.
func ScaleBarcodes(scales []float64, f *simplex.Filtration) ([][]Bar[float64], error) {
	for i := 1; i < len(scales); i++ {
		if scales[i] >= scales[i-1] {
			return nil, ErrScalesNotDescending
		}
	}

	index, err := IndexBarcodes(f)
	if err != nil {
		return nil, err
	}

	m := len(scales)
	at := func(i int) (float64, error) {
		if i < 0 || i >= m {
			return 0, ErrIndexBeyondScales
		}

		return scales[m-1-i], nil
	}

	out := make([][]Bar[float64], len(index))
	for k, dimBars := range index {
		out[k] = make([]Bar[float64], 0, len(dimBars))
		for _, b := range dimBars {
			birth, aErr := at(b.Birth)
			if aErr != nil {
				return nil, aErr
			}
			death := Infinity[float64]()
			if v, finite := b.Death.Value(); finite {
				dv, dErr := at(v)
				if dErr != nil {
					return nil, dErr
				}
				death = Finite(dv)
			}
			out[k] = append(out[k], Bar[float64]{Birth: birth, Death: death})
		}
	}

	return out, nil
}
