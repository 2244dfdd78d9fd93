package matrix

import "github.com/bits-and-blooms/bitset"

// Bool is a rectangular matrix over 𝔽₂ with one bit-packed vector per row,
// so row combination (the only operation elimination needs) is a word-wide
// XOR. Columns index k-simplices, rows index their faces.
type Bool struct {
	rows, cols int
	bits       []*bitset.BitSet
}

// NewBool allocates a rows×cols zero matrix over 𝔽₂. Negative dimensions
// are a programmer error and panic.
func NewBool(rows, cols int) *Bool {
	if rows < 0 || cols < 0 {
		panic(panicNegativeShape)
	}
	m := &Bool{rows: rows, cols: cols, bits: make([]*bitset.BitSet, rows)}
	for i := range m.bits {
		m.bits[i] = bitset.New(uint(cols))
	}

	return m
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Bool) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Bool) Cols() int { return m.cols }

// At retrieves the bit at (i, j), or ErrOutOfRange.
func (m *Bool) At(i, j int) (bool, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false, ErrOutOfRange
	}

	return m.bits[i].Test(uint(j)), nil
}

// Set assigns the bit at (i, j), or returns ErrOutOfRange.
func (m *Bool) Set(i, j int, v bool) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	m.bits[i].SetTo(uint(j), v)

	return nil
}

// MustSet assigns the bit at (i, j) and panics on an out-of-range index.
// Intended for callers that have already proven bounds.
func (m *Bool) MustSet(i, j int, v bool) {
	if err := m.Set(i, j, v); err != nil {
		panic(err)
	}
}

// Clone returns an independent deep copy.
func (m *Bool) Clone() *Bool {
	c := &Bool{rows: m.rows, cols: m.cols, bits: make([]*bitset.BitSet, m.rows)}
	for i, b := range m.bits {
		c.bits[i] = b.Clone()
	}

	return c
}

// IsZero reports whether every bit is clear.
func (m *Bool) IsZero() bool {
	for _, b := range m.bits {
		if b.Any() {
			return false
		}
	}

	return true
}

// Rank computes the 𝔽₂ rank by Gaussian elimination on a working copy:
// row combination is symmetric difference, i.e. one XOR sweep per pivot.
func (m *Bool) Rank() int {
	if m == nil {
		return 0
	}
	w := m.Clone()

	r := 0
	for c := 0; c < w.cols && r < w.rows; c++ {
		pivot := -1
		for i := r; i < w.rows; i++ {
			if w.bits[i].Test(uint(c)) {
				pivot = i

				break
			}
		}
		if pivot == -1 {
			continue
		}
		w.bits[pivot], w.bits[r] = w.bits[r], w.bits[pivot]
		for i := 0; i < w.rows; i++ {
			if i != r && w.bits[i].Test(uint(c)) {
				w.bits[i].InPlaceSymmetricDifference(w.bits[r])
			}
		}
		r++
	}

	return r
}

// Mul returns m·o over 𝔽₂: result row i accumulates (by XOR) every row of o
// whose index carries a set bit in row i of m. A shape mismatch panics.
func (m *Bool) Mul(o *Bool) (*Bool, error) {
	if m == nil || o == nil {
		return nil, ErrNilMatrix
	}
	if m.cols != o.rows {
		panic(panicShapeMul)
	}
	out := NewBool(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for k, ok := m.bits[i].NextSet(0); ok; k, ok = m.bits[i].NextSet(k + 1) {
			out.bits[i].InPlaceSymmetricDifference(o.bits[k])
		}
	}

	return out, nil
}
