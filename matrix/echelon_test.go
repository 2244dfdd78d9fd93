package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/matrix"
)

// triangleBoundaries returns ∂₁ and ∂₂ of the filled triangle on vertices
// {0,1,2} with edges [{0,1},{1,2},{0,2}] and the canonical sign convention.
func triangleBoundaries() (*matrix.Int, *matrix.Int) {
	d1 := matrix.NewIntFromRows(3, [][]int64{
		{-1, 0, -1},
		{1, -1, 0},
		{0, 1, 1},
	})
	d2 := matrix.NewIntFromRows(1, [][]int64{{1}, {1}, {-1}})

	return d1, d2
}

// TestColumnEchelon_ZeroColumns: the number of zero columns after reduction
// equals the nullity.
func TestColumnEchelon_ZeroColumns(t *testing.T) {
	d1, _ := triangleBoundaries()
	rank, err := d1.Rank()
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	work := d1.Clone()
	ops, err := work.ColumnEchelon()
	require.NoError(t, err)
	assert.NotEmpty(t, ops)

	zero := 0
	for j := 0; j < work.Cols(); j++ {
		allZero := true
		for i := 0; i < work.Rows(); i++ {
			v, aErr := work.At(i, j)
			require.NoError(t, aErr)
			if v != 0 {
				allZero = false
			}
		}
		if allZero {
			zero++
		}
	}
	assert.Equal(t, 1, zero, "nullity of the triangle's ∂₁ is 1")
}

// TestColumnEchelon_LeadingRowsIncrease verifies the echelon shape: leading
// nonzero rows of nonzero columns strictly increase left to right.
func TestColumnEchelon_LeadingRowsIncrease(t *testing.T) {
	m := matrix.NewIntFromRows(4, [][]int64{
		{0, 2, 4, 2},
		{1, 1, 1, 1},
		{3, 0, 3, 3},
	})
	_, err := m.ColumnEchelon()
	require.NoError(t, err)

	prev := -1
	for j := 0; j < m.Cols(); j++ {
		lead := -1
		for i := 0; i < m.Rows(); i++ {
			v, aErr := m.At(i, j)
			require.NoError(t, aErr)
			if v != 0 {
				lead = i

				break
			}
		}
		if lead == -1 {
			continue // zero columns sit on the right
		}
		assert.Greater(t, lead, prev, "column %d", j)
		prev = lead
	}
}

// TestImageInKernel_Triangle: im ∂₂ expressed in ker ∂₁ for the filled
// triangle is a 1×1 unimodular matrix — the boundary of the 2-simplex spans
// the whole cycle space, so H₁ vanishes.
func TestImageInKernel_Triangle(t *testing.T) {
	d1, d2 := triangleBoundaries()

	// sanity: ∂₁∘∂₂ = 0
	z, err := d1.Mul(d2)
	require.NoError(t, err)
	assert.True(t, z.IsZero())

	img, err := matrix.ImageInKernel(d1, d2)
	require.NoError(t, err)
	require.Equal(t, 1, img.Rows())
	require.Equal(t, 1, img.Cols())

	diag, err := img.SmithDiagonal()
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, diag)
}

// TestImageInKernel_HollowInput: with no 2-simplices, the image matrix has a
// kernel-sized row count and zero columns.
func TestImageInKernel_HollowInput(t *testing.T) {
	d1, _ := triangleBoundaries()
	img, err := matrix.ImageInKernel(d1, matrix.NewInt(3, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Rows())
	assert.Equal(t, 0, img.Cols())
}

// TestImageInKernel_ShapeMismatchPanics: a chain-complex inconsistency is a
// programmer error.
func TestImageInKernel_ShapeMismatchPanics(t *testing.T) {
	d1, _ := triangleBoundaries()
	assert.Panics(t, func() { _, _ = matrix.ImageInKernel(d1, matrix.NewInt(2, 1)) })
}

// TestImageInKernel_PreservesInputs: both operands must stay untouched.
func TestImageInKernel_PreservesInputs(t *testing.T) {
	d1, d2 := triangleBoundaries()
	want1, want2 := d1.Clone(), d2.Clone()

	_, err := matrix.ImageInKernel(d1, d2)
	require.NoError(t, err)

	for i := 0; i < d1.Rows(); i++ {
		for j := 0; j < d1.Cols(); j++ {
			a, _ := d1.At(i, j)
			b, _ := want1.At(i, j)
			assert.Equal(t, b, a)
		}
	}
	for i := 0; i < d2.Rows(); i++ {
		a, _ := d2.At(i, 0)
		b, _ := want2.At(i, 0)
		assert.Equal(t, b, a)
	}
}
