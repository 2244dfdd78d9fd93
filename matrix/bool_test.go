package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/matrix"
)

// newBoolFrom builds a Bool matrix from 0/1 rows.
func newBoolFrom(t *testing.T, cols int, rows [][]int) *matrix.Bool {
	t.Helper()
	m := matrix.NewBool(len(rows), cols)
	for i, r := range rows {
		require.Len(t, r, cols)
		for j, v := range r {
			require.NoError(t, m.Set(i, j, v != 0))
		}
	}

	return m
}

// TestBoolAccessors covers bounds checking and clone independence.
func TestBoolAccessors(t *testing.T) {
	m := matrix.NewBool(2, 2)
	require.NoError(t, m.Set(0, 1, true))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = m.At(0, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(2, 0, true), matrix.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, false))
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, v, "clone must not alias the original")
}

// TestBoolRank: XOR elimination over 𝔽₂, where 1+1 = 0 changes ranks
// relative to ℤ.
func TestBoolRank(t *testing.T) {
	cases := []struct {
		name string
		cols int
		rows [][]int
		want int
	}{
		{"identity", 3, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"xor_dependent", 3, [][]int{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}}, 2},
		{"zero", 2, [][]int{{0, 0}, {0, 0}}, 0},
		{"duplicate_rows", 2, [][]int{{1, 1}, {1, 1}}, 1},
		{"wide", 4, [][]int{{1, 1, 1, 1}}, 1},
		{"empty", 0, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, newBoolFrom(t, tc.cols, tc.rows).Rank())
		})
	}
}

// TestBoolRank_DoesNotMutate: elimination runs on a working copy.
func TestBoolRank_DoesNotMutate(t *testing.T) {
	m := newBoolFrom(t, 2, [][]int{{1, 1}, {0, 1}})
	_ = m.Rank()

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.True(t, v)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.False(t, v)
}

// TestBoolMul: 𝔽₂ product with cancellation, plus the shape panic.
func TestBoolMul(t *testing.T) {
	a := newBoolFrom(t, 2, [][]int{{1, 1}})
	b := newBoolFrom(t, 1, [][]int{{1}, {1}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	v, pErr := p.At(0, 0)
	require.NoError(t, pErr)
	assert.False(t, v, "1·1 + 1·1 = 0 over 𝔽₂")
	assert.True(t, p.IsZero())

	assert.Panics(t, func() { _, _ = b.Mul(b) })
}
