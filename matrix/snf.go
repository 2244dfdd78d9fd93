package matrix

// Rank returns the rank of m over ℤ (equivalently over ℚ), computed by
// fraction-free diagonalization of a working copy.
func (m *Int) Rank() (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	w := m.Clone()

	return w.diagonalize()
}

// SmithDiagonal reduces a working copy of m to Smith Normal Form and returns
// the diagonal: min(rows, cols) non-negative entries with d₁ | d₂ | … for the
// nonzero prefix, zeros after. A 1 is a trivial factor, k > 1 encodes ℤ/kℤ,
// 0 encodes a free ℤ factor.
//
// The reduction repeatedly moves a minimum-|value| entry into pivot position
// and clears its row and column by division-with-remainder steps
// (Kannan–Bachem style); a final gcd/lcm pass enforces the divisibility
// chain.
func (m *Int) SmithDiagonal() ([]int64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	w := m.Clone()
	rank, err := w.diagonalize()
	if err != nil {
		return nil, err
	}

	n := min(w.rows, w.cols)
	diag := make([]int64, n)
	for t := 0; t < rank; t++ {
		v := w.at(t, t)
		if v < 0 {
			v, err = negChecked(v)
			if err != nil {
				return nil, err
			}
		}
		diag[t] = v
	}

	if err = fixDivisibility(diag[:rank]); err != nil {
		return nil, err
	}

	return diag, nil
}

// diagonalize destructively reduces m to an (unnormalized) diagonal form and
// returns the number of nonzero pivots. Entries outside the leading diagonal
// block are zero afterwards; diagonal signs are arbitrary.
func (m *Int) diagonalize() (int, error) {
	limit := min(m.rows, m.cols)
	t := 0
	for t < limit {
		pi, pj, ok := m.minAbsEntry(t)
		if !ok {
			break
		}
		m.swapRows(t, pi)
		m.swapCols(t, pj)

		for {
			if err := m.clearColumn(t); err != nil {
				return 0, err
			}
			if err := m.clearRow(t); err != nil {
				return 0, err
			}
			// clearing the row swaps columns, which may re-dirty the column
			if m.columnClearBelow(t) {
				break
			}
		}
		t++
	}

	return t, nil
}

// minAbsEntry locates a nonzero entry of minimum |value| in the trailing
// submatrix [t:, t:].
func (m *Int) minAbsEntry(t int) (int, int, bool) {
	pi, pj, found := 0, 0, false
	for i := t; i < m.rows; i++ {
		for j := t; j < m.cols; j++ {
			v := m.at(i, j)
			if v == 0 {
				continue
			}
			if !found || absLess(v, m.at(pi, pj)) {
				pi, pj, found = i, j, true
			}
		}
	}

	return pi, pj, found
}

// clearColumn zeroes column t below the pivot by Euclidean row steps: after
// subtracting the quotient, a nonzero remainder is strictly smaller than the
// pivot and is swapped into pivot position.
func (m *Int) clearColumn(t int) error {
	for i := t + 1; i < m.rows; i++ {
		for m.at(i, t) != 0 {
			q := m.at(i, t) / m.at(t, t)
			if q != 0 {
				nq, err := negChecked(q)
				if err != nil {
					return err
				}
				if err = m.rowAddMul(i, t, nq); err != nil {
					return err
				}
			}
			if m.at(i, t) != 0 {
				m.swapRows(i, t)
			}
		}
	}

	return nil
}

// clearRow zeroes row t right of the pivot by Euclidean column steps.
func (m *Int) clearRow(t int) error {
	for j := t + 1; j < m.cols; j++ {
		for m.at(t, j) != 0 {
			q := m.at(t, j) / m.at(t, t)
			if q != 0 {
				nq, err := negChecked(q)
				if err != nil {
					return err
				}
				if err = m.colAddMul(j, t, nq); err != nil {
					return err
				}
			}
			if m.at(t, j) != 0 {
				m.swapCols(j, t)
			}
		}
	}

	return nil
}

func (m *Int) columnClearBelow(t int) bool {
	for i := t + 1; i < m.rows; i++ {
		if m.at(i, t) != 0 {
			return false
		}
	}

	return true
}

// fixDivisibility rewrites a positive diagonal so that each entry divides all
// later ones, preserving the product of every leading block (gcd/lcm
// combination of non-dividing pairs).
func fixDivisibility(d []int64) error {
	for i := 0; i < len(d); i++ {
		for j := i + 1; j < len(d); j++ {
			if d[j]%d[i] == 0 {
				continue
			}
			g := gcd(d[i], d[j])
			l, err := mulChecked(d[i]/g, d[j])
			if err != nil {
				return err
			}
			d[i], d[j] = g, l
		}
	}

	return nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
