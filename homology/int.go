package homology

import (
	"sync"

	"github.com/katalvlaran/tda/boundary"
	"github.com/katalvlaran/tda/matrix"
	"github.com/katalvlaran/tda/simplex"
)

// Int computes H_k(sc; ℤ) for k = 0…dim. Each returned list describes one
// dimension: entries k > 1 are ℤ/kℤ summands, entries 0 are free ℤ summands;
// trivial factors are dropped, so an empty list is the trivial group.
//
// A complex of isolated vertices has H₀ = ℤ^N and nothing above. An empty
// complex yields a single empty dimension.
func Int(sc *simplex.Complex, opts ...Option) ([][]int64, error) {
	o := gatherOptions(opts...)
	ops, err := boundary.Int(sc)
	if err != nil {
		return nil, err
	}

	dim := len(sc.Layers)
	out := make([][]int64, dim+1)
	if dim == 0 {
		out[0] = reduceDiagonal(make([]int64, sc.NumVertices))

		return out, nil
	}

	run := func(k int) error {
		diag, dErr := intDimension(sc, ops, k)
		if dErr != nil {
			return dErr
		}
		out[k] = reduceDiagonal(diag)

		return nil
	}

	if !o.parallel {
		for k := 0; k <= dim; k++ {
			if err = run(k); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, dim+1)
	for k := 0; k <= dim; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			errs[k] = run(k)
		}(k)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	return out, nil
}

// intDimension produces the raw (unfiltered) diagonal of dimension k,
// zero-padded to the rank of the cycle space so that every kernel basis
// vector receives a factor.
func intDimension(sc *simplex.Complex, ops []*matrix.Int, k int) ([]int64, error) {
	dim := len(sc.Layers)
	switch {
	case k == 0:
		diag, err := ops[0].SmithDiagonal()
		if err != nil {
			return nil, err
		}

		return padZeros(diag, sc.NumVertices), nil

	case k == dim:
		rank, err := ops[k-1].Rank()
		if err != nil {
			return nil, err
		}

		return make([]int64, sc.Size(k)-rank), nil

	default:
		img, err := matrix.ImageInKernel(ops[k-1], ops[k])
		if err != nil {
			return nil, err
		}
		diag, err := img.SmithDiagonal()
		if err != nil {
			return nil, err
		}

		// img has nullity(∂k) rows; pad when ∂k+1 has fewer columns
		return padZeros(diag, img.Rows()), nil
	}
}

// reduceDiagonal drops trivial factors (1-entries), keeping torsion orders
// and zeros in their diagonal order.
func reduceDiagonal(diag []int64) []int64 {
	out := make([]int64, 0, len(diag))
	for _, d := range diag {
		if d != 1 {
			out = append(out, d)
		}
	}

	return out
}

// padZeros extends diag with zeros up to length n.
func padZeros(diag []int64, n int) []int64 {
	for len(diag) < n {
		diag = append(diag, 0)
	}

	return diag
}
