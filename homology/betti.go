package homology

import (
	"sync"

	"github.com/katalvlaran/tda/boundary"
	"github.com/katalvlaran/tda/simplex"
)

// Betti computes the 𝔽₂ Betti numbers [β₀, β₁, …, β_dim] of sc from
// bit-packed boundary ranks: βₖ = #k-simplices − rank ∂ₖ − rank ∂ₖ₊₁.
//
// This path is dramatically cheaper than Int on large complexes (XOR
// elimination, no integer pivoting) and is the one to reach for whenever
// torsion does not matter.
func Betti(sc *simplex.Complex, opts ...Option) ([]int, error) {
	o := gatherOptions(opts...)
	ops, err := boundary.Bool(sc)
	if err != nil {
		return nil, err
	}

	dim := len(sc.Layers)
	// ranks[k] = rank ∂ₖ, with the zero maps at both ends
	ranks := make([]int, dim+2)

	if !o.parallel {
		for k := 1; k <= dim; k++ {
			ranks[k] = ops[k-1].Rank()
		}
	} else {
		var wg sync.WaitGroup
		for k := 1; k <= dim; k++ {
			wg.Add(1)
			go func(k int) {
				defer wg.Done()
				ranks[k] = ops[k-1].Rank()
			}(k)
		}
		wg.Wait()
	}

	betti := make([]int, dim+1)
	for k := 0; k <= dim; k++ {
		betti[k] = sc.Size(k) - ranks[k] - ranks[k+1]
	}

	return betti, nil
}
