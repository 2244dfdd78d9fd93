package clique

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Enumerator is the contract consumed by the VR builder: report all maximal
// cliques of the graph on n vertices whose edges are given by adj. adj is
// only queried with i ≠ j and must be symmetric.
type Enumerator func(n int, adj func(i, j int) bool) [][]int

// Maximal enumerates all maximal cliques of the graph on n vertices using
// Bron–Kerbosch with pivoting. Each clique appears exactly once with its
// vertices ascending; the clique order itself is deterministic but otherwise
// unspecified. A non-positive n yields no cliques.
func Maximal(n int, adj func(i, j int) bool) [][]int {
	if n <= 0 {
		return nil
	}

	// materialize adjacency rows once; every later set operation is on words
	nbr := make([]*bitset.BitSet, n)
	for i := 0; i < n; i++ {
		nbr[i] = bitset.New(uint(n))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj(i, j) {
				nbr[i].Set(uint(j))
				nbr[j].Set(uint(i))
			}
		}
	}

	p := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		p.Set(uint(i))
	}

	e := enumerator{n: uint(n), nbr: nbr}
	e.expand(nil, p, bitset.New(uint(n)))

	return e.out
}

type enumerator struct {
	n   uint
	nbr []*bitset.BitSet
	out [][]int
}

// expand grows the current clique r; p holds candidate vertices, x holds
// vertices already covered by previously emitted cliques. p and x are owned
// by the caller and mutated here.
func (e *enumerator) expand(r []int, p, x *bitset.BitSet) {
	if p.None() && x.None() {
		clique := make([]int, len(r))
		copy(clique, r)
		sort.Ints(clique) // canonical ascending order for structural equality
		e.out = append(e.out, clique)

		return
	}

	// pivot: the vertex of p ∪ x with the most candidate neighbors, which
	// minimizes the branching set p \ N(pivot)
	pivot, best := uint(0), uint(0)
	found := false
	for _, set := range []*bitset.BitSet{p, x} {
		for u, ok := set.NextSet(0); ok; u, ok = set.NextSet(u + 1) {
			if c := p.IntersectionCardinality(e.nbr[u]); !found || c > best {
				pivot, best, found = u, c, true
			}
		}
	}

	cand := p.Difference(e.nbr[pivot])
	for v, ok := cand.NextSet(0); ok; v, ok = cand.NextSet(v + 1) {
		e.expand(
			append(r, int(v)),
			p.Intersection(e.nbr[v]),
			x.Intersection(e.nbr[v]),
		)
		p.Clear(v)
		x.Set(v)
	}
}
