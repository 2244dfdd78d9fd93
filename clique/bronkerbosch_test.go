package clique_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tda/clique"
)

// adjFromEdges builds a symmetric adjacency predicate from an edge list.
func adjFromEdges(edges [][2]int) func(i, j int) bool {
	set := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		set[[2]int{e[0], e[1]}] = true
		set[[2]int{e[1], e[0]}] = true
	}

	return func(i, j int) bool { return set[[2]int{i, j}] }
}

// sortCliques orders a clique list lexicographically for comparison.
func sortCliques(cs [][]int) [][]int {
	sort.Slice(cs, func(a, b int) bool {
		x, y := cs[a], cs[b]
		for i := 0; i < len(x) && i < len(y); i++ {
			if x[i] != y[i] {
				return x[i] < y[i]
			}
		}

		return len(x) < len(y)
	})

	return cs
}

// TestMaximal_Triangle finds the single 3-clique of a triangle.
func TestMaximal_Triangle(t *testing.T) {
	got := clique.Maximal(3, adjFromEdges([][2]int{{0, 1}, {1, 2}, {0, 2}}))
	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 1, 2}, got[0])
}

// TestMaximal_Path decomposes a path into its edges.
func TestMaximal_Path(t *testing.T) {
	got := sortCliques(clique.Maximal(4, adjFromEdges([][2]int{{0, 1}, {1, 2}, {2, 3}})))
	assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}}, got)
}

// TestMaximal_IsolatedVertices reports singletons for edgeless graphs.
func TestMaximal_IsolatedVertices(t *testing.T) {
	got := sortCliques(clique.Maximal(3, func(int, int) bool { return false }))
	assert.Equal(t, [][]int{{0}, {1}, {2}}, got)
}

// TestMaximal_Empty handles n ≤ 0.
func TestMaximal_Empty(t *testing.T) {
	assert.Nil(t, clique.Maximal(0, nil))
	assert.Nil(t, clique.Maximal(-1, nil))
}

// TestMaximal_TwoTrianglesSharedVertex: the bowtie graph has exactly two
// maximal triangles overlapping in vertex 2.
func TestMaximal_TwoTrianglesSharedVertex(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}}
	got := sortCliques(clique.Maximal(5, adjFromEdges(edges)))
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3, 4}}, got)
}

// TestMaximal_CompleteGraph returns the single n-clique.
func TestMaximal_CompleteGraph(t *testing.T) {
	got := clique.Maximal(6, func(i, j int) bool { return i != j })
	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got[0])
}

// TestMaximal_AgainstBruteForce cross-checks a fixed irregular graph against
// exhaustive subset enumeration.
func TestMaximal_AgainstBruteForce(t *testing.T) {
	const n = 8
	edges := [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}, {3, 4},
		{4, 5}, {4, 6}, {5, 6}, {5, 7}, {6, 7}, {2, 4},
	}
	adj := adjFromEdges(edges)

	var want [][]int
	for mask := 1; mask < 1<<n; mask++ {
		var vs []int
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				vs = append(vs, v)
			}
		}
		if !isClique(vs, adj) {
			continue
		}
		maximal := true
		for v := 0; v < n && maximal; v++ {
			if mask&(1<<v) != 0 {
				continue
			}
			grown := true
			for _, u := range vs {
				if !adj(u, v) {
					grown = false

					break
				}
			}
			if grown {
				maximal = false
			}
		}
		if maximal {
			want = append(want, vs)
		}
	}

	got := sortCliques(clique.Maximal(n, adj))
	assert.Equal(t, sortCliques(want), got)
}

func isClique(vs []int, adj func(i, j int) bool) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !adj(vs[i], vs[j]) {
				return false
			}
		}
	}

	return true
}

// TestMaximal_Deterministic: two runs over the same graph produce identical
// output, clique order included.
func TestMaximal_Deterministic(t *testing.T) {
	adj := func(i, j int) bool { return (i+j)%3 != 0 }
	a := clique.Maximal(9, adj)
	b := clique.Maximal(9, adj)
	assert.Equal(t, a, b)
}
