// Package clique enumerates maximal cliques of an undirected graph given
// only a vertex count and an adjacency predicate.
//
// What:
//
//   - Maximal(n, adj) returns every maximal clique exactly once, each as an
//     ascending vertex-index list, in a deterministic order.
//   - The algorithm is Bron–Kerbosch with pivoting; candidate and exclusion
//     sets are bit vectors, so the inner set algebra is word-parallel.
//
// Why:
//
//   - Vietoris–Rips construction: the simplices of a VR complex are exactly
//     the cliques of the proximity graph, so its maximal simplices are the
//     maximal cliques.
//
// Complexity:
//
//   - Worst case O(3^(n/3)) (Moon–Moser bound), the theoretical optimum for
//     clique enumeration. Proximity graphs in practice stay far below it.
//   - Memory: O(n²) bits (n²/w words) for the adjacency rows plus O(n·depth)
//     recursion state, w = machine word size.
//
// Isolated vertices are reported as singleton cliques; callers that have no
// use for them (the VR builder) filter them out.
package clique
