// Package dijkstra computes single-source shortest distances over a dense
// weight matrix and packages the computation as a benchmarkable task.
//
// Input is an n×n row-major []int32 matrix. NoEdge (-1) marks an absent
// edge; every other weight must be non-negative. Distances are int64;
// vertices the source cannot reach get Unreachable.
//
// Two algorithms are provided:
//
//   - AlgoDense: the O(V²) array form. Each round selects the closest
//     unsettled vertex with a min-reduction and relaxes its row, both spread
//     over the configured parallel.Strategy. Ties break to the lower index,
//     so every strategy settles vertices in the same order.
//   - AlgoHeap: the lazy decrease-key heap form, O((V + E) log V), over a
//     CSR adjacency built once in Prepare. Always sequential.
//
// Both produce identical distance vectors for the same input.
//
// Task slot convention (see NewTask):
//
//	input  0:  []int32  n×n weights, len must be a perfect square
//	imeta  0:  source vertex (defaults to 0 when absent)
//	output 0:  []int64  len ≥ n
//
// Errors (sentinel):
//
//	– ErrNotSquare    input length is not a perfect square.
//	– ErrEmptyGraph   input holds no vertices.
//	– ErrBadSource    source outside [0, n).
//	– ErrBadWeight    a weight below NoEdge.
package dijkstra
