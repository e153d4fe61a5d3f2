// Package matrix implements complex sparse matrices in compressed column
// storage (CCS) and their product, plus a benchmarkable multiplication task.
//
// A CCS matrix keeps, for every column j, the row indices and values of its
// non-zero entries in RowIdx[ColPtr[j]:ColPtr[j+1]] and
// Values[ColPtr[j]:ColPtr[j+1]], rows ascending. Exact zeros are never stored.
//
// Mul uses Gustavson's column-by-column algorithm: column j of A·B is the
// linear combination of A's columns selected by the non-zeros of B's column
// j. Columns are independent, so MulWith spreads them over a
// parallel.Strategy, each worker with its own dense accumulator; the pieces
// are stitched together in column order afterwards, which keeps the result
// identical for every strategy.
//
// Dense operands are row-major []complex128, the layout used by the task
// slots and by MulDense, the straightforward triple-loop reference.
//
// Task slot convention (see NewTask):
//
//	input  0:  []complex128  lhs, p×q row-major
//	input  1:  []complex128  rhs, q×r row-major
//	imeta:     p, q, q, r
//	output 0:  []complex128  p×r row-major
//	ometa:     p, r
package matrix
