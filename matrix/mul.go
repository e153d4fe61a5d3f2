// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/taskbench/parallel"
)

// Mul returns a·b computed sequentially. See MulWith.
func Mul(a, b *CCS) (*CCS, error) {
	return MulWith(parallel.Sequential(), a, b)
}

// MulWith returns a·b, spreading result columns over s.
//
// Implementation:
//   - Stage 1: validate operands (non-nil, a.Cols == b.Rows).
//   - Stage 2: s.For over result columns. Each worker owns a dense
//     accumulator of a.Rows values plus a row marker, and for column j adds
//     b[k,j]·a[:,k] for every stored b[k,j]. Touched rows are sorted and
//     non-zero sums are kept as the column's entries.
//   - Stage 3: prefix-sum the per-column counts into ColPtr and copy the
//     column pieces in order.
//
// Determinism:
//   - Each result column is built by exactly one worker with a fixed
//     summation order (b's stored order), so the output does not depend on s.
//
// Complexity:
//   - Time O(flops + nnz(result)·log), Space O(a.Rows) per worker plus the result.
func MulWith(s parallel.Strategy, a, b *CCS) (*CCS, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, matrixErrorf(opMul,
			fmt.Errorf("%w: %dx%d · %dx%d", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols))
	}

	colRows := make([][]int, b.cols)
	colVals := make([][]complex128, b.cols)

	s.For(b.cols, func(lo, hi int) {
		acc := make([]complex128, a.rows)
		mark := make([]int, a.rows) // column index + 1 that last touched the row
		var touched []int
		for j := lo; j < hi; j++ {
			touched = touched[:0]
			for kb := b.ColPtr[j]; kb < b.ColPtr[j+1]; kb++ {
				k, bv := b.RowIdx[kb], b.Values[kb]
				for ka := a.ColPtr[k]; ka < a.ColPtr[k+1]; ka++ {
					i := a.RowIdx[ka]
					if mark[i] != j+1 {
						mark[i] = j + 1
						acc[i] = 0
						touched = append(touched, i)
					}
					acc[i] += a.Values[ka] * bv
				}
			}
			slices.Sort(touched)

			rows := make([]int, 0, len(touched))
			vals := make([]complex128, 0, len(touched))
			for _, i := range touched {
				if acc[i] != 0 {
					rows = append(rows, i)
					vals = append(vals, acc[i])
				}
			}
			colRows[j], colVals[j] = rows, vals
		}
	})

	out := &CCS{rows: a.rows, cols: b.cols, ColPtr: make([]int, b.cols+1)}
	for j := 0; j < b.cols; j++ {
		out.ColPtr[j+1] = out.ColPtr[j] + len(colRows[j])
	}
	out.RowIdx = make([]int, 0, out.ColPtr[b.cols])
	out.Values = make([]complex128, 0, out.ColPtr[b.cols])
	for j := 0; j < b.cols; j++ {
		out.RowIdx = append(out.RowIdx, colRows[j]...)
		out.Values = append(out.Values, colVals[j]...)
	}
	return out, nil
}

// MulDense multiplies row-major a (p×q) by b (q×r) with the i-k-j loop order,
// skipping zero entries of a. It is the reference the sparse product is
// checked against.
func MulDense(a, b []complex128, p, q, r int) ([]complex128, error) {
	if p <= 0 || q <= 0 || r <= 0 {
		return nil, matrixErrorf(opMulDense, fmt.Errorf("%w: p=%d q=%d r=%d", ErrBadShape, p, q, r))
	}
	if !cellsFit(p, q) || !cellsFit(q, r) || !cellsFit(p, r) {
		return nil, matrixErrorf(opMulDense, fmt.Errorf("%w: p=%d q=%d r=%d overflows int", ErrBadShape, p, q, r))
	}
	if len(a) != p*q || len(b) != q*r {
		return nil, matrixErrorf(opMulDense,
			fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrDimensionMismatch, len(a), len(b)))
	}
	out := make([]complex128, p*r)
	for i := 0; i < p; i++ {
		row := out[i*r : (i+1)*r]
		for k := 0; k < q; k++ {
			av := a[i*q+k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j, bv := range b[k*r : (k+1)*r] {
				row[j] += av * bv
			}
		}
	}
	return out, nil
}
