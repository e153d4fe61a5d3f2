// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// CCS is a complex sparse matrix in compressed column storage.
// The zero value is not usable; build with NewCCS or FromDense.
type CCS struct {
	rows, cols int
	ColPtr     []int        // len cols+1, ColPtr[0] == 0
	RowIdx     []int        // len NNZ, ascending within a column
	Values     []complex128 // len NNZ, never exactly zero
}

// cellsFit reports whether a rows×cols dense image is addressable by int.
// Both dimensions must already be positive.
func cellsFit(rows, cols int) bool { return rows <= math.MaxInt/cols }

// NewCCS returns an all-zero rows×cols matrix. Shapes whose dense image would
// overflow int are rejected with ErrBadShape.
//
// Complexity: O(cols) time and space.
func NewCCS(rows, cols int) (*CCS, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	if !cellsFit(rows, cols) {
		return nil, fmt.Errorf("%w: %dx%d overflows int", ErrBadShape, rows, cols)
	}
	return &CCS{rows: rows, cols: cols, ColPtr: make([]int, cols+1)}, nil
}

// FromDense compresses a row-major rows×cols slice.
//
// Complexity: O(rows*cols) time, O(nnz + cols) space.
func FromDense(data []complex128, rows, cols int) (*CCS, error) {
	m, err := NewCCS(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromDense,
			fmt.Errorf("%w: len=%d, want %d", ErrDimensionMismatch, len(data), rows*cols))
	}

	// column-major walk: row indices come out ascending within each column
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v := data[i*cols+j]; v != 0 {
				m.RowIdx = append(m.RowIdx, i)
				m.Values = append(m.Values, v)
			}
		}
		m.ColPtr[j+1] = len(m.Values)
	}
	return m, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *CCS) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *CCS) Cols() int { return m.cols }

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *CCS) NNZ() int { return len(m.Values) }

// At returns element (i, j), searching column j's row indices.
// Complexity: O(log nnz(column j)).
func (m *CCS) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, matrixErrorf(opAt, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, i, j))
	}
	lo, hi := m.ColPtr[j], m.ColPtr[j+1]
	k := lo + sort.SearchInts(m.RowIdx[lo:hi], i)
	if k < hi && m.RowIdx[k] == i {
		return m.Values[k], nil
	}
	return 0, nil
}

// ToDense expands m into a new row-major slice.
//
// Complexity: O(rows*cols) time and space.
func (m *CCS) ToDense() []complex128 {
	out := make([]complex128, m.rows*m.cols)
	m.scatter(out)
	return out
}

// ToDenseInto writes m row-major into dst, zeroing everything else.
// dst must hold at least Rows()*Cols() elements; extra elements are untouched.
//
// Complexity: O(rows*cols).
func (m *CCS) ToDenseInto(dst []complex128) error {
	if len(dst) < m.rows*m.cols {
		return matrixErrorf(opToDense,
			fmt.Errorf("%w: len=%d, want %d", ErrDimensionMismatch, len(dst), m.rows*m.cols))
	}
	clear(dst[:m.rows*m.cols])
	m.scatter(dst)
	return nil
}

func (m *CCS) scatter(dst []complex128) {
	for j := 0; j < m.cols; j++ {
		for k := m.ColPtr[j]; k < m.ColPtr[j+1]; k++ {
			dst[m.RowIdx[k]*m.cols+j] = m.Values[k]
		}
	}
}

// Transpose returns mᵀ as a new CCS. A counting pass sizes the columns of
// the result, a scatter pass fills them; visiting m's columns in order keeps
// the row indices of every result column ascending.
//
// Complexity: O(nnz + rows + cols).
func Transpose(m *CCS) (*CCS, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	t := &CCS{
		rows:   m.cols,
		cols:   m.rows,
		ColPtr: make([]int, m.rows+1),
		RowIdx: make([]int, m.NNZ()),
		Values: make([]complex128, m.NNZ()),
	}
	for _, i := range m.RowIdx {
		t.ColPtr[i+1]++
	}
	for i := 0; i < m.rows; i++ {
		t.ColPtr[i+1] += t.ColPtr[i]
	}
	next := make([]int, m.rows)
	copy(next, t.ColPtr[:m.rows])
	for j := 0; j < m.cols; j++ {
		for k := m.ColPtr[j]; k < m.ColPtr[j+1]; k++ {
			i := m.RowIdx[k]
			t.RowIdx[next[i]] = j
			t.Values[next[i]] = m.Values[k]
			next[i]++
		}
	}
	return t, nil
}
