// SPDX-License-Identifier: MIT
// Package: taskbench/builder
//
// fixtures.go — benchmark input generators.
//
// Draw order is part of the contract: changing it changes every checksum
// derived from a seeded fixture.

package builder

import (
	"fmt"
	"math"
)

// NoEdge marks an absent edge in a DenseGraph matrix.
const NoEdge int32 = -1

const (
	methodDenseGraph     = "DenseGraph"
	methodRandomInts     = "RandomInts"
	methodStripedComplex = "StripedComplex"
)

// DenseGraph returns an n×n row-major weight matrix. Cells are filled in
// row-major order; per cell one draw from [0, edgeOdds] decides presence
// (0 means NoEdge) and, if present, a second draw picks the weight.
//
// Complexity: O(n²) time and space.
func DenseGraph(n int, opts ...BuilderOption) ([]int32, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDenseGraph, n, ErrBadSize)
	}
	if n > math.MaxInt32/n {
		return nil, fmt.Errorf("%s: n=%d: %w", methodDenseGraph, n, ErrTooLarge)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodDenseGraph, ErrNeedRandSource)
	}

	w := make([]int32, n*n)
	for i := range w {
		if UniformInt(cfg.rng, 0, cfg.edgeOdds) == 0 {
			w[i] = NoEdge
			continue
		}
		w[i] = UniformInt(cfg.rng, cfg.weightLo, cfg.weightHi)
	}
	return w, nil
}

// RandomInts returns n values drawn uniformly from the configured value range.
func RandomInts(n int, opts ...BuilderOption) ([]int32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomInts, n, ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomInts, ErrNeedRandSource)
	}

	out := make([]int32, n)
	for i := range out {
		out[i] = UniformInt(cfg.rng, cfg.valueLo, cfg.valueHi)
	}
	return out, nil
}

// StripedComplex builds row-major operands lhs (p×q) and rhs (q×r) plus their
// product want (p×r). Every stride-th row of lhs is 1+1i, every stride-th
// column of rhs is 1-1i, so want holds 2q at (i, j) when both i and j are
// multiples of stride and zero elsewhere. Deterministic; takes no options.
func StripedComplex(p, q, r, stride int) (lhs, rhs, want []complex128, err error) {
	if p < 1 || q < 1 || r < 1 || stride < 1 {
		return nil, nil, nil, fmt.Errorf("%s: p=%d q=%d r=%d stride=%d: %w",
			methodStripedComplex, p, q, r, stride, ErrBadSize)
	}

	lhs = make([]complex128, p*q)
	for i := 0; i < p; i += stride {
		row := lhs[i*q : (i+1)*q]
		for j := range row {
			row[j] = complex(1, 1)
		}
	}

	rhs = make([]complex128, q*r)
	for i := 0; i < q; i++ {
		for j := 0; j < r; j += stride {
			rhs[i*r+j] = complex(1, -1)
		}
	}

	want = make([]complex128, p*r)
	for i := 0; i < p; i += stride {
		for j := 0; j < r; j += stride {
			want[i*r+j] = complex(2*float64(q), 0)
		}
	}
	return lhs, rhs, want, nil
}
