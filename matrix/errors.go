// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// All functions return these sentinels, wrapped with an operation tag by
// matrixErrorf; callers match with errors.Is. Nothing here panics on user
// input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a dimension is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand dimensions, or a
	// buffer whose length disagrees with its declared shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil *CCS operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMetaLayout indicates task metadata that does not follow the
	// [p, q, q, r] / [p, r] convention.
	ErrMetaLayout = errors.New("matrix: bad metadata layout")
)

// Operation tags used in wrapped errors.
const (
	opFromDense = "FromDense"
	opToDense   = "ToDense"
	opAt        = "At"
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMulDense  = "MulDense"
)

// matrixErrorf formats "<tag>: <err>" and keeps err matchable via errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
