// SPDX-License-Identifier: MIT
// Package: taskbench/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; builders attach method context via %w.

package builder

import "errors"

// ErrBadSize indicates a non-positive size, dimension or stride.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates a stochastic builder ran without a seeded engine.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooLarge indicates the requested fixture does not fit in memory limits
// of a single slice (n*n overflows int).
var ErrTooLarge = errors.New("builder: fixture too large")
