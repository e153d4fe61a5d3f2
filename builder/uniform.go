// SPDX-License-Identifier: MIT
// Package: taskbench/builder
//
// uniform.go — unbiased bounded draws from a 32-bit engine.
//
// Uses Lemire's multiply-and-reject method in the exact form libstdc++ applies
// for a 32-bit engine, so draws for a given engine state match
// std::uniform_int_distribution<int> there.

package builder

import "math"

// Source32 is a 32-bit random engine.
type Source32 interface {
	Uint32() uint32
}

// UniformInt returns a value uniformly distributed over [lo, hi]. It panics if
// lo > hi, mirroring math/rand.Intn on a non-positive bound.
func UniformInt(src Source32, lo, hi int32) int32 {
	if lo > hi {
		panic("builder: UniformInt(lo>hi)")
	}
	span := uint64(int64(hi) - int64(lo)) // hi-lo, always < 2^32
	if span == math.MaxUint32 {
		return int32(int64(lo) + int64(src.Uint32()))
	}

	r := span + 1
	product := uint64(src.Uint32()) * r
	low := uint32(product)
	if uint64(low) < r {
		threshold := uint32(-r) % uint32(r) // 2^32 mod r
		for low < threshold {
			product = uint64(src.Uint32()) * r
			low = uint32(product)
		}
	}
	return int32(int64(lo) + int64(product>>32))
}
