// SPDX-License-Identifier: MIT
// Package: taskbench/builder
//
// options.go — functional options for fixture builders.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Builders themselves never panic; they return wrapped sentinels.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

// BuilderOption customizes a fixture builder by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed attaches a fresh MT19937 seeded with seed.
//
// Complexity: O(1) to build; O(624) when applied (engine initialisation).
func WithSeed(seed uint32) BuilderOption {
	// fresh engine per application; builders never share a stream
	return func(c *builderConfig) {
		c.rng = NewMT19937(seed)
	}
}

// WithRand attaches an existing engine, letting several fixtures share one
// stream. Panics on nil.
//
// Complexity: O(1).
func WithRand(src Source32) BuilderOption {
	if src == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = src
	}
}

// WithWeightRange sets the closed interval edge weights are drawn from.
// Panics unless 0 <= lo <= hi.
//
// Complexity: O(1).
func WithWeightRange(lo, hi int32) BuilderOption {
	if lo < 0 || lo > hi {
		panic("builder: WithWeightRange(lo<0 or lo>hi)")
	}
	return func(c *builderConfig) {
		c.weightLo, c.weightHi = lo, hi
	}
}

// WithEdgeOdds sets k for the edge test: an edge is absent when a draw from
// [0, k] yields 0, so density is k/(k+1). Panics if k < 1.
//
// Complexity: O(1).
func WithEdgeOdds(k int32) BuilderOption {
	if k < 1 {
		panic("builder: WithEdgeOdds(k<1)")
	}
	return func(c *builderConfig) {
		c.edgeOdds = k
	}
}

// WithValueRange sets the closed interval RandomInts draws from.
// Panics if lo > hi.
//
// Complexity: O(1).
func WithValueRange(lo, hi int32) BuilderOption {
	if lo > hi {
		panic("builder: WithValueRange(lo>hi)")
	}
	return func(c *builderConfig) {
		c.valueLo, c.valueHi = lo, hi
	}
}
