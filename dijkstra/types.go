// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/taskbench/parallel"
)

// NoEdge marks an absent edge in the weight matrix.
const NoEdge int32 = -1

// Unreachable is the distance reported for vertices with no path from source.
const Unreachable int64 = math.MaxInt64

// Sentinel errors.
var (
	// ErrNotSquare indicates the weight slice length is not n*n for any n.
	ErrNotSquare = errors.New("dijkstra: weight matrix is not square")

	// ErrEmptyGraph indicates a zero-vertex input.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrBadSource indicates the source vertex is outside [0, n).
	ErrBadSource = errors.New("dijkstra: source vertex out of range")

	// ErrBadWeight indicates a weight below NoEdge.
	ErrBadWeight = errors.New("dijkstra: negative edge weight")
)

// Algorithm selects the shortest-path variant.
type Algorithm int

const (
	// AlgoDense is the O(V²) array form, parallelised by the strategy.
	AlgoDense Algorithm = iota

	// AlgoHeap is the binary-heap form over a CSR adjacency.
	AlgoHeap
)

// String returns "dense" or "heap".
func (a Algorithm) String() string {
	switch a {
	case AlgoDense:
		return "dense"
	case AlgoHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name to an Algorithm; ok is false for unknown names.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch s {
	case "dense", "":
		return AlgoDense, true
	case "heap":
		return AlgoHeap, true
	default:
		return AlgoDense, false
	}
}

// Options configures a shortest-path task.
//
// Strategy  – how dense rounds and input scans are spread. Default Sequential.
// Algorithm – AlgoDense (default) or AlgoHeap.
type Options struct {
	Strategy  parallel.Strategy
	Algorithm Algorithm
}

// Option represents a functional option for configuring a task.
type Option func(*Options)

// WithStrategy sets the parallel strategy. Panics on nil.
func WithStrategy(s parallel.Strategy) Option {
	if s == nil {
		panic("dijkstra: WithStrategy(nil)")
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithAlgorithm selects the algorithm variant.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// DefaultOptions returns the sequential dense configuration.
func DefaultOptions() Options {
	return Options{
		Strategy:  parallel.Sequential(),
		Algorithm: AlgoDense,
	}
}
