// SPDX-License-Identifier: MIT

package sorting

import (
	"github.com/katalvlaran/taskbench/parallel"
)

// Algorithm selects the sort used by a task.
type Algorithm int

const (
	AlgoShell Algorithm = iota
	AlgoBatcher
	AlgoRadix
)

var algoNames = [...]string{
	AlgoShell:   "shell",
	AlgoBatcher: "batcher",
	AlgoRadix:   "radix",
}

func (a Algorithm) String() string {
	if a.valid() {
		return algoNames[a]
	}
	return "unknown"
}

func (a Algorithm) valid() bool { return a >= 0 && int(a) < len(algoNames) }

// ParseAlgorithm maps a name to an Algorithm; ok is false for unknown names.
func ParseAlgorithm(s string) (Algorithm, bool) {
	for a, name := range algoNames {
		if name == s {
			return Algorithm(a), true
		}
	}
	return AlgoShell, false
}

// Options configures a sorting task.
type Options struct {
	Strategy  parallel.Strategy // default Sequential
	Algorithm Algorithm         // default AlgoShell
}

// Option represents a functional option for configuring a task.
type Option func(*Options)

// WithStrategy sets the parallel strategy. Panics on nil.
func WithStrategy(s parallel.Strategy) Option {
	if s == nil {
		panic("sorting: WithStrategy(nil)")
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithAlgorithm selects the sort.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// DefaultOptions returns sequential Shell sort.
func DefaultOptions() Options {
	return Options{Strategy: parallel.Sequential(), Algorithm: AlgoShell}
}
