// SPDX-License-Identifier: MIT

package sorting

import (
	"sync/atomic"

	"github.com/katalvlaran/taskbench/parallel"
)

// IsSorted reports whether xs is non-decreasing. Workers check overlapping
// boundaries and stop as soon as any of them sees an inversion.
func IsSorted(s parallel.Strategy, xs []int32) bool {
	if len(xs) < 2 {
		return true
	}
	var inverted atomic.Bool
	s.For(len(xs)-1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if inverted.Load() {
				return
			}
			if xs[i] > xs[i+1] {
				inverted.Store(true)
				return
			}
		}
	})
	return !inverted.Load()
}
