// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"math/bits"

	"github.com/katalvlaran/taskbench/parallel"
)

// ErrNotPowerOfTwo is returned by Batcher for lengths that are not 2^k.
var ErrNotPowerOfTwo = errors.New("sorting: length is not a power of two")

// forkCutoff is the subproblem size below which recursion stops forking.
const forkCutoff = 1 << 11

// Batcher sorts xs in place with Batcher's odd-even merge network.
// len(xs) must be a power of two (zero and one included).
func Batcher(s parallel.Strategy, xs []int32) error {
	n := len(xs)
	if n > 1 && bits.OnesCount(uint(n)) != 1 {
		return ErrNotPowerOfTwo
	}
	b := batcher{s: s, seq: parallel.Sequential(), xs: xs}
	b.sort(0, n)
	return nil
}

// PaddedLen returns the smallest power of two ≥ n (n ≤ 1 returns n).
func PaddedLen(n int) int {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}

type batcher struct {
	s   parallel.Strategy
	seq parallel.Strategy
	xs  []int32
}

// pick returns the strategy for a subproblem of span n.
func (b *batcher) pick(n int) parallel.Strategy {
	if n <= forkCutoff {
		return b.seq
	}
	return b.s
}

// sort orders xs[lo : lo+n].
func (b *batcher) sort(lo, n int) {
	if n <= 1 {
		return
	}
	m := n / 2
	b.pick(n).Invoke(
		func() { b.sort(lo, m) },
		func() { b.sort(lo+m, m) },
	)
	b.merge(lo, n, 1)
}

// merge combines the two sorted halves of the stride-r subsequence starting
// at lo and spanning n elements of xs.
func (b *batcher) merge(lo, n, r int) {
	step := r * 2
	if step >= n {
		b.exchange(lo, lo+r)
		return
	}
	s := b.pick(n / r)
	s.Invoke(
		func() { b.merge(lo, n, step) },
		func() { b.merge(lo+r, n, step) },
	)
	// Pairs (lo+r+k*step, lo+2r+k*step) for k in [0, n/step-1).
	s.For(n/step-1, func(k0, k1 int) {
		for k := k0; k < k1; k++ {
			i := lo + r + k*step
			b.exchange(i, i+r)
		}
	})
}

func (b *batcher) exchange(i, j int) {
	if b.xs[i] > b.xs[j] {
		b.xs[i], b.xs[j] = b.xs[j], b.xs[i]
	}
}
