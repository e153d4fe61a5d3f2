// SPDX-License-Identifier: MIT

package sorting

import (
	"github.com/katalvlaran/taskbench/parallel"
)

const (
	radixBits    = 8
	radixBuckets = 1 << radixBits
	radixPasses  = 32 / radixBits
	signFlip     = 0x80000000
)

type histogram [radixBuckets]int

func digit(v int32, shift uint) int {
	return int(((uint32(v) ^ signFlip) >> shift) & (radixBuckets - 1))
}

// Radix sorts xs in place. scratch must have len(xs) elements; nil allocates.
//
// Every pass works on the chunks parallel.Chunks(n, s.Workers()): digit
// counts are taken per chunk through parallel.Reduce, prefix offsets are
// computed once, then each chunk scatters its elements independently.
func Radix(s parallel.Strategy, xs, scratch []int32) {
	n := len(xs)
	if n <= 1 {
		return
	}
	if len(scratch) < n {
		scratch = make([]int32, n)
	}
	chunks := parallel.Chunks(n, s.Workers())
	src, dst := xs, scratch[:n]

	for pass := 0; pass < radixPasses; pass++ {
		shift := uint(pass * radixBits)

		counts := parallel.Reduce(s, n, make([]histogram, 0, len(chunks)),
			func(lo, hi int) []histogram {
				var h histogram
				for _, v := range src[lo:hi] {
					h[digit(v, shift)]++
				}
				return []histogram{h}
			},
			func(acc, part []histogram) []histogram { return append(acc, part...) },
		)

		// offsets[c][d]: first slot chunk c writes digit d to.
		offsets := make([]histogram, len(chunks))
		next := 0
		for d := 0; d < radixBuckets; d++ {
			for c := range chunks {
				offsets[c][d] = next
				next += counts[c][d]
			}
		}

		fns := make([]func(), len(chunks))
		for c, ch := range chunks {
			fns[c] = func() {
				off := &offsets[c]
				for _, v := range src[ch.Lo:ch.Hi] {
					d := digit(v, shift)
					dst[off[d]] = v
					off[d]++
				}
			}
		}
		s.Invoke(fns...)
		src, dst = dst, src
	}
	// An even pass count leaves the result in xs.
}
