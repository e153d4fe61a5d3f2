package parallel_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/taskbench/parallel"
)

var sinkI int

func BenchmarkReduceSum(b *testing.B) {
	data := make([]int, 1<<20)
	for i := range data {
		data[i] = i & 0xff
	}
	sum := func(lo, hi int) int {
		acc := 0
		for _, v := range data[lo:hi] {
			acc += v
		}
		return acc
	}
	add := func(a, c int) int { return a + c }
	for _, s := range []parallel.Strategy{parallel.Sequential(), parallel.Static(0), parallel.ForkJoin(0, 0)} {
		b.Run(fmt.Sprintf("%s/w=%d", s.Name(), s.Workers()), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkI = parallel.Reduce(s, len(data), 0, sum, add)
			}
		})
	}
}
