package sorting_test

import (
	"testing"

	"github.com/katalvlaran/taskbench/builder"
	"github.com/katalvlaran/taskbench/parallel"
	"github.com/katalvlaran/taskbench/sorting"
)

var sinkInts []int32

func benchInput(b *testing.B, n int) []int32 {
	b.Helper()
	xs, err := builder.RandomInts(n, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	return xs
}

func BenchmarkRadix(b *testing.B) {
	src := benchInput(b, 1<<18)
	work, scratch := make([]int32, len(src)), make([]int32, len(src))
	for _, s := range []parallel.Strategy{parallel.Sequential(), parallel.Static(0), parallel.ForkJoin(0, 0)} {
		b.Run(s.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(work, src)
				sorting.Radix(s, work, scratch)
			}
			sinkInts = work
		})
	}
}

func BenchmarkBatcher(b *testing.B) {
	src := benchInput(b, 1<<16)
	work := make([]int32, len(src))
	for _, s := range []parallel.Strategy{parallel.Sequential(), parallel.ForkJoin(0, 0)} {
		b.Run(s.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(work, src)
				_ = sorting.Batcher(s, work)
			}
			sinkInts = work
		})
	}
}

func BenchmarkShell(b *testing.B) {
	src := benchInput(b, 1<<14)
	work := make([]int32, len(src))
	for i := 0; i < b.N; i++ {
		copy(work, src)
		sorting.Shell(work)
	}
	sinkInts = work
}
