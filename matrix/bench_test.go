package matrix_test

import (
	"testing"

	"github.com/katalvlaran/taskbench/builder"
	"github.com/katalvlaran/taskbench/matrix"
	"github.com/katalvlaran/taskbench/parallel"
)

var sinkCCS *matrix.CCS

func BenchmarkMulWith(b *testing.B) {
	const p, q, r = 501, 500, 501
	lhs, rhs, _, err := builder.StripedComplex(p, q, r, 4)
	if err != nil {
		b.Fatal(err)
	}
	ca, _ := matrix.FromDense(lhs, p, q)
	cb, _ := matrix.FromDense(rhs, q, r)
	for _, s := range []parallel.Strategy{parallel.Sequential(), parallel.Static(0), parallel.ForkJoin(0, 16)} {
		b.Run(s.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkCCS, _ = matrix.MulWith(s, ca, cb)
			}
		})
	}
}
