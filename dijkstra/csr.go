// SPDX-License-Identifier: MIT

package dijkstra

import "github.com/katalvlaran/taskbench/parallel"

// CSR is a compressed-sparse-row adjacency: the out-edges of u are
// Targets[Offsets[u]:Offsets[u+1]] with matching Weights.
type CSR struct {
	Offsets []int
	Targets []int32
	Weights []int32
}

// N reports the vertex count.
func (g *CSR) N() int { return len(g.Offsets) - 1 }

// NewCSR compresses the n×n matrix w, dropping NoEdge cells. Row degrees are
// counted and rows filled in parallel through s; the prefix sum between the
// two passes is sequential. Targets within a row stay in ascending order.
func NewCSR(s parallel.Strategy, w []int32, n int) *CSR {
	offsets := make([]int, n+1)
	s.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			deg := 0
			for _, x := range w[u*n : (u+1)*n] {
				if x != NoEdge {
					deg++
				}
			}
			offsets[u+1] = deg
		}
	})
	for u := 1; u <= n; u++ {
		offsets[u] += offsets[u-1]
	}

	g := &CSR{
		Offsets: offsets,
		Targets: make([]int32, offsets[n]),
		Weights: make([]int32, offsets[n]),
	}
	s.For(n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			k := offsets[u]
			for v, x := range w[u*n : (u+1)*n] {
				if x == NoEdge {
					continue
				}
				g.Targets[k], g.Weights[k] = int32(v), x
				k++
			}
		}
	})
	return g
}
