// SPDX-License-Identifier: MIT

package dijkstra

import (
	"github.com/katalvlaran/taskbench/parallel"
)

// candidate is a (vertex, distance) pair produced by the min-reduction.
type candidate struct {
	v int
	d int64
}

var noCandidate = candidate{v: -1, d: Unreachable}

// closer reports whether a beats b: smaller distance, then lower index.
func closer(a, b candidate) bool {
	if a.d != b.d {
		return a.d < b.d
	}
	return a.v >= 0 && (b.v < 0 || a.v < b.v)
}

// Dense fills dist (len n) with shortest distances from src over the n×n
// row-major matrix w. NoEdge cells are skipped. w must already be validated.
//
// Each of at most n rounds runs one min-reduction and one row relaxation
// through s; both touch disjoint index ranges per worker, so rounds need no
// locking.
//
// Complexity: O(V²) work, O(V) extra space.
func Dense(s parallel.Strategy, w []int32, n, src int, dist []int64) {
	for i := range dist[:n] {
		dist[i] = Unreachable
	}
	dist[src] = 0
	settled := make([]bool, n)

	pick := func(lo, hi int) candidate {
		best := noCandidate
		for v := lo; v < hi; v++ {
			if settled[v] || dist[v] == Unreachable {
				continue
			}
			if c := (candidate{v: v, d: dist[v]}); closer(c, best) {
				best = c
			}
		}
		return best
	}
	keep := func(acc, part candidate) candidate {
		if closer(part, acc) {
			return part
		}
		return acc
	}

	for round := 0; round < n; round++ {
		u := parallel.Reduce(s, n, noCandidate, pick, keep)
		if u.v < 0 {
			break // remaining vertices are unreachable
		}
		settled[u.v] = true

		row := w[u.v*n : (u.v+1)*n]
		s.For(n, func(lo, hi int) {
			for v := lo; v < hi; v++ {
				if settled[v] || row[v] == NoEdge {
					continue
				}
				if nd := u.d + int64(row[v]); nd < dist[v] {
					dist[v] = nd
				}
			}
		})
	}
}
