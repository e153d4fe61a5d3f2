// SPDX-License-Identifier: MIT

package dijkstra

import "container/heap"

// Heap fills dist (len g.N()) with shortest distances from src using a binary
// heap with lazy decrease-key: improved vertices are pushed again and stale
// entries are skipped on pop.
//
// Complexity: O((V + E) log V) time, O(V + E) heap space in the worst case.
func Heap(g *CSR, src int, dist []int64) {
	n := g.N()
	r := &runner{
		g:       g,
		dist:    dist[:n],
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(src) // 1) all Unreachable, source at 0
	r.process() // 2) settle vertices in distance order
}

// runner holds the mutable state for a single heap execution.
type runner struct {
	g       *CSR
	dist    []int64
	visited []bool
	pq      nodePQ
}

// init resets dist and seeds the queue with src.
// Complexity: O(V).
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: int32(src), dist: 0})
}

// process pops until the queue is empty, settling each vertex once.
// Complexity: O((V + E) log V) over the whole run.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := int(item.id)
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		r.relax(u, item.dist)
	}
}

// relax pushes every neighbour of u whose distance strictly improves.
// Complexity: O(deg(u) log V).
func (r *runner) relax(u int, du int64) {
	lo, hi := r.g.Offsets[u], r.g.Offsets[u+1]
	for k := lo; k < hi; k++ {
		v := r.g.Targets[k]
		if r.visited[v] {
			continue
		}
		nd := du + int64(r.g.Weights[k])
		if nd >= r.dist[v] {
			continue // equal paths keep the first distance found
		}
		r.dist[v] = nd
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a heap entry ordered by dist.
type nodeItem struct {
	id   int32
	dist int64
}

// nodePQ is a min-heap of nodeItem.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex so pops are deterministic.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
