// SPDX-License-Identifier: MIT

package parallel

// Chunk is a half-open index range [Lo, Hi).
type Chunk struct{ Lo, Hi int }

// Chunks splits [0, n) into at most parts contiguous, non-empty ranges whose
// sizes differ by at most one. It returns nil for n <= 0.
func Chunks(n, parts int) []Chunk {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	out := make([]Chunk, parts)
	base, extra := n/parts, n%parts
	lo := 0
	for i := range out {
		size := base
		if i < extra {
			size++
		}
		out[i] = Chunk{Lo: lo, Hi: lo + size}
		lo += size
	}
	return out
}

// Reduce maps every chunk of [0, n) to a local partial with mapFn and folds the
// partials into identity with combine, in ascending chunk order, after all
// chunks finished. Chunking follows s.Workers(); each chunk is one Invoke'd
// closure, so mapFn runs at most that many times.
func Reduce[T any](s Strategy, n int, identity T, mapFn func(lo, hi int) T, combine func(acc, part T) T) T {
	chunks := Chunks(n, s.Workers())
	partials := make([]T, len(chunks))
	fns := make([]func(), len(chunks))
	for i, c := range chunks {
		fns[i] = func() { partials[i] = mapFn(c.Lo, c.Hi) }
	}
	s.Invoke(fns...)

	acc := identity
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc
}
