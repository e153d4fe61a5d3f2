// SPDX-License-Identifier: MIT

package taskdata

import "fmt"

// Element lists the element types a Buffer slot may carry.
type Element interface {
	~int | ~int32 | ~int64 | ~uint8 | ~float64 | ~complex128
}

// Buffer is a typed, non-owning view over a caller slice.
//
// The zero Buffer is empty and has kind "".
type Buffer struct {
	data any    // []T as wrapped by Slice; never copied
	n    int    // element count at wrap time
	kind string // element type name, e.g. "int32"
}

// Slice wraps s without copying. The returned Buffer aliases s.
func Slice[T Element](s []T) Buffer {
	var zero T
	return Buffer{
		data: s,
		n:    len(s),
		kind: fmt.Sprintf("%T", zero),
	}
}

// View returns the slice held by b when it was wrapped with element type T.
func View[T Element](b Buffer) ([]T, error) {
	s, ok := b.data.([]T)
	if !ok {
		var zero T
		return nil, fmt.Errorf("view as %T, slot holds %q: %w", zero, b.kind, ErrKindMismatch)
	}
	return s, nil
}

// Len reports the element count of the wrapped slice.
func (b Buffer) Len() int { return b.n }

// Kind reports the element type name of the wrapped slice.
func (b Buffer) Kind() string { return b.kind }

// String implements fmt.Stringer as "kind[len]".
func (b Buffer) String() string { return fmt.Sprintf("%s[%d]", b.kind, b.n) }
