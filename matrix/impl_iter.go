// SPDX-License-Identifier: MIT

// Package matrix - whole-matrix element iteration.
//
// Every iterator here walks the buffer in row-major order: row 0 left to right,
// then row 1, and so on. That is exactly the concatenation of AllRows().
// Read-only iterators hold a shared borrow while the loop runs, mutable ones the
// exclusive borrow; both are released on break and on panics in the loop body.

package matrix

import "iter"

// Values yields every cell in row-major order.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer m.share(ctxValues)()
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields (coordinate, value) pairs in row-major order.
func (m *Matrix[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		defer m.share(ctxAll)()
		var r, c, base int
		for r = 0; r < m.rows; r++ {
			base = r * m.cols
			for c = 0; c < m.cols; c++ {
				if !yield(Coord{Row: r, Col: c}, m.data[base+c]) {
					return
				}
			}
		}
	}
}

// ValuesMut yields a pointer to every cell in row-major order; each cell is
// visited exactly once.
func (m *Matrix[T]) ValuesMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		defer m.lock(ctxValuesMut)()
		for i := range m.data {
			if !yield(&m.data[i]) {
				return
			}
		}
	}
}

// AllMut yields (coordinate, pointer) pairs in row-major order.
func (m *Matrix[T]) AllMut() iter.Seq2[Coord, *T] {
	return func(yield func(Coord, *T) bool) {
		defer m.lock(ctxAllMut)()
		var r, c, base int
		for r = 0; r < m.rows; r++ {
			base = r * m.cols
			for c = 0; c < m.cols; c++ {
				if !yield(Coord{Row: r, Col: c}, &m.data[base+c]) {
					return
				}
			}
		}
	}
}

// Do visits each element (r,c) in row-major order and calls f(r,c,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Behavior highlights:
//   - No allocations; deterministic order; shared borrow while running.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(r, c int, v T) bool) {
	for at, v := range m.All() {
		if !f(at.Row, at.Col, v) {
			return // early exit requested by caller
		}
	}
}

// Apply replaces each element with f(r,c,v) in place.
// MAIN DESCRIPTION:
//   - In-place map with deterministic row-major order.
//
// Behavior highlights:
//   - Holds the exclusive borrow: f must not call back into m.
//   - If f panics, cells visited before the panic keep their new values.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Apply(f func(r, c int, v T) T) {
	for at, p := range m.AllMut() {
		*p = f(at.Row, at.Col, *p)
	}
}
