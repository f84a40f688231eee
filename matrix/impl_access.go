// SPDX-License-Identifier: MIT

// Package matrix - safe indexed access, copies & debug rendering.
//
// Purpose:
//   - Route every coordinate access through one bounds check (indexOf).
//   - Guarantee safety at the public surface: At/Set/Ptr return errors instead of panicking.
//   - Respect the borrow discipline: no writes while an iterator runs, no reads while a
//     mutable iterator runs.
//
// Complexity quicksheet:
//   - At/Set/Ptr: O(1); Clone/Buffer/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute the flat offset for row-major storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < rows and 0 ≤ col < cols.
//   - Stage 2: compute row*cols + col.
//
// Behavior highlights:
//   - Returns the bare sentinel; public methods wrap it with their method name
//     and coordinates.
//   - No clamping, no wraparound: (0, cols) is out of range, not (1, 0).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: r*cols + c.
	return row*m.cols + col, nil
}

// At returns the value at (row, col).
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: refuse while a mutable iterator holds the buffer.
//   - Stage 2: compute offset via indexOf (bounds check).
//   - Stage 3: load from the flat buffer.
//
// Errors:
//   - ErrBorrowConflict while AllRowsMut/AllColsMut/ValuesMut/AllMut/Apply runs.
//   - ErrOutOfRange on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if m.guard.exclusive() {
		return zero, matrixErrorf(ctxAt, row, col, ErrBorrowConflict)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Exactly one cell changes.
// MAIN DESCRIPTION:
//   - Safe element write.
//
// Implementation:
//   - Stage 1: refuse while any iterator holds the buffer.
//   - Stage 2: compute offset via indexOf.
//   - Stage 3: write into the flat buffer.
//
// Errors:
//   - ErrBorrowConflict while any iterator runs; ErrOutOfRange on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if !m.guard.free() {
		return matrixErrorf(ctxSet, row, col, ErrBorrowConflict)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Ptr returns a pointer to the cell at (row, col) for in-place updates.
// The pointer stays valid for the lifetime of m (the buffer is never
// reallocated); writing through it while an iterator runs breaks the borrow
// discipline the guard cannot see, so keep its use short.
//
// Errors:
//   - ErrBorrowConflict while any iterator runs; ErrOutOfRange on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Ptr(row, col int) (*T, error) {
	if !m.guard.free() {
		return nil, matrixErrorf(ctxPtr, row, col, ErrBorrowConflict)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, matrixErrorf(ctxPtr, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns an independent copy with the same shape, cells and options.
// Cells are copied by assignment (shallow for pointer-like T).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	defer m.share(ctxClone)()
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{
		rows: m.rows,
		cols: m.cols,
		data: cp,
		opts: m.opts,
	}
}

// Buffer returns a fresh copy of the row-major buffer.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Buffer() []T {
	defer m.share(ctxBuffer)()
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// String renders one line per row, cells formatted with %v:
//
//	[1, 2, 3]
//	[4, 5, 6]
//
// Intended for logs and debugging; never mutates m.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) String() string {
	defer m.share(ctxString)()
	var b strings.Builder
	var r, c, base int
	for r = 0; r < m.rows; r++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = r * m.cols
		for c = 0; c < m.cols; c++ {
			fmt.Fprintf(&b, "%v", m.data[base+c])
			if c+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
