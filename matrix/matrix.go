// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] storage (row-major) & constructors.
//
// Purpose:
//   - Own one contiguous buffer of rows*cols elements with the explicit index formula r*cols + c.
//   - Establish every invariant before a matrix is observable: exactly one allocation,
//     every cell initialized, shape fixed for the lifetime of the instance.
//   - Apply one shape policy across all constructors (see options.go).
//
// Complexity quicksheet:
//   - New/Filled/Generate/FromRows/FromSlice: O(r*c); Rows/Cols/Shape/Len: O(1).

package matrix

import (
	"math"
)

// ---------- Internal panic messages (no magic strings) ----------

const panicNilGenerator = "matrix: Generate: nil generator"

// Matrix is a dense row-major grid of T.
//   - rows, cols hold the shape; both are fixed at construction.
//   - data is a flat buffer of length rows*cols (offset = r*cols + c).
//   - guard tracks live iterator borrows (see borrow.go).
//
// Always handle a Matrix through *Matrix[T]; the struct carries an atomic
// guard and must not be copied. Use Clone for an independent copy.
type Matrix[T any] struct {
	rows, cols int         // shape (>=0; zero only with WithEmptyShape)
	data       []T         // contiguous row-major storage (len == rows*cols)
	opts       Options     // construction policy, preserved by Clone
	guard      borrowGuard // live borrows of data
}

// Coord is a (row, column) coordinate paired with cells by All and AllMut.
type Coord struct {
	Row, Col int
}

// validateShape checks (rows, cols) against the shape policy.
// Implementation:
//   - Stage 1: negative dimensions are never legal.
//   - Stage 2: zero dimensions are legal only under WithEmptyShape.
//   - Stage 3: rows*cols must fit into int.
//
// Returns:
//   - nil or ErrBadShape (unwrapped; callers attach context).
//
// Complexity:
//   - Time O(1), Space O(1).
func validateShape(rows, cols int, o Options) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}
	if (rows == 0 || cols == 0) && !o.allowEmpty {
		return ErrBadShape
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return ErrBadShape
	}

	return nil
}

// alloc validates the shape and performs the single buffer allocation shared
// by every constructor. make() zero-fills the buffer deterministically.
func alloc[T any](ctor string, rows, cols int, opts []Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(rows, cols, o); err != nil {
		tracer().Debugf("%s rejected shape %dx%d (allowEmpty=%v)", ctor, rows, cols, o.allowEmpty)
		return nil, ctorErrorf(ctor, rows, cols, err)
	}

	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
		opts: o,
	}, nil
}

// New creates a rows×cols matrix with every cell set to the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the default policy.
//
// Implementation:
//   - Stage 1: validate shape (see validateShape).
//   - Stage 2: allocate the zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids zero dimensions unless WithEmptyShape is given.
//
// Inputs:
//   - rows, cols: shape.
//   - opts: construction options.
//
// Returns:
//   - *Matrix[T]: newly allocated matrix.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return alloc[T](ctxNew, rows, cols, opts)
}

// Filled creates a rows×cols matrix with every cell set to fill.
// Elements are copied by assignment: for pointer-like T every cell refers to
// the same referent.
//
// Errors:
//   - ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Filled[T any](rows, cols int, fill T, opts ...Option) (*Matrix[T], error) {
	m, err := alloc[T](ctxFilled, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = fill
	}

	return m, nil
}

// Generate creates a rows×cols matrix where cell (r, c) is gen(r, c).
// MAIN DESCRIPTION:
//   - Position-dependent initialization rule.
//
// Implementation:
//   - Stage 1: validate shape and allocate.
//   - Stage 2: call gen exactly once per cell in row-major order.
//
// Behavior highlights:
//   - gen observes no partially built matrix; it only receives coordinates.
//   - A nil gen is a programmer error and panics.
//
// Errors:
//   - ErrBadShape.
//
// Determinism:
//   - Fixed r→c call order.
//
// Complexity:
//   - Time O(r*c) calls of gen, Space O(r*c).
func Generate[T any](rows, cols int, gen func(r, c int) T, opts ...Option) (*Matrix[T], error) {
	if gen == nil {
		panic(panicNilGenerator)
	}
	m, err := alloc[T](ctxGenerate, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	var r, c, base int
	for r = 0; r < rows; r++ {
		base = r * cols
		for c = 0; c < cols; c++ {
			m.data[base+c] = gen(r, c)
		}
	}

	return m, nil
}

// FromRows builds a matrix from equal-length rows; the input is copied.
// MAIN DESCRIPTION:
//   - rows[i][j] becomes cell (i, j); the result never aliases the input.
//
// Implementation:
//   - Stage 1: reject an empty outer slice (ErrEmptyInput).
//   - Stage 2: reject rows whose length differs from row 0 (ErrRaggedInput).
//   - Stage 3: allocate via the shared shape policy; copy row by row.
//
// Behavior highlights:
//   - [[]] and [[], []] are zero-column shapes and follow the shape policy.
//
// Errors:
//   - ErrEmptyInput, ErrRaggedInput, ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 {
		tracer().Debugf("%s: no rows", ctxFromRows)
		return nil, ctorErrorf(ctxFromRows, 0, 0, ErrEmptyInput)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			tracer().Debugf("%s: row %d has %d cells, row 0 has %d", ctxFromRows, i, len(row), width)
			return nil, ctorErrorf(ctxFromRows, len(rows), width, raggedErrorf(i, len(row), width))
		}
	}
	m, err := alloc[T](ctxFromRows, len(rows), width, opts)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*width:(i+1)*width], row)
	}

	return m, nil
}

// FromSlice builds a rows×cols matrix from a flat row-major buffer; data is copied.
//
// Errors:
//   - ErrBadShape; ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromSlice[T any](rows, cols int, data []T, opts ...Option) (*Matrix[T], error) {
	m, err := alloc[T](ctxFromSlice, rows, cols, opts)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		tracer().Debugf("%s: buffer of %d cells for shape %dx%d", ctxFromSlice, len(data), rows, cols)
		return nil, ctorErrorf(ctxFromSlice, rows, cols, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns rows*cols, the number of cells.
// Complexity: O(1).
func (m *Matrix[T]) Len() int { return len(m.data) }

// IsEmpty reports whether the matrix has no cells (only possible with WithEmptyShape).
func (m *Matrix[T]) IsEmpty() bool { return len(m.data) == 0 }

// Options returns the construction policy of m.
func (m *Matrix[T]) Options() Options { return m.opts }
