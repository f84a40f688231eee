// SPDX-License-Identifier: MIT

// Package matrix - row & column views and their iterators.
//
// Purpose:
//   - Expose rows and columns as Line views over the single buffer: a row is the
//     contiguous window [r*cols, (r+1)*cols), a column is the strided walk
//     c, c+cols, c+2*cols, ... (length rows).
//   - Hand out mutable views (LineMut) one at a time; a view is retired before the
//     next one exists.
//
// Disjointness:
//   - Row windows never overlap.
//   - Column c visits exactly the offsets ≡ c (mod cols), so two distinct columns
//     never share an offset even though they interleave in memory.
//
// Notes:
//   - Column walks stride by cols and are cache-unfriendly for wide matrices.

package matrix

import "iter"

// span addresses n cells of a buffer: off, off+stride, ..., off+(n-1)*stride.
type span struct {
	off, stride, n int
}

// at maps position i of the span to a buffer offset.
func (s span) at(i int) (int, bool) {
	if i < 0 || i >= s.n {
		return 0, false
	}

	return s.off + i*s.stride, true
}

// window returns the contiguous buffer range of a stride-1 span.
func (s span) window() (lo, hi int, ok bool) {
	if s.stride != 1 {
		return 0, 0, false
	}

	return s.off, s.off + s.n, true
}

func (m *Matrix[T]) rowSpan(r int) span { return span{off: r * m.cols, stride: 1, n: m.cols} }
func (m *Matrix[T]) colSpan(c int) span { return span{off: c, stride: m.cols, n: m.rows} }

// ---------- Line (read-only) ----------

// Line is a read-only view of one row or one column of a matrix.
// It holds no copy: reads always reflect the current buffer.
// The zero Line, as returned alongside an error by Row or Col, has no cells:
// At reports ErrOutOfRange and All yields nothing.
type Line[T any] struct {
	m     *Matrix[T]
	index int // row or column number in m
	sp    span
}

// Index returns the row (for rows) or column (for columns) number of the line.
func (l Line[T]) Index() int { return l.index }

// Len returns the number of cells in the line (cols for a row, rows for a column).
func (l Line[T]) Len() int { return l.sp.n }

// At returns cell i of the line.
// Errors: ErrBorrowConflict while a mutable iterator runs; ErrOutOfRange.
func (l Line[T]) At(i int) (T, error) {
	var zero T
	if l.m == nil {
		return zero, lineErrorf(ctxAt, i, ErrOutOfRange)
	}
	if l.m.guard.exclusive() {
		return zero, lineErrorf(ctxAt, i, ErrBorrowConflict)
	}
	off, ok := l.sp.at(i)
	if !ok {
		return zero, lineErrorf(ctxAt, i, ErrOutOfRange)
	}

	return l.m.data[off], nil
}

// All yields (position, value) pairs in increasing position order.
// Holds a shared borrow of the matrix while the loop runs.
func (l Line[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.m == nil {
			return
		}
		defer l.m.share(ctxLineValues)()
		if lo, hi, ok := l.sp.window(); ok {
			for i, v := range l.m.data[lo:hi] { // contiguous row: plain window
				if !yield(i, v) {
					return
				}
			}
			return
		}
		for i, off := 0, l.sp.off; i < l.sp.n; i, off = i+1, off+l.sp.stride {
			if !yield(i, l.m.data[off]) {
				return
			}
		}
	}
}

// Values yields the cells of the line in increasing position order.
func (l Line[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// AppendTo appends the cells of the line to dst and returns the extended slice.
func (l Line[T]) AppendTo(dst []T) []T {
	for v := range l.Values() {
		dst = append(dst, v)
	}

	return dst
}

// ---------- LineMut (mutable, one live at a time) ----------

// LineMut is a mutable view of one row or one column, produced by
// AllRowsMut / AllColsMut. It is valid only inside the loop iteration that
// received it: once the iterator advances or stops, the view is retired and
// every accessor returns ErrViewRetired.
type LineMut[T any] struct {
	m       *Matrix[T]
	index   int
	sp      span
	retired bool
}

// retire ends the view's lifetime. Safe on nil.
func (l *LineMut[T]) retire() {
	if l != nil {
		l.retired = true
	}
}

// Index returns the row or column number of the line.
func (l *LineMut[T]) Index() int { return l.index }

// Len returns the number of cells in the line.
func (l *LineMut[T]) Len() int { return l.sp.n }

// Retired reports whether the view can no longer be used.
func (l *LineMut[T]) Retired() bool { return l.retired }

// offset validates the view's lifetime and position i.
func (l *LineMut[T]) offset(method string, i int) (int, error) {
	if l.retired {
		return 0, lineErrorf(method, i, ErrViewRetired)
	}
	off, ok := l.sp.at(i)
	if !ok {
		return 0, lineErrorf(method, i, ErrOutOfRange)
	}

	return off, nil
}

// At returns cell i of the line.
// Errors: ErrViewRetired, ErrOutOfRange.
func (l *LineMut[T]) At(i int) (T, error) {
	off, err := l.offset(ctxAt, i)
	if err != nil {
		var zero T
		return zero, err
	}

	return l.m.data[off], nil
}

// Set stores v at position i of the line.
// Errors: ErrViewRetired, ErrOutOfRange.
func (l *LineMut[T]) Set(i int, v T) error {
	off, err := l.offset(ctxSet, i)
	if err != nil {
		return err
	}
	l.m.data[off] = v

	return nil
}

// Ptr returns a pointer to cell i of the line.
// Errors: ErrViewRetired, ErrOutOfRange.
func (l *LineMut[T]) Ptr(i int) (*T, error) {
	off, err := l.offset(ctxPtr, i)
	if err != nil {
		return nil, err
	}

	return &l.m.data[off], nil
}

// Fill stores v in every cell of the line.
// Errors: ErrViewRetired.
func (l *LineMut[T]) Fill(v T) error {
	if l.retired {
		return lineErrorf("Fill", 0, ErrViewRetired)
	}
	for i, off := 0, l.sp.off; i < l.sp.n; i, off = i+1, off+l.sp.stride {
		l.m.data[off] = v
	}

	return nil
}

// Cells yields (position, pointer) pairs for every cell of the line.
// Ranging over a retired view is a programmer error and panics with ErrViewRetired.
func (l *LineMut[T]) Cells() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		if l.retired {
			panic(lineErrorf("Cells", 0, ErrViewRetired))
		}
		for i, off := 0, l.sp.off; i < l.sp.n; i, off = i+1, off+l.sp.stride {
			if !yield(i, &l.m.data[off]) {
				return
			}
		}
	}
}

// ---------- Iterators ----------

// lines yields count read-only lines under a shared borrow.
func (m *Matrix[T]) lines(method string, count int, spanOf func(int) span) iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		defer m.share(method)()
		for k := 0; k < count; k++ {
			if !yield(Line[T]{m: m, index: k, sp: spanOf(k)}) {
				return
			}
		}
	}
}

// linesMut yields count mutable lines under the exclusive borrow, retiring each
// view before the next is created.
func (m *Matrix[T]) linesMut(method string, count int, spanOf func(int) span) iter.Seq[*LineMut[T]] {
	return func(yield func(*LineMut[T]) bool) {
		release := m.lock(method)
		var cur *LineMut[T]
		defer func() {
			cur.retire()
			release()
		}()
		for k := 0; k < count; k++ {
			cur = &LineMut[T]{m: m, index: k, sp: spanOf(k)}
			if !yield(cur) {
				return
			}
			cur.retire()
		}
	}
}

// AllRows yields row 0, 1, ..., Rows()-1 as read-only lines.
// Each row is a contiguous window of the buffer.
// Complexity: O(rows) to iterate the views, O(rows*cols) to read them all.
func (m *Matrix[T]) AllRows() iter.Seq[Line[T]] {
	return m.lines(ctxRows, m.rows, m.rowSpan)
}

// AllCols yields column 0, 1, ..., Cols()-1 as read-only lines.
// Each column is a strided walk with stride Cols().
func (m *Matrix[T]) AllCols() iter.Seq[Line[T]] {
	return m.lines(ctxCols, m.cols, m.colSpan)
}

// AllRowsMut yields every row as a mutable view, in order.
// Views are disjoint contiguous windows; each is retired when the loop advances.
func (m *Matrix[T]) AllRowsMut() iter.Seq[*LineMut[T]] {
	return m.linesMut(ctxRowsMut, m.rows, m.rowSpan)
}

// AllColsMut yields every column as a mutable view, in order.
// Column c covers the residue class c (mod cols), so views never share a cell.
func (m *Matrix[T]) AllColsMut() iter.Seq[*LineMut[T]] {
	return m.linesMut(ctxColsMut, m.cols, m.colSpan)
}

// Row returns row r as a read-only line.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Row(r int) (Line[T], error) {
	if r < 0 || r >= m.rows {
		return Line[T]{}, matrixErrorf(ctxRow, r, 0, ErrOutOfRange)
	}

	return Line[T]{m: m, index: r, sp: m.rowSpan(r)}, nil
}

// Col returns column c as a read-only line.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Col(c int) (Line[T], error) {
	if c < 0 || c >= m.cols {
		return Line[T]{}, matrixErrorf(ctxCol, 0, c, ErrOutOfRange)
	}

	return Line[T]{m: m, index: c, sp: m.colSpan(c)}, nil
}

// RowMut returns a sequence of (column, pointer) pairs over row r.
// The exclusive borrow is held while the loop runs.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) RowMut(r int) (iter.Seq2[int, *T], error) {
	if r < 0 || r >= m.rows {
		return nil, matrixErrorf(ctxRowMut, r, 0, ErrOutOfRange)
	}

	return m.cellsMut(ctxRowMut, m.rowSpan(r)), nil
}

// ColMut returns a sequence of (row, pointer) pairs over column c.
// The exclusive borrow is held while the loop runs.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) ColMut(c int) (iter.Seq2[int, *T], error) {
	if c < 0 || c >= m.cols {
		return nil, matrixErrorf(ctxColMut, 0, c, ErrOutOfRange)
	}

	return m.cellsMut(ctxColMut, m.colSpan(c)), nil
}

// cellsMut walks one span under the exclusive borrow.
func (m *Matrix[T]) cellsMut(method string, sp span) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		defer m.lock(method)()
		for i, off := 0, sp.off; i < sp.n; i, off = i+1, off+sp.stride {
			if !yield(i, &m.data[off]) {
				return
			}
		}
	}
}
