// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[T], a fixed-shape dense 2-D grid of values of
// any element type, stored row-major in one contiguous buffer.
//
// What & Why:
//
//	Matrix[T] is a container, not a linear-algebra library. It offers safe
//	indexed access, a family of iterators over rows, columns and all cells
//	(read-only and mutable variants), equality, debug rendering and a
//	structural fingerprint. Element (r, c) lives at offset r*cols + c; the
//	shape never changes after construction.
//
// Construction:
//
//	New       zero value in every cell
//	Filled    one fill value in every cell
//	Generate  fill(r, c) per cell, row-major order
//	FromRows  copy of equal-length rows
//	FromSlice copy of a flat row-major buffer
//
//	Zero-sized dimensions are rejected with ErrBadShape unless WithEmptyShape
//	is passed. FromRows without any row fails with ErrEmptyInput.
//
// Iteration:
//
//	AllRows / AllCols        iter.Seq[Line[T]]      read-only row and column views
//	AllRowsMut / AllColsMut  iter.Seq[*LineMut[T]]  mutable views, one live at a time
//	Values / All             iter.Seq[T], iter.Seq2[Coord, T]
//	ValuesMut / AllMut       iter.Seq[*T], iter.Seq2[Coord, *T]
//
//	Rows are contiguous windows. Columns are strided (stride = cols) and thus
//	cache-unfriendly; no column-major copy is kept, so the single-buffer
//	invariant holds. Column c touches exactly the offsets ≡ c (mod cols),
//	which makes distinct columns disjoint.
//
// Borrow discipline:
//
//	Go has no borrow checker, so every matrix carries an atomic borrow guard.
//	Read-only iterators hold a shared borrow while their loop runs; mutable
//	iterators hold an exclusive one. Set/Ptr during any loop, or At during a
//	mutable loop, return ErrBorrowConflict; starting an iterator that
//	conflicts with a running one panics. Borrows are released when the loop
//	ends, including break and panics in the loop body. The guard detects
//	misuse; it does not serialise writers across goroutines.
//
// Complexity:
//
//	Shape queries and At/Set/Ptr are O(1). Constructors, Clone, Buffer,
//	Equal and String are O(rows*cols). Every iterator is O(rows*cols) when
//	driven to completion and allocation-free except for one LineMut per
//	mutable line.
package matrix

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvlgrid.matrix'.
func tracer() tracing.Trace {
	return tracing.Select("lvlgrid.matrix")
}
