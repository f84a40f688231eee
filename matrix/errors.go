// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public entry point
// returns one of these (wrapped with call-site context via %w) and tests MUST
// check them via errors.Is. No method panics on user-triggered error conditions;
// panics are reserved for programmer errors (conflicting iterator borrows,
// nil generator functions).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ...". Context (method, coordinates) is attached at the
// detection site with fmt.Errorf("Matrix.At(%d,%d): %w", ...).
//
// Error priority:
// empty input -> ragged input -> shape -> dimension mismatch (constructors);
// borrow conflict -> index out of range (accessors).

var (
	// ErrOutOfRange indicates that a row, column or line index is outside
	// valid bounds. Public indexers (At/Set/Ptr) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when a requested shape is invalid: negative
	// dimensions, a zero dimension without WithEmptyShape, or rows*cols
	// overflowing int.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedInput signals FromRows input whose rows differ in length.
	ErrRaggedInput = errors.New("matrix: rows have different lengths")

	// ErrEmptyInput signals FromRows input without a single row.
	ErrEmptyInput = errors.New("matrix: no rows given")

	// ErrDimensionMismatch indicates a flat buffer whose length differs from rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBorrowConflict signals an access that would overlap a live borrow:
	// a write while any iteration is running, or a read while a mutable
	// iteration is running.
	ErrBorrowConflict = errors.New("matrix: conflicting borrow")

	// ErrViewRetired signals use of a mutable line view after the iterator
	// that produced it has moved on.
	ErrViewRetired = errors.New("matrix: view retired")
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxFilled      = "Filled"
	ctxGenerate    = "Generate"
	ctxFromRows    = "FromRows"
	ctxFromSlice   = "FromSlice"
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxPtr         = "Ptr"
	ctxRow         = "Row"
	ctxCol         = "Col"
	ctxRowMut      = "RowMut"
	ctxColMut      = "ColMut"
	ctxRows        = "AllRows"
	ctxCols        = "AllCols"
	ctxRowsMut     = "AllRowsMut"
	ctxColsMut     = "AllColsMut"
	ctxValues      = "Values"
	ctxAll         = "All"
	ctxValuesMut   = "ValuesMut"
	ctxAllMut      = "AllMut"
	ctxLineValues  = "Line.Values"
	ctxClone       = "Clone"
	ctxBuffer      = "Buffer"
	ctxString      = "String"
	ctxEqual       = "Equal"
	ctxFingerprint = "Fingerprint"
)

// ctorErrorf wraps a constructor failure with the constructor name and shape.
func ctorErrorf(ctor string, rows, cols int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", ctor, rows, cols, err)
}

// raggedErrorf wraps ErrRaggedInput with the offending row and its length.
func raggedErrorf(row, got, want int) error {
	return fmt.Errorf("row %d has %d cells, want %d: %w", row, got, want, ErrRaggedInput)
}

// matrixErrorf wraps an accessor failure with method context and coordinates.
// Tags are kept in constants for grep-ability; the sentinel survives via %w.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// lineErrorf wraps a line-view failure with method context and position.
func lineErrorf(method string, i int, err error) error {
	return fmt.Errorf("Line.%s(%d): %w", method, i, err)
}

// borrowErrorf wraps ErrBorrowConflict with the name of the operation that
// could not acquire its borrow.
func borrowErrorf(method string) error {
	return fmt.Errorf("Matrix.%s: %w", method, ErrBorrowConflict)
}
