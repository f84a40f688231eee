// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Construction errors keep the matrix cause in the chain, so
// errors.Is(err, matrix.ErrBadShape) and friends also hold.
var (
	// ErrEmptyGrid: the grid would have no cells (no rows, zero-width rows,
	// a nil matrix or a zero-shape one). Wraps matrix.ErrEmptyInput or
	// matrix.ErrBadShape when one caused it.
	ErrEmptyGrid = errors.New("gridgraph: grid has no cells")
	// ErrNonRectangular: row lengths differ. Wraps matrix.ErrRaggedInput.
	ErrNonRectangular = errors.New("gridgraph: ragged grid rows")
	// ErrComponentIndex: no island has the requested index.
	ErrComponentIndex = errors.New("gridgraph: no island at component index")
	// ErrNoPath: the islands cannot be bridged within MaxConversions.
	ErrNoPath = errors.New("gridgraph: islands cannot be bridged")
)
