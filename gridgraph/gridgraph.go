// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/matrix"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// values[y][x] is the cell at column x, row y. The input is copied.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	m, err := matrix.FromRows(values)
	switch {
	case errors.Is(err, matrix.ErrRaggedInput):
		return nil, fmt.Errorf("%w: %w", ErrNonRectangular, err)
	case errors.Is(err, matrix.ErrEmptyInput), errors.Is(err, matrix.ErrBadShape):
		return nil, fmt.Errorf("%w: %w", ErrEmptyGrid, err)
	case err != nil:
		return nil, err
	}

	return build(m, opts), nil
}

// From2D is NewGridGraph with the default land threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// FromMatrix constructs a GridGraph over a copy of m (row = y, column = x).
// Returns ErrEmptyGrid for a nil matrix, wrapped with matrix.ErrBadShape for
// a zero-shape one built under matrix.WithEmptyShape.
func FromMatrix(m *matrix.Matrix[int], opts GridOptions) (*GridGraph, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}
	if m.IsEmpty() {
		r, c := m.Shape()
		return nil, fmt.Errorf("FromMatrix(%dx%d): %w: %w", r, c, ErrEmptyGrid, matrix.ErrBadShape)
	}

	return build(m.Clone(), opts), nil
}

// build takes ownership of m and precomputes the land mask and offsets.
func build(m *matrix.Matrix[int], opts GridOptions) *GridGraph {
	gg := &GridGraph{
		cells:   m,
		land:    make([]bool, m.Len()),
		opts:    opts,
		offsets: offsets4,
	}
	if opts.Conn == Conn8 {
		gg.offsets = offsets8
	}
	for at, v := range m.All() {
		gg.land[at.Row*m.Cols()+at.Col] = v >= opts.LandThreshold
	}
	tracer().Debugf("grid %dx%d, conn=%s, threshold=%d", m.Cols(), m.Rows(), opts.Conn, opts.LandThreshold)

	return gg
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.cells.Cols() }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.cells.Rows() }

// Options returns the options the graph was built with.
func (gg *GridGraph) Options() GridOptions { return gg.opts }

// Value returns the original value of cell (x,y).
// Errors: matrix.ErrOutOfRange for coordinates outside the grid.
func (gg *GridGraph) Value(x, y int) (int, error) {
	v, err := gg.cells.At(y, x)
	if err != nil {
		return 0, fmt.Errorf("gridgraph: Value(%d,%d): %w", x, y, err)
	}

	return v, nil
}

// IsLand reports whether cell (x,y) is inside the grid and at or above the land threshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.land[gg.Index(x, y)]
}

// Cells returns a copy of the underlying grid.
func (gg *GridGraph) Cells() *matrix.Matrix[int] { return gg.cells.Clone() }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width() && y >= 0 && y < gg.Height()
}

// NeighborOffsets returns the (dx,dy) offsets of the configured connectivity.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width() + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width(), idx / gg.Width()
}

// neighbors calls visit for every in-bounds neighbor index of cell u.
func (gg *GridGraph) neighbors(u int, visit func(v int)) {
	ux, uy := gg.Coordinate(u)
	for _, d := range gg.offsets {
		vx, vy := ux+d[0], uy+d[1]
		if gg.InBounds(vx, vy) {
			visit(gg.Index(vx, vy))
		}
	}
}
