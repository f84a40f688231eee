// SPDX-License-Identifier: MIT

// Package gridgraph treats a matrix.Matrix[int] as a graph of cells, enabling
// component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a rectangular grid of ints with a tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Labels every cell with its island index (-1 for water) as a new matrix.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//
// Coordinates:
//
//   - x is the column, y is the row; cell (x,y) is matrix cell (y,x).
//   - Cell indices are row-major: y*Width + x, the same offset the matrix uses.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Labels:              O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.MaxConversions: upper bound on water cells ExpandIsland may convert (0 = unbounded).
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no cells (wraps the matrix cause).
//   - ErrNonRectangular: ragged rows (wraps matrix.ErrRaggedInput).
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path within MaxConversions exists between the components.
package gridgraph

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvlgrid.gridgraph'.
func tracer() tracing.Trace {
	return tracing.Select("lvlgrid.gridgraph")
}
