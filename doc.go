// SPDX-License-Identifier: MIT

// Package lvlgrid is a small toolkit around one data structure: a generic,
// dense, row-major 2-D matrix with safe indexing and non-aliasing iteration.
//
// What is in the box?
//
//   - matrix/: Matrix[T]: one contiguous buffer, bounds-checked At/Set/Ptr,
//     row / column / element iterators in read-only and mutable
//     forms, Equal, String and a structural Fingerprint
//   - gridgraph/: treats a Matrix[int] as a 4- or 8-connected grid graph:
//     islands, per-cell labels, cheapest bridges (0-1 BFS)
//   - cmd/gridshow: prints a grid (and its islands) as a table
//   - examples/: runnable programs
//
// Why?
//
//   - One buffer, explicit offset formula r*cols + c, no jagged [][]T.
//   - Iterators are plain Go 1.23 range-over-func sequences.
//   - Mutable row/column views never alias: rows are disjoint windows,
//     columns are disjoint residue classes mod cols, and a borrow guard
//     detects overlapping iteration at run time.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	for col := range m.AllColsMut() {
//		col.Fill(col.Index())
//	}
//	fmt.Print(m) // [0, 1, 2]\n[0, 1, 2]
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
