// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/gridgraph"
)

// exampleGrid has three islands under Conn4.
var exampleGrid = [][]int{
	{1, 1, 0, 0, 2},
	{1, 0, 0, 2, 2},
	{0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0},
}

// ExampleGridGraph_ConnectedComponents identifies contiguous islands of
// non-zero cells.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.From2D(exampleGrid, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (0,0) (1,0) (0,1)
	// component 1: (4,0) (4,1) (3,1)
	// component 2: (0,3)
}

// ExampleGridGraph_ExpandIsland computes the minimal water-cell conversions
// connecting island 0 to island 1.
func ExampleGridGraph_ExpandIsland() {
	gg, _ := gridgraph.From2D(exampleGrid, gridgraph.Conn4)

	path, cost, _ := gg.ExpandIsland(0, 1)
	fmt.Printf("convert %d water cells along path:", cost)
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Println()

	// Output:
	// convert 2 water cells along path: (1,0) (2,0) (3,0) (3,1)
}

// ExampleGridGraph_Labels prints the island index of every cell.
func ExampleGridGraph_Labels() {
	gg, _ := gridgraph.From2D(exampleGrid, gridgraph.Conn4)

	labels, _ := gg.Labels()
	fmt.Print(labels)

	// Output:
	// [0, 0, -1, -1, 1]
	// [0, -1, -1, 1, 1]
	// [-1, -1, -1, -1, -1]
	// [2, -1, -1, -1, -1]
}
