// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/matrix"
	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands, numbered by first cell, cells in BFS order.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	require.Equal(t, [][]int{{1, 2, 5, 4}, {10, 11}}, gg.ConnectedComponents())
}

// TestConnectedComponents_Diagonal8 uses diagonal connectivity to catch
// "touching corners" islands.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8 all 9 ones form one island; with Conn4 each stands alone.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	g8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	comps := g8.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)

	g4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, g4.ConnectedComponents(), 9)
}

// TestConnectedComponents_EdgeCases covers all-water and single-cell grids.
func TestConnectedComponents_EdgeCases(t *testing.T) {
	water, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)
	require.Empty(t, water.ConnectedComponents())

	single, err := gridgraph.From2D([][]int{{0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}}, single.ConnectedComponents())
}

// TestLandThreshold raises the threshold so that only values ≥ 2 count.
func TestLandThreshold(t *testing.T) {
	grid := [][]int{
		{1, 2},
		{3, 1},
	}
	opts := gridgraph.GridOptions{LandThreshold: 2, Conn: gridgraph.Conn4}
	g4, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}, {2}}, g4.ConnectedComponents())
	require.True(t, g4.IsLand(1, 0))
	require.False(t, g4.IsLand(0, 0))
	require.False(t, g4.IsLand(5, 5))

	opts.Conn = gridgraph.Conn8
	g8, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}}, g8.ConnectedComponents())
}

// TestLabels maps every cell to its island or Water.
func TestLabels(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	labels, err := gg.Labels()
	require.NoError(t, err)

	want, err := matrix.FromRows([][]int{
		{-1, 0, 0, -1},
		{0, 0, -1, -1},
		{-1, -1, 1, 1},
	})
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, labels), "got:\n%s", labels)
}
