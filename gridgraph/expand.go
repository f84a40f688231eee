// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"
	"slices"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// ExpandIsland finds a minimum-conversion path of "water" cells to connect
// any cell in component srcComp to any cell in component dstComp, as
// identified by ConnectedComponents(). Each water-cell conversion costs 1.
// Returns the sequence of cell indices (row-major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells, in component order:
//     • Moving into a land cell  → cost 0, pushed to the deque front
//     • Moving into a water cell → cost 1, pushed to the deque back
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors.
//
// With GridOptions.MaxConversions > 0, paths converting more water cells are
// pruned and ErrNoPath is returned when none remain.
//
// Complexity: O(W·H·d) time.
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("ExpandIsland(%d,%d) with %d islands: %w", srcComp, dstComp, len(comps), ErrComponentIndex)
	}
	isDst := make([]bool, len(gg.land))
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}

	dist := make([]int, len(gg.land))
	prev := make([]int, len(gg.land))
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := doublylinkedlist.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.Append(i)
	}

	budget := gg.opts.MaxConversions
	target := -1
	for !dq.Empty() {
		front, _ := dq.Get(0)
		dq.Remove(0)
		u := front.(int)
		if isDst[u] {
			target = u
			break
		}
		gg.neighbors(u, func(v int) {
			step := 1
			if gg.land[v] {
				step = 0
			}
			nd := dist[u] + step
			if nd >= dist[v] || (budget > 0 && nd > budget) {
				return
			}
			dist[v] = nd
			prev[v] = u
			if step == 0 {
				dq.Prepend(v)
			} else {
				dq.Append(v)
			}
		})
	}

	if target < 0 {
		tracer().Infof("no bridge from island %d to %d within %d conversions", srcComp, dstComp, budget)
		return nil, 0, fmt.Errorf("ExpandIsland(%d,%d): %w", srcComp, dstComp, ErrNoPath)
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)
	tracer().Debugf("bridge %d→%d costs %d over %d cells", srcComp, dstComp, dist[target], len(path))

	return path, dist[target], nil
}
