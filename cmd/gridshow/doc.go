// SPDX-License-Identifier: MIT

/*
Command gridshow builds an integer grid and prints it as a table, together
with its shape and structural fingerprint. Optionally it labels the islands
of the grid.

Usage:

	gridshow -grid "0,1,1;1,0,0;0,0,1" -islands -conn 8
	gridshow -rows 3 -cols 4 -fill 7
	gridshow -grid "1,0;0,1" -trace Debug

Rows of -grid are separated by ';', cells by ','. Without -grid, a
-rows × -cols grid filled with -fill is shown. Errors exit with status 1,
bad flags with status 2.
*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvlgrid.gridshow'.
func tracer() tracing.Trace {
	return tracing.Select("lvlgrid.gridshow")
}
