// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/matrix"
)

// Grid literal separators.
const (
	rowSep  = ";"
	cellSep = ","
)

// parseGrid reads a literal like "0,1;1,0" into rows of ints.
// A blank row yields an empty row; shape checks are left to the matrix.
func parseGrid(s string) ([][]int, error) {
	var rows [][]int
	for r, line := range strings.Split(s, rowSep) {
		line = strings.TrimSpace(line)
		row := []int{}
		if line != "" {
			for c, cell := range strings.Split(line, cellSep) {
				v, err := strconv.Atoi(strings.TrimSpace(cell))
				if err != nil {
					return nil, fmt.Errorf("grid row %d, cell %d: %w", r, c, err)
				}
				row = append(row, v)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// tableData lays m out for a table: a header of column numbers, then one
// line per row prefixed with its row number.
func tableData[T any](m *matrix.Matrix[T], text func(T) string) [][]string {
	header := make([]string, 0, m.Cols()+1)
	header = append(header, "")
	for c := 0; c < m.Cols(); c++ {
		header = append(header, strconv.Itoa(c))
	}
	data := [][]string{header}
	for row := range m.AllRows() {
		line := make([]string, 0, row.Len()+1)
		line = append(line, strconv.Itoa(row.Index()))
		for v := range row.Values() {
			line = append(line, text(v))
		}
		data = append(data, line)
	}

	return data
}

func cellText(v int) string { return strconv.Itoa(v) }

// labelText renders island labels, water as "~".
func labelText(v int) string {
	if v == gridgraph.Water {
		return "~"
	}
	return strconv.Itoa(v)
}
