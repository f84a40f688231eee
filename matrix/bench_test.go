// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for Matrix access and iteration,
// using a deterministic fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlgrid/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkB bool
)

// mustGrid returns an n×n matrix with cell (r,c) = r^c.
func mustGrid(b *testing.B, n int) *matrix.Matrix[int] {
	b.Helper()
	m, err := matrix.Generate(n, n, func(r, c int) int { return r ^ c })
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkAt(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustGrid(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.At(i%n, (i/n)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkI += v
			}
		})
	}
}

func BenchmarkValues(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustGrid(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for v := range m.Values() {
					sinkI += v
				}
			}
		})
	}
}

func BenchmarkAllRows(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustGrid(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for row := range m.AllRows() {
					for v := range row.Values() {
						sinkI += v
					}
				}
			}
		})
	}
}

func BenchmarkAllCols(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustGrid(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for col := range m.AllCols() {
					for v := range col.Values() {
						sinkI += v
					}
				}
			}
		})
	}
}

func BenchmarkAllColsMut(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustGrid(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for col := range m.AllColsMut() {
					for _, p := range col.Cells() {
						*p++
					}
				}
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustGrid(b, n)
			y := x.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = matrix.Equal(x, y)
			}
		})
	}
}
