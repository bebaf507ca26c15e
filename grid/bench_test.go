package grid_test

import (
	"testing"

	"github.com/katalvlaran/rivermaze/grid"
)

// BenchmarkNeighbors measures a full neighbor sweep on a 257×257 grid.
func BenchmarkNeighbors(b *testing.B) {
	g, err := grid.New(128)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	buf := make([]int, 0, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < g.Len(); idx++ {
			buf = g.Neighbors(buf[:0], idx)
		}
	}
}
