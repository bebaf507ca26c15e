package solver_test

import (
	"testing"

	"github.com/katalvlaran/rivermaze/drainage"
	"github.com/katalvlaran/rivermaze/grid"
	"github.com/katalvlaran/rivermaze/maze"
	"github.com/katalvlaran/rivermaze/slopes"
	"github.com/katalvlaran/rivermaze/solver"
)

// BenchmarkSolve measures a full solve on a 129×129 map with a
// non-negative table.
func BenchmarkSolve(b *testing.B) {
	g, err := grid.New(64)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}
	m, err := maze.Generate(g, maze.WithSeed(17))
	if err != nil {
		b.Fatalf("setup maze failed: %v", err)
	}
	net, err := drainage.Build(m)
	if err != nil {
		b.Fatalf("setup drainage failed: %v", err)
	}
	tbl, err := slopes.New([]slopes.Pair{{Lower: 0, Upper: 6}, {Lower: 0, Upper: 3}, {Lower: 0, Upper: 1}})
	if err != nil {
		b.Fatalf("setup table failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(net, tbl); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
