package maze

import (
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/rivermaze/grid"
)

// Validate checks that the Divide cells of m form a spanning tree over the
// logical vertices:
//
//  1. the border ring and every post are River;
//  2. every vertex is Divide;
//  3. exactly N²−1 wall cells are Divide;
//  4. the opened walls join all vertices into one set.
//
// With N²−1 edges, connectivity implies the graph is acyclic. Failures wrap
// ErrNotSpanning.
func Validate(m *Maze) error {
	g := m.Grid
	sets := make(map[int]*disjoint.Element, g.N*g.N)
	for idx := 0; idx < g.Len(); idx++ {
		if g.IsVertex(idx) {
			if m.IsRiver(idx) {
				return fmt.Errorf("%w: vertex %s is river", ErrNotSpanning, g.Cell(idx))
			}
			sets[idx] = disjoint.NewElement()
			continue
		}
		if m.IsRiver(idx) {
			continue
		}
		if g.IsPerimeter(idx) {
			return fmt.Errorf("%w: perimeter cell %s is divide", ErrNotSpanning, g.Cell(idx))
		}
		if g.IsPost(idx) {
			return fmt.Errorf("%w: post %s is divide", ErrNotSpanning, g.Cell(idx))
		}
	}

	opened := 0
	for idx := 0; idx < g.Len(); idx++ {
		if m.IsRiver(idx) || g.IsVertex(idx) {
			continue
		}
		a, b := wallEnds(g, idx)
		if sets[a].Find() == sets[b].Find() {
			return fmt.Errorf("%w: wall %s closes a cycle", ErrNotSpanning, g.Cell(idx))
		}
		disjoint.Union(sets[a], sets[b])
		opened++
	}
	if want := g.N*g.N - 1; opened != want {
		return fmt.Errorf("%w: %d open walls, want %d", ErrNotSpanning, opened, want)
	}
	return nil
}

// wallEnds returns the two vertices separated by the interior wall cell idx.
func wallEnds(g *grid.Grid, idx int) (int, int) {
	r, c := g.Coordinate(idx)
	if r%2 == 1 {
		return g.Index(r, c-1), g.Index(r, c+1)
	}
	return g.Index(r-1, c), g.Index(r+1, c)
}
