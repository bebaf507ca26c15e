package maze

import (
	"fmt"

	"github.com/katalvlaran/rivermaze/grid"
)

// steps is the walk's direction table (row, col), indexed by a uniform draw
// from [0,4).
var steps = [4][2]int{{1, 0}, {0, 1}, {0, -1}, {-1, 0}}

// Generate carves a random spanning tree over the odd-coordinate vertices of
// g and returns the inverted classification: walls become River, passages
// become Divide.
//
// Complexity: expected O(N² log² N) walk steps for the cover time of the
// N×N vertex lattice; Memory: O(Size²).
func Generate(g *grid.Grid, opts ...Option) (*Maze, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	open := make([]bool, g.Len())
	r := rng.Intn(g.N)*2 + 1
	c := rng.Intn(g.N)*2 + 1
	open[g.Index(r, c)] = true

	found, walked := 1, 0
	for found < g.N*g.N {
		if o.MaxSteps > 0 && walked >= o.MaxSteps {
			return nil, fmt.Errorf("%w: %d of %d vertices after %d steps",
				ErrWalkExhausted, found, g.N*g.N, walked)
		}
		walked++

		d := steps[rng.Intn(4)]
		wr, wc := r+d[0], c+d[1] // wall crossed
		vr, vc := wr+d[0], wc+d[1]
		if !g.InBounds(vr, vc) {
			continue
		}
		v := g.Index(vr, vc)
		if !open[v] {
			open[g.Index(wr, wc)] = true
			open[v] = true
			found++
		}
		r, c = vr, vc
	}

	kinds := make([]grid.Kind, g.Len())
	for i, isOpen := range open {
		if isOpen {
			kinds[i] = grid.Divide
		} else {
			kinds[i] = grid.River
		}
	}
	return &Maze{Grid: g, Kinds: kinds, Steps: walked}, nil
}
