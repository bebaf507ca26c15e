package solver

import (
	"fmt"

	"github.com/katalvlaran/rivermaze/drainage"
	"github.com/katalvlaran/rivermaze/slopes"
)

// Verify checks that heights is the fixed point Solve promises:
//
//   - every perimeter cell is at 0;
//   - every constraint height[q] ≤ height[p] + Offset(p, q) holds;
//   - every non-perimeter cell has at least one tight incoming constraint,
//     so no height can be raised without breaking one.
//
// Returns ErrViolated or ErrNotMaximal with the first offending cell.
func Verify(net *drainage.Network, tbl slopes.Table, heights []int64) error {
	g := net.Grid
	if len(heights) != g.Len() {
		return fmt.Errorf("%w: %d heights for %d cells", ErrViolated, len(heights), g.Len())
	}
	nbrs := make([]int, 0, 4)
	for q := 0; q < g.Len(); q++ {
		if g.IsPerimeter(q) && heights[q] != 0 {
			return fmt.Errorf("%w: perimeter cell %s at %d", ErrViolated, g.Cell(q), heights[q])
		}
		tight := false
		nbrs = g.Neighbors(nbrs[:0], q)
		for _, p := range nbrs {
			limit := heights[p] + Offset(net, tbl, p, q)
			if heights[q] > limit {
				return fmt.Errorf("%w: %s at %d exceeds %d implied by %s",
					ErrViolated, g.Cell(q), heights[q], limit, g.Cell(p))
			}
			if heights[q] == limit {
				tight = true
			}
		}
		if !tight && !g.IsPerimeter(q) {
			return fmt.Errorf("%w: %s at %d has slack on every side", ErrNotMaximal, g.Cell(q), heights[q])
		}
	}
	return nil
}

// Slack returns how far cell q sits below its tightest incoming constraint.
// Zero means the constraint is tight.
func Slack(net *drainage.Network, tbl slopes.Table, heights []int64, q int) int64 {
	best := Unbounded
	for _, p := range net.Grid.Neighbors(nil, q) {
		if limit := heights[p] + Offset(net, tbl, p, q); limit < best {
			best = limit
		}
	}
	return best - heights[q]
}
