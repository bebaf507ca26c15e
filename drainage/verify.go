package drainage

import "fmt"

// Verify checks forest validity and drainage conservation:
//
//   - Divide cells have no parent and zero area;
//   - every River cell reaches a perimeter root within Len() hops, each hop
//     going to an adjacent River cell of strictly smaller depth;
//   - area[c] = 1 + Σ area[child] for every River cell;
//   - Σ area over roots equals the River cell count.
//
// Complexity: O(cells) for the local checks plus O(cells · depth) for the
// root walks.
func Verify(net *Network) error {
	g, m := net.Grid, net.Maze
	for idx := 0; idx < g.Len(); idx++ {
		p := net.Parent[idx]
		if !m.IsRiver(idx) {
			if p != NoParent || net.Area[idx] != 0 {
				return fmt.Errorf("%w: divide %s has parent %d, area %d",
					ErrInvalidForest, g.Cell(idx), p, net.Area[idx])
			}
			continue
		}
		if p == NoParent {
			return fmt.Errorf("%w: %s", ErrUnreachedRiver, g.Cell(idx))
		}
		if p != idx {
			dr, dc := g.Direction(idx, p)
			if dr*dr+dc*dc != 1 || !m.IsRiver(p) {
				return fmt.Errorf("%w: %s flows to non-adjacent or divide cell %s",
					ErrInvalidForest, g.Cell(idx), g.Cell(p))
			}
			if net.Depth[p] >= net.Depth[idx] {
				return fmt.Errorf("%w: depth %d at %s not above parent depth %d",
					ErrInvalidForest, net.Depth[idx], g.Cell(idx), net.Depth[p])
			}
		}
		if _, err := net.PathToRoot(idx); err != nil {
			return err
		}

		want := 1
		for _, c := range net.Children(idx) {
			want += net.Area[c]
		}
		if net.Area[idx] != want {
			return fmt.Errorf("%w: %s has area %d, subtree holds %d",
				ErrConservation, g.Cell(idx), net.Area[idx], want)
		}
	}

	sum := 0
	for _, r := range net.Roots() {
		sum += net.Area[r]
	}
	if rivers := m.Rivers(); sum != rivers {
		return fmt.Errorf("%w: roots drain %d cells, map has %d river cells", ErrConservation, sum, rivers)
	}
	return nil
}
