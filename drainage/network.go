package drainage

import "fmt"

// IsRiver reports whether idx belongs to the forest.
func (net *Network) IsRiver(idx int) bool { return net.Parent[idx] != NoParent }

// IsRoot reports whether idx is a perimeter root.
func (net *Network) IsRoot(idx int) bool { return net.Parent[idx] == idx }

// Roots returns the perimeter roots in row-major order.
func (net *Network) Roots() []int { return net.Grid.Perimeter() }

// Children returns the upstream neighbors of idx, in neighbor scan order.
func (net *Network) Children(idx int) []int {
	var out []int
	for _, v := range net.Grid.Neighbors(nil, idx) {
		if v != idx && net.Parent[v] == idx {
			out = append(out, v)
		}
	}
	return out
}

// RiverCount returns the number of cells in the forest.
func (net *Network) RiverCount() int {
	n := 0
	for _, p := range net.Parent {
		if p != NoParent {
			n++
		}
	}
	return n
}

// MaxArea returns the largest drainage area and the cell that holds it.
func (net *Network) MaxArea() (area, cell int) {
	cell = -1
	for idx, a := range net.Area {
		if a > area {
			area, cell = a, idx
		}
	}
	return area, cell
}

// PathToRoot follows parent pointers from idx to its root, inclusive.
// It returns ErrInvalidForest if idx is not a River cell or the walk does not
// reach a root within Len() steps.
func (net *Network) PathToRoot(idx int) ([]int, error) {
	g := net.Grid
	if net.Parent[idx] == NoParent {
		return nil, fmt.Errorf("%w: %s is not a river cell", ErrInvalidForest, g.Cell(idx))
	}
	path := []int{idx}
	for cur := idx; !net.IsRoot(cur); {
		if len(path) > g.Len() {
			return nil, fmt.Errorf("%w: cycle through %s", ErrInvalidForest, g.Cell(idx))
		}
		cur = net.Parent[cur]
		if cur == NoParent {
			return nil, fmt.Errorf("%w: broken chain from %s", ErrInvalidForest, g.Cell(idx))
		}
		path = append(path, cur)
	}
	if !g.IsPerimeter(path[len(path)-1]) {
		return nil, fmt.Errorf("%w: %s roots at interior cell %s",
			ErrInvalidForest, g.Cell(idx), g.Cell(path[len(path)-1]))
	}
	return path, nil
}
