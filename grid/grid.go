package grid

import "fmt"

// New constructs the grid for half-size n. The resulting map is
// (2n+1)×(2n+1). Returns ErrBadHalfSize if n <= 0.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadHalfSize, n)
	}
	return &Grid{N: n, Size: 2*n + 1}, nil
}

// Len returns the number of cells, Size².
func (g *Grid) Len() int {
	return g.Size * g.Size
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

// Index maps (row, col) to its row-major index. The caller must ensure the
// coordinate is in bounds; see CellIndex for a checked variant.
func (g *Grid) Index(row, col int) int {
	return row*g.Size + col
}

// CellIndex is the checked form of Index.
func (g *Grid) CellIndex(c Cell) (int, error) {
	if !g.InBounds(c.Row, c.Col) {
		return -1, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return g.Index(c.Row, c.Col), nil
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Size, idx % g.Size
}

// Cell returns the coordinate pair for idx.
func (g *Grid) Cell(idx int) Cell {
	r, c := g.Coordinate(idx)
	return Cell{Row: r, Col: c}
}

// IsPerimeter reports whether idx lies on the border ring.
func (g *Grid) IsPerimeter(idx int) bool {
	r, c := g.Coordinate(idx)
	last := g.Size - 1
	return r == 0 || c == 0 || r == last || c == last
}

// IsVertex reports whether idx is a logical maze vertex (both coordinates odd).
func (g *Grid) IsVertex(idx int) bool {
	r, c := g.Coordinate(idx)
	return r%2 == 1 && c%2 == 1
}

// IsPost reports whether idx is a wall post (both coordinates even). Posts
// never become passages.
func (g *Grid) IsPost(idx int) bool {
	r, c := g.Coordinate(idx)
	return r%2 == 0 && c%2 == 0
}

// Neighbors appends the in-bounds 4-neighbors of idx to dst in the fixed scan
// order down, right, up, left, and returns the extended slice. Passing a
// reusable dst[:0] avoids allocation in hot loops.
func (g *Grid) Neighbors(dst []int, idx int) []int {
	r, c := g.Coordinate(idx)
	for _, d := range offsets {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		dst = append(dst, g.Index(nr, nc))
	}
	return dst
}

// Direction returns the unit step (drow, dcol) from idx to nbr.
func (g *Grid) Direction(idx, nbr int) (drow, dcol int) {
	r0, c0 := g.Coordinate(idx)
	r1, c1 := g.Coordinate(nbr)
	return r1 - r0, c1 - c0
}

// Perimeter returns the border ring in row-major order. Corners appear once,
// so the result has 4·Size−4 entries.
func (g *Grid) Perimeter() []int {
	out := make([]int, 0, 4*g.Size-4)
	last := g.Size - 1
	for r := 0; r < g.Size; r++ {
		if r == 0 || r == last {
			for c := 0; c < g.Size; c++ {
				out = append(out, g.Index(r, c))
			}
			continue
		}
		out = append(out, g.Index(r, 0), g.Index(r, last))
	}
	return out
}
