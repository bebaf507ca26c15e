package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadHalfSize indicates a non-positive half-size N.
	ErrBadHalfSize = errors.New("grid: half-size must be positive")
	// ErrOutOfBounds indicates a coordinate outside [0, Size).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Kind classifies a cell. Every cell is exactly one of River or Divide and the
// classification never changes once the maze has been generated.
type Kind uint8

const (
	// River carries water downstream; rivers form the drainage forest.
	River Kind = iota
	// Divide is never traversed by water; divides form the maze passages.
	Divide
)

// String returns "river" or "divide".
func (k Kind) String() string {
	switch k {
	case River:
		return "river"
	case Divide:
		return "divide"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell is a (row, col) coordinate pair. It carries no identity beyond its
// coordinates.
type Cell struct {
	Row, Col int
}

// String formats the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// offsets is the neighbor scan order (row, col): down, right, up, left.
var offsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is an immutable (2N+1)×(2N+1) coordinate space.
// N is the half-size; Size = 2N+1 is the side length.
type Grid struct {
	N    int
	Size int
}
