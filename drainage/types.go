package drainage

import (
	"errors"

	"github.com/katalvlaran/rivermaze/grid"
	"github.com/katalvlaran/rivermaze/maze"
)

// Sentinel errors for drainage construction and verification.
var (
	// ErrMazeNil is returned when Build receives a nil maze.
	ErrMazeNil = errors.New("drainage: maze is nil")
	// ErrUnreachedRiver indicates a River cell with no path to the perimeter.
	ErrUnreachedRiver = errors.New("drainage: river cell not reached from any root")
	// ErrInvalidForest indicates a parent relation that is not a forest rooted
	// at the perimeter.
	ErrInvalidForest = errors.New("drainage: parent relation is not a perimeter-rooted forest")
	// ErrConservation indicates an area that differs from its subtree size.
	ErrConservation = errors.New("drainage: area does not match subtree size")
)

// NoParent marks cells outside the forest (Divide cells).
const NoParent = -1

// Option configures Build.
type Option func(*Options)

// Options holds Build hooks.
type Options struct {
	// OnAssign is called when Step A gives cell its parent at depth.
	// Roots are reported with parent == cell and depth 0.
	OnAssign func(cell, parent, depth int)
}

// DefaultOptions returns no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnAssign: func(int, int, int) {},
	}
}

// WithOnAssign registers the Step A hook. A nil fn has no effect.
func WithOnAssign(fn func(cell, parent, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// Network is the drainage forest of a maze. It is immutable once built.
//
// Parent[c] == c for roots, the downstream neighbor for other River cells,
// and NoParent for Divide cells. Depth counts parent hops to the root (-1
// for Divide). Area is the number of River cells in c's subtree, including
// c itself (0 for Divide).
type Network struct {
	Grid   *grid.Grid
	Maze   *maze.Maze
	Parent []int
	Depth  []int
	Area   []int
}
