package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/rivermaze/grid"
)

// Sentinel errors for maze generation and parsing.
var (
	// ErrGridNil is returned when a nil grid is passed to Generate.
	ErrGridNil = errors.New("maze: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
	// ErrWalkExhausted is returned when the walk hits its step cap.
	ErrWalkExhausted = errors.New("maze: random walk exceeded step cap")
	// ErrBadRows indicates ASCII input that is not an odd square of side ≥ 3.
	ErrBadRows = errors.New("maze: rows must form an odd square of side at least 3")
	// ErrBadGlyph indicates a character other than RiverGlyph or DivideGlyph.
	ErrBadGlyph = errors.New("maze: unknown glyph")
	// ErrNotSpanning indicates the divides do not form a spanning tree.
	ErrNotSpanning = errors.New("maze: divides do not form a spanning tree")
)

// Glyphs of the ASCII river map.
const (
	RiverGlyph  = '~'
	DivideGlyph = '#'
)

// Option configures Generate.
type Option func(*Options)

// Options holds the generator settings.
type Options struct {
	// Seed feeds a fresh math/rand source when Rand is nil. Zero maps to
	// defaultSeed.
	Seed int64
	// Rand, if set, is used as-is and Seed is ignored.
	Rand *rand.Rand
	// MaxSteps, if > 0, caps the number of walk steps.
	MaxSteps int

	err error
}

// DefaultOptions returns seed 0 (⇒ defaultSeed), no caller RNG, no step cap.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed selects the deterministic seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random stream directly. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithMaxSteps caps the walk. k == 0 means unbounded; k < 0 is invalid.
func WithMaxSteps(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxSteps = k
	}
}

// Maze is a fixed River/Divide classification of every grid cell.
type Maze struct {
	Grid  *grid.Grid
	Kinds []grid.Kind
	// Steps is the number of walk steps taken; zero for parsed mazes.
	Steps int
}

// Kind returns the classification of idx.
func (m *Maze) Kind(idx int) grid.Kind { return m.Kinds[idx] }

// IsRiver reports whether idx is a River cell.
func (m *Maze) IsRiver(idx int) bool { return m.Kinds[idx] == grid.River }

// Rivers counts River cells.
func (m *Maze) Rivers() int {
	n := 0
	for _, k := range m.Kinds {
		if k == grid.River {
			n++
		}
	}
	return n
}

// String renders the river map, one line per row.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.Grid.Len() + m.Grid.Size)
	for r := 0; r < m.Grid.Size; r++ {
		for c := 0; c < m.Grid.Size; c++ {
			if m.IsRiver(m.Grid.Index(r, c)) {
				sb.WriteByte(RiverGlyph)
			} else {
				sb.WriteByte(DivideGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
