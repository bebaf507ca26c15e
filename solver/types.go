package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rivermaze/grid"
)

// Sentinel errors returned by the solver.
var (
	// ErrNetworkNil indicates a nil drainage network.
	ErrNetworkNil = errors.New("solver: network is nil")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
	// ErrUnsatisfiable indicates a contradictory constraint system, detected
	// by one of the hardening options or by a bound below zero on a root.
	ErrUnsatisfiable = errors.New("solver: unsatisfiable constraint system")
	// ErrViolated indicates a height assignment that breaks a constraint.
	ErrViolated = errors.New("solver: constraint violated")
	// ErrNotMaximal indicates a cell whose height could be raised.
	ErrNotMaximal = errors.New("solver: height assignment is not maximal")
)

// Unbounded is the initial bound of every non-perimeter cell.
const Unbounded = int64(math.MaxInt64)

// Option configures Solve.
type Option func(*Options)

// Options holds hardening caps and hooks.
type Options struct {
	// Ctx bounds wall-clock time; checked once per pop.
	Ctx context.Context
	// MaxPops, if > 0, caps the number of queue pops.
	MaxPops int
	// DetectCycles enables the negative-cycle floor check.
	DetectCycles bool
	// OnSettle fires the first time each cell is popped with a current bound.
	OnSettle func(cell int, bound int64)

	err error
}

// DefaultOptions returns the unbounded configuration: background context,
// no pop cap, no cycle detection.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnSettle: func(int, int64) {},
	}
}

// WithContext sets a cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPops caps queue pops. k == 0 means unbounded; k < 0 is invalid.
func WithMaxPops(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxPops cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxPops = k
	}
}

// WithCycleDetection fails as soon as a bound drops below the lowest value a
// consistent system can reach, −(cells−1)·max(Lower).
func WithCycleDetection() Option {
	return func(o *Options) {
		o.DetectCycles = true
	}
}

// WithOnSettle registers the settle hook. A nil fn has no effect.
func WithOnSettle(fn func(cell int, bound int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Stats counts queue activity.
type Stats struct {
	Pops     int // facts removed from the queue
	Pushes   int // facts inserted, perimeter seeds included
	Stale    int // pops discarded because a tighter bound was known
	Settled  int // distinct cells popped with a current bound
	Reopened int // current-bound pops of already settled cells
}

// Result holds the final heights in row-major order.
type Result struct {
	Grid    *grid.Grid
	Heights []int64
	Stats   Stats
}

// At returns the height of (row, col).
func (r *Result) At(row, col int) int64 {
	return r.Heights[r.Grid.Index(row, col)]
}
