package solver

import (
	"fmt"

	"github.com/katalvlaran/rivermaze/drainage"
	"github.com/katalvlaran/rivermaze/pqueue"
	"github.com/katalvlaran/rivermaze/slopes"
)

// Solve returns the pointwise-maximal heights for net under tbl.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNetworkNil).
//  2. tbl must have at least one bucket (slopes.ErrEmptyTable).
//  3. options must be valid (ErrOptionViolation).
//
// Errors during the run all wrap ErrUnsatisfiable: a negative bound implied
// on a perimeter cell, an exhausted pop cap, a cancelled context, or a bound
// below the cycle-detection floor.
func Solve(net *drainage.Network, tbl slopes.Table, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if tbl.Len() == 0 {
		return nil, slopes.ErrEmptyTable
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	cells := net.Grid.Len()
	r := &runner{
		net:     net,
		opts:    cfg,
		off:     newOffsets(net, tbl),
		bound:   make([]int64, cells),
		settled: make([]bool, cells),
		pq:      pqueue.New[int64](pqueue.Min, 4*cells),
		nbrs:    make([]int, 0, 4),
	}
	r.floor = r.off.floor()

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Grid: net.Grid, Heights: r.bound, Stats: r.stats}, nil
}

// runner holds the mutable state of a single solve.
type runner struct {
	net     *drainage.Network
	opts    Options
	off     *offsets
	bound   []int64 // tightest known upper bound per cell
	settled []bool
	pq      *pqueue.Queue[int64]
	nbrs    []int
	floor   int64
	stats   Stats
}

// init sets every bound to Unbounded and seeds the perimeter at 0.
func (r *runner) init() {
	for i := range r.bound {
		r.bound[i] = Unbounded
	}
	for _, p := range r.net.Grid.Perimeter() {
		r.bound[p] = 0
		r.pq.Push(0, p)
		r.stats.Pushes++
	}
}

// process pops facts until the queue is empty or a hardening check trips.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return fmt.Errorf("%w: %w after %d pops", ErrUnsatisfiable, r.opts.Ctx.Err(), r.stats.Pops)
		default:
		}
		if r.opts.MaxPops > 0 && r.stats.Pops >= r.opts.MaxPops {
			return fmt.Errorf("%w: pop cap %d reached with %d facts queued",
				ErrUnsatisfiable, r.opts.MaxPops, r.pq.Len())
		}

		it, _ := r.pq.Pop()
		r.stats.Pops++
		u := it.Cell
		if it.Key > r.bound[u] {
			r.stats.Stale++
			continue
		}
		if r.settled[u] {
			r.stats.Reopened++
		} else {
			r.settled[u] = true
			r.stats.Settled++
			r.opts.OnSettle(u, it.Key)
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}
	return nil
}

// relax derives the bound each neighbor of u inherits from bound[u] and
// records every strict improvement.
func (r *runner) relax(u int) error {
	g := r.net.Grid
	r.nbrs = g.Neighbors(r.nbrs[:0], u)
	for _, v := range r.nbrs {
		cand := r.bound[u] + r.off.between(u, v)
		if cand >= r.bound[v] {
			continue
		}
		if r.net.IsRoot(v) {
			return fmt.Errorf("%w: perimeter cell %s bounded by %d via %s",
				ErrUnsatisfiable, g.Cell(v), cand, g.Cell(u))
		}
		if r.opts.DetectCycles && cand < r.floor {
			return fmt.Errorf("%w: bound %d at %s below floor %d (negative cycle)",
				ErrUnsatisfiable, cand, g.Cell(v), r.floor)
		}
		r.bound[v] = cand
		r.pq.Push(cand, v)
		r.stats.Pushes++
	}
	return nil
}
