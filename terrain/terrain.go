package terrain

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/rivermaze/config"
	"github.com/katalvlaran/rivermaze/drainage"
	"github.com/katalvlaran/rivermaze/export"
	"github.com/katalvlaran/rivermaze/grid"
	"github.com/katalvlaran/rivermaze/maze"
	"github.com/katalvlaran/rivermaze/slopes"
	"github.com/katalvlaran/rivermaze/solver"
)

// Generate builds the terrain described by cfg using tbl for slope bounds.
// ctx and cfg.Timeout both bound the solve; on expiry the error wraps
// solver.ErrUnsatisfiable.
//
// tbl is not checked with Validate: an inverted bucket that no cell reaches
// is harmless, and one that is reached surfaces as ErrUnsatisfiable.
func Generate(ctx context.Context, cfg config.Config, tbl slopes.Table, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tbl.Len() == 0 {
		return nil, slopes.ErrEmptyTable
	}
	log := o.Logger
	if cfg.Mode == config.ModeClassic && cfg.N > config.ClassicMaxN {
		log.Warn("classic mode may be unsatisfiable at this size",
			"n", cfg.N, "max_safe_n", config.ClassicMaxN)
	}

	g, err := grid.New(cfg.N)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	m, err := maze.Generate(g, maze.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("terrain: %s: %w", StageMaze, err)
	}
	if err := maze.Validate(m); err != nil {
		return nil, fmt.Errorf("terrain: %s: %w", StageMaze, err)
	}
	log.Debug("stage done", "stage", StageMaze, "cells", g.Len(), "rivers", m.Rivers(),
		"steps", m.Steps, "elapsed", time.Since(start))

	start = time.Now()
	net, err := drainage.Build(m)
	if err != nil {
		return nil, fmt.Errorf("terrain: %s: %w", StageDrainage, err)
	}
	if err := drainage.Verify(net); err != nil {
		return nil, fmt.Errorf("terrain: %s: %w", StageDrainage, err)
	}
	largest, _ := net.MaxArea()
	log.Debug("stage done", "stage", StageDrainage, "rivers", net.RiverCount(),
		"largest_area", largest, "elapsed", time.Since(start))

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	sopts := []solver.Option{
		solver.WithContext(ctx),
		solver.WithMaxPops(cfg.MaxPops),
		solver.WithOnSettle(o.OnSettle),
	}
	if cfg.DetectCycles {
		sopts = append(sopts, solver.WithCycleDetection())
	}

	start = time.Now()
	res, err := solver.Solve(net, tbl, sopts...)
	if err != nil {
		return nil, fmt.Errorf("terrain: %s: %w", StageSolve, err)
	}
	if err := solver.Verify(net, tbl, res.Heights); err != nil {
		return nil, fmt.Errorf("terrain: %s: %w", StageSolve, err)
	}
	log.Debug("stage done", "stage", StageSolve, "pops", res.Stats.Pops, "stale", res.Stats.Stale,
		"reopened", res.Stats.Reopened, "elapsed", time.Since(start))

	sum, err := export.Summarize(res.Heights, net)
	if err != nil {
		return nil, err
	}
	log.Info("terrain generated", "n", cfg.N, "seed", cfg.Seed, "mode", cfg.Mode,
		"max_height", sum.MaxHeight, "mean_height", sum.MeanHeight, "largest_area", sum.LargestArea)

	return &Result{
		Maze:    m,
		Network: net,
		Heights: res.Heights,
		Stats:   res.Stats,
		Summary: sum,
	}, nil
}

// WriteFiles writes the heights and drainage files named by cfg.
func (r *Result) WriteFiles(cfg config.Config) error {
	return export.WriteFiles(cfg.Heights, cfg.Drainage, r.Heights, r.Network)
}
