package terrain

import (
	"log/slog"

	"github.com/katalvlaran/rivermaze/drainage"
	"github.com/katalvlaran/rivermaze/export"
	"github.com/katalvlaran/rivermaze/maze"
	"github.com/katalvlaran/rivermaze/solver"
)

// Stage names used in log records.
const (
	StageMaze     = "maze"
	StageDrainage = "drainage"
	StageSolve    = "solve"
)

// Option configures Generate.
type Option func(*Options)

// Options holds the logger and progress hook.
type Options struct {
	Logger   *slog.Logger
	OnSettle func(cell int, bound int64)
}

// DefaultOptions discards logs and ignores progress.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		OnSettle: func(int, int64) {},
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle forwards the solver's settle hook.
func WithOnSettle(fn func(cell int, bound int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result is one generated terrain.
type Result struct {
	Maze    *maze.Maze
	Network *drainage.Network
	Heights []int64
	Stats   solver.Stats
	Summary export.Summary
}
