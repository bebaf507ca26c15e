package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivermaze/config"
	"github.com/katalvlaran/rivermaze/export"
	"github.com/katalvlaran/rivermaze/terrain"
)

func generateCmd() *cobra.Command {
	var (
		path string
		mode string
		flg  = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate heights and drainage files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if path != "" {
				var err error
				if cfg, err = config.Load(path); err != nil {
					return err
				}
			}
			applyFlags(cmd, &cfg, flg, mode)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runGenerate(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&path, "config", "c", "", "YAML run file; flags override its values")
	f.IntVarP(&flg.N, "n", "n", flg.N, "maze half-size; the map is (2n+1)×(2n+1)")
	f.Int64Var(&flg.Seed, "seed", flg.Seed, "random seed")
	f.StringVar(&mode, "mode", string(flg.Mode),
		fmt.Sprintf("slope mode: bucketed or classic (classic is only guaranteed to succeed for n <= %d)", config.ClassicMaxN))
	f.StringVar(&flg.Slopes, "slopes", flg.Slopes, "slope table file (bucketed mode)")
	f.StringVar(&flg.Heights, "heights", flg.Heights, "heights output file")
	f.StringVar(&flg.Drainage, "drainage", flg.Drainage, "drainage output file")
	f.BoolVarP(&flg.Verbose, "verbose", "v", false, "debug logs and ASCII dumps of rivers, parents and heights")
	f.BoolVar(&flg.Progress, "progress", false, "show a progress bar while solving")
	f.IntVar(&flg.MaxPops, "max-pops", 0, "abort the solve after this many queue pops (0 = unbounded)")
	f.DurationVar(&flg.Timeout, "timeout", 0, "abort the solve after this long (0 = unbounded)")
	f.BoolVar(&flg.DetectCycles, "detect-cycles", false, "abort the solve on a negative constraint cycle")
	return cmd
}

// applyFlags copies every flag the user set over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flg config.Config, mode string) {
	set := cmd.Flags().Changed
	if set("n") {
		cfg.N = flg.N
	}
	if set("seed") {
		cfg.Seed = flg.Seed
	}
	if set("mode") {
		cfg.Mode = config.Mode(mode)
	}
	if set("slopes") {
		cfg.Slopes = flg.Slopes
	}
	if set("heights") {
		cfg.Heights = flg.Heights
	}
	if set("drainage") {
		cfg.Drainage = flg.Drainage
	}
	if set("verbose") {
		cfg.Verbose = flg.Verbose
	}
	if set("progress") {
		cfg.Progress = flg.Progress
	}
	if set("max-pops") {
		cfg.MaxPops = flg.MaxPops
	}
	if set("timeout") {
		cfg.Timeout = flg.Timeout
	}
	if set("detect-cycles") {
		cfg.DetectCycles = flg.DetectCycles
	}
}

func runGenerate(cmd *cobra.Command, cfg config.Config) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	tbl, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("loading slopes: %w", err)
	}

	opts := []terrain.Option{terrain.WithLogger(log)}
	if cfg.Progress {
		side := 2*cfg.N + 1
		uiprogress.Start()
		bar := uiprogress.AddBar(side * side).AppendCompleted().PrependElapsed()
		opts = append(opts, terrain.WithOnSettle(func(int, int64) { bar.Incr() }))
	}

	res, err := terrain.Generate(cmd.Context(), cfg, tbl, opts...)
	if cfg.Progress {
		uiprogress.Stop()
	}
	if err != nil {
		return err
	}

	if err := res.WriteFiles(cfg); err != nil {
		return err
	}
	log.Info("wrote output", "heights", cfg.Heights, "drainage", cfg.Drainage)

	if cfg.Verbose {
		dump(cmd.OutOrStdout(), res)
	}
	return nil
}

// dump prints the river map, parent arrows and heights.
func dump(w io.Writer, res *terrain.Result) {
	fmt.Fprint(w, export.RenderRivers(res.Network))
	fmt.Fprintln(w)
	fmt.Fprint(w, export.RenderParents(res.Network))
	fmt.Fprintln(w)
	fmt.Fprint(w, export.RenderHeights(res.Network.Grid, res.Heights))
}
