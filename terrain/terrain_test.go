package terrain_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivermaze/config"
	"github.com/katalvlaran/rivermaze/slopes"
	"github.com/katalvlaran/rivermaze/solver"
	"github.com/katalvlaran/rivermaze/terrain"
)

func erosion(t *testing.T) slopes.Table {
	t.Helper()
	tbl, err := slopes.Load(filepath.Join("..", "slopes", "testdata", "erosion"))
	require.NoError(t, err)
	return tbl
}

func smallConfig(n int, seed int64) config.Config {
	cfg := config.Default()
	cfg.N, cfg.Seed = n, seed
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := smallConfig(6, 3)
	tbl := erosion(t)

	res, err := terrain.Generate(context.Background(), cfg, tbl)
	require.NoError(t, err)

	side := 2*cfg.N + 1
	require.Len(t, res.Heights, side*side)
	assert.NoError(t, solver.Verify(res.Network, tbl, res.Heights))
	assert.Equal(t, side*side, res.Summary.Cells)
	assert.Equal(t, 4*side-4, res.Summary.Roots)
	assert.Equal(t, res.Maze.Rivers(), res.Summary.RiverCells)
	assert.Equal(t, side*side, res.Stats.Settled)
	assert.Greater(t, res.Summary.MaxHeight, 0.0)
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := smallConfig(8, 21)
	tbl := erosion(t)

	a, err := terrain.Generate(context.Background(), cfg, tbl)
	require.NoError(t, err)
	b, err := terrain.Generate(context.Background(), cfg, tbl)
	require.NoError(t, err)
	assert.Equal(t, a.Heights, b.Heights)
	assert.Equal(t, a.Network.Area, b.Network.Area)

	cfg.Seed = 22
	c, err := terrain.Generate(context.Background(), cfg, tbl)
	require.NoError(t, err)
	assert.NotEqual(t, a.Maze.Kinds, c.Maze.Kinds)
}

func TestGenerate_Classic(t *testing.T) {
	cfg := smallConfig(5, 17)
	cfg.Mode = config.ModeClassic
	tbl, err := cfg.Table()
	require.NoError(t, err)

	res, err := terrain.Generate(context.Background(), cfg, tbl, terrain.WithOnSettle(nil))
	require.NoError(t, err)
	assert.NoError(t, solver.Verify(res.Network, tbl, res.Heights))
}

func TestGenerate_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	settled := 0
	_, err := terrain.Generate(context.Background(), smallConfig(3, 1), erosion(t),
		terrain.WithLogger(log),
		terrain.WithOnSettle(func(int, int64) { settled++ }),
	)
	require.NoError(t, err)

	out := buf.String()
	for _, stage := range []string{terrain.StageMaze, terrain.StageDrainage, terrain.StageSolve} {
		assert.Contains(t, out, "stage="+stage)
	}
	assert.Contains(t, out, "terrain generated")
	assert.Equal(t, 49, settled)
}

func TestGenerate_Errors(t *testing.T) {
	tbl := erosion(t)

	_, err := terrain.Generate(context.Background(), smallConfig(0, 1), tbl)
	assert.ErrorIs(t, err, config.ErrBadConfig)

	_, err = terrain.Generate(context.Background(), smallConfig(3, 1), slopes.Table{})
	assert.ErrorIs(t, err, slopes.ErrEmptyTable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = terrain.Generate(ctx, smallConfig(3, 1), tbl)
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
	assert.ErrorIs(t, err, context.Canceled)

	cfg := smallConfig(6, 1)
	cfg.MaxPops = 20
	_, err = terrain.Generate(context.Background(), cfg, tbl)
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
}

func TestResult_WriteFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig(2, 4)
	cfg.Heights = filepath.Join(dir, "heights.txt")
	cfg.Drainage = filepath.Join(dir, "drainage.txt")

	res, err := terrain.Generate(context.Background(), cfg, erosion(t))
	require.NoError(t, err)
	require.NoError(t, res.WriteFiles(cfg))

	for _, path := range []string{cfg.Heights, cfg.Drainage} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), 25, path)
	}
}

// TestGenerate_ClassicWithinLimit runs classic mode at the largest size where
// it is always satisfiable.
func TestGenerate_ClassicWithinLimit(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := smallConfig(config.ClassicMaxN, seed)
		cfg.Mode = config.ModeClassic
		res, err := terrain.Generate(context.Background(), cfg, slopes.Classic())
		require.NoError(t, err, "seed=%d", seed)
		assert.NoError(t, solver.Verify(res.Network, slopes.Classic(), res.Heights))
	}
}

// TestGenerate_ClassicAtDefaultSize pins the documented failure of classic
// mode at the default map size, and the warning logged before the solve.
func TestGenerate_ClassicAtDefaultSize(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size solve")
	}
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := config.Default()
	cfg.Mode = config.ModeClassic
	cfg.MaxPops = 50_000_000
	_, err := terrain.Generate(context.Background(), cfg, slopes.Classic(), terrain.WithLogger(log))
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "max_safe_n=8")
}

// TestGenerate_InvertedBuckets checks that an inverted bucket only matters
// when some cell reaches it.
func TestGenerate_InvertedBuckets(t *testing.T) {
	// On a 5×5 map basins hold at most 3 cells; bucket 1 needs area 5.
	unreached, err := slopes.New([]slopes.Pair{{Lower: 0, Upper: 3}, {Lower: 9, Upper: 1}})
	require.NoError(t, err)
	for seed := int64(1); seed <= 3; seed++ {
		_, err := terrain.Generate(context.Background(), smallConfig(2, seed), unreached)
		assert.NoError(t, err, "seed=%d", seed)
	}

	reached, err := slopes.New([]slopes.Pair{{Lower: 5, Upper: 1}})
	require.NoError(t, err)
	cfg := smallConfig(3, 1)
	cfg.MaxPops = 100_000
	_, err = terrain.Generate(context.Background(), cfg, reached)
	assert.ErrorIs(t, err, solver.ErrUnsatisfiable)
}
