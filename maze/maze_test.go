package maze_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivermaze/grid"
	"github.com/katalvlaran/rivermaze/maze"
)

func mustGrid(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(n)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// Generate
// ------------------------------------------------------------------------

// TestGenerate_Spanning checks the spanning-tree property across sizes and seeds.
func TestGenerate_Spanning(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for seed := int64(1); seed <= 5; seed++ {
			m, err := maze.Generate(mustGrid(t, n), maze.WithSeed(seed))
			require.NoError(t, err, "n=%d seed=%d", n, seed)
			require.NoError(t, maze.Validate(m), "n=%d seed=%d\n%s", n, seed, m)

			// N² vertices plus N²−1 open walls are Divide; everything else is River.
			divides := len(m.Kinds) - m.Rivers()
			assert.Equal(t, 2*n*n-1, divides, "n=%d seed=%d", n, seed)
		}
	}
}

// TestGenerate_PerimeterIsRiver verifies the border ring is always River.
func TestGenerate_PerimeterIsRiver(t *testing.T) {
	g := mustGrid(t, 9)
	m, err := maze.Generate(g, maze.WithSeed(42))
	require.NoError(t, err)
	for _, idx := range g.Perimeter() {
		assert.Equal(t, grid.River, m.Kind(idx), "cell %s", g.Cell(idx))
	}
}

// TestGenerate_SingleVertex covers N=1: no walk, one Divide cell.
func TestGenerate_SingleVertex(t *testing.T) {
	g := mustGrid(t, 1)
	m, err := maze.Generate(g)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Steps)
	assert.Equal(t, "~~~\n~#~\n~~~\n", m.String())
}

// TestGenerate_Deterministic verifies identical seeds give identical mazes
// and a caller-supplied RNG matches the equivalent seed.
func TestGenerate_Deterministic(t *testing.T) {
	g := mustGrid(t, 10)
	a, err := maze.Generate(g, maze.WithSeed(99))
	require.NoError(t, err)
	b, err := maze.Generate(g, maze.WithSeed(99))
	require.NoError(t, err)
	c, err := maze.Generate(g, maze.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)

	assert.Equal(t, a.Kinds, b.Kinds)
	assert.Equal(t, a.Kinds, c.Kinds)
	assert.Equal(t, a.Steps, b.Steps)

	other, err := maze.Generate(g, maze.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a.Kinds, other.Kinds)
}

// TestGenerate_Errors covers nil grids, bad options and the step cap.
func TestGenerate_Errors(t *testing.T) {
	_, err := maze.Generate(nil)
	assert.ErrorIs(t, err, maze.ErrGridNil)

	_, err = maze.Generate(mustGrid(t, 3), maze.WithMaxSteps(-1))
	assert.ErrorIs(t, err, maze.ErrOptionViolation)

	_, err = maze.Generate(mustGrid(t, 8), maze.WithMaxSteps(1))
	assert.ErrorIs(t, err, maze.ErrWalkExhausted)

	_, err = maze.Generate(mustGrid(t, 4), maze.WithMaxSteps(1_000_000))
	assert.NoError(t, err)
}

// ------------------------------------------------------------------------
// Parse and Validate
// ------------------------------------------------------------------------

// TestParse_RoundTrip feeds String output back through ParseString.
func TestParse_RoundTrip(t *testing.T) {
	m, err := maze.Generate(mustGrid(t, 6), maze.WithSeed(3))
	require.NoError(t, err)

	back, err := maze.ParseString(m.String())
	require.NoError(t, err)
	assert.Equal(t, m.Grid.N, back.Grid.N)
	assert.Equal(t, m.Kinds, back.Kinds)
}

// TestParse_Errors rejects malformed river maps.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"TooFew", []string{"~"}, maze.ErrBadRows},
		{"Even", []string{"~~~~", "~~~~", "~~~~", "~~~~"}, maze.ErrBadRows},
		{"Ragged", []string{"~~~", "~#", "~~~"}, maze.ErrBadRows},
		{"Glyph", []string{"~~~", "~x~", "~~~"}, maze.ErrBadGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestValidate_Rejects covers each spanning-tree violation on hand-made 5×5 maps.
func TestValidate_Rejects(t *testing.T) {
	cases := map[string]string{
		"vertex river": `
~~~~~
~###~
~~~~~
~#~~~
~~~~~`,
		"too few walls": `
~~~~~
~###~
~~~~~
~#~#~
~~~~~`,
		"post open": `
~~~~~
~###~
~~##~
~#~#~
~~~~~`,
		"perimeter open": `
~~~~~
~###~
~#~#~
~#~#~
~~~#~`,
		"cycle": `
~~~~~
~###~
~#~#~
~###~
~~~~~`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := maze.ParseString(src)
			require.NoError(t, err)
			assert.ErrorIs(t, maze.Validate(m), maze.ErrNotSpanning)
		})
	}
}

// TestValidate_Accepts checks a hand-made spanning tree.
func TestValidate_Accepts(t *testing.T) {
	src := strings.Join([]string{
		"~~~~~",
		"~###~",
		"~#~#~",
		"~#~#~",
		"~~~~~",
	}, "\n")
	m, err := maze.ParseString(src)
	require.NoError(t, err)
	assert.NoError(t, maze.Validate(m))
	assert.Equal(t, 25-7, m.Rivers())
}
