package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rivermaze/grid"
)

// Parse rebuilds a maze from its river map as printed by String: one string
// per row, RiverGlyph for River and DivideGlyph for Divide. The rows must form
// an odd square of side at least 3. The result is not validated; call
// Validate to check the spanning-tree property.
func Parse(rows []string) (*Maze, error) {
	side := len(rows)
	if side < 3 || side%2 == 0 {
		return nil, fmt.Errorf("%w: %d rows", ErrBadRows, side)
	}
	g, err := grid.New((side - 1) / 2)
	if err != nil {
		return nil, err
	}
	kinds := make([]grid.Kind, g.Len())
	for r, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadRows, r, len(row), side)
		}
		for c := 0; c < side; c++ {
			switch row[c] {
			case RiverGlyph:
				kinds[g.Index(r, c)] = grid.River
			case DivideGlyph:
				kinds[g.Index(r, c)] = grid.Divide
			default:
				return nil, fmt.Errorf("%w %q at %d,%d", ErrBadGlyph, row[c], r, c)
			}
		}
	}
	return &Maze{Grid: g, Kinds: kinds}, nil
}

// ParseString splits s on newlines, drops blank lines, and calls Parse.
func ParseString(s string) (*Maze, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	return Parse(rows)
}
