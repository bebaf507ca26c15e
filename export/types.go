package export

import "errors"

// ErrLengthMismatch indicates a height slice that does not cover the grid.
var ErrLengthMismatch = errors.New("export: heights do not match grid size")

// Parent direction glyphs used by RenderParents.
const (
	GlyphDown   = 'v'
	GlyphRight  = '>'
	GlyphLeft   = '<'
	GlyphUp     = '^'
	GlyphRoot   = 'o'
	GlyphDivide = '#'
)

// Summary holds aggregate statistics of one generated terrain.
type Summary struct {
	Cells       int     // Size²
	RiverCells  int     // cells in the drainage forest
	Roots       int     // perimeter roots
	MaxHeight   float64 // highest cell
	MeanHeight  float64
	StdDev      float64 // sample standard deviation of heights
	LargestArea int     // area of the largest basin
}
