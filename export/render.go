package export

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/rivermaze/drainage"
	"github.com/katalvlaran/rivermaze/grid"
	"github.com/katalvlaran/rivermaze/maze"
)

// RenderRivers draws the River/Divide map of net.
func RenderRivers(net *drainage.Network) string {
	g := net.Grid
	var sb strings.Builder
	sb.Grow(g.Len() + g.Size)
	for idx := 0; idx < g.Len(); idx++ {
		if net.IsRiver(idx) {
			sb.WriteByte(maze.RiverGlyph)
		} else {
			sb.WriteByte(maze.DivideGlyph)
		}
		if (idx+1)%g.Size == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderParents draws an arrow from every River cell toward its parent.
func RenderParents(net *drainage.Network) string {
	g := net.Grid
	var sb strings.Builder
	sb.Grow(g.Len() + g.Size)
	for idx := 0; idx < g.Len(); idx++ {
		sb.WriteByte(parentGlyph(net, g, idx))
		if (idx+1)%g.Size == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func parentGlyph(net *drainage.Network, g *grid.Grid, idx int) byte {
	p := net.Parent[idx]
	switch {
	case p == drainage.NoParent:
		return GlyphDivide
	case p == idx:
		return GlyphRoot
	}
	switch dr, dc := g.Direction(idx, p); {
	case dr == 1:
		return GlyphDown
	case dc == 1:
		return GlyphRight
	case dc == -1:
		return GlyphLeft
	default:
		return GlyphUp
	}
}

// RenderHeights prints heights as rows of space-separated integers.
func RenderHeights(g *grid.Grid, heights []int64) string {
	var sb strings.Builder
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(heights[g.Index(r, c)], 10))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
