// Package slopes loads the slope-bound table that drives the height solver.
//
// The table is an ordered sequence of (lower, upper) integer pairs indexed by
// a drainage-derived bucket. Bucket 0 applies to cells that drain little area,
// the last bucket to the largest basins, so big rivers can be given gentler
// slopes.
//
// Input format: one "lower upper" pair per line, whitespace separated. Blank
// lines may only trail the last pair; any other line that is not exactly two
// integers, a blank one included, is a fatal configuration error.
//
// Bucketing:
//
//	bucket(area) = floor(n · ln(area+1) / ln(cells+2)),  clamped to [0, n-1]
//
// where n is the number of pairs and cells is the number of grid cells.
package slopes
