package slopes

import "errors"

// Sentinel errors for slope tables.
var (
	// ErrEmptyTable indicates the input held no slope pairs.
	ErrEmptyTable = errors.New("slopes: table has no entries")
	// ErrMalformedLine indicates a line that is not exactly two integers.
	ErrMalformedLine = errors.New("slopes: malformed line")
	// ErrInvertedPair indicates a pair whose lower bound exceeds its upper bound.
	ErrInvertedPair = errors.New("slopes: lower slope exceeds upper slope")
)

// Pair holds the slope bounds of one bucket.
//
// Lower is the minimum drop from a river cell to its downstream neighbor.
// Upper is the maximum rise from a river cell to anything upstream of it.
type Pair struct {
	Lower int
	Upper int
}

// Table is the read-only slope-bound table.
type Table struct {
	pairs []Pair
	max   int
}

// ClassicLower and ClassicUpper are the flat bounds of the classic mode.
const (
	ClassicLower = 1
	ClassicUpper = 100
)
