package slopes

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// New builds a table from pairs. Returns ErrEmptyTable for no pairs.
func New(pairs []Pair) (Table, error) {
	if len(pairs) == 0 {
		return Table{}, ErrEmptyTable
	}
	t := Table{pairs: make([]Pair, len(pairs)), max: pairs[0].Upper}
	copy(t.pairs, pairs)
	for _, p := range pairs[1:] {
		if p.Upper > t.max {
			t.max = p.Upper
		}
	}
	return t, nil
}

// Classic returns the single-bucket table of the flat "+1 downstream,
// +100 upstream" mode.
func Classic() Table {
	t, _ := New([]Pair{{Lower: ClassicLower, Upper: ClassicUpper}})
	return t
}

// Parse reads "lower upper" lines from r.
func Parse(r io.Reader) (Table, error) {
	var pairs []Pair
	sc := bufio.NewScanner(r)
	line, blank := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			if blank == 0 {
				blank = line
			}
			continue
		}
		if blank != 0 {
			return Table{}, fmt.Errorf("%w %d: blank line inside table", ErrMalformedLine, blank)
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return Table{}, fmt.Errorf("%w %d: want 2 fields, got %d", ErrMalformedLine, line, len(fields))
		}
		lower, err := strconv.Atoi(fields[0])
		if err != nil {
			return Table{}, fmt.Errorf("%w %d: lower %q: %v", ErrMalformedLine, line, fields[0], err)
		}
		upper, err := strconv.Atoi(fields[1])
		if err != nil {
			return Table{}, fmt.Errorf("%w %d: upper %q: %v", ErrMalformedLine, line, fields[1], err)
		}
		pairs = append(pairs, Pair{Lower: lower, Upper: upper})
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("slopes: reading table: %w", err)
	}
	return New(pairs)
}

// Load reads a table from the file at path.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("slopes: opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Len returns the number of buckets.
func (t Table) Len() int { return len(t.pairs) }

// Pairs returns a copy of the table entries.
func (t Table) Pairs() []Pair {
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// MaxSlope returns the largest upper bound; it limits Divide–Divide steps.
func (t Table) MaxSlope() int { return t.max }

// Lower returns the lower slope of bucket b.
func (t Table) Lower(b int) int { return t.pairs[b].Lower }

// Upper returns the upper slope of bucket b.
func (t Table) Upper(b int) int { return t.pairs[b].Upper }

// Bucket maps a drainage area to a table index on a grid of cells cells.
// The log scale compresses areas from 0 to cells into Len() regimes.
func (t Table) Bucket(area, cells int) int {
	if area < 0 {
		area = 0
	}
	n := len(t.pairs)
	b := int(float64(n) * math.Log(float64(area)+1) / math.Log(float64(cells)+2))
	if b < 0 {
		return 0
	}
	if b >= n {
		return n - 1
	}
	return b
}

// Validate reports ErrInvertedPair for any bucket with Lower > Upper. Such a
// table has no consistent height assignment on most maps.
func (t Table) Validate() error {
	if len(t.pairs) == 0 {
		return ErrEmptyTable
	}
	for i, p := range t.pairs {
		if p.Lower > p.Upper {
			return fmt.Errorf("%w: bucket %d (%d > %d)", ErrInvertedPair, i, p.Lower, p.Upper)
		}
	}
	return nil
}

// Boundaries returns, for each bucket, the smallest drainage area that maps to
// it on a grid of cells cells, or -1 when no area in [0, cells] reaches it.
func (t Table) Boundaries(cells int) []int {
	out := make([]int, len(t.pairs))
	for i := range out {
		out[i] = -1
	}
	for area := cells; area >= 0; area-- {
		out[t.Bucket(area, cells)] = area
	}
	return out
}
