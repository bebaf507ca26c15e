package solver

import (
	"github.com/katalvlaran/rivermaze/drainage"
	"github.com/katalvlaran/rivermaze/slopes"
)

// Offset returns c in the constraint height[to] ≤ height[from] + c for the
// adjacent cells from and to.
//
// The downstream case covers a Divide cell next to a River cell (water runs
// off the divide) and a River cell next to its own parent; both use the lower
// slope of the receiving cell's bucket, negated. Every other pair involving a
// River source is upstream and uses the upper slope of the source's bucket.
func Offset(net *drainage.Network, tbl slopes.Table, from, to int) int64 {
	cells := net.Grid.Len()
	fromRiver, toRiver := net.IsRiver(from), net.IsRiver(to)
	switch {
	case !fromRiver && !toRiver:
		return int64(tbl.MaxSlope())
	case !fromRiver || net.Parent[from] == to:
		return -int64(tbl.Lower(tbl.Bucket(net.Area[to], cells)))
	default:
		return int64(tbl.Upper(tbl.Bucket(net.Area[from], cells)))
	}
}

// offsets caches the per-cell lower and upper slopes so relaxation avoids
// recomputing logarithms.
type offsets struct {
	net   *drainage.Network
	max   int64
	lower []int64
	upper []int64
}

func newOffsets(net *drainage.Network, tbl slopes.Table) *offsets {
	cells := net.Grid.Len()
	o := &offsets{
		net:   net,
		max:   int64(tbl.MaxSlope()),
		lower: make([]int64, cells),
		upper: make([]int64, cells),
	}
	for idx := 0; idx < cells; idx++ {
		b := tbl.Bucket(net.Area[idx], cells)
		o.lower[idx] = int64(tbl.Lower(b))
		o.upper[idx] = int64(tbl.Upper(b))
	}
	return o
}

// between mirrors Offset using the cached slopes.
func (o *offsets) between(from, to int) int64 {
	fromRiver, toRiver := o.net.IsRiver(from), o.net.IsRiver(to)
	switch {
	case !fromRiver && !toRiver:
		return o.max
	case !fromRiver || o.net.Parent[from] == to:
		return -o.lower[to]
	default:
		return o.upper[from]
	}
}

// floor is the smallest bound a consistent system can produce: a shortest
// simple path from the perimeter has fewer than cells edges, each dropping at
// most max(Lower).
func (o *offsets) floor() int64 {
	var worst int64
	for _, l := range o.lower {
		if l > worst {
			worst = l
		}
	}
	return -int64(len(o.lower)-1) * worst
}
