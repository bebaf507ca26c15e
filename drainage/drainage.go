package drainage

import (
	"fmt"

	"github.com/katalvlaran/rivermaze/maze"
	"github.com/katalvlaran/rivermaze/pqueue"
)

// Build computes the parent forest, depths and drainage areas of m.
// Returns ErrMazeNil, ErrInvalidForest if a perimeter cell is Divide, or
// ErrUnreachedRiver if some River cell cannot be rooted.
func Build(m *maze.Maze, opts ...Option) (*Network, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := m.Grid
	total := g.Len()
	net := &Network{
		Grid:   g,
		Maze:   m,
		Parent: make([]int, total),
		Depth:  make([]int, total),
		Area:   make([]int, total),
	}
	for i := range net.Parent {
		net.Parent[i] = NoParent
		net.Depth[i] = -1
	}

	if err := net.assignParents(o); err != nil {
		return nil, err
	}
	net.accumulate()

	return net, nil
}

// assignParents is Step A: multi-source BFS from the perimeter.
func (net *Network) assignParents(o Options) error {
	g, m := net.Grid, net.Maze
	roots := g.Perimeter()
	queue := make([]int, 0, g.Len())
	for _, r := range roots {
		if !m.IsRiver(r) {
			return fmt.Errorf("%w: perimeter cell %s is divide", ErrInvalidForest, g.Cell(r))
		}
		net.Parent[r] = r
		net.Depth[r] = 0
		o.OnAssign(r, r, 0)
		queue = append(queue, r)
	}

	nbrs := make([]int, 0, 4)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		nbrs = g.Neighbors(nbrs[:0], u)
		for _, v := range nbrs {
			if !m.IsRiver(v) || net.Parent[v] != NoParent {
				continue
			}
			net.Parent[v] = u
			net.Depth[v] = net.Depth[u] + 1
			o.OnAssign(v, u, net.Depth[v])
			queue = append(queue, v)
		}
	}

	if want := m.Rivers(); len(queue) != want {
		for idx, p := range net.Parent {
			if p == NoParent && m.IsRiver(idx) {
				return fmt.Errorf("%w: %s (%d of %d river cells unreached)",
					ErrUnreachedRiver, g.Cell(idx), want-len(queue), want)
			}
		}
	}
	return nil
}

// accumulate is Step B: leaves-first summation ordered by depth.
func (net *Network) accumulate() {
	g := net.Grid
	pq := pqueue.New[int](pqueue.Max, g.Len())
	for idx, p := range net.Parent {
		if p != NoParent {
			pq.Push(net.Depth[idx], idx)
		}
	}

	nbrs := make([]int, 0, 4)
	for pq.Len() > 0 {
		it, _ := pq.Pop()
		c := it.Cell
		area := 1
		nbrs = g.Neighbors(nbrs[:0], c)
		for _, v := range nbrs {
			if v != c && net.Parent[v] == c {
				area += net.Area[v]
			}
		}
		net.Area[c] = area
	}
}
