// Package solver computes the pointwise-maximal height assignment that
// satisfies every difference constraint of a drainage network.
//
// Every ordered pair of adjacent cells (p, q) carries one constraint
//
//	height[q] ≤ height[p] + Offset(p, q)
//
// chosen by the classification of p and q (see Offset):
//
//   - Divide → Divide:           +MaxSlope
//   - Divide → River, or a River cell to its own parent (downstream):
//     −Lower(bucket(area[q]))
//   - River → anything else (upstream): +Upper(bucket(area[p]))
//
// Perimeter cells are pinned at height 0.
//
// Algorithm:
//
// A label-correcting best-first relaxation. A table of tightest known upper
// bounds starts at +∞ except the perimeter at 0; a min-priority queue holds
// (bound, cell) facts. Popping the smallest fact, a stale entry (bound above
// the table) is discarded; otherwise each neighbor's implied bound is
// computed and, if it improves the table, recorded and pushed. The loop ends
// when the queue is empty. With non-negative offsets this is Dijkstra's
// algorithm and each cell is finalized on its first pop; negative offsets
// (positive lower slopes) may reopen cells.
//
// Limitation:
//
// A cycle of offsets with negative total has no solution. When the cycle
// drains into the perimeter the run ends with ErrUnsatisfiable; otherwise the
// default loop runs forever. WithMaxPops, WithContext and WithCycleDetection
// turn such a stall into ErrUnsatisfiable; none is enabled by default.
//
// Complexity (non-negative offsets):
//
//   - Time:  O(E log E), E ≈ 4·cells.
//   - Space: O(cells + E) for the table and lazy heap.
package solver
