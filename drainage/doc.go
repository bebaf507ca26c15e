// Package drainage roots the river cells of a maze in a forest anchored at
// the map perimeter and measures how much area drains through each of them.
//
// Build runs in two steps:
//
//	Step A: parent assignment. Every perimeter cell is its own root at depth
//	0. A multi-source breadth-first expansion, seeded with the roots in
//	row-major order and scanning neighbors down, right, up, left, gives each
//	unclaimed River neighbor of a rooted cell that cell as its downstream
//	parent. The fixed seeding and scan order make the forest reproducible.
//
//	Step B: accumulation. All rooted cells enter a max-priority queue keyed
//	by depth, so every child is popped before its parent, and
//	area[c] = 1 + Σ area[child] over the neighbors whose parent is c.
//
// A River cell that Step A cannot reach is a consistency error
// (ErrUnreachedRiver); its area is never defaulted.
//
// Complexity:
//
//   - Step A: O(cells) time and memory.
//   - Step B: O(cells · log cells) with the heap.
package drainage
