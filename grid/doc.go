// Package grid defines the square (2N+1)×(2N+1) coordinate space that every
// other rivermaze package addresses cells through.
//
// What:
//
//   - Grid holds the half-size N and the side length Size = 2N+1.
//   - Cells are stored densely and addressed by a row-major index row*Size+col.
//   - Adjacency is 4-connected; Neighbors scans in the fixed order
//     down, right, up, left.
//   - The perimeter is the border ring (row or col ∈ {0, 2N}).
//
// Why:
//
//   - Odd coordinates host the maze's logical vertices, even/odd mixes host
//     the walls between them, and the border ring is always sea level.
//   - A single deterministic neighbor order makes every traversal built on
//     top of the grid reproducible for a fixed seed.
//
// Complexity:
//
//   - New:        O(1), Memory: O(1).
//   - Neighbors:  O(1) per call (at most four cells).
//   - Perimeter:  O(Size), Memory: O(Size).
//
// Errors:
//
//   - ErrBadHalfSize: half-size N is zero or negative.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package grid
