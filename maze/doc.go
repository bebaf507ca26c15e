// Package maze generates the random river/divide partition of a grid.
//
// The logical maze vertices sit at odd coordinates (N² of them). A random walk
// takes axis-aligned steps of length 2; the first time it reaches a vertex it
// opens the wall cell it crossed. Once every vertex has been reached the open
// cells form a uniformly random spanning tree, and inverting the membership
// turns the walls into rivers and the passages into divides.
//
// Guarantees:
//
//   - Every vertex is Divide and exactly N²−1 wall cells are Divide.
//   - Posts (even, even) and the whole border ring are always River.
//   - Same seed and N ⇒ identical partition.
//
// The walk terminates with probability 1 but has no worst-case bound. The
// default is unbounded; WithMaxSteps turns a runaway walk into an error.
//
// Validate checks the spanning-tree property independently of how the maze
// was produced, so it also covers mazes read back with Parse.
package maze
