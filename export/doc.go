// Package export writes the generated terrain in the formats downstream
// tools read, and renders ASCII diagnostics of intermediate state.
//
// File formats:
//
//   - heights: one integer per line, Size² lines, row-major order.
//   - drainage: floor(sqrt(area)) per cell, same layout. Divide cells have
//     area 0 and therefore write 0.
//
// Renderers:
//
//   - RenderRivers: '~' for River and '#' for Divide.
//   - RenderParents: the direction of each River cell's parent as one of
//     'v' '>' '<' '^', 'o' for a root, '#' for Divide.
//   - RenderHeights: one row per line, heights separated by spaces.
//
// Summarize reduces a height map and its network to a handful of numbers
// using gonum's floats and stat packages.
package export
