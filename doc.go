// Package rivermaze generates terrain from a random river network: a square
// height map in which water always has a downhill path to the sea, plus the
// drainage area every cell collects.
//
// 🚀 What is rivermaze?
//
//	A deterministic pipeline that brings together:
//		• Maze: a random-walk spanning tree, inverted so walls become rivers
//		• Drainage: a perimeter-rooted forest and upstream area per cell
//		• Heights: the largest heights that respect every slope bound,
//		  found by label-correcting relaxation
//		• Export: plain-text height and drainage files, ASCII diagnostics
//
// ✨ Why rivermaze?
//
//   - Reproducible – (n, seed, slope table) fully determines the output
//   - Verified – every stage checks its own invariants before the next runs
//   - Tunable – slope tables bucket rivers by drainage area on a log scale
//
// Packages:
//
//	grid/     — (2n+1)² cells, perimeter, fixed neighbor order
//	maze/     — random walk, parsing, spanning-tree validation
//	drainage/ — parent forest, depth-ordered area accumulation
//	slopes/   — slope tables and area buckets
//	pqueue/   — generic FIFO-stable priority queue
//	solver/   — pointwise-maximal heights under difference constraints
//	export/   — heights/drainage files, renderers, summaries
//	config/   — YAML run files
//	terrain/  — the whole pipeline
//
// Quick ASCII example (n = 2, '~' river, '#' divide):
//
//	~~~~~
//	~###~
//	~#~#~
//	~#~#~
//	~~~~~
//
//	go install github.com/katalvlaran/rivermaze/cmd/rivermaze@latest
package rivermaze
