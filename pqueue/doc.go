// Package pqueue provides the binary-heap priority queue shared by the
// drainage accumulation (max-order by depth) and the height solver
// (min-order by bound).
//
// The queue admits duplicate keys and never supports decrease-key: callers
// use the "lazy" strategy of pushing a fresh entry and discarding stale ones
// when they surface. Entries with equal keys pop in insertion order, which
// keeps every consumer deterministic.
//
// Complexity:
//
//   - Push, Pop: O(log N)
//   - Peek, Len: O(1)
package pqueue
