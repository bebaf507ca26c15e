package pqueue

import (
	"container/heap"
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Pop and Peek on an empty queue.
var ErrEmpty = errors.New("pqueue: queue is empty")

// Order selects which end of the key range pops first.
type Order int

const (
	// Min pops the smallest key first.
	Min Order = iota
	// Max pops the largest key first.
	Max
)

// Item pairs a key with a cell index.
type Item[K constraints.Ordered] struct {
	Key  K
	Cell int
	seq  uint64 // insertion order, breaks ties FIFO
}

// Queue is a heap of Items. The zero value is not usable; call New.
type Queue[K constraints.Ordered] struct {
	h   itemHeap[K]
	seq uint64
}

// New returns an empty queue with the given order and capacity hint.
func New[K constraints.Ordered](order Order, capacity int) *Queue[K] {
	return &Queue[K]{h: itemHeap[K]{order: order, items: make([]Item[K], 0, capacity)}}
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue[K]) Len() int { return len(q.h.items) }

// Push enqueues (key, cell).
func (q *Queue[K]) Push(key K, cell int) {
	heap.Push(&q.h, Item[K]{Key: key, Cell: cell, seq: q.seq})
	q.seq++
}

// Pop removes and returns the highest-priority entry.
func (q *Queue[K]) Pop() (Item[K], error) {
	if len(q.h.items) == 0 {
		return Item[K]{}, ErrEmpty
	}
	return heap.Pop(&q.h).(Item[K]), nil
}

// Peek returns the highest-priority entry without removing it.
func (q *Queue[K]) Peek() (Item[K], error) {
	if len(q.h.items) == 0 {
		return Item[K]{}, ErrEmpty
	}
	return q.h.items[0], nil
}

// itemHeap implements heap.Interface over Items.
type itemHeap[K constraints.Ordered] struct {
	order Order
	items []Item[K]
}

func (h itemHeap[K]) Len() int { return len(h.items) }

// Less orders by key in the configured direction, then by insertion sequence.
func (h itemHeap[K]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.Key != b.Key {
		if h.order == Max {
			return a.Key > b.Key
		}
		return a.Key < b.Key
	}
	return a.seq < b.seq
}

func (h itemHeap[K]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap[K]) Push(x interface{}) { h.items = append(h.items, x.(Item[K])) }

func (h *itemHeap[K]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
