package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rivermaze/pqueue"
)

// drain pops every entry and returns the cells in pop order.
func drain[K int | int64](t *testing.T, q *pqueue.Queue[K]) []int {
	t.Helper()
	var out []int
	for q.Len() > 0 {
		it, err := q.Pop()
		require.NoError(t, err)
		out = append(out, it.Cell)
	}
	return out
}

// TestMinOrder pops ascending keys with FIFO among duplicates.
func TestMinOrder(t *testing.T) {
	q := pqueue.New[int64](pqueue.Min, 0)
	q.Push(5, 0)
	q.Push(-2, 1)
	q.Push(5, 2)
	q.Push(0, 3)
	q.Push(-2, 4)

	assert.Equal(t, []int{1, 4, 3, 0, 2}, drain(t, q))
}

// TestMaxOrder pops descending keys with FIFO among duplicates.
func TestMaxOrder(t *testing.T) {
	q := pqueue.New[int](pqueue.Max, 4)
	q.Push(1, 10)
	q.Push(3, 11)
	q.Push(3, 12)
	q.Push(2, 13)

	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, head.Key)
	assert.Equal(t, 11, head.Cell)

	assert.Equal(t, []int{11, 12, 13, 10}, drain(t, q))
}

// TestEmpty covers Pop and Peek on an empty queue.
func TestEmpty(t *testing.T) {
	q := pqueue.New[int](pqueue.Min, 0)
	_, err := q.Pop()
	assert.ErrorIs(t, err, pqueue.ErrEmpty)
	_, err = q.Peek()
	assert.ErrorIs(t, err, pqueue.ErrEmpty)
}

// TestInterleaved mixes pushes and pops the way the lazy strategy does.
func TestInterleaved(t *testing.T) {
	q := pqueue.New[int64](pqueue.Min, 0)
	q.Push(10, 1)
	q.Push(4, 2)
	it, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, it.Cell)

	q.Push(7, 3)
	q.Push(1, 4)
	assert.Equal(t, []int{4, 3, 1}, drain(t, q))
}
