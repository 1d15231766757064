package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_ExtractsByWeight(t *testing.T) {
	q := NewPriorityQueue(8)
	for _, w := range []uint64{7, 3, 9, 1, 4} {
		require.NoError(t, q.Insert(&Node{Weight: w, Symbol: Symbol(w)}))
	}
	assert.Equal(t, 5, q.Len())

	var got []uint64
	for {
		n, ok := q.ExtractMin()
		if !ok {
			break
		}
		got = append(got, n.Weight)
	}
	assert.Equal(t, []uint64{1, 3, 4, 7, 9}, got)
	assert.Equal(t, 0, q.Len())
}

func TestPriorityQueue_TiesComeOutInInsertionOrder(t *testing.T) {
	q := NewPriorityQueue(MaxQueueNodes)
	for symbol := Symbol(0); symbol < 10; symbol++ {
		require.NoError(t, q.Insert(&Node{Weight: 5, Symbol: symbol}))
	}
	require.NoError(t, q.Insert(&Node{Weight: 1, Symbol: 42}))

	n, ok := q.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, Symbol(42), n.Symbol)

	for expect := Symbol(0); expect < 10; expect++ {
		n, ok := q.ExtractMin()
		require.True(t, ok)
		assert.Equal(t, expect, n.Symbol)
	}
}

func TestPriorityQueue_Empty(t *testing.T) {
	q := NewPriorityQueue(1)
	n, ok := q.ExtractMin()
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestPriorityQueue_Full(t *testing.T) {
	q := NewPriorityQueue(2)
	require.NoError(t, q.Insert(&Node{Weight: 1}))
	require.NoError(t, q.Insert(&Node{Weight: 2}))
	assert.ErrorIs(t, q.Insert(&Node{Weight: 0}), ErrQueueFull)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 2, q.Cap())

	n, ok := q.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, uint64(1), n.Weight)
}
