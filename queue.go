package huffman

import (
	"container/heap"
)

// MaxQueueNodes bounds the number of nodes a PriorityQueue ever needs to
// hold while building a tree: one leaf per byte value plus one merge node for
// every pair of extractions.
const MaxQueueNodes = NumSymbols + (NumSymbols - 1)

// PriorityQueue is a bounded binary min-heap of tree nodes, ordered by weight.
// Nodes of equal weight come out in the order they were inserted, which keeps
// tree construction reproducible.
type PriorityQueue struct {
	h queueHeap
}

// NewPriorityQueue returns an empty PriorityQueue that holds at most
// capacity nodes.
func NewPriorityQueue(capacity int) *PriorityQueue {
	return &PriorityQueue{h: queueHeap{list: make([]queueItem, 0, capacity)}}
}

// Insert adds a node.  It fails with ErrQueueFull, leaving the queue
// unchanged, if the queue is already at capacity.
func (q *PriorityQueue) Insert(n *Node) error {
	if len(q.h.list) == cap(q.h.list) {
		return ErrQueueFull
	}
	heap.Push(&q.h, queueItem{node: n, seq: q.h.nextSeq})
	q.h.nextSeq++
	return nil
}

// ExtractMin removes and returns the node with the smallest weight.  The
// second return value is false if the queue is empty.
func (q *PriorityQueue) ExtractMin() (*Node, bool) {
	if len(q.h.list) == 0 {
		return nil, false
	}
	item := heap.Pop(&q.h).(queueItem)
	return item.node, true
}

// Len returns the number of nodes in the queue.
func (q *PriorityQueue) Len() int {
	return len(q.h.list)
}

// Cap returns the capacity the queue was built with.
func (q *PriorityQueue) Cap() int {
	return cap(q.h.list)
}

// type queueItem + type queueHeap {{{

type queueItem struct {
	node *Node
	seq  uint32
}

type queueHeap struct {
	list    []queueItem
	nextSeq uint32
}

func (h *queueHeap) Len() int {
	return len(h.list)
}

func (h *queueHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *queueHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *queueHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *queueHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*queueHeap)(nil)

// }}}
