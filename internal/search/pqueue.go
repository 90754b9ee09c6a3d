package search

import (
	"container/heap"

	"clickgrid/internal/board"
)

// frontierNode is one entry on a priority-queue frontier: a board state
// paired with the search-depth it was reached at and the priority it was
// filed under (h for GBFS, g+h for A*/EA*).
type frontierNode struct {
	Board    *board.Board
	Depth    int
	Priority int
	index    int // heap.Interface bookkeeping
}

// pqHeap implements heap.Interface exactly as the teacher's
// priorityQueueHeap did, minus the mutex/condvar: strategies run
// single-threaded per §5, so a plain min-heap suffices.
type pqHeap []*frontierNode

func (h pqHeap) Len() int            { return len(h) }
func (h pqHeap) Less(i, j int) bool  { return h[i].Priority < h[j].Priority }
func (h pqHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *pqHeap) Push(x interface{}) {
	n := x.(*frontierNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *pqHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// BoundedPQ is a min-priority queue capped at a maximum size. Once full,
// Push evicts the worst-priority (highest-value) entry rather than
// refusing the insert, per §4.4/§5's "worst-priority eviction" policy for
// GBFS/A*/EA*.
type BoundedPQ struct {
	items pqHeap
	cap   int
	max   int
}

// NewBoundedPQ creates a queue capped at capacity; capacity <= 0 means
// unbounded.
func NewBoundedPQ(capacity int) *BoundedPQ {
	return &BoundedPQ{cap: capacity}
}

// Push inserts a node, evicting the current worst-priority entry if the
// queue is at capacity.
func (q *BoundedPQ) Push(n *frontierNode) {
	heap.Push(&q.items, n)
	if q.cap > 0 && len(q.items) > q.cap {
		q.evictWorst()
	}
	if len(q.items) > q.max {
		q.max = len(q.items)
	}
}

func (q *BoundedPQ) evictWorst() {
	worst := 0
	for i, n := range q.items {
		if n.Priority > q.items[worst].Priority {
			worst = i
		}
	}
	heap.Remove(&q.items, worst)
}

// PopMin removes and returns the lowest-priority entry.
func (q *BoundedPQ) PopMin() (*frontierNode, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return heap.Pop(&q.items).(*frontierNode), true
}

// Len returns the current frontier size.
func (q *BoundedPQ) Len() int { return len(q.items) }

// MaxLen returns the largest size the frontier ever reached.
func (q *BoundedPQ) MaxLen() int { return q.max }
