package scheduler

import (
	"iter"

	"github.com/vk/ldaggo/internal/ldag"
)

// Queue is an unbounded FIFO of node references.
type Queue struct {
	items []*ldag.Node
	head  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends n at the tail.
func (q *Queue) Enqueue(n *ldag.Node) {
	q.items = append(q.items, n)
}

// Dequeue removes and returns the head. The boolean is false when the queue
// is empty.
func (q *Queue) Dequeue() (*ldag.Node, bool) {
	if q.head == len(q.items) {
		return nil, false
	}
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return n, true
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// All yields the queued nodes from head to tail without removing them.
func (q *Queue) All() iter.Seq[*ldag.Node] {
	return func(yield func(*ldag.Node) bool) {
		for _, n := range q.items[q.head:] {
			if !yield(n) {
				return
			}
		}
	}
}

// Labels returns the printable label of every queued node, head first.
func (q *Queue) Labels() []string {
	labels := make([]string, 0, q.Len())
	for n := range q.All() {
		labels = append(labels, n.Label())
	}
	return labels
}
