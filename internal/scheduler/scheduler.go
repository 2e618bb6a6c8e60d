package scheduler

import "github.com/vk/ldaggo/internal/ldag"

// InOrderScheduler orders instructions by in-order traversal.
type InOrderScheduler struct{}

// New returns the default scheduler.
func New() Scheduler {
	return InOrderScheduler{}
}

// Schedule implements the Scheduler interface.
func (InOrderScheduler) Schedule(root *ldag.Node) *Queue {
	return InOrder(root)
}

// InOrder builds a queue holding every node under root in in-order sequence.
func InOrder(root *ldag.Node) *Queue {
	q := NewQueue()
	for n := range ldag.InOrder(root) {
		q.Enqueue(n)
	}
	return q
}
