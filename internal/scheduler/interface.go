package scheduler

import "github.com/vk/ldaggo/internal/ldag"

// Scheduler turns an expression tree into an ordered instruction queue.
//
// InOrderScheduler is the only implementation. The interface lets callers
// swap in a different ordering without touching the report layer.
type Scheduler interface {
	// Schedule returns a freshly built queue for the tree under root. A nil
	// root yields an empty queue.
	Schedule(root *ldag.Node) *Queue
}
