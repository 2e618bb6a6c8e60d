// Package scheduler produces a candidate instruction order for an expression
// tree.
//
// # How It Works
//
// The order is purely structural: InOrder walks the tree left subtree, node,
// right subtree and appends every visited node to a Queue. No priority,
// latency or resource model is applied.
//
// # Relationship with Other Components
//
//   - **ldag:** supplies the tree and the in-order traversal
//   - **report:** consumes Queue.Labels for the schedule section
//
// # Lifetime
//
// A Queue holds references into the tree, not copies. It must not be used
// after the tree it was built from has been released. Building a new Queue is
// cheap; call InOrder again rather than reusing a drained one.
package scheduler
