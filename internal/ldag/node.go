package ldag

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyAttached is returned when a child already belongs to another parent.
	ErrAlreadyAttached = errors.New("node already has a parent")
	// ErrCycle is returned when attaching would make a node its own descendant.
	ErrCycle = errors.New("attachment would create a cycle")
	// ErrSameChild is returned when one node is attached on both sides.
	ErrSameChild = errors.New("the same node cannot be both left and right child")
)

// Node is a single vertex of a leveled expression tree.
type Node struct {
	// Level is the nominal depth chosen by the builder. It is not validated.
	Level int
	// QHPosition is the horizontal scheduling offset. It is 0 until
	// AssignPositions has run over a tree containing this node.
	QHPosition int

	kind   Kind
	left   *Node
	right  *Node
	parent *Node
}

// NewNode creates a detached node with no children and a zero position.
func NewNode(kind Kind, level int) *Node {
	return &Node{kind: kind, Level: level}
}

// Operator creates a detached operator node.
func Operator(symbol string, level int) *Node {
	return NewNode(OperatorKind(symbol), level)
}

// Operand creates a detached operand node.
func Operand(symbol string, level int) *Node {
	return NewNode(OperandKind(symbol), level)
}

// Kind returns the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Symbol returns the symbol of the node's variant.
func (n *Node) Symbol() string { return n.kind.symbol }

// Label returns the printable label used in schedules: the operator symbol for
// operators, the operand symbol otherwise.
func (n *Node) Label() string {
	return n.kind.symbol
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

// Parent returns the node that owns n, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

func (n *Node) String() string {
	return fmt.Sprintf("%s@L%d", n.kind, n.Level)
}

// Attach sets n's children, replacing any previous ones. A nil argument leaves
// that side empty. Replaced children become detached roots.
//
// Attach fails without modifying anything if a child already has a different
// parent, if a child is n itself or one of its ancestors, or if left and right
// are the same node.
func (n *Node) Attach(left, right *Node) error {
	if left != nil && left == right {
		return fmt.Errorf("attach %s: %w", n, ErrSameChild)
	}
	for _, c := range [2]*Node{left, right} {
		if c == nil {
			continue
		}
		if n.hasAncestorOrSelf(c) {
			return fmt.Errorf("attach %s under %s: %w", c, n, ErrCycle)
		}
		if c.parent != nil && c.parent != n {
			return fmt.Errorf("attach %s under %s: %w", c, n, ErrAlreadyAttached)
		}
	}

	for _, old := range [2]*Node{n.left, n.right} {
		if old != nil && old != left && old != right {
			old.parent = nil
		}
	}
	n.left, n.right = left, right
	if left != nil {
		left.parent = n
	}
	if right != nil {
		right.parent = n
	}
	return nil
}

// Detach removes n from its parent, making it the root of its own subtree.
// Detaching a root is a no-op.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	switch n {
	case p.left:
		p.left = nil
	case p.right:
		p.right = nil
	}
	n.parent = nil
}

// hasAncestorOrSelf reports whether a is n or lies on n's path to its root.
func (n *Node) hasAncestorOrSelf(a *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == a {
			return true
		}
	}
	return false
}
