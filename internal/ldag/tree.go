package ldag

// Tree is the exclusive owner of a root node and, transitively, of every node
// attached below it.
type Tree struct {
	Root *Node
}

// NewTree wraps root. A nil root is an empty tree.
func NewTree(root *Node) *Tree {
	return &Tree{Root: root}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return CountNodes(t.Root)
}

// AssignPositions runs position assignment over the whole tree.
func (t *Tree) AssignPositions(start int) {
	AssignPositions(t.Root, start)
}

// Distance returns the edge distance between two nodes of this tree.
func (t *Tree) Distance(u, v *Node) (int, bool) {
	return Distance(t.Root, u, v)
}

// Release unlinks every node of the tree exactly once and empties t. It returns
// the number of nodes released. Nodes held elsewhere become detached leaves.
func (t *Tree) Release() int {
	if t.Root == nil {
		return 0
	}
	t.Root.Detach()
	released := 0
	stack := []*Node{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.left, n.right, n.parent = nil, nil, nil
		released++
	}
	t.Root = nil
	return released
}
