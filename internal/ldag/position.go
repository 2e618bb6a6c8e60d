package ldag

// AssignPositions writes QHPosition for every node under root. The root gets
// start, a left child inherits its parent's position and a right child gets
// the parent's position plus one. Running it again overwrites every position.
// A nil root is a no-op.
func AssignPositions(root *Node, start int) {
	for n := range PreOrder(root) {
		switch {
		case n == root:
			n.QHPosition = start
		case n == n.parent.right:
			n.QHPosition = n.parent.QHPosition + 1
		default:
			n.QHPosition = n.parent.QHPosition
		}
	}
}
