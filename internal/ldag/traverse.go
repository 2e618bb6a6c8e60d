package ldag

import "iter"

// InOrder yields the left subtree, then the node, then the right subtree.
// Every range over the returned sequence walks the tree again from root.
func InOrder(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var stack []*Node
		cur := root
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.left
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			cur = cur.right
		}
	}
}

// PreOrder yields a node before its left and right subtrees.
func PreOrder(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root == nil {
			return
		}
		stack := []*Node{root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(cur) {
				return
			}
			// Right is pushed first so left is popped first.
			if cur.right != nil {
				stack = append(stack, cur.right)
			}
			if cur.left != nil {
				stack = append(stack, cur.left)
			}
		}
	}
}

// LevelOrder yields nodes breadth-first. A node's children are enqueued, left
// then right, as soon as the node is dequeued.
func LevelOrder(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root == nil {
			return
		}
		frontier := []*Node{root}
		for head := 0; head < len(frontier); head++ {
			cur := frontier[head]
			if !yield(cur) {
				return
			}
			if cur.left != nil {
				frontier = append(frontier, cur.left)
			}
			if cur.right != nil {
				frontier = append(frontier, cur.right)
			}
		}
	}
}
