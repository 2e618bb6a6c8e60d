package ldag

// CountNodes returns the number of nodes reachable from root, counted in
// level order. It returns 0 for a nil root.
func CountNodes(root *Node) int {
	count := 0
	for range LevelOrder(root) {
		count++
	}
	return count
}

// Depth returns the height of the tree in nodes: 0 for nil, 1 for a single node.
func Depth(root *Node) int {
	if root == nil {
		return 0
	}
	type entry struct {
		n     *Node
		depth int
	}
	deepest := 0
	frontier := []entry{{root, 1}}
	for head := 0; head < len(frontier); head++ {
		e := frontier[head]
		deepest = max(deepest, e.depth)
		for _, c := range [2]*Node{e.n.left, e.n.right} {
			if c != nil {
				frontier = append(frontier, entry{c, e.depth + 1})
			}
		}
	}
	return deepest
}

// Contains reports whether n lies in the tree rooted at root.
func Contains(root, n *Node) bool {
	if root == nil || n == nil {
		return false
	}
	return n.hasAncestorOrSelf(root)
}

// Distance returns the number of edges on the path between u and v. Edges are
// treated as undirected, so the result is symmetric. The boolean is false when
// any argument is nil or when u or v is not part of the tree rooted at root.
func Distance(root, u, v *Node) (int, bool) {
	if !Contains(root, u) || !Contains(root, v) {
		return 0, false
	}
	if u == v {
		return 0, true
	}

	dist := map[*Node]int{u: 0}
	frontier := []*Node{u}
	for head := 0; head < len(frontier); head++ {
		cur := frontier[head]
		d := dist[cur]
		for _, next := range [3]*Node{cur.left, cur.right, cur.parent} {
			if next == nil {
				continue
			}
			// Edges leading above root are outside the queried tree.
			if cur == root && next == cur.parent {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			if next == v {
				return d + 1, true
			}
			dist[next] = d + 1
			frontier = append(frontier, next)
		}
	}
	return 0, false
}
