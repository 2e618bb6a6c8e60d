package testutil

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/ldaggo/internal/ldag"
)

// ReferenceTree holds the tree for (A + B * C) / D together with a handle to
// every node, so tests can address nodes by identity.
type ReferenceTree struct {
	Root *ldag.Node // '/'
	Plus *ldag.Node // '+'
	A    *ldag.Node
	Mul  *ldag.Node // '*'
	B    *ldag.Node
	C    *ldag.Node
	D    *ldag.Node
}

// NewReferenceTree builds the reference tree:
//
//	        /
//	      +   D
//	    A   *
//	       B C
func NewReferenceTree(t testing.TB) *ReferenceTree {
	t.Helper()
	r := &ReferenceTree{
		Root: ldag.Operator("/", 1),
		Plus: ldag.Operator("+", 2),
		A:    ldag.Operand("A", 3),
		Mul:  ldag.Operator("*", 3),
		B:    ldag.Operand("B", 4),
		C:    ldag.Operand("C", 4),
		D:    ldag.Operand("D", 2),
	}
	require.NoError(t, r.Mul.Attach(r.B, r.C))
	require.NoError(t, r.Plus.Attach(r.A, r.Mul))
	require.NoError(t, r.Root.Attach(r.Plus, r.D))
	return r
}

// Nodes returns every node of the reference tree in in-order sequence.
func (r *ReferenceTree) Nodes() []*ldag.Node {
	return []*ldag.Node{r.A, r.Plus, r.B, r.Mul, r.C, r.Root, r.D}
}

// RandomTree builds a random tree of exactly size nodes and returns its root
// and all nodes in creation order. Levels are set to the real depth of each
// node.
func RandomTree(t testing.TB, rng *rand.Rand, size int) (*ldag.Node, []*ldag.Node) {
	t.Helper()
	if size <= 0 {
		return nil, nil
	}
	nodes := []*ldag.Node{ldag.Operator("n0", 1)}
	for len(nodes) < size {
		parent := nodes[rng.IntN(len(nodes))]
		left, right := parent.Left(), parent.Right()
		if left != nil && right != nil {
			continue
		}
		child := ldag.Operator("n"+strconv.Itoa(len(nodes)), parent.Level+1)
		if left == nil && (right != nil || rng.IntN(2) == 0) {
			left = child
		} else {
			right = child
		}
		require.NoError(t, parent.Attach(left, right))
		nodes = append(nodes, child)
	}
	return nodes[0], nodes
}
