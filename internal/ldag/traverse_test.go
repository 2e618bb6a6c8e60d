package ldag_test

import (
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/ldaggo/internal/ldag"
	"github.com/vk/ldaggo/internal/testutil"
)

func labels(seq iter.Seq[*ldag.Node]) []string {
	var out []string
	for n := range seq {
		out = append(out, n.Label())
	}
	return out
}

func TestInOrder(t *testing.T) {
	ref := testutil.NewReferenceTree(t)

	seq := ldag.InOrder(ref.Root)
	assert.Equal(t, []string{"A", "+", "B", "*", "C", "/", "D"}, labels(seq))
	// The sequence re-walks the tree on every range.
	assert.Equal(t, []string{"A", "+", "B", "*", "C", "/", "D"}, labels(seq))
	assert.Equal(t, ref.Nodes(), slices.Collect(seq))
}

func TestInOrder_StopsEarly(t *testing.T) {
	ref := testutil.NewReferenceTree(t)

	var seen []string
	for n := range ldag.InOrder(ref.Root) {
		seen = append(seen, n.Label())
		if n == ref.Mul {
			break
		}
	}
	assert.Equal(t, []string{"A", "+", "B", "*"}, seen)
}

func TestPreOrder(t *testing.T) {
	ref := testutil.NewReferenceTree(t)
	assert.Equal(t, []string{"/", "+", "A", "*", "B", "C", "D"}, labels(ldag.PreOrder(ref.Root)))
}

func TestLevelOrder(t *testing.T) {
	ref := testutil.NewReferenceTree(t)
	assert.Equal(t, []string{"/", "+", "D", "A", "*", "B", "C"}, labels(ldag.LevelOrder(ref.Root)))
}

func TestTraversals_EmptyTree(t *testing.T) {
	assert.Empty(t, slices.Collect(ldag.InOrder(nil)))
	assert.Empty(t, slices.Collect(ldag.PreOrder(nil)))
	assert.Empty(t, slices.Collect(ldag.LevelOrder(nil)))
}

func TestTraversals_VisitEveryNodeOnce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{1, 2, 3, 50, 101, 1000} {
		root, nodes := testutil.RandomTree(t, rng, size)

		for name, seq := range map[string]iter.Seq[*ldag.Node]{
			"in-order":    ldag.InOrder(root),
			"pre-order":   ldag.PreOrder(root),
			"level-order": ldag.LevelOrder(root),
		} {
			visited := make(map[*ldag.Node]int, size)
			for n := range seq {
				visited[n]++
			}
			require.Len(t, visited, size, "%s over %d nodes", name, size)
			for _, n := range nodes {
				assert.Equal(t, 1, visited[n], "%s visited %s more than once", name, n)
			}
		}
	}
}
