package nodepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/ldaggo/internal/ldag"
	"github.com/vk/ldaggo/internal/testutil"
)

func TestResolve(t *testing.T) {
	ref := testutil.NewReferenceTree(t)

	testCases := []struct {
		raw      string
		expected *ldag.Node
	}{
		{raw: "root", expected: ref.Root},
		{raw: "root.left", expected: ref.Plus},
		{raw: "root.left.left", expected: ref.A},
		{raw: "root.left.right", expected: ref.Mul},
		{raw: "root.left.right.left", expected: ref.B},
		{raw: "root.l.r.r", expected: ref.C},
		{raw: "root.right", expected: ref.D},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			n, err := Lookup(ref.Root, tc.raw)
			require.NoError(t, err)
			assert.Same(t, tc.expected, n)
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	ref := testutil.NewReferenceTree(t)

	_, err := Lookup(ref.Root, "root.right.left")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "root.right.left")

	_, err = Resolve(nil, Path{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Lookup(ref.Root, "root.sideways")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestOf(t *testing.T) {
	ref := testutil.NewReferenceTree(t)
	ldag.AssignPositions(ref.Root, 0)

	for _, n := range ref.Nodes() {
		p, ok := Of(ref.Root, n)
		require.True(t, ok, "path of %s", n)

		back, err := Resolve(ref.Root, p)
		require.NoError(t, err)
		assert.Same(t, n, back)
		assert.Equal(t, p.RightBranches(), n.QHPosition, "position of %s", n)
	}

	p, ok := Of(ref.Root, ref.Root)
	require.True(t, ok)
	assert.Equal(t, "root", p.String())

	_, ok = Of(ref.Mul, ref.D)
	assert.False(t, ok)
}
