package treefile

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/ldaggo/internal/ldag"
	"github.com/vk/ldaggo/internal/testutil"
)

// describe renders a tree as nested kind(symbol)@level terms.
func describe(n *ldag.Node) string {
	if n == nil {
		return "_"
	}
	if n.IsLeaf() {
		return n.String()
	}
	return n.String() + "[" + describe(n.Left()) + " " + describe(n.Right()) + "]"
}

func TestLoad_ReferenceFiles(t *testing.T) {
	expected := describe(testutil.NewReferenceTree(t).Root)

	for _, file := range []string{"reference.hcl", "reference.yaml"} {
		t.Run(file, func(t *testing.T) {
			doc, err := NewLoader().Load(context.Background(), filepath.Join("testdata", file))
			require.NoError(t, err)

			assert.Equal(t, "reference", doc.Name)
			assert.Equal(t, expected, describe(doc.Root))
			assert.Equal(t, 7, ldag.CountNodes(doc.Root))
			assert.Same(t, doc.Root, doc.Root.Left().Parent(), "children must be linked to their parent")
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewLoader().Load(ctx, "tree.json")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewLoader().Load(ctx, filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeHCL(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		expectErr   string
		expectShape string
		expectStart *int
	}{
		{
			name: "single operand",
			src: `tree "t" {
				root "operand" "X" { level = 1 }
			}`,
			expectShape: "operand(X)@L1",
		},
		{
			name: "right child only",
			src: `tree "t" {
				start_position = 4
				root "operator" "-" {
					level = 1
					right "operand" "Y" { level = 2 }
				}
			}`,
			expectShape: "operator(-)@L1[_ operand(Y)@L2]",
			expectStart: ptr(4),
		},
		{
			name:        "empty tree",
			src:         `tree "t" {}`,
			expectShape: "_",
		},
		{
			name:      "syntax error",
			src:       `tree "t" {`,
			expectErr: "failed to parse HCL file",
		},
		{
			name:      "no tree block",
			src:       ``,
			expectErr: "no tree defined",
		},
		{
			name:      "duplicate tree blocks",
			src:       "tree \"a\" {}\ntree \"b\" {}\n",
			expectErr: `Duplicate "tree" block`,
		},
		{
			name:      "empty tree name",
			src:       `tree "" {}`,
			expectErr: "Invalid tree name",
		},
		{
			name: "unknown kind",
			src: `tree "t" {
				root "variable" "X" { level = 1 }
			}`,
			expectErr: "node root: unknown node kind",
		},
		{
			name: "empty symbol deep in the tree",
			src: `tree "t" {
				root "operator" "+" {
					level = 1
					left "operand" "" { level = 2 }
				}
			}`,
			expectErr: "node root.left: symbol must not be empty",
		},
		{
			name: "missing level",
			src: `tree "t" {
				root "operand" "X" {}
			}`,
			expectErr: "level",
		},
		{
			name: "duplicate left child",
			src: `tree "t" {
				root "operator" "+" {
					level = 1
					left "operand" "A" { level = 2 }
					left "operand" "B" { level = 2 }
				}
			}`,
			expectErr: "Duplicate left block",
		},
		{
			name:      "unknown top-level block",
			src:       `forest "f" {}`,
			expectErr: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := DecodeHCL(context.Background(), "test.hcl", []byte(tc.src))

			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectShape, describe(doc.Root))
			assert.Equal(t, tc.expectStart, doc.StartPosition)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodeYAML(context.Background(), "t.yaml", []byte("name: t\nroot: {kind: operand, symbol: A, level: 1, colour: red}\n"))
		assert.ErrorContains(t, err, "failed to decode YAML file")
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := DecodeYAML(context.Background(), "t.yaml", nil)
		assert.ErrorIs(t, err, ErrNoTree)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := DecodeYAML(context.Background(), "t.yaml", []byte("root: {kind: operand, symbol: A, level: 1}\n"))
		assert.ErrorContains(t, err, "tree name must not be empty")
	})

	t.Run("missing level", func(t *testing.T) {
		src := "name: t\nroot:\n  kind: operator\n  symbol: \"+\"\n  level: 1\n  left: {kind: operand, symbol: A}\n"
		_, err := DecodeYAML(context.Background(), "t.yaml", []byte(src))
		assert.ErrorContains(t, err, "node root.left: level is required")
	})

	t.Run("zero level is kept", func(t *testing.T) {
		doc, err := DecodeYAML(context.Background(), "t.yaml", []byte("name: t\nroot: {kind: operand, symbol: A, level: 0}\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Root.Level)
	})

	t.Run("second document", func(t *testing.T) {
		src := "name: a\nroot: {kind: operand, symbol: A, level: 1}\n---\nname: b\nroot: {kind: operand, symbol: B, level: 1}\n"
		_, err := DecodeYAML(context.Background(), "t.yaml", []byte(src))
		assert.ErrorContains(t, err, "only one tree document is allowed")
	})

	t.Run("start position", func(t *testing.T) {
		doc, err := DecodeYAML(context.Background(), "t.yaml", []byte("name: t\nstart_position: 2\nroot: {kind: operand, symbol: A, level: 1}\n"))
		require.NoError(t, err)
		require.NotNil(t, doc.StartPosition)
		assert.Equal(t, 2, *doc.StartPosition)
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	ref := testutil.NewReferenceTree(t)
	doc := &Document{Name: "reference", StartPosition: ptr(3), Root: ref.Root}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `tree "reference" {`), out)
	assert.Contains(t, out, `root "operator" "/" {`)
	assert.Contains(t, out, `start_position = 3`)

	back, err := DecodeHCL(context.Background(), "out.hcl", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, describe(ref.Root), describe(back.Root))
	assert.Equal(t, doc.StartPosition, back.StartPosition)
}

func TestEncode_EmptyTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &Document{Name: "empty"}))

	back, err := DecodeHCL(context.Background(), "out.hcl", buf.Bytes())
	require.NoError(t, err)
	assert.Nil(t, back.Root)
	assert.Nil(t, back.StartPosition)
}

func ptr(i int) *int { return &i }
