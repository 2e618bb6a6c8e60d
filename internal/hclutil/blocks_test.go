package hclutil

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseBlocks(t *testing.T, src string) hcl.Blocks {
	t.Helper()
	file, diags := hclsyntax.ParseConfig([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{{Type: "tree", LabelNames: []string{"name"}}},
	})
	require.False(t, diags.HasErrors(), diags.Error())
	return content.Blocks
}

func TestFindUniqueBlock(t *testing.T) {
	t.Run("single block", func(t *testing.T) {
		blocks := parseBlocks(t, `tree "a" {}`)
		found, diags := FindUniqueBlock(blocks, "tree")
		assert.False(t, diags.HasErrors())
		require.NotNil(t, found)
		assert.Equal(t, []string{"a"}, found.Labels)
	})

	t.Run("no block", func(t *testing.T) {
		found, diags := FindUniqueBlock(parseBlocks(t, ``), "tree")
		assert.Nil(t, found)
		assert.Empty(t, diags)
	})

	t.Run("duplicate blocks", func(t *testing.T) {
		blocks := parseBlocks(t, "tree \"a\" {}\ntree \"b\" {}\ntree \"c\" {}\n")
		found, diags := FindUniqueBlock(blocks, "tree")
		require.NotNil(t, found)
		assert.Equal(t, []string{"a"}, found.Labels, "the first block wins")
		require.Len(t, diags, 2)
		assert.Equal(t, `Duplicate "tree" block`, diags[0].Summary)
		assert.Equal(t, 2, diags[0].Subject.Start.Line)
	})
}

func TestLabelError(t *testing.T) {
	blocks := parseBlocks(t, `tree "bad" {}`)
	diag := LabelError(blocks[0], 0, "Invalid name", "nope")
	assert.Equal(t, hcl.DiagError, diag.Severity)
	assert.Equal(t, 6, diag.Subject.Start.Column)

	diag = LabelError(blocks[0], 5, "Invalid name", "nope")
	assert.Equal(t, blocks[0].DefRange, *diag.Subject)
}
