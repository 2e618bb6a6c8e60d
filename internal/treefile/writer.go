package treefile

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/ldaggo/internal/ldag"
	"github.com/zclconf/go-cty/cty"
)

// Encode writes doc as an HCL tree description.
func Encode(w io.Writer, doc *Document) error {
	f := hclwrite.NewEmptyFile()
	tree := f.Body().AppendNewBlock("tree", []string{doc.Name})
	body := tree.Body()
	if doc.StartPosition != nil {
		body.SetAttributeValue("start_position", cty.NumberIntVal(int64(*doc.StartPosition)))
	}
	if doc.Root != nil {
		appendNode(body, "root", doc.Root)
	}

	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("failed to write tree '%s': %w", doc.Name, err)
	}
	return nil
}

// appendNode adds a block describing n, and its children, to body.
func appendNode(body *hclwrite.Body, blockType string, n *ldag.Node) {
	block := body.AppendNewBlock(blockType, []string{n.Kind().Tag().String(), n.Symbol()})
	nb := block.Body()
	nb.SetAttributeValue("level", cty.NumberIntVal(int64(n.Level)))
	if n.Left() != nil {
		appendNode(nb, "left", n.Left())
	}
	if n.Right() != nil {
		appendNode(nb, "right", n.Right())
	}
}
