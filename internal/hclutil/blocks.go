// Package hclutil holds small helpers shared by the HCL decoders.
package hclutil

import (
	"github.com/hashicorp/hcl/v2"
)

// FindUniqueBlock searches a slice of blocks for the single block of a given
// type. It returns a diagnostic for every extra block of that type. If no block
// is found, it returns nil.
func FindUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != name {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + name + "\" block",
				Detail:   "Only one \"" + name + "\" block is allowed; the first was defined at " + found.DefRange.String() + ".",
				Subject:  &block.DefRange,
			})
			continue
		}
		found = block
	}

	return found, diags
}

// LabelError builds a diagnostic pointing at one label of a block.
func LabelError(block *hcl.Block, index int, summary, detail string) *hcl.Diagnostic {
	subject := block.DefRange
	if index < len(block.LabelRanges) {
		subject = block.LabelRanges[index]
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  &subject,
	}
}
