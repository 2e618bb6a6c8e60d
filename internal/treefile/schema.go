package treefile

import "github.com/hashicorp/hcl/v2"

// treeSpec is the body of a `tree` block, or a whole YAML document.
type treeSpec struct {
	Name          string    `hcl:"name,label" yaml:"name"`
	StartPosition *int      `hcl:"start_position,optional" yaml:"start_position,omitempty"`
	Root          *nodeSpec `hcl:"root,block" yaml:"root,omitempty"`
}

// nodeSpec describes one node and, recursively, its children.
type nodeSpec struct {
	Kind   string    `hcl:"kind,label" yaml:"kind"`
	Symbol string    `hcl:"symbol,label" yaml:"symbol"`
	Level  *int      `hcl:"level" yaml:"level"`
	Left   *nodeSpec `hcl:"left,block" yaml:"left,omitempty"`
	Right  *nodeSpec `hcl:"right,block" yaml:"right,omitempty"`
}

// fileSchema lists the top-level blocks of an HCL tree file.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "tree", LabelNames: []string{"name"}},
	},
}
