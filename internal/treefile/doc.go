// Package treefile reads and writes tree description files.
//
// A tree description is a structural listing of nodes with their kind, symbol
// and level; it is not an arithmetic expression. Two formats are supported,
// selected by file extension:
//
//   - .hcl: a single `tree "<name>"` block holding one `root` block. Each node
//     block carries two labels (kind and symbol), a `level` attribute and
//     optional `left` / `right` child blocks.
//   - .yaml / .yml: the same shape as a single YAML document.
//
// Both formats hold exactly one tree, and every node must state its level.
//
// Encode writes a tree back out in the HCL form.
package treefile
