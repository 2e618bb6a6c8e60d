package treefile

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/ldaggo/internal/ctxlog"
	"github.com/vk/ldaggo/internal/ldag"
	"github.com/vk/ldaggo/internal/nodepath"
)

// translate converts a decoded description into a linked tree.
func translate(ctx context.Context, spec *treeSpec) (*Document, error) {
	logger := ctxlog.FromContext(ctx).With("tree", spec.Name)
	logger.Debug("Translating tree description.")

	root, err := buildNode(spec.Root, nodepath.Path{})
	if err != nil {
		return nil, fmt.Errorf("in tree '%s': %w", spec.Name, err)
	}
	if root == nil {
		logger.Debug("Tree description has no root; the tree is empty.")
	}

	return &Document{
		Name:          spec.Name,
		StartPosition: spec.StartPosition,
		Root:          root,
	}, nil
}

// buildNode creates the node described by spec and its subtrees. at is the
// node's address, used in error messages.
func buildNode(spec *nodeSpec, at nodepath.Path) (*ldag.Node, error) {
	if spec == nil {
		return nil, nil
	}

	tag, err := ldag.ParseKindTag(spec.Kind)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", at, err)
	}
	if strings.TrimSpace(spec.Symbol) == "" {
		return nil, fmt.Errorf("node %s: symbol must not be empty", at)
	}

	if spec.Level == nil {
		return nil, fmt.Errorf("node %s: level is required", at)
	}

	n := ldag.NewNode(ldag.NewKind(tag, spec.Symbol), *spec.Level)

	left, err := buildNode(spec.Left, append(at[:len(at):len(at)], nodepath.Left))
	if err != nil {
		return nil, err
	}
	right, err := buildNode(spec.Right, append(at[:len(at):len(at)], nodepath.Right))
	if err != nil {
		return nil, err
	}
	if err := n.Attach(left, right); err != nil {
		return nil, fmt.Errorf("node %s: %w", at, err)
	}
	return n, nil
}
