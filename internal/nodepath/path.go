package nodepath

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/ldaggo/internal/ldag"
)

// ErrNotFound is returned when a path leads past the edge of a tree.
var ErrNotFound = errors.New("node not found")

// String serializes the path into its canonical form.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString(rootSegment)
	for _, s := range p {
		sb.WriteByte('.')
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Equal reports whether both paths take the same branches.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// Resolve follows p from root and returns the node it addresses.
func Resolve(root *ldag.Node, p Path) (*ldag.Node, error) {
	if root == nil {
		return nil, fmt.Errorf("resolve %s in an empty tree: %w", p, ErrNotFound)
	}
	cur := root
	for i, s := range p {
		if s == Right {
			cur = cur.Right()
		} else {
			cur = cur.Left()
		}
		if cur == nil {
			return nil, fmt.Errorf("resolve %s: no child at %s: %w", p, p[:i+1], ErrNotFound)
		}
	}
	return cur, nil
}

// Lookup parses raw and resolves it from root.
func Lookup(root *ldag.Node, raw string) (*ldag.Node, error) {
	p, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return Resolve(root, p)
}

// Of returns the path from root to n. The boolean is false when n is not in
// the tree rooted at root.
func Of(root, n *ldag.Node) (Path, bool) {
	if !ldag.Contains(root, n) {
		return nil, false
	}
	var p Path
	for cur := n; cur != root; cur = cur.Parent() {
		if cur.Parent().Right() == cur {
			p = append(p, Right)
		} else {
			p = append(p, Left)
		}
	}
	slices.Reverse(p)
	if p == nil {
		p = Path{}
	}
	return p, true
}
