package nodepath

// Side is one branch taken while descending from a node to a child.
type Side int

const (
	// Left descends into the left child.
	Left Side = iota
	// Right descends into the right child.
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Path is the sequence of branches from a root to a node. The empty path
// addresses the root itself.
type Path []Side

// RightBranches returns how many steps of p go right.
func (p Path) RightBranches() int {
	count := 0
	for _, s := range p {
		if s == Right {
			count++
		}
	}
	return count
}
