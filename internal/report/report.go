// Package report collects the results of one analysis run over an expression
// tree and renders them as text or JSON.
package report

import (
	"github.com/vk/ldaggo/internal/ldag"
	"github.com/vk/ldaggo/internal/nodepath"
	"github.com/vk/ldaggo/internal/scheduler"
)

// NodeInfo is the per-node data a caller needs to render a listing.
type NodeInfo struct {
	Path       string
	Kind       string
	Symbol     string
	Level      int
	QHPosition int
}

// DistanceInfo is the result of a distance query between two nodes.
type DistanceInfo struct {
	From, To         string // node labels
	FromPath, ToPath string
	Distance         int
	Reachable        bool
}

// Report is the complete result of one run.
type Report struct {
	Tree          string
	StartPosition int
	NodeCount     int
	Depth         int
	Nodes         []NodeInfo // in-order
	Distance      *DistanceInfo
	Schedule      []string
}

// Pair selects the two nodes of a distance query.
type Pair struct {
	From, To *ldag.Node
}

// Build reads an annotated tree and collects the report. Positions must
// already have been assigned starting at start. pair may be nil to skip the
// distance query.
func Build(name string, root *ldag.Node, start int, sched scheduler.Scheduler, pair *Pair) *Report {
	r := &Report{
		Tree:          name,
		StartPosition: start,
		NodeCount:     ldag.CountNodes(root),
		Depth:         ldag.Depth(root),
		Nodes:         []NodeInfo{},
		Schedule:      sched.Schedule(root).Labels(),
	}

	for n := range ldag.InOrder(root) {
		r.Nodes = append(r.Nodes, NodeInfo{
			Path:       pathOf(root, n),
			Kind:       n.Kind().Tag().String(),
			Symbol:     n.Symbol(),
			Level:      n.Level,
			QHPosition: n.QHPosition,
		})
	}

	if pair != nil {
		d, ok := ldag.Distance(root, pair.From, pair.To)
		r.Distance = &DistanceInfo{
			From:      labelOf(pair.From),
			To:        labelOf(pair.To),
			FromPath:  pathOf(root, pair.From),
			ToPath:    pathOf(root, pair.To),
			Distance:  d,
			Reachable: ok,
		}
	}
	return r
}

func labelOf(n *ldag.Node) string {
	if n == nil {
		return ""
	}
	return n.Label()
}

// pathOf returns the address of n below root, or "" when n is outside it.
func pathOf(root, n *ldag.Node) string {
	p, ok := nodepath.Of(root, n)
	if !ok {
		return ""
	}
	return p.String()
}
