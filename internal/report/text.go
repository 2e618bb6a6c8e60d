package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteText renders r in the classic listing layout: levels, node count,
// QH positions, distance and schedule.
func WriteText(w io.Writer, r *Report) error {
	var sb strings.Builder

	sb.WriteString("Calculating levels:\n")
	for _, n := range r.Nodes {
		fmt.Fprintf(&sb, "%s: %s, Level: %d\n", kindTitle(n.Kind), n.Symbol, n.Level)
	}

	fmt.Fprintf(&sb, "\nNumber of nodes in LDAG: %d\n\n", r.NodeCount)

	fmt.Fprintf(&sb, "Symbolic execution - calculating offsets (start %d):\n", r.StartPosition)
	for _, n := range r.Nodes {
		fmt.Fprintf(&sb, "%s: %s, Level: %d, QH Position: %d\n", kindTitle(n.Kind), n.Symbol, n.Level, n.QHPosition)
	}

	if d := r.Distance; d != nil {
		fmt.Fprintf(&sb, "\nCalculating distance between nodes %s and %s:\n", d.From, d.To)
		if d.Reachable {
			fmt.Fprintf(&sb, "Distance between nodes %s and %s: %d\n", d.From, d.To, d.Distance)
		} else {
			fmt.Fprintf(&sb, "Nodes %s and %s are not connected in this tree\n", d.From, d.To)
		}
	}

	sb.WriteString("\nInstruction Scheduling:\n")
	sb.WriteString(strings.Join(r.Schedule, "\t"))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func kindTitle(kind string) string {
	if kind == "" {
		return kind
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}
