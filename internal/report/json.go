package report

import (
	"fmt"
	"io"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// nodeType is the cty object type of one entry in the node listing.
var nodeType = cty.Object(map[string]cty.Type{
	"path":        cty.String,
	"kind":        cty.String,
	"symbol":      cty.String,
	"level":       cty.Number,
	"qh_position": cty.Number,
})

// distanceType is the cty object type of the distance section.
var distanceType = cty.Object(map[string]cty.Type{
	"from":      cty.String,
	"to":        cty.String,
	"from_path": cty.String,
	"to_path":   cty.String,
	"distance":  cty.Number,
	"reachable": cty.Bool,
})

// Value converts r into a cty object value.
func (r *Report) Value() cty.Value {
	nodes := make([]cty.Value, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		nodes = append(nodes, cty.ObjectVal(map[string]cty.Value{
			"path":        cty.StringVal(n.Path),
			"kind":        cty.StringVal(n.Kind),
			"symbol":      cty.StringVal(n.Symbol),
			"level":       cty.NumberIntVal(int64(n.Level)),
			"qh_position": cty.NumberIntVal(int64(n.QHPosition)),
		}))
	}
	nodeList := cty.ListValEmpty(nodeType)
	if len(nodes) > 0 {
		nodeList = cty.ListVal(nodes)
	}

	schedule := make([]cty.Value, 0, len(r.Schedule))
	for _, label := range r.Schedule {
		schedule = append(schedule, cty.StringVal(label))
	}
	scheduleList := cty.ListValEmpty(cty.String)
	if len(schedule) > 0 {
		scheduleList = cty.ListVal(schedule)
	}

	distance := cty.NullVal(distanceType)
	if d := r.Distance; d != nil {
		value := cty.NullVal(cty.Number)
		if d.Reachable {
			value = cty.NumberIntVal(int64(d.Distance))
		}
		distance = cty.ObjectVal(map[string]cty.Value{
			"from":      cty.StringVal(d.From),
			"to":        cty.StringVal(d.To),
			"from_path": cty.StringVal(d.FromPath),
			"to_path":   cty.StringVal(d.ToPath),
			"distance":  value,
			"reachable": cty.BoolVal(d.Reachable),
		})
	}

	return cty.ObjectVal(map[string]cty.Value{
		"tree":           cty.StringVal(r.Tree),
		"start_position": cty.NumberIntVal(int64(r.StartPosition)),
		"node_count":     cty.NumberIntVal(int64(r.NodeCount)),
		"depth":          cty.NumberIntVal(int64(r.Depth)),
		"nodes":          nodeList,
		"distance":       distance,
		"schedule":       scheduleList,
	})
}

// WriteJSON renders r as a single JSON object followed by a newline.
func WriteJSON(w io.Writer, r *Report) error {
	v := r.Value()
	data, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
