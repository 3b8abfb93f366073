package optimizer

import (
	"strings"

	"go.trai.ch/breeze/internal/core/domain"
)

// logicalSides maps logical shorthands to their physical start and end properties
// in a left-to-right, top-to-bottom writing mode.
var logicalSides = map[string][2]string{
	"margin-inline":  {"margin-left", "margin-right"},
	"margin-block":   {"margin-top", "margin-bottom"},
	"padding-inline": {"padding-left", "padding-right"},
	"padding-block":  {"padding-top", "padding-bottom"},
	"inset-inline":   {"left", "right"},
	"inset-block":    {"top", "bottom"},
}

var logicalLonghands = map[string]string{
	"margin-inline-start":  "margin-left",
	"margin-inline-end":    "margin-right",
	"margin-block-start":   "margin-top",
	"margin-block-end":     "margin-bottom",
	"padding-inline-start": "padding-left",
	"padding-inline-end":   "padding-right",
	"padding-block-start":  "padding-top",
	"padding-block-end":    "padding-bottom",
	"inset-inline-start":   "left",
	"inset-inline-end":     "right",
	"inline-size":          "width",
	"block-size":           "height",
}

func physicalProperties(n *domain.Node) []*domain.Node {
	if prop, ok := logicalLonghands[n.Prop]; ok {
		return []*domain.Node{{Kind: domain.NodeDecl, Prop: prop, Value: n.Value}}
	}

	sides, ok := logicalSides[n.Prop]
	if !ok {
		return []*domain.Node{n}
	}

	start, end := n.Value, n.Value
	if fields := strings.Fields(n.Value); len(fields) == 2 {
		start, end = fields[0], fields[1]
	}
	return []*domain.Node{
		{Kind: domain.NodeDecl, Prop: sides[0], Value: start},
		{Kind: domain.NodeDecl, Prop: sides[1], Value: end},
	}
}
