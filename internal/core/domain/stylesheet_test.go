package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/core/domain"
)

func sampleSheet() *domain.Stylesheet {
	return &domain.Stylesheet{
		Source: domain.SourceOptions{From: "/project/app.css", Map: true},
		Nodes: []*domain.Node{
			{Kind: domain.NodeAtRule, Name: "tailwind", Params: "utilities"},
			{
				Kind:     domain.NodeRule,
				Selector: ".btn",
				Nodes: []*domain.Node{
					{Kind: domain.NodeAtRule, Name: "apply", Params: "p-4"},
					{Kind: domain.NodeDecl, Prop: "color", Value: "red"},
				},
			},
		},
	}
}

func TestStylesheet_WalkOrder(t *testing.T) {
	var visited []string
	sampleSheet().Walk(func(n *domain.Node) bool {
		switch n.Kind {
		case domain.NodeAtRule:
			visited = append(visited, "@"+n.Name)
		case domain.NodeRule:
			visited = append(visited, n.Selector)
		case domain.NodeDecl:
			visited = append(visited, n.Prop)
		case domain.NodeComment:
			visited = append(visited, "comment")
		}
		return true
	})

	assert.Equal(t, []string{"@tailwind", ".btn", "@apply", "color"}, visited)
}

func TestStylesheet_WalkStops(t *testing.T) {
	count := 0
	sampleSheet().Walk(func(_ *domain.Node) bool {
		count++
		return count < 2
	})

	assert.Equal(t, 2, count)
}

func TestStylesheet_CloneIsDeep(t *testing.T) {
	original := sampleSheet()
	clone := original.Clone()

	clone.Nodes[1].Nodes[1].Value = "blue"

	assert.Equal(t, "red", original.Nodes[1].Nodes[1].Value)
	assert.Equal(t, original.Source, clone.Source)
}

func TestStylesheet_WithNodesPreservesSource(t *testing.T) {
	original := sampleSheet()
	replaced := original.WithNodes([]*domain.Node{{Kind: domain.NodeComment, Text: "x"}})

	require.Len(t, replaced.Nodes, 1)
	assert.Equal(t, original.Source, replaced.Source)
	assert.Len(t, original.Nodes, 2, "the input tree is not mutated")
}
