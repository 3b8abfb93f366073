package domain

import "slices"

// NodeKind identifies the shape of a stylesheet node.
type NodeKind uint8

const (
	// NodeRule is a qualified rule (`selector { ... }`).
	NodeRule NodeKind = iota
	// NodeAtRule is an at-rule, with or without a block.
	NodeAtRule
	// NodeDecl is a property declaration.
	NodeDecl
	// NodeComment is a comment preserved from the source.
	NodeComment
)

// Node is one node of a parsed stylesheet.
type Node struct {
	Kind NodeKind
	// Selector is set for rules.
	Selector string
	// Name and Params are set for at-rules. Name excludes the leading '@'.
	Name   string
	Params string
	// Prop and Value are set for declarations. Value keeps any !important suffix.
	Prop  string
	Value string
	// Text is the inner text of a comment.
	Text string
	// Block reports whether an at-rule carries a `{}` block. Rules always do.
	Block bool
	Nodes []*Node
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Nodes = cloneNodes(n.Nodes)
	return &c
}

func cloneNodes(nodes []*Node) []*Node {
	if nodes == nil {
		return nil
	}
	out := make([]*Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// SourceOptions are the parse and source-map options carried with a stylesheet.
type SourceOptions struct {
	// From is the absolute path the stylesheet was read from, empty for piped input.
	From string
	// Map requests a source map from downstream serializers.
	Map bool
}

// Stylesheet is a parsed stylesheet tree.
type Stylesheet struct {
	Nodes  []*Node
	Source SourceOptions
}

// Clone returns a deep copy of s.
func (s *Stylesheet) Clone() *Stylesheet {
	return &Stylesheet{Nodes: cloneNodes(s.Nodes), Source: s.Source}
}

// WithNodes returns a new stylesheet with the given top-level nodes and the
// source options of s.
func (s *Stylesheet) WithNodes(nodes []*Node) *Stylesheet {
	return &Stylesheet{Nodes: slices.Clip(nodes), Source: s.Source}
}

// Walk visits every node depth-first in document order. Returning false from
// fn stops the traversal.
func (s *Stylesheet) Walk(fn func(*Node) bool) {
	walkNodes(s.Nodes, fn)
}

func walkNodes(nodes []*Node, fn func(*Node) bool) bool {
	for _, n := range nodes {
		if !fn(n) {
			return false
		}
		if !walkNodes(n.Nodes, fn) {
			return false
		}
	}
	return true
}
