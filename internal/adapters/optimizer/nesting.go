package optimizer

import (
	"strings"

	"go.trai.ch/breeze/internal/core/domain"
)

// nativeNesting are the first releases that parse nested style rules.
var nativeNesting = Targets{
	Safari:  Version{Major: 16, Minor: 5},
	Chrome:  Version{Major: 112},
	Firefox: Version{Major: 117},
}

// lacksNesting reports whether any target predates native nesting.
func (t Targets) lacksNesting() bool {
	return t.Safari.Less(nativeNesting.Safari) ||
		t.Chrome.Less(nativeNesting.Chrome) ||
		t.Firefox.Less(nativeNesting.Firefox)
}

// flatten hoists nested rules to the top level, resolving `&` against the
// enclosing selectors. Conditional at-rules nested in a rule are kept and receive
// a copy of the enclosing selector.
func flatten(nodes []*domain.Node) []*domain.Node {
	return flattenIn(nodes, nil)
}

func flattenIn(nodes []*domain.Node, parents []string) []*domain.Node {
	var (
		out []*domain.Node
		own *domain.Node
	)
	for _, n := range nodes {
		switch {
		case n.Kind == domain.NodeRule:
			selectors := resolveSelectors(parents, splitSelectors(n.Selector))
			out = append(out, flattenIn(n.Nodes, selectors)...)
		case n.Kind == domain.NodeAtRule && n.Block:
			out = append(out, &domain.Node{
				Kind:   domain.NodeAtRule,
				Name:   n.Name,
				Params: n.Params,
				Block:  true,
				Nodes:  flattenIn(n.Nodes, parents),
			})
		case parents == nil:
			out = append(out, n)
		default:
			if own == nil {
				own = &domain.Node{Kind: domain.NodeRule, Selector: strings.Join(parents, ", ")}
				out = append(out, own)
			}
			own.Nodes = append(own.Nodes, n)
		}
	}
	return out
}

func resolveSelectors(parents, children []string) []string {
	if len(parents) == 0 {
		return children
	}

	out := make([]string, 0, len(parents)*len(children))
	for _, p := range parents {
		for _, c := range children {
			if strings.Contains(c, "&") {
				out = append(out, strings.ReplaceAll(c, "&", p))
			} else {
				out = append(out, p+" "+c)
			}
		}
	}
	return out
}

// splitSelectors splits a selector list on commas outside of brackets and parentheses.
func splitSelectors(list string) []string {
	var (
		out   []string
		depth int
		start int
	)
	for i, r := range list {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				out = appendSelector(out, list[start:i])
				start = i + 1
			}
		}
	}
	return appendSelector(out, list[start:])
}

func appendSelector(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}
