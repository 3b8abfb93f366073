// Package optimizer lowers generated CSS for the supported browser targets.
package optimizer

import (
	"strings"

	"go.trai.ch/breeze/internal/adapters/css"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// Version is a browser version.
type Version struct {
	Major int
	Minor int
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// Targets are the oldest browser versions the output must support.
type Targets struct {
	Safari  Version
	Chrome  Version
	Firefox Version
}

// DefaultTargets are the browsers supported by default.
var DefaultTargets = Targets{
	Safari:  Version{Major: 16, Minor: 4},
	Chrome:  Version{Major: 111},
	Firefox: Version{Major: 128},
}

// Features toggles the individual transformations.
type Features struct {
	// FlattenNesting rewrites nested rules into top-level rules when a target
	// predates native nesting.
	FlattenNesting bool
	// LogicalProperties rewrites logical properties into physical ones.
	LogicalProperties bool
	// DeepSelectorCombinator rewrites the `>>>` and `/deep/` combinators to a descendant combinator.
	DeepSelectorCombinator bool
	// ErrorRecovery drops malformed statements instead of failing.
	ErrorRecovery bool
}

// DefaultFeatures are the transformations enabled by default.
var DefaultFeatures = Features{
	FlattenNesting:         true,
	DeepSelectorCombinator: true,
	ErrorRecovery:          true,
}

// Optimizer implements ports.Optimizer on the stylesheet tree.
type Optimizer struct {
	targets  Targets
	features Features
	parser   *css.Parser
}

// New creates an optimizer with the default targets and features.
func New() *Optimizer {
	return NewWith(DefaultTargets, DefaultFeatures)
}

// NewWith creates an optimizer for the given targets and features.
func NewWith(targets Targets, features Features) *Optimizer {
	var opts []css.ParserOption
	if features.ErrorRecovery {
		opts = append(opts, css.WithErrorRecovery())
	}
	return &Optimizer{
		targets:  targets,
		features: features,
		parser:   css.NewParser(opts...),
	}
}

// Optimize implements ports.Optimizer.
func (o *Optimizer) Optimize(text string, opts ports.OptimizeOptions) (string, error) {
	sheet, err := o.parser.Parse(text, domain.SourceOptions{From: opts.Filename})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrOptimizerFailed.Error()), "file", opts.Filename)
	}

	nodes := sheet.Clone().Nodes
	if o.features.DeepSelectorCombinator {
		nodes = rewriteSelectors(nodes, replaceDeepCombinators)
	}
	if o.features.FlattenNesting && o.targets.lacksNesting() {
		nodes = flatten(nodes)
	}
	if o.features.LogicalProperties {
		nodes = rewriteDeclarations(nodes, physicalProperties)
	}
	nodes = rewriteDeclarations(nodes, o.prefixer())
	if opts.Minify {
		nodes = prune(nodes)
	}

	out := sheet.WithNodes(nodes)
	if opts.Minify {
		return css.NewMinifyPrinter().Print(out), nil
	}
	return css.NewPrinter().Print(out), nil
}

func rewriteSelectors(nodes []*domain.Node, fn func(string) string) []*domain.Node {
	for _, n := range nodes {
		if n.Kind == domain.NodeRule {
			n.Selector = fn(n.Selector)
		}
		n.Nodes = rewriteSelectors(n.Nodes, fn)
	}
	return nodes
}

func replaceDeepCombinators(selector string) string {
	if !strings.Contains(selector, ">>>") && !strings.Contains(selector, "/deep/") {
		return selector
	}
	selector = strings.ReplaceAll(selector, ">>>", " ")
	selector = strings.ReplaceAll(selector, "/deep/", " ")
	return strings.Join(strings.Fields(selector), " ")
}

// rewriteDeclarations replaces every declaration by the declarations fn returns for it.
func rewriteDeclarations(nodes []*domain.Node, fn func(*domain.Node) []*domain.Node) []*domain.Node {
	out := make([]*domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == domain.NodeDecl {
			out = append(out, fn(n)...)
			continue
		}
		n.Nodes = rewriteDeclarations(n.Nodes, fn)
		out = append(out, n)
	}
	return out
}

// prune drops comments and empty rules.
func prune(nodes []*domain.Node) []*domain.Node {
	out := make([]*domain.Node, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case domain.NodeComment:
			continue
		case domain.NodeRule:
			n.Nodes = prune(n.Nodes)
			if len(n.Nodes) == 0 {
				continue
			}
		case domain.NodeAtRule:
			if n.Block {
				n.Nodes = prune(n.Nodes)
				if len(n.Nodes) == 0 {
					continue
				}
			}
		}
		out = append(out, n)
	}
	return out
}
