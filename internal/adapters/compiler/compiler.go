// Package compiler implements the utility CSS engine behind the build stage.
package compiler

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	applyDirective      = "apply"
	generationDirective = "tailwind"
	sourceDirective     = "source"
	pluginDirective     = "plugin"
	utilityDirective    = "utility"
	utilitiesLayer      = "utilities"
)

var (
	_ ports.CompilerFactory     = (*Factory)(nil)
	_ ports.IncrementalCompiler = (*Compiler)(nil)
)

// Factory creates compiler handles from stylesheet source.
type Factory struct {
	parser   ports.StylesheetParser
	printer  ports.StylesheetPrinter
	builtins *registry
}

// NewFactory creates a factory parsing sources with parser and rendering with printer.
func NewFactory(parser ports.StylesheetParser, printer ports.StylesheetPrinter) *Factory {
	return &Factory{parser: parser, printer: printer, builtins: newRegistry()}
}

// New implements ports.CompilerFactory. It registers `@utility` blocks and
// `@plugin` utilities, collects `@source` globs and expands every `@apply`.
func (f *Factory) New(ctx context.Context, source string, opts ports.CompilerOptions) (ports.Compiler, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet, err := f.parser.Parse(source, domain.SourceOptions{From: opts.Base})
	if err != nil {
		return nil, err
	}

	c := &Compiler{
		printer:  f.printer,
		registry: f.builtins.clone(),
		known:    make(map[string]struct{}),
	}

	nodes, err := c.collect(sheet.Nodes, opts)
	if err != nil {
		return nil, err
	}
	nodes, err = c.expandApplies(nodes)
	if err != nil {
		return nil, err
	}
	c.template = sheet.WithNodes(nodes)
	return c, nil
}

// Compiler is a stateful handle. It remembers every candidate it has seen and
// only ever appends rules for new ones.
type Compiler struct {
	printer  ports.StylesheetPrinter
	registry *registry
	template *domain.Stylesheet
	globs    []string

	known  map[string]struct{}
	rules  []*domain.Node
	output string
	built  bool
}

// Globs implements ports.Compiler.
func (c *Compiler) Globs() []string {
	return slices.Clone(c.globs)
}

// Build implements ports.Compiler.
func (c *Compiler) Build(candidates []string) (string, error) {
	c.add(candidates)
	c.render()
	return c.output, nil
}

// BuildIncremental implements ports.IncrementalCompiler. Without new valid
// candidates the previous output is returned unchanged.
func (c *Compiler) BuildIncremental(candidates []string) (string, error) {
	if c.add(candidates) == 0 && c.built {
		return c.output, nil
	}
	c.render()
	return c.output, nil
}

type generated struct {
	node     *domain.Node
	variants int
	rank     int
	name     string
}

// add generates rules for unseen candidates and returns how many were valid.
func (c *Compiler) add(candidates []string) int {
	var batch []generated
	for _, raw := range candidates {
		if _, ok := c.known[raw]; ok {
			continue
		}
		c.known[raw] = struct{}{}

		if g, ok := c.generate(raw); ok {
			batch = append(batch, g)
		}
	}

	slices.SortFunc(batch, func(a, b generated) int {
		if a.variants != b.variants {
			return a.variants - b.variants
		}
		if a.rank != b.rank {
			return a.rank - b.rank
		}
		return strings.Compare(a.name, b.name)
	})
	for _, g := range batch {
		c.rules = append(c.rules, g.node)
	}
	return len(batch)
}

func (c *Compiler) generate(raw string) (generated, bool) {
	cand, ok := parseCandidate(raw)
	if !ok {
		return generated{}, false
	}
	decls, rank, ok := c.registry.lookup(cand.base, cand.negative)
	if !ok {
		return generated{}, false
	}
	pseudo, media, ok := resolveVariants(cand.variants)
	if !ok {
		return generated{}, false
	}

	rule := &domain.Node{
		Kind:     domain.NodeRule,
		Selector: "." + escapeClass(raw) + pseudo,
		Nodes:    declNodes(decls, cand.important),
	}
	return generated{node: wrapMedia(rule, media), variants: len(cand.variants), rank: rank, name: raw}, true
}

func (c *Compiler) render() {
	placed := false
	var replace func(nodes []*domain.Node) []*domain.Node
	replace = func(nodes []*domain.Node) []*domain.Node {
		out := make([]*domain.Node, 0, len(nodes))
		for _, n := range nodes {
			if n.Kind == domain.NodeAtRule && n.Name == generationDirective {
				if !placed && n.Params == utilitiesLayer {
					placed = true
					for _, r := range c.rules {
						out = append(out, r.Clone())
					}
				}
				continue
			}
			if len(n.Nodes) > 0 {
				n.Nodes = replace(n.Nodes)
			}
			out = append(out, n)
		}
		return out
	}

	sheet := c.template.Clone()
	c.output = c.printer.Print(sheet.WithNodes(replace(sheet.Nodes)))
	c.built = true
}

// collect handles the top-level configuration directives and removes them.
func (c *Compiler) collect(nodes []*domain.Node, opts ports.CompilerOptions) ([]*domain.Node, error) {
	out := make([]*domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != domain.NodeAtRule {
			out = append(out, n)
			continue
		}

		switch n.Name {
		case sourceDirective:
			if pattern, ok := unquote(n.Params); ok {
				c.globs = append(c.globs, pattern)
			}
		case pluginDirective:
			if err := c.loadPlugin(n.Params, opts.ResolvePlugin); err != nil {
				return nil, err
			}
		case utilityDirective:
			if !n.Block || n.Params == "" {
				return nil, zerr.With(zerr.Wrap(domain.ErrCompilerBuild, "@utility needs a name and a block"), "params", n.Params)
			}
			var decls []decl
			for _, child := range n.Nodes {
				if child.Kind == domain.NodeDecl {
					decls = append(decls, decl{prop: child.Prop, value: child.Value})
				}
			}
			c.registry.addStatic(n.Params, decls...)
		default:
			out = append(out, n)
		}
	}
	return out, nil
}

func (c *Compiler) loadPlugin(params string, resolve ports.PluginResolver) error {
	specifier, ok := unquote(params)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "invalid @plugin"), "params", params)
	}
	if resolve == nil {
		return zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "no plugin resolver"), "plugin", specifier)
	}

	path, err := resolve(specifier)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "resolve plugin"), "plugin", specifier)
	}

	utilities, err := loadPlugin(path)
	if err != nil {
		return zerr.With(err, "plugin", specifier)
	}
	for _, u := range utilities {
		c.registry.addStatic(u.name, u.decls...)
	}
	return nil
}

// expandApplies replaces every `@apply` with the declarations of the named utilities.
func (c *Compiler) expandApplies(nodes []*domain.Node) ([]*domain.Node, error) {
	out := make([]*domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == domain.NodeAtRule && n.Name == applyDirective {
			expanded, err := c.apply(n.Params)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
			continue
		}

		if len(n.Nodes) > 0 {
			children, err := c.expandApplies(n.Nodes)
			if err != nil {
				return nil, err
			}
			n.Nodes = children
		}
		out = append(out, n)
	}
	return out, nil
}

func (c *Compiler) apply(params string) ([]*domain.Node, error) {
	var out []*domain.Node
	for _, raw := range strings.Fields(params) {
		cand, ok := parseCandidate(raw)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownUtility, "invalid candidate"), "utility", raw)
		}
		decls, _, ok := c.registry.lookup(cand.base, cand.negative)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownUtility, "cannot apply"), "utility", raw)
		}
		pseudo, media, ok := resolveVariants(cand.variants)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownUtility, "unknown variant"), "utility", raw)
		}

		nodes := declNodes(decls, cand.important)
		if pseudo != "" {
			nodes = []*domain.Node{{Kind: domain.NodeRule, Selector: "&" + pseudo, Nodes: nodes}}
		}
		for i := len(media) - 1; i >= 0; i-- {
			nodes = []*domain.Node{{
				Kind:   domain.NodeAtRule,
				Name:   "media",
				Params: media[i],
				Block:  true,
				Nodes:  nodes,
			}}
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func declNodes(decls []decl, important bool) []*domain.Node {
	nodes := make([]*domain.Node, 0, len(decls))
	for _, d := range decls {
		value := d.value
		if important {
			value += " !important"
		}
		nodes = append(nodes, &domain.Node{Kind: domain.NodeDecl, Prop: d.prop, Value: value})
	}
	return nodes
}

func unquote(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1], true
	}
	return "", false
}
