package css

import (
	"strings"

	"go.trai.ch/breeze/internal/core/domain"
)

const indentUnit = "  "

// Printer serializes stylesheet trees.
type Printer struct {
	minify bool
}

// NewPrinter creates a printer producing indented output.
func NewPrinter() *Printer {
	return &Printer{}
}

// NewMinifyPrinter creates a printer producing compact output without comments.
func NewMinifyPrinter() *Printer {
	return &Printer{minify: true}
}

// Print renders sheet as CSS text.
func (p *Printer) Print(sheet *domain.Stylesheet) string {
	if sheet == nil {
		return ""
	}

	var b strings.Builder
	if p.minify {
		p.compact(&b, sheet.Nodes)
		return b.String()
	}

	for i, n := range sheet.Nodes {
		if i > 0 && (n.Block || n.Kind == domain.NodeRule) {
			b.WriteByte('\n')
		}
		p.pretty(&b, n, 0)
	}
	return b.String()
}

func (p *Printer) pretty(b *strings.Builder, n *domain.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	b.WriteString(indent)

	switch n.Kind {
	case domain.NodeComment:
		b.WriteString("/* ")
		b.WriteString(n.Text)
		b.WriteString(" */\n")
	case domain.NodeDecl:
		b.WriteString(n.Prop)
		b.WriteString(": ")
		b.WriteString(n.Value)
		b.WriteString(";\n")
	case domain.NodeAtRule:
		b.WriteByte('@')
		b.WriteString(n.Name)
		if n.Params != "" {
			b.WriteByte(' ')
			b.WriteString(n.Params)
		}
		if !n.Block {
			b.WriteString(";\n")
			return
		}
		p.prettyBlock(b, n.Nodes, depth, indent)
	case domain.NodeRule:
		b.WriteString(n.Selector)
		p.prettyBlock(b, n.Nodes, depth, indent)
	}
}

func (p *Printer) prettyBlock(b *strings.Builder, children []*domain.Node, depth int, indent string) {
	if len(children) == 0 {
		b.WriteString(" {}\n")
		return
	}
	b.WriteString(" {\n")
	for _, c := range children {
		p.pretty(b, c, depth+1)
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

func (p *Printer) compact(b *strings.Builder, nodes []*domain.Node) {
	afterDecl := false
	for _, n := range nodes {
		if n.Kind == domain.NodeComment {
			continue
		}
		if afterDecl {
			b.WriteByte(';')
		}
		afterDecl = false

		switch n.Kind {
		case domain.NodeDecl:
			b.WriteString(n.Prop)
			b.WriteByte(':')
			b.WriteString(n.Value)
			afterDecl = true
		case domain.NodeAtRule:
			b.WriteByte('@')
			b.WriteString(n.Name)
			if n.Params != "" {
				b.WriteByte(' ')
				b.WriteString(n.Params)
			}
			if n.Block {
				b.WriteByte('{')
				p.compact(b, n.Nodes)
				b.WriteByte('}')
			} else {
				b.WriteByte(';')
			}
		case domain.NodeRule:
			b.WriteString(n.Selector)
			b.WriteByte('{')
			p.compact(b, n.Nodes)
			b.WriteByte('}')
		}
	}
}
