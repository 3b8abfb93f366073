package stage

import "go.trai.ch/breeze/internal/core/domain"

const (
	// ApplyDirective inlines the declarations of existing utilities.
	ApplyDirective = "apply"
	// GenerationDirective marks where generated utilities are emitted.
	GenerationDirective = "tailwind"
)

// Directives records which utility directives a stylesheet uses.
type Directives struct {
	Apply      bool
	Generation bool
}

// Any reports whether the stylesheet needs compiler work at all.
func (d Directives) Any() bool {
	return d.Apply || d.Generation
}

// DetectDirectives walks sheet once, top to bottom.
func DetectDirectives(sheet *domain.Stylesheet) Directives {
	var d Directives
	if sheet == nil {
		return d
	}

	sheet.Walk(func(n *domain.Node) bool {
		if n.Kind != domain.NodeAtRule {
			return true
		}
		switch n.Name {
		case ApplyDirective:
			d.Apply = true
		case GenerationDirective:
			d.Generation = true
		}
		return !(d.Apply && d.Generation)
	})

	return d
}
