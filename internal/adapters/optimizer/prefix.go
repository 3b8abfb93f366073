package optimizer

import "go.trai.ch/breeze/internal/core/domain"

type prefixRule struct {
	prefixed string
	value    string
	needed   func(Targets) bool
}

var (
	safari18  = Version{Major: 18}
	chrome120 = Version{Major: 120}
)

// prefixRules lists the properties that still need a vendor prefix for some targets.
// An empty value matches any value.
var prefixRules = map[string]prefixRule{
	"backdrop-filter": {
		prefixed: "-webkit-backdrop-filter",
		needed:   func(t Targets) bool { return t.Safari.Less(safari18) },
	},
	"user-select": {
		prefixed: "-webkit-user-select",
		needed:   func(Targets) bool { return true },
	},
	"text-size-adjust": {
		prefixed: "-webkit-text-size-adjust",
		needed:   func(Targets) bool { return true },
	},
	"background-clip": {
		prefixed: "-webkit-background-clip",
		value:    "text",
		needed:   func(t Targets) bool { return t.Chrome.Less(chrome120) },
	},
	"mask-image": {
		prefixed: "-webkit-mask-image",
		needed:   func(t Targets) bool { return t.Chrome.Less(chrome120) },
	},
}

func (o *Optimizer) prefixer() func(*domain.Node) []*domain.Node {
	return func(n *domain.Node) []*domain.Node {
		rule, ok := prefixRules[n.Prop]
		if !ok || !rule.needed(o.targets) || (rule.value != "" && rule.value != n.Value) {
			return []*domain.Node{n}
		}
		return []*domain.Node{
			{Kind: domain.NodeDecl, Prop: rule.prefixed, Value: n.Value},
			n,
		}
	}
}
