package compiler

import "go.trai.ch/breeze/internal/core/domain"

// variant wraps generated declarations in a pseudo-class or a media query.
type variant struct {
	pseudo string
	media  string
}

var variants = map[string]variant{
	"hover":         {pseudo: ":hover"},
	"focus":         {pseudo: ":focus"},
	"focus-visible": {pseudo: ":focus-visible"},
	"focus-within":  {pseudo: ":focus-within"},
	"active":        {pseudo: ":active"},
	"visited":       {pseudo: ":visited"},
	"disabled":      {pseudo: ":disabled"},
	"first":         {pseudo: ":first-child"},
	"last":          {pseudo: ":last-child"},
	"odd":           {pseudo: ":nth-child(odd)"},
	"even":          {pseudo: ":nth-child(even)"},
	"sm":            {media: "(min-width: 40rem)"},
	"md":            {media: "(min-width: 48rem)"},
	"lg":            {media: "(min-width: 64rem)"},
	"xl":            {media: "(min-width: 80rem)"},
	"2xl":           {media: "(min-width: 96rem)"},
	"dark":          {media: "(prefers-color-scheme: dark)"},
	"print":         {media: "print"},
	"motion-safe":   {media: "(prefers-reduced-motion: no-preference)"},
	"motion-reduce": {media: "(prefers-reduced-motion: reduce)"},
}

// resolveVariants returns the pseudo-classes appended to the selector and the
// media queries wrapping the rule, outermost first.
func resolveVariants(names []string) (string, []string, bool) {
	var (
		pseudo string
		media  []string
	)
	for _, name := range names {
		v, ok := variants[name]
		if !ok {
			return "", nil, false
		}
		pseudo += v.pseudo
		if v.media != "" {
			media = append(media, v.media)
		}
	}
	return pseudo, media, true
}

// wrapMedia nests node in one media block per query, the first query outermost.
func wrapMedia(node *domain.Node, media []string) *domain.Node {
	for i := len(media) - 1; i >= 0; i-- {
		node = &domain.Node{
			Kind:   domain.NodeAtRule,
			Name:   "media",
			Params: media[i],
			Block:  true,
			Nodes:  []*domain.Node{node},
		}
	}
	return node
}
