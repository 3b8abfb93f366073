package compiler

import (
	"math"
	"strconv"
	"strings"
)

type decl struct {
	prop  string
	value string
}

// functional resolves the value part of a utility like `p-4` or `bg-red-500`.
type functional func(value string, negative bool) ([]decl, bool)

// registry holds the utilities a compiler can generate. Utilities sort by
// registration order, which groups them by concern in the output.
type registry struct {
	static     map[string][]decl
	functional map[string]functional
	order      map[string]int
}

func newRegistry() *registry {
	r := &registry{
		static:     make(map[string][]decl),
		functional: make(map[string]functional),
		order:      make(map[string]int),
	}
	registerBuiltins(r)
	return r
}

func (r *registry) clone() *registry {
	c := &registry{
		static:     make(map[string][]decl, len(r.static)),
		functional: r.functional,
		order:      make(map[string]int, len(r.order)),
	}
	for k, v := range r.static {
		c.static[k] = v
	}
	for k, v := range r.order {
		c.order[k] = v
	}
	return c
}

func (r *registry) addStatic(name string, decls ...decl) {
	r.static[name] = decls
	r.rank(name)
}

func (r *registry) addFunctional(root string, fn functional) {
	r.functional[root] = fn
	r.rank(root)
}

// addStaticIn registers name with the sort rank of group.
func (r *registry) addStaticIn(group, name string, decls ...decl) {
	r.static[name] = decls
	r.order[name] = r.rank(group)
}

func (r *registry) rank(name string) int {
	if idx, ok := r.order[name]; ok {
		return idx
	}
	idx := len(r.order)
	r.order[name] = idx
	return idx
}

// lookup returns the declarations for base and its sort rank.
func (r *registry) lookup(base string, negative bool) ([]decl, int, bool) {
	if !negative {
		if decls, ok := r.static[base]; ok {
			return decls, r.order[base], true
		}
	}

	for i := len(base) - 1; i > 0; i-- {
		if base[i] != '-' {
			continue
		}
		root, value := base[:i], base[i+1:]
		fn, ok := r.functional[root]
		if !ok {
			continue
		}
		if decls, ok := fn(value, negative); ok {
			return decls, r.order[root], true
		}
	}
	return nil, 0, false
}

func registerBuiltins(r *registry) {
	for _, d := range []string{"block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid", "contents", "table"} {
		r.addStatic(d, decl{"display", d})
	}
	r.addStatic("hidden", decl{"display", "none"})

	for _, p := range []string{"static", "fixed", "absolute", "relative", "sticky"} {
		r.addStatic(p, decl{"position", p})
	}
	for _, side := range []string{"inset", "top", "right", "bottom", "left"} {
		r.addFunctional(side, inset(side))
	}
	r.addFunctional("z", func(value string, negative bool) ([]decl, bool) {
		if _, err := strconv.Atoi(value); err != nil && value != "auto" {
			return nil, false
		}
		return []decl{{"z-index", signed(value, negative)}}, true
	})

	r.addStatic("flex-row", decl{"flex-direction", "row"})
	r.addStatic("flex-col", decl{"flex-direction", "column"})
	r.addStatic("flex-wrap", decl{"flex-wrap", "wrap"})
	r.addStatic("flex-1", decl{"flex", "1 1 0%"})
	r.addStatic("grow", decl{"flex-grow", "1"})
	r.addStatic("shrink-0", decl{"flex-shrink", "0"})
	for _, a := range []string{"start", "end", "center", "baseline", "stretch"} {
		r.addStatic("items-"+a, decl{"align-items", flexValue(a)})
	}
	for _, j := range []string{"start", "end", "center", "between", "around", "evenly"} {
		r.addStatic("justify-"+j, decl{"justify-content", flexValue(j)})
	}
	r.addFunctional("grid-cols", func(value string, negative bool) ([]decl, bool) {
		n, err := strconv.Atoi(value)
		if err != nil || negative || n < 1 {
			return nil, false
		}
		return []decl{{"grid-template-columns", "repeat(" + value + ", minmax(0, 1fr))"}}, true
	})
	r.addFunctional("gap", spacingUtility(false, "gap"))
	r.addFunctional("gap-x", spacingUtility(false, "column-gap"))
	r.addFunctional("gap-y", spacingUtility(false, "row-gap"))

	r.addFunctional("p", spacingUtility(false, "padding"))
	r.addFunctional("px", spacingUtility(false, "padding-inline"))
	r.addFunctional("py", spacingUtility(false, "padding-block"))
	r.addFunctional("pt", spacingUtility(false, "padding-top"))
	r.addFunctional("pr", spacingUtility(false, "padding-right"))
	r.addFunctional("pb", spacingUtility(false, "padding-bottom"))
	r.addFunctional("pl", spacingUtility(false, "padding-left"))
	r.addFunctional("m", spacingUtility(true, "margin"))
	r.addFunctional("mx", spacingUtility(true, "margin-inline"))
	r.addFunctional("my", spacingUtility(true, "margin-block"))
	r.addFunctional("mt", spacingUtility(true, "margin-top"))
	r.addFunctional("mr", spacingUtility(true, "margin-right"))
	r.addFunctional("mb", spacingUtility(true, "margin-bottom"))
	r.addFunctional("ml", spacingUtility(true, "margin-left"))

	r.addFunctional("w", sizeUtility("width", "100vw"))
	r.addFunctional("h", sizeUtility("height", "100vh"))
	r.addFunctional("min-w", sizeUtility("min-width", "100vw"))
	r.addFunctional("min-h", sizeUtility("min-height", "100vh"))
	r.addFunctional("max-w", sizeUtility("max-width", "100vw"))
	r.addFunctional("size", func(value string, negative bool) ([]decl, bool) {
		v, ok := size(value, "100%")
		if !ok || negative {
			return nil, false
		}
		return []decl{{"width", v}, {"height", v}}, true
	})

	for name, px := range map[string][2]string{
		"xs":   {"0.75rem", "1rem"},
		"sm":   {"0.875rem", "1.25rem"},
		"base": {"1rem", "1.5rem"},
		"lg":   {"1.125rem", "1.75rem"},
		"xl":   {"1.25rem", "1.75rem"},
		"2xl":  {"1.5rem", "2rem"},
		"3xl":  {"1.875rem", "2.25rem"},
		"4xl":  {"2.25rem", "2.5rem"},
	} {
		r.addStaticIn("text-size", "text-"+name, decl{"font-size", px[0]}, decl{"line-height", px[1]})
	}
	for name, weight := range map[string]string{
		"thin": "100", "light": "300", "normal": "400", "medium": "500",
		"semibold": "600", "bold": "700", "extrabold": "800", "black": "900",
	} {
		r.addStaticIn("font-weight", "font-"+name, decl{"font-weight", weight})
	}
	r.addStatic("italic", decl{"font-style", "italic"})
	r.addStatic("not-italic", decl{"font-style", "normal"})
	r.addStatic("underline", decl{"text-decoration-line", "underline"})
	r.addStatic("line-through", decl{"text-decoration-line", "line-through"})
	r.addStatic("no-underline", decl{"text-decoration-line", "none"})
	r.addStatic("uppercase", decl{"text-transform", "uppercase"})
	r.addStatic("lowercase", decl{"text-transform", "lowercase"})
	r.addStatic("capitalize", decl{"text-transform", "capitalize"})
	for _, a := range []string{"left", "center", "right", "justify"} {
		r.addStatic("text-"+a, decl{"text-align", a})
	}
	r.addStatic("truncate", decl{"overflow", "hidden"}, decl{"text-overflow", "ellipsis"}, decl{"white-space", "nowrap"})

	r.addFunctional("text", colorUtility("color"))
	r.addFunctional("bg", colorUtility("background-color"))

	r.addStatic("border", decl{"border-style", "solid"}, decl{"border-width", "1px"})
	r.addFunctional("border", func(value string, negative bool) ([]decl, bool) {
		if negative {
			return nil, false
		}
		if _, err := strconv.Atoi(value); err == nil {
			return []decl{{"border-style", "solid"}, {"border-width", value + "px"}}, true
		}
		if c, ok := color(value); ok {
			return []decl{{"border-color", c}}, true
		}
		return nil, false
	})
	r.addStatic("rounded", decl{"border-radius", "0.25rem"})
	r.addFunctional("rounded", func(value string, negative bool) ([]decl, bool) {
		radius, ok := map[string]string{
			"none": "0", "sm": "0.125rem", "md": "0.375rem", "lg": "0.5rem",
			"xl": "0.75rem", "2xl": "1rem", "full": "calc(infinity * 1px)",
		}[value]
		if !ok || negative {
			return nil, false
		}
		return []decl{{"border-radius", radius}}, true
	})
	r.addFunctional("opacity", func(value string, negative bool) ([]decl, bool) {
		pct, ok := percentage(value)
		if !ok || negative {
			return nil, false
		}
		return []decl{{"opacity", pct}}, true
	})
	r.addStatic("shadow", decl{"box-shadow", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"})
	r.addStatic("cursor-pointer", decl{"cursor", "pointer"})
	r.addStatic("select-none", decl{"user-select", "none"})
	r.addStatic("overflow-hidden", decl{"overflow", "hidden"})
	r.addStatic("overflow-auto", decl{"overflow", "auto"})
	r.addStatic("sr-only",
		decl{"position", "absolute"},
		decl{"width", "1px"},
		decl{"height", "1px"},
		decl{"padding", "0"},
		decl{"margin", "-1px"},
		decl{"overflow", "hidden"},
		decl{"clip-path", "inset(50%)"},
		decl{"white-space", "nowrap"},
		decl{"border-width", "0"},
	)
}

func flexValue(v string) string {
	switch v {
	case "start", "end":
		return "flex-" + v
	case "between", "around", "evenly":
		return "space-" + v
	}
	return v
}

// spacingUtility maps the spacing scale (0.25rem per step) onto prop.
func spacingUtility(allowNegative bool, prop string) functional {
	return func(value string, negative bool) ([]decl, bool) {
		if negative && !allowNegative {
			return nil, false
		}
		if value == "auto" {
			if negative || !strings.HasPrefix(prop, "margin") {
				return nil, false
			}
			return []decl{{prop, "auto"}}, true
		}
		v, ok := spacing(value)
		if !ok {
			return nil, false
		}
		return []decl{{prop, signedLength(v, negative)}}, true
	}
}

func sizeUtility(prop, screen string) functional {
	return func(value string, negative bool) ([]decl, bool) {
		if negative {
			return nil, false
		}
		v, ok := size(value, screen)
		if !ok {
			return nil, false
		}
		return []decl{{prop, v}}, true
	}
}

func inset(prop string) functional {
	return func(value string, negative bool) ([]decl, bool) {
		v, ok := size(value, "")
		if !ok {
			return nil, false
		}
		return []decl{{prop, signedLength(v, negative)}}, true
	}
}

func colorUtility(prop string) functional {
	return func(value string, negative bool) ([]decl, bool) {
		c, ok := color(value)
		if !ok || negative {
			return nil, false
		}
		return []decl{{prop, c}}, true
	}
}

// spacing resolves a step of the spacing scale or an arbitrary length.
func spacing(value string) (string, bool) {
	if v, ok := arbitrary(value); ok {
		return v, true
	}
	switch value {
	case "px":
		return "1px", true
	case "0":
		return "0px", true
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 || math.Mod(n*2, 1) != 0 {
		return "", false
	}
	return strconv.FormatFloat(n*0.25, 'f', -1, 64) + "rem", true
}

// size resolves spacing steps, fractions and keywords.
func size(value, screen string) (string, bool) {
	switch value {
	case "auto":
		return "auto", true
	case "full":
		return "100%", true
	case "screen":
		if screen == "" {
			return "", false
		}
		return screen, true
	case "min", "max", "fit":
		return value + "-content", true
	}

	if num, den, ok := strings.Cut(value, "/"); ok {
		a, errA := strconv.Atoi(num)
		b, errB := strconv.Atoi(den)
		if errA != nil || errB != nil || b == 0 {
			return "", false
		}
		return strconv.FormatFloat(float64(a)*100/float64(b), 'f', -1, 64) + "%", true
	}
	return spacing(value)
}

func percentage(value string) (string, bool) {
	if v, ok := arbitrary(value); ok {
		return v, true
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n > 100 {
		return "", false
	}
	return strconv.Itoa(n) + "%", true
}

func signed(value string, negative bool) string {
	if negative {
		return "-" + value
	}
	return value
}

func signedLength(value string, negative bool) string {
	if !negative || value == "0px" || value == "auto" {
		return value
	}
	if strings.ContainsAny(value, "( ") {
		return "calc(" + value + " * -1)"
	}
	return "-" + value
}
