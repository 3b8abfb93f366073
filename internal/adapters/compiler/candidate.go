package compiler

import (
	"strings"
)

// candidate is a parsed utility class name.
type candidate struct {
	raw       string
	variants  []string
	base      string
	negative  bool
	important bool
}

// parseCandidate splits raw into variants, base utility and modifiers.
// Variants are separated by colons outside of arbitrary values.
func parseCandidate(raw string) (candidate, bool) {
	c := candidate{raw: raw}

	var (
		parts []string
		depth int
		start int
	)
	for i, r := range raw {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ':':
			if depth == 0 {
				parts = append(parts, raw[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, raw[start:])

	base := parts[len(parts)-1]
	c.variants = parts[:len(parts)-1]
	for _, v := range c.variants {
		if v == "" {
			return candidate{}, false
		}
	}

	if b, ok := strings.CutSuffix(base, "!"); ok {
		base, c.important = b, true
	} else if b, ok := strings.CutPrefix(base, "!"); ok {
		base, c.important = b, true
	}
	if b, ok := strings.CutPrefix(base, "-"); ok {
		base, c.negative = b, true
	}
	if base == "" {
		return candidate{}, false
	}
	c.base = base
	return c, true
}

// arbitrary returns the content of an arbitrary value like `[10px]`, with
// underscores standing for spaces.
func arbitrary(value string) (string, bool) {
	inner, ok := strings.CutPrefix(value, "[")
	if !ok {
		return "", false
	}
	inner, ok = strings.CutSuffix(inner, "]")
	if !ok || inner == "" {
		return "", false
	}
	return strings.ReplaceAll(inner, "_", " "), true
}

// escapeClass escapes name for use in a class selector.
func escapeClass(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-', r == '_', r > 0x7f:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteString(`\3`)
				b.WriteRune(r)
				b.WriteByte(' ')
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
