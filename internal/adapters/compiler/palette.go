package compiler

import "strings"

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

var palette = map[string][]string{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"},
	"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"},
	"yellow": {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"},
	"indigo": {"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"},
}

var namedColors = map[string]string{
	"white":       "#fff",
	"black":       "#000",
	"transparent": "transparent",
	"current":     "currentcolor",
	"inherit":     "inherit",
}

// color resolves `red-500`, `white`, `[#bada55]` and their `/<opacity>` forms.
func color(value string) (string, bool) {
	if v, ok := arbitrary(value); ok {
		return v, true
	}

	name, alpha, hasAlpha := strings.Cut(value, "/")
	resolved, ok := namedColors[name]
	if !ok {
		family, shade, found := strings.Cut(name, "-")
		if !found {
			return "", false
		}
		values, ok := palette[family]
		if !ok {
			return "", false
		}
		idx := indexOf(shades, shade)
		if idx < 0 {
			return "", false
		}
		resolved = values[idx]
	}

	if !hasAlpha {
		return resolved, true
	}
	pct, ok := percentage(alpha)
	if !ok {
		return "", false
	}
	return "color-mix(in oklab, " + resolved + " " + pct + ", transparent)", true
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
