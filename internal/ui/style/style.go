// Package style holds the colors and glyphs used by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Sky    = lipgloss.Color("#38BDF8")
	Slate  = lipgloss.Color("#64748B")
	Green  = lipgloss.Color("#22C55E")
	Red    = lipgloss.Color("#EF4444")
	Yellow = lipgloss.Color("#EAB308")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Skip    = "~"
	Arrow   = "→"
)

// Bold renders s in bold with lipgloss, which honors NO_COLOR and non-TTY output.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
