package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/breeze/internal/ui/style"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var (
	colorWhite = lipgloss.Color("#FFFFFF")

	entryRunningStyle = lipgloss.NewStyle().
				Foreground(style.Sky).
				Bold(true)

	entryDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	entrySkippedStyle = lipgloss.NewStyle().
				Foreground(style.Slate).
				Faint(true)

	entryErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	detailStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(style.Slate).
			MarginTop(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Sky).
			Foreground(colorWhite)
)
