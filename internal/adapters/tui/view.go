package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/breeze/internal/ui/style"
)

// View renders the entry list followed by the most recent failures.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("BREEZE") + " " + detailStyle.Render("watching, q to quit") + "\n\n")

	rows := m.Entries
	// Keep the newest rows when the terminal is too short.
	if limit := m.Height - 4; limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	for _, row := range rows {
		s.WriteString(m.entryLine(row) + "\n")
	}

	if len(m.Errors) > 0 {
		s.WriteString(errorPaneStyle.Render(entryErrorStyle.Render(strings.Join(m.Errors, "\n"))) + "\n")
	}
	return s.String()
}

func (m *Model) entryLine(row EntryRow) string {
	var (
		icon string
		st   lipgloss.Style
	)
	switch row.Status {
	case StatusRunning:
		icon = spinnerFrames[m.Frame%len(spinnerFrames)]
		st = entryRunningStyle
	case StatusDone:
		icon = style.Check
		st = entryDoneStyle
	case StatusSkipped:
		icon = style.Skip
		st = entrySkippedStyle
	case StatusError:
		icon = style.Cross
		st = entryErrorStyle
	}

	line := st.Render(fmt.Sprintf("%s %s", icon, row.Input))
	if row.Output != "" {
		line += " " + style.Arrow + " " + row.Output
	}
	if row.Rebuilds == 0 || row.Status == StatusRunning {
		return line
	}

	detail := fmt.Sprintf("%s, %s", row.Report.Decision, row.Report.Duration.Round(time.Millisecond))
	if row.Status == StatusDone {
		detail = fmt.Sprintf("%s, %d candidates", detail, row.Report.Candidates)
		if !row.Report.Written {
			detail += ", unchanged"
		}
	}
	return fmt.Sprintf("%s %s #%d", line, detailStyle.Render("("+detail+")"), row.Rebuilds)
}
