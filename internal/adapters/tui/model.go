// Package tui provides a live dashboard of the entries built in watch mode.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	tickInterval = 120 * time.Millisecond
	// maxErrors is the number of failures kept in the error pane.
	maxErrors = 5
)

// EntryStatus represents the current state of an entry.
type EntryStatus string

const (
	// StatusRunning indicates the entry is being built.
	StatusRunning EntryStatus = "Running"
	// StatusDone indicates the last build succeeded.
	StatusDone EntryStatus = "Done"
	// StatusSkipped indicates the stylesheet has no directives.
	StatusSkipped EntryStatus = "Skipped"
	// StatusError indicates the last build failed.
	StatusError EntryStatus = "Error"
)

// EntryRow represents a single entry in the dashboard.
type EntryRow struct {
	Input    string
	Output   string
	Status   EntryStatus
	Report   Report
	Rebuilds int
}

// Report is the part of the last build report shown for an entry.
type Report struct {
	Decision   string
	Candidates int
	Written    bool
	Duration   time.Duration
}

// Model represents the dashboard state.
type Model struct {
	Entries []EntryRow
	Errors  []string
	Width   int
	Height  int
	Frame   int

	index map[string]int
}

// NewModel creates an empty dashboard.
func NewModel() *Model {
	return &Model{index: make(map[string]int)}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case msgTick:
		m.Frame++
		return m, tick()
	case MsgBuildStart:
		row := m.row(msg.Input)
		row.Status = StatusRunning
	case MsgBuildComplete:
		m.complete(msg)
	}
	return m, nil
}

func (m *Model) complete(msg MsgBuildComplete) {
	row := m.row(msg.Report.Input)
	row.Output = msg.Report.Output
	row.Rebuilds++
	row.Report = Report{
		Decision:   msg.Report.Decision.String(),
		Candidates: msg.Report.Candidates,
		Written:    msg.Report.Written,
		Duration:   msg.Report.Duration,
	}

	switch {
	case msg.Err != nil:
		row.Status = StatusError
		m.Errors = append(m.Errors, msg.Report.Input+": "+msg.Err.Error())
		if len(m.Errors) > maxErrors {
			m.Errors = m.Errors[len(m.Errors)-maxErrors:]
		}
	case msg.Report.Skipped:
		row.Status = StatusSkipped
	default:
		row.Status = StatusDone
	}
}

// row returns the row of input, adding it in arrival order.
func (m *Model) row(input string) *EntryRow {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	i, ok := m.index[input]
	if !ok {
		i = len(m.Entries)
		m.index[input] = i
		m.Entries = append(m.Entries, EntryRow{Input: input})
	}
	return &m.Entries[i]
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return msgTick{}
	})
}
