package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/breeze/internal/core/ports"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter runs the dashboard as a Bubble Tea program and implements ports.Reporter.
type Reporter struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewReporter creates a dashboard reporter for model.
func NewReporter(model *Model, opts ...tea.ProgramOption) *Reporter {
	return &Reporter{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the dashboard in a background goroutine.
func (r *Reporter) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the dashboard to quit.
func (r *Reporter) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the dashboard has terminated.
func (r *Reporter) Wait() error {
	return <-r.errCh
}

// OnBuildStart implements ports.Reporter.
func (r *Reporter) OnBuildStart(input string) {
	r.program.Send(MsgBuildStart{Input: input})
}

// OnBuildComplete implements ports.Reporter.
func (r *Reporter) OnBuildComplete(report ports.BuildReport, err error) {
	r.program.Send(MsgBuildComplete{Report: report, Err: err})
}
