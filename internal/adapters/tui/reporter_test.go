package tui_test

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/breeze/internal/adapters/tui"
	"go.trai.ch/breeze/internal/core/ports"
)

func newTestReporter() *tui.Reporter {
	return tui.NewReporter(
		tui.NewModel(),
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
}

func TestReporter_Lifecycle(t *testing.T) {
	reporter := newTestReporter()

	require.NoError(t, reporter.Start(context.Background()))
	require.NoError(t, reporter.Stop())
	require.NoError(t, reporter.Wait())
}

func TestReporter_ForwardsBuilds(t *testing.T) {
	reporter := newTestReporter()
	require.NoError(t, reporter.Start(context.Background()))

	reporter.OnBuildStart("app.css")
	reporter.OnBuildComplete(ports.BuildReport{Input: "app.css", Written: true}, nil)

	require.NoError(t, reporter.Stop())
	require.NoError(t, reporter.Wait())
}
