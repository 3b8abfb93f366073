// Package linear reports entry builds as one line per finished build.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/breeze/internal/adapters/detector"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/breeze/internal/ui/output"
	"go.trai.ch/breeze/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter with line-oriented output.
type Reporter struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewReporter creates a reporter writing to w, stderr when nil. ModePlain disables colors.
func NewReporter(w io.Writer, mode detector.OutputMode) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	profile := output.ColorProfile()
	if mode == detector.ModePlain {
		profile = termenv.Ascii
	}
	return &Reporter{out: output.NewWithProfile(w, profile)}
}

// OnBuildStart implements ports.Reporter. Starts are not printed.
func (r *Reporter) OnBuildStart(string) {}

// OnBuildComplete implements ports.Reporter.
func (r *Reporter) OnBuildComplete(report ports.BuildReport, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	elapsed := report.Duration.Round(time.Millisecond)
	var line string
	switch {
	case err != nil:
		line = r.colored(style.Cross, style.Red) + fmt.Sprintf(" %s failed after %s", report.Input, elapsed)
	case report.Skipped:
		line = r.colored(style.Skip, style.Slate) + fmt.Sprintf(" %s has no directives, copied unchanged", report.Input)
	case !report.Written:
		line = r.colored(style.Check, style.Green) + fmt.Sprintf(" %s %s %s unchanged (%s, %s)",
			report.Input, style.Arrow, report.Output, report.Decision, elapsed)
	default:
		line = r.colored(style.Check, style.Green) + fmt.Sprintf(" %s %s %s (%s, %d candidates, %s)",
			report.Input, style.Arrow, report.Output, report.Decision, report.Candidates, elapsed)
	}
	_, _ = r.out.WriteString(line + "\n")
}

func (r *Reporter) colored(s string, c lipgloss.Color) string {
	return r.out.String(s).Foreground(r.out.Color(string(c))).String()
}
