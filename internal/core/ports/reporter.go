package ports

import (
	"time"

	"go.trai.ch/breeze/internal/core/domain"
)

// BuildReport summarizes one entry build.
type BuildReport struct {
	Input      string
	Output     string
	Decision   domain.RebuildDecision
	Skipped    bool
	Written    bool
	Candidates int
	Duration   time.Duration
}

// Reporter presents build progress to the user.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnBuildStart is called when an entry starts building.
	OnBuildStart(input string)
	// OnBuildComplete is called when an entry finished, err is nil on success.
	OnBuildComplete(report BuildReport, err error)
}
