package ports

import (
	"time"

	"go.trai.ch/breeze/internal/core/domain"
)

// Metrics records rebuild statistics.
type Metrics interface {
	// ObserveRebuild records one processed invocation and how long it took.
	ObserveRebuild(decision domain.RebuildDecision, d time.Duration)
	// IncBuildOutcome counts a finished entry build by outcome ("success", "failed", "skipped").
	IncBuildOutcome(outcome string)
}
