package stage

import (
	"errors"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
)

// Assessment is the outcome of comparing the current dependency timestamps to a ledger.
type Assessment struct {
	Decision domain.RebuildDecision
	// InputMissing reports that the primary stylesheet could not be stat'ed.
	InputMissing bool
}

// Strategist decides between a full and an incremental rebuild.
type Strategist struct {
	stater ports.Stater
}

// NewStrategist creates a Strategist reading timestamps through stater.
func NewStrategist(stater ports.Stater) *Strategist {
	return &Strategist{stater: stater}
}

// Assess stats input and deps, records every changed timestamp in ledger and
// returns the decision. Any new or changed timestamp forces a full rebuild. A
// missing input forces a full rebuild; a missing dependency is skipped.
// An empty input is the piped-stylesheet sentinel: it has no file to stat, so
// it is always full, and the compiler is rebuilt from the piped text.
func (s *Strategist) Assess(ledger *domain.Ledger, input string, deps []string) Assessment {
	result := Assessment{Decision: domain.RebuildIncremental}
	if input == "" {
		result.Decision = domain.RebuildFull
	}

	seen := make(map[string]struct{}, len(deps)+1)
	files := make([]string, 0, len(deps)+1)
	if input != "" {
		seen[input] = struct{}{}
		files = append(files, input)
	}
	for _, dep := range deps {
		if _, ok := seen[dep]; ok {
			continue
		}
		seen[dep] = struct{}{}
		files = append(files, dep)
	}

	for _, file := range files {
		mtime, err := s.stater.ModTime(file)
		if err != nil {
			if file == input {
				result.Decision = domain.RebuildFull
				result.InputMissing = errors.Is(err, domain.ErrFileNotFound)
			}
			continue
		}

		if ledger.Observe(file, mtime) {
			result.Decision = domain.RebuildFull
		}
	}

	return result
}
