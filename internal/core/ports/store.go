package ports

import "go.trai.ch/breeze/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving build information.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info for a given input stylesheet.
	// Returns nil, nil if not found.
	Get(root, input string) (*domain.BuildInfo, error)

	// Put stores the build info.
	Put(root string, info domain.BuildInfo) error
}

// OutputWriter writes generated stylesheets, skipping writes whose content is unchanged.
type OutputWriter interface {
	// Write stores css at entry.Output and reports whether the file was touched.
	Write(root string, entry domain.Entry, css string, decision domain.RebuildDecision) (bool, error)
}
