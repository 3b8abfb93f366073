package ports

import (
	"context"

	"go.trai.ch/breeze/internal/core/domain"
)

// Scanner extracts candidate tokens from content files.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan walks base for automatic content detection and resolves every source
	// entry. Either may be empty.
	Scan(ctx context.Context, base string, sources []domain.SourceEntry) (*domain.ScanResult, error)
}
