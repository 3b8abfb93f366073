package ports

import (
	"context"

	"go.trai.ch/breeze/internal/core/domain"
)

//go:generate mockgen -source=stylesheet.go -destination=mocks/mock_stylesheet.go -package=mocks

// StylesheetParser parses CSS text into a stylesheet tree.
type StylesheetParser interface {
	Parse(css string, opts domain.SourceOptions) (*domain.Stylesheet, error)
}

// StylesheetPrinter serializes a stylesheet tree back to CSS text.
type StylesheetPrinter interface {
	Print(sheet *domain.Stylesheet) string
}

// StylesheetLoader reads a stylesheet from disk, inlines its relative imports and
// reports every imported file as a dependency message.
type StylesheetLoader interface {
	Load(ctx context.Context, path string) (*domain.Stylesheet, []domain.Message, error)
}
