package ports

// OptimizeOptions are the per-call optimizer settings.
type OptimizeOptions struct {
	// Filename is used in diagnostics.
	Filename string
	Minify   bool
}

// Optimizer transforms generated CSS for the configured browser targets.
//
//go:generate mockgen -source=optimizer.go -destination=mocks/mock_optimizer.go -package=mocks
type Optimizer interface {
	// Optimize returns the transformed CSS. Malformed fragments are recovered from
	// rather than failing the whole pass.
	Optimize(css string, opts OptimizeOptions) (string, error)
}
