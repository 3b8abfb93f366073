package ports

// ModuleResolver resolves bare (package) specifiers the way the surrounding
// JavaScript tooling would.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type ModuleResolver interface {
	// Resolve resolves specifier starting from fromDir and returns an absolute path.
	Resolve(specifier, fromDir string) (string, error)
}
