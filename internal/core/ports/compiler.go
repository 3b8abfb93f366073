// Package ports defines the core interfaces for the application.
package ports

import "context"

// PluginResolver maps a plugin specifier found in a stylesheet to an absolute path.
type PluginResolver func(specifier string) (string, error)

// CompilerOptions configures the construction of a compiler handle.
type CompilerOptions struct {
	// Base is the directory of the stylesheet being compiled.
	Base string
	// ResolvePlugin resolves engine-loaded plugins.
	ResolvePlugin PluginResolver
}

// Compiler is a stateful handle to the CSS generation engine.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Globs returns the source patterns declared by the stylesheet, relative to its directory.
	Globs() []string
	// Build generates the complete CSS for the given candidates.
	Build(candidates []string) (string, error)
}

// IncrementalCompiler is a Compiler that can append utilities for new candidates
// without regenerating what it already emitted.
type IncrementalCompiler interface {
	Compiler
	// BuildIncremental appends rules for candidates this handle has not seen yet
	// and returns the updated CSS.
	BuildIncremental(candidates []string) (string, error)
}

// CompilerFactory constructs compiler handles from stylesheet source text.
type CompilerFactory interface {
	// New compiles source into a fresh handle.
	New(ctx context.Context, source string, opts CompilerOptions) (Compiler, error)
}
