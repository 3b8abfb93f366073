package stage

import (
	"sync"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
)

// BuildContext is the state kept for one input stylesheet across invocations.
type BuildContext struct {
	// Ledger holds the last seen mtime of every file that contributed to the input.
	Ledger *domain.Ledger
	// Compiler is owned by this context. It is nil until first created and is only
	// replaced wholesale, on a full rebuild.
	Compiler ports.Compiler
	// RawCSS is the last compiler output.
	RawCSS string
	// OptimizedCSS is the optimizer output for RawCSS, valid while optimized is set.
	OptimizedCSS string

	optimized      bool
	optimizeMinify bool
}

func newBuildContext() *BuildContext {
	return &BuildContext{Ledger: domain.NewLedger()}
}

// Registry maps input identities to their build contexts. Contexts are created on
// first sight and live as long as the registry; there is no eviction.
type Registry struct {
	mu       sync.Mutex
	contexts map[string]*BuildContext
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{contexts: make(map[string]*BuildContext)}
}

// Get returns the context for identity, creating it if needed.
// The empty identity is the sentinel for stylesheets without a known path.
func (r *Registry) Get(identity string) *BuildContext {
	r.mu.Lock()
	defer r.mu.Unlock()

	return getOrInsert(r.contexts, identity, newBuildContext)
}

// Len returns the number of contexts created so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.contexts)
}

func getOrInsert[K comparable, V any](m map[K]V, key K, create func() V) V {
	if v, ok := m[key]; ok {
		return v
	}
	v := create()
	m[key] = v
	return v
}
