package domain

// OptimizeOptions controls the optimization pass.
type OptimizeOptions struct {
	Enabled bool
	Minify  bool
}

// Entry pairs an input stylesheet with its output path.
type Entry struct {
	Input  string
	Output string
}

// Config is the resolved build configuration.
type Config struct {
	// Root is the directory the config was loaded from.
	Root string
	// Base is the root directory for automatic content detection.
	Base     string
	Optimize OptimizeOptions
	Entries  []Entry
}
