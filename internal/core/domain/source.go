package domain

// SourceEntry is a glob pattern interpreted relative to Base.
type SourceEntry struct {
	Base    string
	Pattern string
}

// ScanResult is what the content scanner reports for one invocation.
type ScanResult struct {
	// Files are the concrete files that were scanned.
	Files []string
	// Globs are the normalized (base, pattern) pairs that cover the scanned files.
	Globs []SourceEntry
	// Candidates are the potential utility class names, sorted and unique.
	Candidates []string
}
