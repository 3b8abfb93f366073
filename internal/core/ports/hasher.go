package ports

// Hasher fingerprints generated output.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashString returns the fingerprint of s.
	HashString(s string) string
	// HashFile returns the fingerprint of the file content at path.
	HashFile(path string) (string, error)
}
