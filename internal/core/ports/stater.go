package ports

// Stater reads file modification times.
//
//go:generate mockgen -source=stater.go -destination=mocks/mock_stater.go -package=mocks
type Stater interface {
	// ModTime returns the modification time of path in UnixNano.
	// It returns an error matching domain.ErrFileNotFound when path does not exist.
	ModTime(path string) (int64, error)
}
