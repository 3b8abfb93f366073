package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stater = (*Stater)(nil)

// Stater reads modification times from the local file system.
type Stater struct{}

// NewStater creates a new Stater.
func NewStater() *Stater {
	return &Stater{}
}

// ModTime returns the modification time of path in UnixNano.
func (s *Stater) ModTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return 0, zerr.With(zerr.Wrap(domain.ErrFileNotFound, "stat"), "path", path)
		}
		return 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.ModTime().UnixNano(), nil
}
