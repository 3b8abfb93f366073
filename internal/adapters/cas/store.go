// Package cas stores build information and writes generated stylesheets,
// skipping writes whose content hash is unchanged.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore with one JSON file per input stylesheet
// under <root>/.breeze/store.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get implements ports.BuildInfoStore.
func (s *Store) Get(root, input string) (*domain.BuildInfo, error) {
	filename := s.filename(root, input)
	//nolint:gosec // Path is built from the project root and a hashed name.
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}
	return &info, nil
}

// Put implements ports.BuildInfoStore.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(root, info.Input)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	//nolint:gosec // Path is built from the project root and a hashed name.
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

func (s *Store) filename(root, input string) string {
	sum := sha256.Sum256([]byte(input))
	return filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(sum[:])+".json")
}
