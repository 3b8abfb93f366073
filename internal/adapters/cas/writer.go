package cas

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer implements ports.OutputWriter. It compares the hash of the new output
// with the recorded one and with the file on disk before writing.
type Writer struct {
	store  ports.BuildInfoStore
	hasher ports.Hasher
	now    func() time.Time
}

// NewWriter creates a writer recording its outputs in store.
func NewWriter(store ports.BuildInfoStore, hasher ports.Hasher) *Writer {
	return &Writer{store: store, hasher: hasher, now: time.Now}
}

// Write implements ports.OutputWriter.
func (w *Writer) Write(root string, entry domain.Entry, css string, decision domain.RebuildDecision) (bool, error) {
	hash := w.hasher.HashString(css)

	info, err := w.store.Get(root, entry.Input)
	if err != nil {
		return false, err
	}
	if info != nil && info.OutputHash == hash && info.Output == entry.Output {
		if onDisk, err := w.hasher.HashFile(entry.Output); err == nil && onDisk == hash {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(entry.Output), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", entry.Output)
	}
	//nolint:gosec // Output path comes from the user configuration.
	if err := os.WriteFile(entry.Output, []byte(css), domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", entry.Output)
	}

	err = w.store.Put(root, domain.BuildInfo{
		Input:      entry.Input,
		Output:     entry.Output,
		OutputHash: hash,
		Decision:   decision,
		Timestamp:  w.now(),
	})
	if err != nil {
		return true, err
	}
	return true, nil
}
