// Package watcher reports file system changes below a project root.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	bfs "go.trai.ch/breeze/internal/adapters/fs"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventBuffer = 128

// Watcher implements ports.Watcher with fsnotify, adding directories created
// while watching.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	root      string
	events    chan ports.WatchEvent
}

// NewWatcher creates a watcher reporting errors to logger.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return &Watcher{
		fsWatcher: w,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventBuffer),
	}, nil
}

// Start implements ports.Watcher.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.root = root
	for dir := range directories(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
		}
	}
	go w.run(ctx)
	return nil
}

// Stop implements ports.Watcher.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events implements ports.Watcher. The sequence ends when the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			op, ok := convertOp(event.Op)
			if !ok || w.ignored(event.Name) {
				continue
			}

			select {
			case w.events <- ports.WatchEvent{Path: event.Name, Operation: op}:
			case <-ctx.Done():
				return
			}

			if op == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					for dir := range directories(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("watcher: " + err.Error())
			}
		}
	}
}

// directories yields root and every directory below it that is not ignored.
func directories(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable directories are skipped.
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && slices.Contains(bfs.DefaultIgnores, d.Name()) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// ignored reports whether path is an ignored directory below the root, or lies in one.
func (w *Watcher) ignored(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	for name := range splitPath(rel) {
		if slices.Contains(bfs.DefaultIgnores, name) {
			return true
		}
	}
	return false
}

// splitPath yields the elements of a relative path, last first.
func splitPath(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path != "." && path != "" && path != string(filepath.Separator) {
			if !yield(filepath.Base(path)) {
				return
			}
			path = filepath.Dir(path)
		}
	}
}

func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	default:
		return 0, false
	}
}
