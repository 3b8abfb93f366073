// Package scanner extracts candidate utility tokens from content files.
package scanner

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/breeze/internal/adapters/fs"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Scanner = (*Scanner)(nil)

// AutoPattern is the glob reported for automatic content detection.
const AutoPattern = "**/*"

// contentExtensions are the file types considered during automatic detection.
var contentExtensions = map[string]struct{}{
	".html": {}, ".htm": {}, ".js": {}, ".jsx": {}, ".mjs": {}, ".ts": {}, ".tsx": {},
	".vue": {}, ".svelte": {}, ".astro": {}, ".md": {}, ".mdx": {}, ".php": {},
	".templ": {}, ".go": {}, ".erb": {}, ".liquid": {}, ".hbs": {}, ".twig": {},
}

// Scanner reads content files and extracts candidate tokens.
type Scanner struct {
	walker *fs.Walker
}

// New creates a scanner walking directories with walker.
func New(walker *fs.Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Scan implements ports.Scanner. An empty base disables automatic detection.
func (s *Scanner) Scan(ctx context.Context, base string, sources []domain.SourceEntry) (*domain.ScanResult, error) {
	result := &domain.ScanResult{}
	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		result.Files = append(result.Files, path)
	}

	if base != "" {
		root, err := filepath.Abs(base)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScannerFailed.Error()), "base", base)
		}
		info, err := os.Stat(root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScannerFailed.Error()), "base", root)
		}
		if !info.IsDir() {
			return nil, zerr.With(zerr.Wrap(domain.ErrScannerFailed, "base is not a directory"), "base", root)
		}
		for path := range s.walker.WalkFiles(root, fs.DefaultIgnores) {
			if _, ok := contentExtensions[filepath.Ext(path)]; ok {
				add(path)
			}
		}
		result.Globs = append(result.Globs, domain.SourceEntry{Base: root, Pattern: AutoPattern})
	}

	for _, source := range sources {
		dir, pattern := splitSource(source)
		result.Globs = append(result.Globs, domain.SourceEntry{Base: dir, Pattern: pattern})

		matches, err := glob(dir, pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScannerFailed.Error()), "source", source.Pattern)
		}
		for _, m := range matches {
			add(filepath.Join(dir, filepath.FromSlash(m)))
		}
	}

	candidates, err := extractAll(ctx, result.Files)
	if err != nil {
		return nil, err
	}
	result.Candidates = candidates
	return result, nil
}

// splitSource resolves a source entry into its static directory and glob pattern.
func splitSource(source domain.SourceEntry) (string, string) {
	full := filepath.ToSlash(source.Pattern)
	if !filepath.IsAbs(source.Pattern) {
		full = filepath.ToSlash(filepath.Join(source.Base, source.Pattern))
	}

	dir, pattern := doublestar.SplitPattern(full)
	if pattern == "" || !strings.ContainsAny(full, "*?[{") {
		// A plain file or directory: watch the directory, match everything below it.
		if info, err := os.Stat(full); err == nil && info.IsDir() {
			return filepath.FromSlash(full), AutoPattern
		}
		return filepath.FromSlash(filepath.Dir(full)), filepath.Base(full)
	}
	return filepath.FromSlash(dir), pattern
}

func glob(dir, pattern string) ([]string, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(matches, func(m string) bool {
		for part := range strings.SplitSeq(m, "/") {
			if slices.Contains(fs.DefaultIgnores, part) {
				return true
			}
		}
		return false
	}), nil
}

// extractAll reads files concurrently and returns their candidates sorted and unique.
func extractAll(ctx context.Context, files []string) ([]string, error) {
	var (
		mu  sync.Mutex
		all = make(map[string]struct{})
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			//nolint:gosec // Paths come from configured sources.
			data, err := os.ReadFile(file)
			if err != nil {
				if errors.Is(err, iofs.ErrNotExist) {
					return nil
				}
				return zerr.With(zerr.Wrap(err, domain.ErrScannerFailed.Error()), "file", file)
			}

			found := Extract(string(data))
			mu.Lock()
			for _, c := range found {
				all[c] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(all))
	for c := range all {
		candidates = append(candidates, c)
	}
	slices.Sort(candidates)
	return candidates, nil
}
