// Package config loads breeze.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load implements ports.ConfigLoader.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file Breezefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	root := filepath.Dir(configPath)
	cfg := &domain.Config{
		Root:     root,
		Base:     resolvePath(root, file.Base),
		Optimize: DefaultOptimize(),
	}
	// Content detection covers the whole project, wherever breeze runs from.
	if file.Base == "" {
		cfg.Base = root
	}
	if file.Optimize != nil {
		cfg.Optimize = domain.OptimizeOptions{Enabled: file.Optimize.Enabled, Minify: file.Optimize.Minify}
	}

	for i, e := range file.Entries {
		if e.Input == "" || e.Output == "" {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrConfigParseFailed, "entry needs input and output"),
				"entry", i,
			)
		}
		entry := domain.Entry{Input: resolvePath(root, e.Input), Output: resolvePath(root, e.Output)}
		if entry.Input == entry.Output {
			l.Logger.Warn(fmt.Sprintf("entry %d writes over its own input %s", i, e.Input))
		}
		cfg.Entries = append(cfg.Entries, entry)
	}
	if len(cfg.Entries) == 0 {
		l.Logger.Warn(fmt.Sprintf("%s declares no entries", configPath))
	}
	return cfg, nil
}

// DefaultOptimize enables minified output when NODE_ENV is production.
func DefaultOptimize() domain.OptimizeOptions {
	production := os.Getenv("NODE_ENV") == "production"
	return domain.OptimizeOptions{Enabled: production, Minify: production}
}

// findConfiguration walks up from cwd to the first directory holding breeze.yaml.
func findConfiguration(cwd string) (string, error) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "reached filesystem root"), "cwd", cwd)
		}
		dir = parent
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from discovery.
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(domain.ErrConfigNotFound, err.Error())
		}
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		if errors.Is(err, domain.ErrInvalidOptimize) {
			return err
		}
		return zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}
	return nil
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(root, p))
}
