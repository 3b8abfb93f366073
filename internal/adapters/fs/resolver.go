package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleResolver = (*ModuleResolver)(nil)

// pluginExtensions are tried, in order, for specifiers naming a file without extension.
var pluginExtensions = []string{".yaml", ".yml"}

// ModuleResolver resolves package specifiers by walking up node_modules directories.
type ModuleResolver struct{}

// NewModuleResolver creates a new ModuleResolver.
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{}
}

type packageManifest struct {
	Breeze string `json:"breeze"`
	Main   string `json:"main"`
}

// Resolve returns the absolute path of specifier as seen from fromDir.
// Absolute specifiers are returned as-is when they exist. Package specifiers are
// looked up in node_modules of fromDir and every ancestor; a package directory
// resolves through the "breeze" or "main" field of its package.json, falling back
// to index.yaml.
func (r *ModuleResolver) Resolve(specifier, fromDir string) (string, error) {
	if filepath.IsAbs(specifier) {
		if path, ok := resolveFile(specifier); ok {
			return path, nil
		}
		return "", r.notFound(specifier, fromDir)
	}

	dir, err := filepath.Abs(fromDir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPluginNotFound.Error()), "specifier", specifier)
	}

	for {
		candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(specifier))
		if path, ok := resolveFile(candidate); ok {
			return path, nil
		}
		if path, ok := resolvePackage(candidate); ok {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", r.notFound(specifier, fromDir)
		}
		dir = parent
	}
}

func (r *ModuleResolver) notFound(specifier, fromDir string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "resolve"), "specifier", specifier), "from", fromDir)
}

func resolveFile(path string) (string, bool) {
	if isFile(path) {
		return path, true
	}
	if filepath.Ext(path) != "" {
		return "", false
	}
	for _, ext := range pluginExtensions {
		if isFile(path + ext) {
			return path + ext, true
		}
	}
	return "", false
}

func resolvePackage(dir string) (string, bool) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", false
	}

	//nolint:gosec // Path is derived from the package directory.
	if data, err := os.ReadFile(filepath.Join(dir, "package.json")); err == nil {
		var manifest packageManifest
		if json.Unmarshal(data, &manifest) == nil {
			for _, entry := range []string{manifest.Breeze, manifest.Main} {
				if entry == "" || strings.HasPrefix(entry, "..") {
					continue
				}
				if path, ok := resolveFile(filepath.Join(dir, filepath.FromSlash(entry))); ok {
					return path, true
				}
			}
		}
	}

	return resolveFile(filepath.Join(dir, "index"))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
