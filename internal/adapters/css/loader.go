package css

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// ImportPlugin names the loader in the dependency messages it emits.
const ImportPlugin = "breeze:import"

// Loader reads stylesheets from disk and inlines their local imports.
type Loader struct {
	parser ports.StylesheetParser
}

// NewLoader creates a loader that parses files with parser.
func NewLoader(parser ports.StylesheetParser) *Loader {
	return &Loader{parser: parser}
}

// Load reads path and replaces every `@import "<file>.css"` without media or layer
// conditions by the nodes of that file. Each inlined file is reported as a
// dependency of path.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Stylesheet, []domain.Message, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrFileNotFound.Error()), "path", path)
	}

	sheet, err := l.read(abs)
	if err != nil {
		return nil, nil, err
	}

	var messages []domain.Message
	visited := map[string]struct{}{abs: {}}
	nodes, err := l.inline(ctx, abs, abs, sheet.Nodes, visited, &messages)
	if err != nil {
		return nil, nil, err
	}

	return sheet.WithNodes(nodes), messages, nil
}

func (l *Loader) read(path string) (*domain.Stylesheet, error) {
	//nolint:gosec // Path is provided by the user configuration.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrFileNotFound, "read stylesheet"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrImportFailed.Error()), "path", path)
	}
	return l.parser.Parse(string(data), domain.SourceOptions{From: path, Map: true})
}

func (l *Loader) inline(
	ctx context.Context,
	root, file string,
	nodes []*domain.Node,
	visited map[string]struct{},
	messages *[]domain.Message,
) ([]*domain.Node, error) {
	out := make([]*domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		target, ok := importTarget(n)
		if !ok {
			out = append(out, n)
			continue
		}

		imported := filepath.Join(filepath.Dir(file), target)
		if _, seen := visited[imported]; seen {
			continue
		}
		visited[imported] = struct{}{}

		sheet, err := l.read(imported)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrImportFailed.Error()), "importer", file)
		}
		*messages = append(*messages, domain.DependencyMessage(ImportPlugin, root, imported))

		children, err := l.inline(ctx, root, imported, sheet.Nodes, visited, messages)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}

// importTarget returns the local file an import at-rule refers to.
func importTarget(n *domain.Node) (string, bool) {
	if n.Kind != domain.NodeAtRule || n.Name != "import" || n.Block {
		return "", false
	}

	params := strings.TrimSpace(n.Params)
	if inner, ok := strings.CutPrefix(params, "url("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return "", false
		}
		params = strings.TrimSpace(inner)
	}

	target, ok := unquote(params)
	if !ok || strings.Contains(target, "://") || !strings.HasSuffix(target, ".css") {
		return "", false
	}
	return target, true
}

func unquote(s string) (string, bool) {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		inner := s[1 : len(s)-1]
		return inner, !strings.ContainsAny(inner, "\"'")
	}
	if s == "" || strings.ContainsAny(s, " \"'") {
		return "", false
	}
	return s, true
}
