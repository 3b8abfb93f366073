package compiler

import (
	"os"

	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// pluginFile is the YAML document loaded by `@plugin`. Utilities map class names
// to ordered declarations:
//
//	utilities:
//	  btn-primary:
//	    background-color: "#1d4ed8"
//	    color: white
type pluginFile struct {
	Utilities yaml.Node `yaml:"utilities"`
}

type pluginUtility struct {
	name  string
	decls []decl
}

func loadPlugin(path string) ([]pluginUtility, error) {
	//nolint:gosec // Path comes from plugin resolution.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPluginLoadFailed, err.Error()), "path", path)
	}

	var file pluginFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPluginLoadFailed, err.Error()), "path", path)
	}

	utilities, err := decodeUtilities(&file.Utilities)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return utilities, nil
}

func decodeUtilities(node *yaml.Node) ([]pluginUtility, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrPluginLoadFailed, "utilities must be a mapping"), "line", node.Line)
	}

	out := make([]pluginUtility, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, body := node.Content[i], node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrPluginLoadFailed, "utility body must be a mapping"),
				"utility", name.Value,
			)
		}

		u := pluginUtility{name: name.Value}
		for j := 0; j+1 < len(body.Content); j += 2 {
			prop, value := body.Content[j], body.Content[j+1]
			if value.Kind != yaml.ScalarNode {
				return nil, zerr.With(
					zerr.Wrap(domain.ErrPluginLoadFailed, "declaration value must be a scalar"),
					"utility", name.Value,
				)
			}
			u.decls = append(u.decls, decl{prop: prop.Value, value: value.Value})
		}
		out = append(out, u)
	}
	return out, nil
}
