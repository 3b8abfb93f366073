package config

import (
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Breezefile is the structure of breeze.yaml.
type Breezefile struct {
	Base     string       `yaml:"base"`
	Optimize *OptimizeDTO `yaml:"optimize"`
	Entries  []EntryDTO   `yaml:"entries"`
}

// EntryDTO is one input/output pair in the configuration.
type EntryDTO struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// OptimizeDTO accepts either a bool or a mapping with a minify key.
type OptimizeDTO struct {
	Enabled bool
	Minify  bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OptimizeDTO) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrInvalidOptimize, err.Error()), "line", node.Line)
		}
		o.Enabled, o.Minify = enabled, enabled
		return nil
	case yaml.MappingNode:
		var m struct {
			Minify *bool `yaml:"minify"`
		}
		if err := node.Decode(&m); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrInvalidOptimize, err.Error()), "line", node.Line)
		}
		o.Enabled, o.Minify = true, true
		if m.Minify != nil {
			o.Minify = *m.Minify
		}
		return nil
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidOptimize, "unexpected value"), "line", node.Line)
	}
}
