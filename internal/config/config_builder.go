package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in priority order: a non-zero
// field of an earlier layer is never overwritten by a later one.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected layers. Validation is left to the caller since
// the server and the client need different subsets.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	return merged, nil
}

func (b *configBuilder) add(layer *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) fail(err error) *configBuilder {
	b.err = errors.Join(b.err, err)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return b.fail(err)
	}

	return b.add(envCfg)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

func (b *configBuilder) withClientFlags() *configBuilder {
	return b.add(ParseClientFlags())
}

// withJSON loads the file named by the highest priority layer that names one.
func (b *configBuilder) withJSON() *configBuilder {
	for _, layer := range b.layers {
		if layer.JSONFilePath == "" {
			continue
		}

		jsonCfg, err := parseJSON(layer.JSONFilePath)
		if err != nil {
			return b.fail(err)
		}
		return b.add(jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig())
}
