package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.Adapter.URL == "" {
		config.Adapter.URL = config.LegacyAPIURL
	}

	if err := mergo.Merge(config, Defaults()); err != nil {
		return nil, fmt.Errorf("error applying config defaults: %w", err)
	}

	return config, config.validate()
}

// withDotEnv loads a .env file into the process environment. Variables that
// are already set win over the file. A missing file is not an error.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := os.Getenv("DOTENV")
	if path == "" {
		path = Defaults().DotEnvPath
	}

	if _, err := os.Stat(path); err != nil {
		return b
	}

	if err := godotenv.Load(path); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
