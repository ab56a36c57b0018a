package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment into a fresh [StructuredConfig]. Unset
// variables leave zero values, so the result merges over other sources
// without clobbering them.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
