// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig] after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	return cfg.ClientConfig().validate()
}

func (cfg *ClientConfig) validate() error {
	if err := validateAddress(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryAttempts < 1 || cfg.Adapter.RetryDelay < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RateLimit < 0 || (cfg.Adapter.RateLimit > 0 && cfg.Adapter.RateBurst < 1) {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" || cfg.Storage.CacheTTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ReconcileInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func validateAddress(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("address must include host")
	}
	return nil
}
