// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merge target of every configuration source.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging and report settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the Sterling API endpoint and request policy.
	Adapter Adapter `envPrefix:"API_"`

	// Storage holds the local key/value store and cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// LegacyAPIURL is read from VITE_API_URL, the variable used by the
	// browser build. It is only consulted when Adapter.URL is empty.
	LegacyAPIURL string `env:"VITE_API_URL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before the environment is read.
	DotEnvPath string `env:"DOTENV"`
}

// App holds process-level settings.
type App struct {
	// LogFile is the file the client logs to. Empty selects a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ReportsDir is where downloaded admin reports are written.
	// Env: APP_REPORTS_DIR
	ReportsDir string `env:"REPORTS_DIR"`
}

// Adapter holds the outbound API settings.
type Adapter struct {
	// URL is the origin of the Sterling REST API.
	// Env: API_URL
	URL string `env:"URL"`

	// RequestTimeout bounds every single API call.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryAttempts is the total number of attempts of a retried read.
	// Env: API_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryDelay is the linear backoff step between read attempts.
	// Env: API_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// RateLimit caps outbound requests per second. Zero disables pacing.
	// Env: API_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size of the pacing limiter.
	// Env: API_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the key/value database settings.
	DB DB `envPrefix:"DB_"`

	// CacheTTL is how long a cached snapshot is served.
	// Env: STORAGE_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// DB holds connection settings for the local key/value database.
type DB struct {
	// DSN is the sqlite file path. The value "memory" selects a
	// process-local store that is dropped on exit.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// ReconcileInterval is the period of the full-reload job.
	// Env: WORKERS_RECONCILE_INTERVAL
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL"`
}

// Defaults returns the values applied to fields no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:   "debug",
			ReportsDir: ".",
		},
		Adapter: Adapter{
			URL:            "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
			RetryAttempts:  3,
			RetryDelay:     time.Second,
			RateBurst:      1,
		},
		Storage: Storage{
			DB:       DB{DSN: "sterling.db"},
			CacheTTL: 5 * time.Minute,
		},
		Workers: Workers{
			ReconcileInterval: 5 * time.Minute,
		},
		DotEnvPath: ".env",
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
