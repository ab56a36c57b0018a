package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level settings of the client.
type ClientApp struct {
	LogFile    string
	LogLevel   string
	ReportsDir string
}

// ClientAdapter holds the settings of the HTTP request utility and the
// read-retry policy.
type ClientAdapter struct {
	// HTTPAddress is the API origin.
	HTTPAddress string
	// RequestTimeout bounds a single API call.
	RequestTimeout time.Duration
	// RetryAttempts is the total number of attempts of a retried read.
	RetryAttempts int
	// RetryDelay is the linear backoff step.
	RetryDelay time.Duration
	// RateLimit is the outbound requests-per-second cap; zero disables it.
	RateLimit float64
	// RateBurst is the limiter burst.
	RateBurst int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite path, or "memory" for a process-local store.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
	// CacheTTL is the snapshot cache freshness window.
	CacheTTL time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ReconcileInterval defines how often the full reload job runs.
	ReconcileInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration. args are
// the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	return clientCfg, clientCfg.validate()
}

// ClientConfig maps the merged structured config onto the client view.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:    cfg.App.LogFile,
			LogLevel:   cfg.App.LogLevel,
			ReportsDir: cfg.App.ReportsDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.URL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryAttempts:  cfg.Adapter.RetryAttempts,
			RetryDelay:     cfg.Adapter.RetryDelay,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DB:       ClientDB{DSN: cfg.Storage.DB.DSN},
			CacheTTL: cfg.Storage.CacheTTL,
		},
		Workers: ClientWorkers{ReconcileInterval: cfg.Workers.ReconcileInterval},
	}
}
