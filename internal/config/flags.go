package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client's command-line flags from args.
//
// Flags:
//
//	-a API origin (e.g. https://api.example.com)
//	-d local database DSN (sqlite path or "memory")
//	-c/-config json file path with configs
//	-request-timeout per-request timeout (e.g. "10s")
//	-retry-attempts attempts of a retried read
//	-retry-delay linear backoff step (e.g. "1s")
//	-rate-limit outbound requests per second (0 disables)
//	-rate-burst burst of the outbound limiter
//	-cache-ttl snapshot cache freshness window (e.g. "5m")
//	-reconcile-interval full reload period (e.g. "5m")
//	-reports-dir directory for downloaded reports
//	-log-file log file path
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("sterling", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		apiURL            string
		databaseDSN       string
		jsonConfigPath    string
		requestTimeout    time.Duration
		retryAttempts     int
		retryDelay        time.Duration
		rateLimit         float64
		rateBurst         int
		cacheTTL          time.Duration
		reconcileInterval time.Duration
		reportsDir        string
		logFile           string
		logLevel          string
	)

	fs.StringVar(&apiURL, "a", "", "API origin")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.IntVar(&retryAttempts, "retry-attempts", 0, "Attempts of a retried read")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Linear backoff step (e.g., 1s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Outbound limiter burst")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Snapshot cache TTL (e.g., 5m)")
	fs.DurationVar(&reconcileInterval, "reconcile-interval", 0, "Full reload period (e.g., 5m)")
	fs.StringVar(&reportsDir, "reports-dir", "", "Directory for downloaded reports")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:    logFile,
			LogLevel:   logLevel,
			ReportsDir: reportsDir,
		},
		Adapter: Adapter{
			URL:            apiURL,
			RequestTimeout: requestTimeout,
			RetryAttempts:  retryAttempts,
			RetryDelay:     retryDelay,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			CacheTTL: cacheTTL,
		},
		Workers: Workers{
			ReconcileInterval: reconcileInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
