package adapter

import (
	"github.com/MKhiriev/sterling-client/internal/config"
	"github.com/MKhiriev/sterling-client/internal/retrier"
)

// ReadPolicy is the retry policy of idempotent reads: cfg's attempts and
// delay, retrying only what [IsRetryable] accepts.
func ReadPolicy(cfg config.ClientAdapter) retrier.Policy {
	return retrier.Policy{
		MaxAttempts: cfg.RetryAttempts,
		BaseDelay:   cfg.RetryDelay,
		Retryable:   IsRetryable,
	}
}
