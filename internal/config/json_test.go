package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {"log_level": "error", "reports_dir": "/srv/reports"},
		"api": {
			"url": "https://api.example.com",
			"request_timeout": "12s",
			"retry_attempts": 2,
			"retry_delay": "500ms",
			"rate_limit": 1.5,
			"rate_burst": 2
		},
		"storage": {"db": {"dsn": "/data/sterling.db"}, "cache_ttl": "10m"},
		"workers": {"reconcile_interval": "15m"}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "/srv/reports", cfg.App.ReportsDir)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.URL)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Adapter.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Adapter.RetryDelay)
	assert.InDelta(t, 1.5, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, 2, cfg.Adapter.RateBurst)
	assert.Equal(t, "/data/sterling.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Minute, cfg.Storage.CacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.Workers.ReconcileInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDurationIsNanoseconds(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"storage": {"cache_ttl": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Storage.CacheTTL)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": `), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": {"request_timeout": "later"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
