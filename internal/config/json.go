package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogFile    string `json:"log_file"`
		LogLevel   string `json:"log_level"`
		ReportsDir string `json:"reports_dir"`
	} `json:"app,omitempty"`

	API struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryAttempts  int      `json:"retry_attempts"`
		RetryDelay     Duration `json:"retry_delay"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"api,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		CacheTTL Duration `json:"cache_ttl"`
	} `json:"storage,omitempty"`

	Workers struct {
		ReconcileInterval Duration `json:"reconcile_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:    jsonCfg.App.LogFile,
			LogLevel:   jsonCfg.App.LogLevel,
			ReportsDir: jsonCfg.App.ReportsDir,
		},
		Adapter: Adapter{
			URL:            jsonCfg.API.URL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
			RetryAttempts:  jsonCfg.API.RetryAttempts,
			RetryDelay:     time.Duration(jsonCfg.API.RetryDelay),
			RateLimit:      jsonCfg.API.RateLimit,
			RateBurst:      jsonCfg.API.RateBurst,
		},
		Storage: Storage{
			DB:       DB{DSN: jsonCfg.Storage.DB.DSN},
			CacheTTL: time.Duration(jsonCfg.Storage.CacheTTL),
		},
		Workers: Workers{
			ReconcileInterval: time.Duration(jsonCfg.Workers.ReconcileInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
