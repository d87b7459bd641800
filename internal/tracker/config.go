// Package tracker is the HTTP client for the external time-tracking
// service that supplies actual logged hours per resource and project.
package tracker

import (
	"os"
	"strconv"
)

// Config holds all configuration for the time-tracker integration.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Token      string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults. The
// integration is disabled by default.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:8090",
		TimeoutMs:  10000,
		MaxRetries: 1,
	}
}

// LoadConfig reads tracker configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STAFFING_TRACKER_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STAFFING_TRACKER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STAFFING_TRACKER_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("STAFFING_TRACKER_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("STAFFING_TRACKER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("STAFFING_TRACKER_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
