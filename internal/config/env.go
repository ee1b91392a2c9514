package config

import (
	"os"
	"strconv"
)

// FromEnv overlays CUID2_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("CUID2_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Length = n
		}
	}
	if v := os.Getenv("CUID2_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Count = n
		}
	}
	if v := os.Getenv("CUID2_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CUID2_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
