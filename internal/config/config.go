package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/visus-io/libcuid2/pkg/cuid2"
)

// Config is the CLI configuration loaded from file/env.
type Config struct {
	Length    int    `json:"length"`
	Count     int    `json:"count"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Length:    cuid2.DefaultLength,
		Count:     1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults. Length bounds are enforced by the generator at use time, not here.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return Config{}, errors.New("yaml config not supported; use JSON")
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
