// Package config provides loading and environment overlay for the cuid2 CLI
// configuration. It exposes a Default() baseline, JSON file loading, and a
// CUID2_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if path := config.DefaultConfigPath(); path != "" {
//	    if fileCfg, err := config.Load(path); err == nil {
//	        cfg = fileCfg
//	    }
//	}
//	config.FromEnv(&cfg)
package config
