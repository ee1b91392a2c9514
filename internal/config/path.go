package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the conventional config file location for the
// host OS, or "" when no config file exists there. It prefers standard
// locations and falls back to a dotdir in the user's home directory.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return ""
	}

	candidates := []string{}

	// XDG (Linux) override
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "cuid2", "config.json"))
	}
	candidates = append(candidates,
		filepath.Join(homeDir, ".config", "cuid2", "config.json"),
		// macOS: ~/Library/Application Support/cuid2
		filepath.Join(homeDir, "Library", "Application Support", "cuid2", "config.json"),
		// Windows: %USERPROFILE%/AppData/Local/cuid2
		filepath.Join(homeDir, "AppData", "Local", "cuid2", "config.json"),
		// Fallback: ~/.cuid2
		filepath.Join(homeDir, ".cuid2", "config.json"),
	)

	for _, p := range candidates {
		if isFile(p) {
			return p
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
