package main

import (
	"os"

	cmdpkg "github.com/visus-io/libcuid2/internal/cmd"
	logpkg "github.com/visus-io/libcuid2/pkg/log"
)

func main() {
	// Respect CUID2_LOG_LEVEL for output emitted before config is resolved;
	// the run command rebuilds the logger once level and format are known.
	level := os.Getenv("CUID2_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs to our logger
	logpkg.RedirectStdLog(logger)

	if err := cmdpkg.NewRoot(logpkg.NewConsoleOutput()).Execute(); err != nil {
		os.Exit(1)
	}
}
