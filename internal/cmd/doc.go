// Package cmd constructs the cuid2 Cobra command tree. The root command
// generates identifiers; configuration is resolved in precedence order
// flags > CUID2_* environment > config file > defaults.
package cmd
