package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/visus-io/libcuid2/internal/config"
	"github.com/visus-io/libcuid2/pkg/cuid2"
	logpkg "github.com/visus-io/libcuid2/pkg/log"
)

// NewRoot constructs the root Cobra command for the cuid2 CLI. Log entries
// go to logOutput; the logger itself is built inside the run once level and
// format are resolved from flags, environment, and config file.
func NewRoot(logOutput logpkg.Output) *cobra.Command {
	root := &cobra.Command{
		Use:          "cuid2",
		Short:        "Generate collision-resistant CUID2 identifiers",
		SilenceUsage: true,
		Long: "cuid2 generates collision-resistant, sortable unique identifiers from\n" +
			"time, a monotonic counter, a host fingerprint, and cryptographic\n" +
			"randomness. IDs start with a lowercase letter followed by base-36 digits.",
		Example: "  cuid2              # one ID of default length (24)\n" +
			"  cuid2 -l 16        # one 16-character ID\n" +
			"  cuid2 -l 32 -n 10  # ten maximum-length IDs, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			if cfgPath == "" {
				cfgPath = cfgpkg.DefaultConfigPath()
			}
			cfg, err := cfgpkg.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgpkg.FromEnv(&cfg)
			if cmd.Flags().Changed("length") {
				cfg.Length, _ = cmd.Flags().GetInt("length")
			}
			if cmd.Flags().Changed("count") {
				cfg.Count, _ = cmd.Flags().GetInt("count")
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat, _ = cmd.Flags().GetString("log-format")
			}
			if cfg.Count < 1 {
				return fmt.Errorf("invalid --count %d; must be at least 1", cfg.Count)
			}

			logger := newRunLogger(cfg, logOutput)
			logpkg.RedirectStdLog(logger)

			logger.Debug("generating identifiers",
				logpkg.Int("length", cfg.Length),
				logpkg.Int("count", cfg.Count),
			)

			g := cuid2.New()
			out := cmd.OutOrStdout()
			for i := 0; i < cfg.Count; i++ {
				id, err := g.GenerateLength(cfg.Length)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	root.Flags().IntP("length", "l", cuid2.DefaultLength, "Length of each generated ID (min 4, max 32)")
	root.Flags().IntP("count", "n", 1, "Number of IDs to generate, one per line")
	root.Flags().String("config", "", "Path to JSON config file (default: OS config dir if present)")
	root.Flags().String("log-level", "", "Log level: debug|info|warn|error")
	root.Flags().String("log-format", "", "Log format: text|json (default text)")
	return root
}

// newRunLogger builds the effective logger from the resolved configuration.
// Unknown levels fall back to info; any format other than json means text.
func newRunLogger(cfg cfgpkg.Config, output logpkg.Output) logpkg.Logger {
	lvl, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		lvl = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	return logpkg.NewLogger(
		logpkg.WithLevel(lvl),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(output),
	)
}
