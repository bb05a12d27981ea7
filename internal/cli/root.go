package cli

import (
	"github.com/spf13/cobra"

	"sjf-simulator/config"
	"sjf-simulator/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.SchedulerConfig
}

// NewRootCmd creates the sjf command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sjf",
		Short: "Non-preemptive shortest-job-first scheduling simulator",
		Long:  "sjf computes non-preemptive SJF schedules, either as an HTTP service or from a CSV of processes.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = opts.logFormat
			}
			logging.Configure(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			opts.cfg = cfg
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ./config.yaml if present)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(opts),
		newSimulateCmd(opts),
	)

	return root
}
