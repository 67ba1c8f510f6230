package cli

import (
	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath  string
	logLevel    string
	development bool

	config *config.SchedulerConfig
	logger *zap.Logger
}

// NewRootCmd creates the root cobra command for the cpu-scheduler binary.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "cpu-scheduler",
		Short: "Single processor CPU scheduling simulator",
		Long: "cpu-scheduler simulates FCFS, SJF, Priority and Round-Robin scheduling over a workload,\n" +
			"prints the gantt schedule with per process metrics and suggests a policy.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSchedulerConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("dev") {
				cfg.LogDevelopment = opts.development
			}
			logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
			if err != nil {
				return err
			}
			opts.config = cfg
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.development, "dev", false, "Human readable development logging")

	root.AddCommand(
		newServeCmd(opts),
		newSimulateCmd(opts),
		newSuggestCmd(opts),
	)
	return root
}
