package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"dashboard.demografia.org/internal/app"
	"dashboard.demografia.org/internal/appconf"
	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/logging"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	config     appconf.Config
	env        string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{config: appconf.DefaultConfig()}

	cmd := &cobra.Command{
		Use:          "dashboard",
		Short:        "World Bank fertility and urbanization dashboard",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.config.DataPath, "data", opts.config.DataPath, "World Bank export to load (.csv or .xlsx)")
	flags.StringVar(&opts.configPath, "config", "", "YAML file describing the dataset (series names, years, aggregates)")
	flags.IntVar(&opts.config.Port, "port", opts.config.Port, "HTTP server port")
	flags.StringVar(&opts.env, "env", "development", "Environment (development|test|production)")
	flags.StringVar(&opts.config.LogLevel, "log-level", opts.config.LogLevel, "Log level (debug|info|warn|error)")
	flags.StringVar(&opts.config.LogFormat, "log-format", opts.config.LogFormat, "Log format (text|json)")
	flags.IntVar(&opts.config.RateLimit, "rate-limit", opts.config.RateLimit, "Requests per second per client, 0 disables")
	flags.StringSliceVar(&opts.config.TrustedProxies, "trusted-proxy", nil, "Proxy IP or CIDR whose X-Forwarded-For is trusted (repeatable)")

	cmd.AddCommand(
		newServeCmd(opts),
		newSummaryCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

// application validates the flags, loads the dataset and builds the shared
// dependencies. Logs go to the command's stderr.
func (opts *options) application(cmd *cobra.Command) (*app.Application, error) {
	cfg := opts.config
	cfg.Env = appconf.EnvFlagToEnvironment(opts.env)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), cfg.SlogLevel(), cfg.LogFormat)

	ds := appconf.DefaultDataset()
	if opts.configPath != "" {
		var err error
		if ds, err = appconf.LoadDataset(opts.configPath); err != nil {
			return nil, err
		}
	}

	manager, err := dashboard.InitManager(cfg.DataPath, ds, logger)
	if err != nil {
		logging.LogError(logger, "failed to load dataset", err, slog.String("path", cfg.DataPath))
		return nil, err
	}

	return &app.Application{
		Config:  cfg,
		Dataset: ds,
		Logger:  logger,
		Manager: manager,
	}, nil
}
