package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/omebuild/externalconfig/internal/config"
	"github.com/omebuild/externalconfig/internal/defaults"
	"github.com/omebuild/externalconfig/internal/logger"
	"github.com/omebuild/externalconfig/internal/service"
	"github.com/omebuild/externalconfig/internal/store"
)

var (
	verbosity  int
	resetFirst bool
	expandGlob bool
	fromEnv    bool
)

// rootCmd represents the externalconfig command
var rootCmd = &cobra.Command{
	Use:   "externalconfig [file...]",
	Short: "Configure the server from external data sources",
	Long: `Update the persisted server configuration from external sources:
multi-level dictionary files (YAML, optionally template-preprocessed) and
CONFIG_* environment variables.

The base directory is taken from the OMERODIR environment variable; the
configuration store lives beneath it.

Example:
  externalconfig --reset --glob 'conf.d/*.yml' --fromenv`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExternalConfig,
}

func init() {
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (can be used multiple times)")
	rootCmd.Flags().BoolVar(&resetFirst, "reset", false,
		"Delete existing configuration")
	rootCmd.Flags().BoolVar(&expandGlob, "glob", false,
		"Expand file arguments using shell globbing")
	rootCmd.Flags().BoolVar(&fromEnv, "fromenv", false,
		"Update the configuration from CONFIG_* environment variables. "+
			"These are applied after any files are parsed.")
}

func runExternalConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetRuntimeConfig(nil)
	if err != nil {
		return err
	}

	level := logger.LevelForVerbosity(verbosity)
	if cfg.LogLevel != "" {
		if parsed, perr := zerolog.ParseLevel(cfg.LogLevel); perr == nil {
			level = parsed
		}
	}
	log := logger.NewLogger("externalconfig", level)

	openStore := func(ctx context.Context) (store.ConfigStore, error) {
		return store.Open(ctx, cfg.BaseDir, log)
	}
	svc := service.NewService(openStore, defaults.NewWeb(), log)

	return svc.Apply(cmd.Context(), service.ApplyOptions{
		Reset:   resetFirst,
		Glob:    expandGlob,
		FromEnv: fromEnv,
		Files:   args,
	})
}
