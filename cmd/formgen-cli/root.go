package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/internal/logging"
)

var (
	configPath string
	verbosity  int
	quiet      bool
	logFormat  string

	// appConfig and logger are populated before any subcommand runs.
	appConfig *config.Config
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "formgen-cli",
	Short: "Build, audit and generate form configurations",
	Long: `formgen-cli works with form configurations stored as JSON, YAML or TOML.

It renders a form for several targets (html, react, vue, flutter, json, yaml,
openapi), audits configurations for broken option lists and duplicate keys,
repairs them, checks submissions against field rules and manages the
persisted theme and layout used by the html target.

Settings are read from formbuilder.{yaml,json,toml} in the working directory
or from --config, and may be overridden with FORMBUILDER_* variables.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./formbuilder.{yaml,json,toml})")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all logs")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json or discard (default from config)")
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	if configPath != "" {
		appConfig, err = config.LoadFile(configPath)
	} else {
		appConfig, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	level := logging.LevelFromString(appConfig.Logging.Level)
	if verbosity > 0 || quiet {
		level = logging.LevelFromVerbosity(verbosity, quiet)
	}
	format := appConfig.Logging.Format
	if logFormat != "" {
		format = logFormat
	}
	logger = logging.New(os.Stderr, level, format)
	logger.Debug("config loaded",
		slog.String("renderer", appConfig.Renderer),
		slog.String("theme_driver", appConfig.Theme.Storage.Driver),
	)
	return nil
}
