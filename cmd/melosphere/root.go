package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dasmlab/melosphere/pkg/config"
)

var (
	flagConfig   string
	flagEngine   string
	flagURL      string
	flagLogLevel string
)

// rootCmd creates the CLI root command.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "melosphere",
		Short: "Multilingual lyric translation and blending",
		Long: `Melosphere translates an English lyric line into several languages,
pads rhythmically short translations with filler words, and blends the
results into one multilingual line.

Examples:
  melosphere blend "I love the summer breeze" --langs es,de
  melosphere blend "I love you" --langs es --mode last-word-swap
  melosphere syllables "hello world"
  melosphere serve --port 8080`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagEngine, "engine", "", "translation engine: libretranslate, google or static")
	cmd.PersistentFlags().StringVar(&flagURL, "engine-url", "", "base URL for the translation engine API")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(blendCmd())
	cmd.AddCommand(syllablesCmd())
	cmd.AddCommand(serveCmd())

	return cmd
}

// loadConfig resolves the effective config for a CLI invocation.
func loadConfig() (config.Config, *logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, logger, err
	}
	if flagEngine != "" {
		cfg.Engine = flagEngine
	}
	if flagURL != "" {
		cfg.EngineURL = flagURL
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return cfg, logger, nil
}
