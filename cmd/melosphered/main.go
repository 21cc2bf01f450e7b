package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dasmlab/melosphere/pkg/config"
	"github.com/dasmlab/melosphere/pkg/server"
)

var (
	configPath = flag.String("config", "", "Path to YAML config file")
	port       = flag.Int("port", 0, "HTTP server port (overrides config)")
	mtEngine   = flag.String("mt-engine", "", "Translation engine: libretranslate, google or static (overrides config)")
	mtURL      = flag.String("mt-url", "", "Base URL for the translation engine API (overrides config)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *mtEngine != "" {
		cfg.Engine = *mtEngine
	}
	if *mtURL != "" {
		cfg.EngineURL = *mtURL
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Invalid log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.WithFields(logrus.Fields{
		"port":      cfg.Port,
		"mt_engine": cfg.Engine,
		"mt_url":    cfg.EngineURL,
		"log_level": level.String(),
	}).Info("Starting Melosphere server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Fatal("Server error")
	}
}
