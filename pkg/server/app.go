package server

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dasmlab/melosphere/pkg/config"
	"github.com/dasmlab/melosphere/pkg/lyric"
	"github.com/dasmlab/melosphere/pkg/service"
	"github.com/dasmlab/melosphere/pkg/translate"
)

// Run wires the full service from configuration (translator, fan-out,
// job queue, processor, HTTP server) and blocks until ctx is cancelled
// or the server fails. Both the server binary and the CLI's serve command
// go through here.
func Run(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	engineType, err := translate.ParseEngineType(cfg.Engine)
	if err != nil {
		return err
	}

	translator, err := translate.NewTranslator(ctx, translate.Config{
		Engine:  engineType,
		BaseURL: cfg.EngineURL,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	healthCtx, healthCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := translator.CheckHealth(healthCtx); err != nil {
		logger.WithError(err).Warn("Translator health check failed, continuing anyway")
		logger.Warn("Server will start, but translation requests may fail until the backend is ready")
	} else {
		logger.Info("Translator health check passed")
	}
	healthCancel()

	fanout := translate.NewFanOut(translator, logger, cfg.MaxConcurrent)
	estimator := lyric.NewEstimator()

	jobQueue := service.NewJobQueue(logger)
	jobQueue.SetProcessor(service.NewJobProcessor(fanout, estimator, logger))

	// Periodic cleanup of finished jobs.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				jobQueue.CleanupOldJobs(cfg.JobMaxAge)
			case <-ctx.Done():
				return
			}
		}
	}()

	httpServer := NewHTTPServer(jobQueue, translator, logger, cfg.Port)

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("Graceful shutdown failed")
			return err
		}
		logger.Info("Server stopped gracefully")
		return nil
	}
}
