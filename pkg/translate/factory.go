package translate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// EngineType represents the type of translation engine to use.
type EngineType string

const (
	// EngineLibreTranslate uses LibreTranslate as the backend.
	EngineLibreTranslate EngineType = "libretranslate"
	// EngineGoogle uses the Google Cloud Translation API as the backend.
	EngineGoogle EngineType = "google"
	// EngineStatic uses the in-process demo lexicon as the backend.
	EngineStatic EngineType = "static"
)

// Config holds configuration for creating a Translator instance.
type Config struct {
	// Engine specifies which translation engine to use.
	Engine EngineType
	// BaseURL is the base URL for HTTP translation engines.
	// Defaults to http://localhost:5000 if not specified.
	BaseURL string
	// Logger is the logger instance to use. If nil, a default logger is created.
	Logger *logrus.Logger
}

// NewTranslator creates a new Translator instance based on the configuration.
// This factory allows switching between MT backends without changing the
// blend pipeline.
func NewTranslator(ctx context.Context, cfg Config) (Translator, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultLibreTranslateURL
	}

	cfg.Logger.WithFields(logrus.Fields{
		"engine":   cfg.Engine,
		"base_url": cfg.BaseURL,
	}).Info("Creating translator instance")

	switch cfg.Engine {
	case EngineLibreTranslate:
		return NewLibreTranslateClient(cfg.BaseURL, cfg.Logger), nil
	case EngineGoogle:
		return NewGoogleClient(ctx, cfg.Logger)
	case EngineStatic:
		return NewStaticClient(cfg.Logger), nil
	default:
		return nil, fmt.Errorf("unknown translation engine: %s", cfg.Engine)
	}
}

// ParseEngineType parses a string into an EngineType.
// Returns an error if the string is not a valid engine type.
func ParseEngineType(s string) (EngineType, error) {
	switch s {
	case "libretranslate", "LibreTranslate", "LIBRETRANSLATE":
		return EngineLibreTranslate, nil
	case "google", "Google", "GOOGLE":
		return EngineGoogle, nil
	case "static", "Static", "STATIC":
		return EngineStatic, nil
	default:
		return "", fmt.Errorf("unknown engine type: %s (supported: libretranslate, google, static)", s)
	}
}
