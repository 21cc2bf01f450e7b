package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the full server/CLI configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port"`
	// LogLevel is a logrus level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Engine selects the translation backend: libretranslate, google, static.
	Engine string `yaml:"engine"`
	// EngineURL is the base URL for HTTP translation backends.
	EngineURL string `yaml:"engine_url"`
	// MaxConcurrent bounds parallel per-language translation requests.
	MaxConcurrent int `yaml:"max_concurrent"`

	// SourceLang is the default source language tag.
	SourceLang string `yaml:"source_lang"`
	// TargetLangs are the default target languages, in blend order.
	TargetLangs []string `yaml:"target_langs"`
	// BlendMode is the default blend strategy.
	BlendMode string `yaml:"blend_mode"`
	// Enhance toggles rhythmic enhancement by default.
	Enhance bool `yaml:"enhance"`
	// MaxFillers caps fillers inserted per line.
	MaxFillers int `yaml:"max_fillers"`
	// Keywords are English words preserved verbatim across translation.
	Keywords []string `yaml:"keywords"`

	// JobMaxAge is how long finished jobs are kept before cleanup.
	JobMaxAge time.Duration `yaml:"job_max_age"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:          8080,
		LogLevel:      "info",
		Engine:        "libretranslate",
		EngineURL:     "http://localhost:5000",
		MaxConcurrent: 8,
		SourceLang:    "en",
		TargetLangs:   []string{"hi", "ta", "es"},
		BlendMode:     "interleave",
		Enhance:       true,
		MaxFillers:    3,
		JobMaxAge:     time.Hour,
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// MELOSPHERE_* environment variables, in that order of precedence. A .env
// file in the working directory is loaded first if present; a missing .env
// is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = Default().MaxConcurrent
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MELOSPHERE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("MELOSPHERE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MELOSPHERE_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv("MELOSPHERE_ENGINE_URL"); v != "" {
		cfg.EngineURL = v
	}
	if v := os.Getenv("MELOSPHERE_SOURCE_LANG"); v != "" {
		cfg.SourceLang = v
	}
	if v := os.Getenv("MELOSPHERE_TARGET_LANGS"); v != "" {
		cfg.TargetLangs = splitList(v)
	}
	if v := os.Getenv("MELOSPHERE_BLEND_MODE"); v != "" {
		cfg.BlendMode = v
	}
	if v := os.Getenv("MELOSPHERE_ENHANCE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enhance = b
		}
	}
	if v := os.Getenv("MELOSPHERE_MAX_FILLERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxFillers = n
		}
	}
	if v := os.Getenv("MELOSPHERE_KEYWORDS"); v != "" {
		cfg.Keywords = splitList(v)
	}
	if v := os.Getenv("MELOSPHERE_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxConcurrent = n
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
