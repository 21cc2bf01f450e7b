package translate

import (
	"context"
	"fmt"

	gtranslate "cloud.google.com/go/translate"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// GoogleClient implements the Translator interface using the Google Cloud
// Translation API. Credentials come from the usual Application Default
// Credentials chain (GOOGLE_APPLICATION_CREDENTIALS etc.), which is the
// provider the original lyric tool used.
type GoogleClient struct {
	client *gtranslate.Client
	logger *logrus.Logger
}

// NewGoogleClient creates a Google Cloud Translation client.
func NewGoogleClient(ctx context.Context, logger *logrus.Logger) (*GoogleClient, error) {
	if logger == nil {
		logger = logrus.New()
	}
	client, err := gtranslate.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create google translate client: %w", err)
	}
	return &GoogleClient{client: client, logger: logger}, nil
}

// Translate translates text from source language to target language.
func (c *GoogleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	target, err := language.Parse(targetLang)
	if err != nil {
		return "", fmt.Errorf("parse target language %q: %w", targetLang, err)
	}

	opts := &gtranslate.Options{Format: gtranslate.Text}
	if sourceLang != "" {
		source, err := language.Parse(sourceLang)
		if err != nil {
			return "", fmt.Errorf("parse source language %q: %w", sourceLang, err)
		}
		opts.Source = source
	}

	resp, err := c.client.Translate(ctx, []string{text}, target, opts)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"source_lang": sourceLang,
			"target_lang": targetLang,
		}).Error("Google translation request failed")
		return "", fmt.Errorf("google translate: %w", err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("google translate: empty response")
	}
	return resp[0].Text, nil
}

// CheckHealth verifies the API is reachable by listing supported languages.
func (c *GoogleClient) CheckHealth(ctx context.Context) error {
	if _, err := c.client.SupportedLanguages(ctx, language.English); err != nil {
		return fmt.Errorf("google translate health check: %w", err)
	}
	return nil
}

// SupportedLanguages returns the language codes the API can translate into.
func (c *GoogleClient) SupportedLanguages(ctx context.Context) ([]string, error) {
	langs, err := c.client.SupportedLanguages(ctx, language.English)
	if err != nil {
		return nil, fmt.Errorf("list supported languages: %w", err)
	}
	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Tag.String())
	}
	return codes, nil
}

// Close releases the underlying API client.
func (c *GoogleClient) Close() error {
	return c.client.Close()
}
