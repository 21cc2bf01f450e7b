package translate

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Translator defines the interface for machine translation backends.
// This abstraction allows us to switch between different MT engines
// (LibreTranslate, Google Cloud Translation, the static lexicon) without
// changing the blend pipeline.
type Translator interface {
	// Translate translates text from source language to target language.
	// sourceLang and targetLang should be in ISO 639-1 format (e.g., "en", "hi").
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// CheckHealth verifies that the translation backend is ready and operational.
	CheckHealth(ctx context.Context) error

	// SupportedLanguages returns a list of language codes supported by this
	// backend, in ISO 639-1 format (e.g., ["en", "hi", "ta"]).
	SupportedLanguages(ctx context.Context) ([]string, error)
}

// LanguageMapper handles conversion between different language code formats.
// Callers pass tags like "EN", "hi-IN" or "pt_BR" (BCP 47-ish), while the
// backends expect bare ISO 639-1 codes like "en" and "hi".
type LanguageMapper struct{}

// NewLanguageMapper creates a new language mapper instance.
func NewLanguageMapper() *LanguageMapper {
	return &LanguageMapper{}
}

// ToBackendCode converts a caller-supplied language tag to backend format.
// Examples:
//   - "EN" -> "en"
//   - "hi-IN" -> "hi"
//   - "pt_BR" -> "pt"
//
// Unrecognized tags are lowercased and stripped of any region suffix rather
// than rejected; the backend decides whether it can serve them.
func (lm *LanguageMapper) ToBackendCode(tag string) string {
	tag = strings.TrimSpace(tag)
	if t, err := language.Parse(tag); err == nil {
		if base, conf := t.Base(); conf > language.No {
			return base.String()
		}
	}

	lang := strings.ToLower(tag)
	if idx := strings.IndexAny(lang, "-_"); idx >= 0 {
		lang = lang[:idx]
	}
	return lang
}
