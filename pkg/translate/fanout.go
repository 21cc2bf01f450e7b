package translate

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultMaxConcurrent bounds how many per-language translation requests
// run at once during a fan-out.
const DefaultMaxConcurrent = 8

// Result is the outcome of translating one line into one target language.
type Result struct {
	// Language is the caller-supplied target language tag.
	Language string
	// Text is the translated line. On failure it degrades to the original
	// line so downstream enhancement and blending still have input.
	Text string
	// Err is the translation failure for this language, if any. A failed
	// language never invalidates the others.
	Err error
	// Duration is how long the backend call took.
	Duration time.Duration
}

// FanOut translates one line into many target languages concurrently,
// through a bounded worker pool. Each per-language request is independent;
// results are keyed uniquely by language, so assembly is race-free.
type FanOut struct {
	translator    Translator
	mapper        *LanguageMapper
	maxConcurrent int
	logger        *logrus.Logger
}

// NewFanOut creates a fan-out over the given translator. maxConcurrent
// bounds parallel backend calls; values below 1 use DefaultMaxConcurrent.
func NewFanOut(translator Translator, logger *logrus.Logger, maxConcurrent int) *FanOut {
	if logger == nil {
		logger = logrus.New()
	}
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &FanOut{
		translator:    translator,
		mapper:        NewLanguageMapper(),
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// TranslateAll translates text from sourceLang into every target language
// and returns the results keyed by the caller-supplied language tags.
// A target equal to the source language is returned as-is without a
// backend call. TranslateAll waits for all requests to settle; it does not
// fail as a whole, only per language.
func (f *FanOut) TranslateAll(ctx context.Context, text, sourceLang string, targets []string) map[string]Result {
	results := make([]Result, len(targets))
	sem := make(chan struct{}, f.maxConcurrent)
	var wg sync.WaitGroup

	sourceCode := f.mapper.ToBackendCode(sourceLang)
	startTime := time.Now()

	for i, target := range targets {
		wg.Add(1)
		go func(i int, target string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = f.translateOne(ctx, text, sourceCode, target)
		}(i, target)
	}
	wg.Wait()

	byLang := make(map[string]Result, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		byLang[r.Language] = r
	}

	recordFanOut(time.Since(startTime), len(targets), failed)
	f.logger.WithFields(logrus.Fields{
		"targets":     len(targets),
		"failed":      failed,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Translation fan-out completed")

	return byLang
}

func (f *FanOut) translateOne(ctx context.Context, text, sourceCode, target string) Result {
	result := Result{Language: target}
	targetCode := f.mapper.ToBackendCode(target)

	if targetCode == sourceCode {
		result.Text = text
		return result
	}

	startTime := time.Now()
	translated, err := f.translator.Translate(ctx, text, sourceCode, targetCode)
	result.Duration = time.Since(startTime)
	recordTranslation(result.Duration, err == nil, len(text), len(translated))

	if err != nil {
		f.logger.WithError(err).WithFields(logrus.Fields{
			"target_lang": target,
		}).Warn("Translation failed, falling back to original line")
		result.Text = text
		result.Err = err
		return result
	}

	result.Text = translated
	return result
}
