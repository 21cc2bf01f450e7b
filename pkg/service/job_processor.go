package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dasmlab/melosphere/pkg/lyric"
	"github.com/dasmlab/melosphere/pkg/translate"
)

// DefaultJobTimeout bounds how long one blend job may run end to end.
const DefaultJobTimeout = 2 * time.Minute

// JobProcessor processes blend jobs asynchronously: translation fan-out,
// per-language rhythmic enhancement, then blending.
type JobProcessor struct {
	fanout    *translate.FanOut
	estimator *lyric.Estimator
	logger    *logrus.Logger
	timeout   time.Duration
}

// NewJobProcessor creates a new job processor.
func NewJobProcessor(fanout *translate.FanOut, estimator *lyric.Estimator, logger *logrus.Logger) *JobProcessor {
	return &JobProcessor{
		fanout:    fanout,
		estimator: estimator,
		logger:    logger,
		timeout:   DefaultJobTimeout,
	}
}

// ProcessJob runs one blend job to completion. Per-language translation
// failures degrade to the original line and are reported per language;
// only an empty request fails the whole job, so ProcessJob is effectively
// total.
func (p *JobProcessor) ProcessJob(job *BlendJob) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	startTime := time.Now()
	req := job.Request

	p.logger.WithFields(logrus.Fields{
		"job_id":       job.ID,
		"request_id":   job.RequestID,
		"target_langs": req.TargetLangs,
		"mode":         req.Mode,
		"enhance":      req.Enhance,
	}).Info("Starting blend job processing")

	job.UpdateStatus(JobStatusProcessing, "Translating...")
	job.UpdateProgress(10, "Translating...")

	byLang := p.fanout.TranslateAll(ctx, req.Line, req.SourceLang, req.TargetLangs)

	enhancer := lyric.NewEnhancerWithFillers(p.estimator, nil, req.MaxFillers)

	results := make([]LanguageResult, 0, len(req.TargetLangs))
	blendInputs := make([]string, 0, len(req.TargetLangs))

	for i, lang := range req.TargetLangs {
		progress := 30 + int32(float64(i+1)/float64(len(req.TargetLangs))*50)
		job.UpdateProgress(progress, "Enhancing "+lang+"...")

		tr := byLang[lang]
		text := lyric.PreserveKeywords(req.Line, tr.Text, req.Keywords)

		lr := LanguageResult{
			Language:   lang,
			Translated: text,
			Enhanced:   text,
		}
		if tr.Err != nil {
			lr.Error = tr.Err.Error()
		}

		if req.Enhance {
			enh := enhancer.Enhance(req.Line, text)
			lr.Enhanced = enh.Enhanced
			lr.OriginalSyllables = enh.OriginalSyllables
			lr.SyllablesBefore = enh.TranslatedBefore
			lr.SyllablesAfter = enh.TranslatedAfter
			lr.Deficit = enh.Deficit
			lr.Fillers = enh.Fillers
			recordFillers(enh.Fillers)
		}

		results = append(results, lr)
		blendInputs = append(blendInputs, lr.Enhanced)
	}

	job.UpdateProgress(90, "Blending...")
	blended := lyric.Blend(req.Line, blendInputs, req.Mode)
	recordBlend(string(req.Mode))

	job.SetResult(results, blended)
	recordJob(string(JobStatusCompleted), time.Since(startTime))

	p.logger.WithFields(logrus.Fields{
		"job_id":      job.ID,
		"request_id":  job.RequestID,
		"duration_ms": time.Since(startTime).Milliseconds(),
		"languages":   len(results),
	}).Info("Blend job completed")
}
