package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dasmlab/melosphere/pkg/lyric"
)

// BlendJobStatus represents the status of a blend job.
type BlendJobStatus string

const (
	JobStatusQueued     BlendJobStatus = "queued"
	JobStatusProcessing BlendJobStatus = "processing"
	JobStatusCompleted  BlendJobStatus = "completed"
	JobStatusFailed     BlendJobStatus = "failed"
)

// BlendRequest describes one lyric line to translate, enhance and blend.
type BlendRequest struct {
	// Line is the source lyric line.
	Line string `json:"line"`
	// SourceLang is the source language tag. Defaults to "en".
	SourceLang string `json:"source_lang,omitempty"`
	// TargetLangs are the languages to translate into, in blend order.
	TargetLangs []string `json:"target_langs"`
	// Mode selects the blend strategy. Defaults to interleave.
	Mode lyric.BlendMode `json:"mode,omitempty"`
	// Enhance toggles rhythmic filler insertion per language.
	Enhance bool `json:"enhance,omitempty"`
	// MaxFillers caps fillers per line; 0 uses the default.
	MaxFillers int `json:"max_fillers,omitempty"`
	// Keywords are English words preserved verbatim across translation.
	Keywords []string `json:"keywords,omitempty"`
	// RequestID is an optional client-provided correlation ID.
	RequestID string `json:"request_id,omitempty"`
}

// LanguageResult holds the per-language outcome of a blend job.
type LanguageResult struct {
	Language          string `json:"language"`
	Translated        string `json:"translated"`
	Enhanced          string `json:"enhanced"`
	OriginalSyllables int    `json:"original_syllables"`
	SyllablesBefore   int    `json:"syllables_before"`
	SyllablesAfter    int    `json:"syllables_after"`
	Deficit           int    `json:"deficit"`
	Fillers           int    `json:"fillers"`
	Error             string `json:"error,omitempty"`
}

// BlendJob represents an asynchronous blend job.
type BlendJob struct {
	ID          string
	RequestID   string // Client-provided correlation ID
	Status      BlendJobStatus
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	Error       string

	// Request data
	Request BlendRequest

	// Result data
	Results []LanguageResult
	Blended string

	// Progress tracking
	ProgressPercent int32
	ProgressMessage string

	// Mutex for thread-safe access
	mu sync.RWMutex
}

// JobQueue manages asynchronous blend jobs.
type JobQueue struct {
	jobs      map[string]*BlendJob
	jobsMu    sync.RWMutex
	logger    *logrus.Logger
	processor *JobProcessor
}

// NewJobQueue creates a new job queue.
func NewJobQueue(logger *logrus.Logger) *JobQueue {
	return &JobQueue{
		jobs:   make(map[string]*BlendJob),
		logger: logger,
	}
}

// SetProcessor sets the job processor for this queue.
func (q *JobQueue) SetProcessor(processor *JobProcessor) {
	q.processor = processor
}

// CreateJob creates a new blend job and returns its ID. Processing starts
// asynchronously if a processor is attached.
func (q *JobQueue) CreateJob(req BlendRequest) (string, error) {
	if req.Line == "" {
		return "", fmt.Errorf("line is required")
	}
	if len(req.TargetLangs) == 0 {
		return "", fmt.Errorf("at least one target language is required")
	}
	if req.SourceLang == "" {
		req.SourceLang = "en"
	}
	mode, err := lyric.ParseBlendMode(string(req.Mode))
	if err != nil {
		return "", err
	}
	req.Mode = mode

	jobID := uuid.New().String()
	job := &BlendJob{
		ID:        jobID,
		RequestID: req.RequestID,
		Status:    JobStatusQueued,
		CreatedAt: time.Now(),
		Request:   req,
	}

	q.jobsMu.Lock()
	q.jobs[jobID] = job
	q.jobsMu.Unlock()

	q.logger.WithFields(logrus.Fields{
		"job_id":       jobID,
		"request_id":   req.RequestID,
		"target_langs": req.TargetLangs,
		"mode":         req.Mode,
	}).Info("Created blend job")

	if q.processor != nil {
		go q.processor.ProcessJob(job)
	}

	return jobID, nil
}

// GetJob retrieves a job by ID.
func (q *JobQueue) GetJob(jobID string) (*BlendJob, error) {
	q.jobsMu.RLock()
	defer q.jobsMu.RUnlock()

	job, exists := q.jobs[jobID]
	if !exists {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}
	return job, nil
}

// UpdateStatus updates the status of a job.
func (j *BlendJob) UpdateStatus(status BlendJobStatus, message string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.Status = status
	j.ProgressMessage = message

	now := time.Now()
	switch status {
	case JobStatusProcessing:
		if j.StartedAt == nil {
			j.StartedAt = &now
		}
	case JobStatusCompleted, JobStatusFailed:
		if j.CompletedAt == nil {
			j.CompletedAt = &now
		}
	}
}

// UpdateProgress updates the progress of a job.
func (j *BlendJob) UpdateProgress(percent int32, message string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.ProgressPercent = percent
	j.ProgressMessage = message
}

// SetError marks the job failed with the given error.
func (j *BlendJob) SetError(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.Error = err.Error()
	j.Status = JobStatusFailed
	now := time.Now()
	j.CompletedAt = &now
}

// SetResult records the per-language results and the blended line, and
// marks the job completed.
func (j *BlendJob) SetResult(results []LanguageResult, blended string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.Results = results
	j.Blended = blended
	j.Status = JobStatusCompleted
	now := time.Now()
	j.CompletedAt = &now
	j.ProgressPercent = 100
	j.ProgressMessage = "Blend completed"
}

// GetStatus returns the job's status, progress message and percent
// (thread-safe).
func (j *BlendJob) GetStatus() (BlendJobStatus, string, int32) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.Status, j.ProgressMessage, j.ProgressPercent
}

// JobSnapshot is a point-in-time copy of a job, safe to serialize.
type JobSnapshot struct {
	ID              string           `json:"job_id"`
	RequestID       string           `json:"request_id,omitempty"`
	Status          BlendJobStatus   `json:"status"`
	ProgressPercent int32            `json:"progress_percent"`
	ProgressMessage string           `json:"progress_message,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	StartedAt       *time.Time       `json:"started_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	Error           string           `json:"error,omitempty"`
	Results         []LanguageResult `json:"results,omitempty"`
	Blended         string           `json:"blended,omitempty"`
}

// Snapshot returns a consistent copy of the job for serialization.
func (j *BlendJob) Snapshot() JobSnapshot {
	j.mu.RLock()
	defer j.mu.RUnlock()

	snap := JobSnapshot{
		ID:              j.ID,
		RequestID:       j.RequestID,
		Status:          j.Status,
		ProgressPercent: j.ProgressPercent,
		ProgressMessage: j.ProgressMessage,
		CreatedAt:       j.CreatedAt,
		StartedAt:       j.StartedAt,
		CompletedAt:     j.CompletedAt,
		Error:           j.Error,
		Blended:         j.Blended,
	}
	if j.Status == JobStatusCompleted {
		snap.Results = append([]LanguageResult(nil), j.Results...)
	}
	return snap
}

// CleanupOldJobs removes completed or failed jobs older than maxAge.
func (q *JobQueue) CleanupOldJobs(maxAge time.Duration) {
	q.jobsMu.Lock()
	defer q.jobsMu.Unlock()

	now := time.Now()
	removed := 0

	for id, job := range q.jobs {
		status, _, _ := job.GetStatus()
		if status != JobStatusCompleted && status != JobStatusFailed {
			continue
		}
		job.mu.RLock()
		completedAt := job.CompletedAt
		job.mu.RUnlock()
		if completedAt != nil && now.Sub(*completedAt) > maxAge {
			delete(q.jobs, id)
			removed++
		}
	}

	if removed > 0 {
		q.logger.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": len(q.jobs),
		}).Info("Cleaned up old blend jobs")
	}
}
