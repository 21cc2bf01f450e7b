package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/dasmlab/melosphere/pkg/service"
	"github.com/dasmlab/melosphere/pkg/translate"
)

// HTTPServer provides the HTTP API: blend job submission, job status,
// SSE progress updates, supported languages, health and metrics.
type HTTPServer struct {
	jobQueue   *service.JobQueue
	translator translate.Translator
	logger     *logrus.Logger
	port       int
	srv        *http.Server
}

// NewHTTPServer creates a new HTTP server over the given job queue and
// translator.
func NewHTTPServer(jobQueue *service.JobQueue, translator translate.Translator, logger *logrus.Logger, port int) *HTTPServer {
	return &HTTPServer{
		jobQueue:   jobQueue,
		translator: translator,
		logger:     logger,
		port:       port,
	}
}

// Handler builds the chi router. Exposed separately so tests can drive the
// API without a listener.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/blend", s.handleCreateBlend)
		r.Get("/languages", s.handleLanguages)
		r.Get("/jobs/{jobID}", s.handleJobStatus)
		r.Get("/jobs/{jobID}/events", s.handleJobEvents)
	})

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *HTTPServer) Start() error {
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.WithFields(logrus.Fields{
		"port": s.port,
	}).Info("Starting HTTP server")

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// handleCreateBlend accepts a blend request and queues a job for it.
func (s *HTTPServer) handleCreateBlend(w http.ResponseWriter, r *http.Request) {
	var req service.BlendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	jobID, err := s.jobQueue.CreateJob(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{
		"job_id": jobID,
	})
}

// handleJobStatus returns the current state of a blend job as JSON.
func (s *HTTPServer) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobQueue.GetJob(chi.URLParam(r, "jobID"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

// handleJobEvents provides Server-Sent Events for job progress updates.
// The stream closes once the job reaches a terminal state.
func (s *HTTPServer) handleJobEvents(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobQueue.GetJob(chi.URLParam(r, "jobID"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	s.sendSSEEvent(w, job)

	lastStatus := ""
	lastProgress := int32(-1)

	for {
		select {
		case <-r.Context().Done():
			// Client disconnected
			return
		case <-ticker.C:
			status, _, progress := job.GetStatus()
			if string(status) == lastStatus && progress == lastProgress {
				continue
			}
			s.sendSSEEvent(w, job)
			lastStatus = string(status)
			lastProgress = progress

			if status == service.JobStatusCompleted || status == service.JobStatusFailed {
				return
			}
		}
	}
}

// sendSSEEvent writes one status event in SSE framing.
func (s *HTTPServer) sendSSEEvent(w http.ResponseWriter, job *service.BlendJob) {
	data, err := json.Marshal(job.Snapshot())
	if err != nil {
		s.logger.WithError(err).Error("Failed to marshal SSE event")
		return
	}

	fmt.Fprintf(w, "event: status\n")
	fmt.Fprintf(w, "data: %s\n\n", string(data))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// handleLanguages returns the languages the active backend can serve.
func (s *HTTPServer) handleLanguages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	codes, err := s.translator.SupportedLanguages(ctx)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, fmt.Sprintf("backend unavailable: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"languages": codes,
	})
}

// handleHealth provides a health check endpoint.
func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	})
}

func (s *HTTPServer) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}
