package translate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Per-request backend metrics
	translationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melosphere_translation_requests_total",
			Help: "Total number of per-language translation requests",
		},
		[]string{"status"},
	)

	translationRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "melosphere_translation_request_duration_seconds",
			Help:    "Duration of per-language translation requests in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
		[]string{"status"},
	)

	translationRequestSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "melosphere_translation_request_size_bytes",
			Help:    "Size of translation request text in bytes",
			Buckets: []float64{16, 64, 128, 256, 512, 1024, 4096},
		},
	)

	translationResponseSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "melosphere_translation_response_size_bytes",
			Help:    "Size of translation response text in bytes",
			Buckets: []float64{16, 64, 128, 256, 512, 1024, 4096},
		},
	)

	// Fan-out batch metrics
	fanoutBatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "melosphere_fanout_batches_total",
			Help: "Total number of translation fan-out batches",
		},
	)

	fanoutBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "melosphere_fanout_batch_duration_seconds",
			Help:    "Wall-clock duration of whole fan-out batches in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
	)

	fanoutLanguagesPerBatch = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "melosphere_fanout_languages_per_batch",
			Help:    "Number of target languages per fan-out batch",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16},
		},
	)

	fanoutFailedLanguagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "melosphere_fanout_failed_languages_total",
			Help: "Total number of per-language failures across fan-out batches",
		},
	)
)

// recordTranslation records metrics for one backend translation call.
func recordTranslation(duration time.Duration, success bool, requestSize, responseSize int) {
	status := "success"
	if !success {
		status = "error"
	}
	translationRequestsTotal.WithLabelValues(status).Inc()
	translationRequestDuration.WithLabelValues(status).Observe(duration.Seconds())
	translationRequestSize.Observe(float64(requestSize))
	translationResponseSize.Observe(float64(responseSize))
}

// recordFanOut records metrics for one completed fan-out batch.
func recordFanOut(duration time.Duration, targets, failed int) {
	fanoutBatchesTotal.Inc()
	fanoutBatchDuration.Observe(duration.Seconds())
	fanoutLanguagesPerBatch.Observe(float64(targets))
	fanoutFailedLanguagesTotal.Add(float64(failed))
}
