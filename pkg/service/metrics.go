package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melosphere_blend_jobs_total",
			Help: "Total number of blend jobs by terminal status",
		},
		[]string{"status"},
	)

	jobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "melosphere_blend_job_duration_seconds",
			Help:    "End-to-end duration of blend jobs in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
		},
	)

	blendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melosphere_blends_total",
			Help: "Total number of blend operations by mode",
		},
		[]string{"mode"},
	)

	fillersInsertedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "melosphere_fillers_inserted_total",
			Help: "Total number of filler tokens inserted by the enhancer",
		},
	)
)

func recordJob(status string, duration time.Duration) {
	jobsTotal.WithLabelValues(status).Inc()
	jobDuration.Observe(duration.Seconds())
}

func recordBlend(mode string) {
	blendsTotal.WithLabelValues(mode).Inc()
}

func recordFillers(n int) {
	if n > 0 {
		fillersInsertedTotal.Add(float64(n))
	}
}
