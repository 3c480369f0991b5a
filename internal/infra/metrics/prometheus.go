package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transcoder_jobs_processed_total",
		Help: "Total number of transcode jobs processed, by terminal status",
	}, []string{"status"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "transcoder_stage_duration_seconds",
		Help:    "Duration of each pipeline stage",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"stage"})

	VariantsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transcoder_variants_published_total",
		Help: "Total number of resolution variants published, by resolution",
	}, []string{"resolution"})

	ActiveJobs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "transcoder_active_jobs",
		Help: "Number of jobs currently in the pipeline",
	})

	CleanupFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transcoder_cleanup_failures_total",
		Help: "Total number of best-effort local cleanup failures",
	})
)
