package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallart_jobs_processed_total",
		Help: "Total number of art jobs processed, by status",
	}, []string{"status"})

	JobProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wallart_job_processing_duration_seconds",
		Help:    "Duration of the art generation pipeline",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"stage"})

	FramesSampledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallart_frames_sampled_total",
		Help: "Total number of movie frames sampled across all jobs",
	})

	ColumnsRenderedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallart_columns_rendered_total",
		Help: "Total number of art columns rendered across all jobs",
	})

	ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wallart_active_workers",
		Help: "Number of currently active workers generating art",
	})

	RetryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallart_retry_total",
		Help: "Total number of retries",
	}, []string{"attempt"})
)
