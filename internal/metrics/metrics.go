package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Fallbacks taken by fail-open wrappers, by operation name
	FailOpenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careercounsel_failopen_fallbacks_total",
			Help: "Total number of integration failures replaced by a fallback value",
		},
		[]string{"operation"},
	)

	// transition: basic_info_submit/record_answer/next/previous/submit, outcome: ok/refused/error
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careercounsel_assessment_transitions_total",
			Help: "Total number of assessment flow transitions by outcome",
		},
		[]string{"transition", "outcome"},
	)

	// outcome: live/degraded
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careercounsel_submissions_total",
			Help: "Total number of assessment submissions forwarded to the analysis service",
		},
		[]string{"track", "outcome"},
	)

	// source: live/mock
	ResultsServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careercounsel_results_served_total",
			Help: "Total number of results documents served by source",
		},
		[]string{"track", "source"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careercounsel_upstream_request_duration_seconds",
			Help:    "Time spent waiting for the analysis service",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

const (
	OutcomeOK      = "ok"
	OutcomeRefused = "refused"
	OutcomeError   = "error"
)

// RegisterRoutes exposes the default registry on /metrics.
func RegisterRoutes(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
