package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_analyses_total",
			Help: "Total number of resume analyses performed",
		},
		[]string{"format"},
	)

	ComparisonsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ats_comparisons_total",
			Help: "Total number of resume-to-job comparisons performed",
		},
	)

	RequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_request_errors_total",
			Help: "Total number of rejected analysis requests",
		},
		[]string{"endpoint", "reason"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "ats_analysis_duration_seconds",
			Help: "Duration of the scoring pipeline in seconds",
		},
	)
)
