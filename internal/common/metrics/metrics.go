// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BriefRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brief_requests_total",
			Help: "HTTP requests handled, by endpoint and status code",
		},
		[]string{"endpoint", "status"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "brief_generation_duration_seconds",
			Help:    "Duration of each brief pipeline stage in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"stage"},
	)

	ResearchFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "research_fallbacks_total",
			Help: "Research provider results replaced by canned data",
		},
		[]string{"provider", "reason"},
	)

	SectionFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brief_sections_fallback_total",
			Help: "Sections filled from fallback templates instead of model output",
		},
		[]string{"section"},
	)

	PDFRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brief_pdf_render_total",
			Help: "PDF render attempts by outcome",
		},
		[]string{"status"},
	)

	GenerationsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "brief_generations_active",
			Help: "Brief generations currently in flight",
		},
	)
)
