// Package metrics holds the Prometheus instrumentation for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics bundles all collectors on a private registry so tests can
// construct isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	SearchesTotal     *prometheus.CounterVec
	CreditsSpent      prometheus.Counter
	FallbacksTotal    prometheus.Counter
	GenerationSeconds prometheus.Histogram
}

// New creates a metrics bundle with its own registry, including the standard
// Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ranklens_searches_total",
			Help: "Keyword searches by mode and outcome.",
		}, []string{"mode", "outcome"}),
		CreditsSpent: factory.NewCounter(prometheus.CounterOpts{
			Name: "ranklens_credits_spent_total",
			Help: "Credits debited for successful searches.",
		}),
		FallbacksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ranklens_generation_fallbacks_total",
			Help: "Searches answered with the canned fallback payload.",
		}),
		GenerationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ranklens_generation_duration_seconds",
			Help:    "Latency of one generation call.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
