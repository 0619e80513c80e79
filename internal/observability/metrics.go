package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Metrics holds the provider call collectors.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "muzo_provider_calls_total",
				Help: "Total number of external provider calls, partitioned by provider, operation and outcome.",
			},
			[]string{"provider", "operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "muzo_provider_call_duration_seconds",
				Help:    "Histogram of external provider call durations in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "operation"},
		),
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

func (m *Metrics) observe(provider, operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(provider, operation, outcome(err)).Inc()
	m.duration.WithLabelValues(provider, operation).Observe(time.Since(started).Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrNotFound):
		return outcomeNotFound
	default:
		return outcomeError
	}
}
