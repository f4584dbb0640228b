package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records checkout submissions and outbox publishing outcomes.
type CheckoutMetrics struct {
	submissions *prometheus.CounterVec
	duration    prometheus.Histogram
	published   *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_submissions_total",
		Help: "Checkout submissions by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Duration of checkout submission in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_published_total",
		Help: "Outbox events published by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(submissions, duration, published)
	return &CheckoutMetrics{
		submissions: submissions,
		duration:    duration,
		published:   published,
	}
}

// IncSubmission counts a checkout submission for the given outcome label.
func (m *CheckoutMetrics) IncSubmission(outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveDuration records how long a checkout submission took.
func (m *CheckoutMetrics) ObserveDuration(duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.Observe(duration.Seconds())
}

// IncPublished counts an outbox publish attempt for the given outcome label.
func (m *CheckoutMetrics) IncPublished(outcome string) {
	if m == nil || m.published == nil {
		return
	}
	m.published.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
