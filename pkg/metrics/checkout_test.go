package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCheckoutMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCheckoutMetrics(reg)

	m.IncSubmission("ok")
	m.IncSubmission("ok")
	m.IncSubmission("")
	m.IncPublished("error")
	m.ObserveDuration(120 * time.Millisecond)

	if got := testutil.ToFloat64(m.submissions.WithLabelValues("ok")); got != 2 {
		t.Fatalf("expected 2 ok submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty outcome to normalize to unknown, got %v", got)
	}
	if got := testutil.ToFloat64(m.published.WithLabelValues("error")); got != 1 {
		t.Fatalf("expected 1 error publish, got %v", got)
	}
}

func TestCheckoutMetricsNilSafe(t *testing.T) {
	var m *CheckoutMetrics
	m.IncSubmission("ok")
	m.ObserveDuration(time.Second)
	m.IncPublished("ok")

	empty := NewCheckoutMetrics(nil)
	empty.IncSubmission("ok")
}
