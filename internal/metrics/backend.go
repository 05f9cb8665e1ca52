package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BackendMetrics tracks the reachability of the dashboard backend.
type BackendMetrics struct {
	Up            prometheus.Gauge
	ProbeDuration prometheus.Histogram
	ProbeFailures prometheus.Counter
}

// NewBackendMetrics creates and registers backend probe metrics on the given
// registry.
func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	m := &BackendMetrics{
		Up: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "up",
			Help:      "Whether the last backend health probe succeeded (1) or not (0).",
		}),
		ProbeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "probe_duration_seconds",
			Help:      "Duration of backend health probes in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		ProbeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "probe_failures_total",
			Help:      "Total number of failed backend health probes.",
		}),
	}

	reg.MustRegister(m.Up, m.ProbeDuration, m.ProbeFailures)
	return m
}

// ObserveProbe records the outcome of one health probe.
func (m *BackendMetrics) ObserveProbe(d time.Duration, err error) {
	m.ProbeDuration.Observe(d.Seconds())
	if err != nil {
		m.Up.Set(0)
		m.ProbeFailures.Inc()
		return
	}
	m.Up.Set(1)
}
