// SPDX-License-Identifier: MIT

package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Job outcome label values.
const (
	outcomeOK        = "ok"
	outcomeError     = "error"
	outcomeCancelled = "cancelled"
)

// metrics are the Prometheus series a Worker maintains.
type metrics struct {
	jobs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	depth    prometheus.Gauge
}

// newMetrics creates the series and registers them with reg when reg is
// non-nil. Registering twice on one registry panics, as promauto does.
func newMetrics(namespace string, reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		// Labels: mode, outcome (ok, error, cancelled)
		jobs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "jobs_total",
			Help:      "Jobs finished by mode and outcome",
		}, []string{"mode", "outcome"}),
		// Labels: mode
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "job_duration_seconds",
			Help:      "Wall time of a job from start to finish",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
		}, []string{"mode"}),
		depth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "queue_depth",
			Help:      "Jobs waiting in the queue",
		}),
	}
}

func (m *metrics) observe(mode Mode, outcome string, seconds float64) {
	m.jobs.WithLabelValues(mode.String(), outcome).Inc()
	m.duration.WithLabelValues(mode.String()).Observe(seconds)
}
