// Package middleware provides cross-cutting concerns for the ranking
// engine.
package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/pairwise/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector port using
// Prometheus counters, giving long-running interactive sessions
// visibility into how much judging and re-judging is happening.
type PrometheusMetrics struct {
	judgmentsStored *prometheus.CounterVec
	judgmentsUndone *prometheus.CounterVec
	weightsRecorded *prometheus.CounterVec
	reprompts       *prometheus.CounterVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and
// registers its metrics with the given registerer. Pass
// prometheus.DefaultRegisterer for the global registry.
func NewPrometheusMetrics(reg prometheus.Registerer, sessionID string) *PrometheusMetrics {
	labels := prometheus.Labels{"session_id": sessionID}
	factory := promauto.With(prometheus.WrapRegistererWith(labels, reg))

	return &PrometheusMetrics{
		judgmentsStored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairwise_judgments_stored_total",
				Help: "Total number of pairwise judgments stored.",
			},
			[]string{"phase"},
		),
		judgmentsUndone: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairwise_judgments_undone_total",
				Help: "Total number of stored judgments removed by undo.",
			},
			[]string{"phase"},
		),
		weightsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairwise_weights_recorded_total",
				Help: "Total number of resolved weight elicitations.",
			},
			[]string{"phase"},
		),
		reprompts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pairwise_reprompts_total",
				Help: "Total number of rejected response lines.",
			},
			[]string{"phase"},
		),
	}
}

// JudgmentRecorded implements the MetricsCollector port.
func (pm *PrometheusMetrics) JudgmentRecorded() {
	pm.judgmentsStored.WithLabelValues("compare").Inc()
}

// JudgmentUndone implements the MetricsCollector port.
func (pm *PrometheusMetrics) JudgmentUndone() {
	pm.judgmentsUndone.WithLabelValues("compare").Inc()
}

// WeightRecorded implements the MetricsCollector port.
func (pm *PrometheusMetrics) WeightRecorded() {
	pm.weightsRecorded.WithLabelValues("weigh").Inc()
}

// Reprompted implements the MetricsCollector port.
func (pm *PrometheusMetrics) Reprompted() {
	pm.reprompts.WithLabelValues("elicit").Inc()
}
