// Package metrics records rebuild statistics with Prometheus.
package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/breeze/internal/core/domain"
	"go.trai.ch/breeze/internal/core/ports"
)

const namespace = "breeze"

// Build outcomes counted by IncBuildOutcome.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

var (
	_ ports.Metrics = (*PrometheusRecorder)(nil)
	_ ports.Metrics = NoopRecorder{}
)

// PrometheusRecorder implements ports.Metrics with Prometheus collectors.
type PrometheusRecorder struct {
	rebuilds        *prom.CounterVec
	rebuildDuration *prom.HistogramVec
	buildOutcomes   *prom.CounterVec
}

// NewPrometheusRecorder creates the collectors and registers them with reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		rebuilds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "rebuilds_total",
			Help:      "Processed stylesheet invocations by rebuild decision",
		}, []string{"decision"}),
		rebuildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "rebuild_duration_seconds",
			Help:      "Duration of stylesheet invocations by rebuild decision",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"decision"}),
		buildOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Entry builds by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.rebuilds, pr.rebuildDuration, pr.buildOutcomes)
	return pr
}

// ObserveRebuild implements ports.Metrics.
func (p *PrometheusRecorder) ObserveRebuild(decision domain.RebuildDecision, d time.Duration) {
	if p == nil {
		return
	}
	p.rebuilds.WithLabelValues(decision.String()).Inc()
	p.rebuildDuration.WithLabelValues(decision.String()).Observe(d.Seconds())
}

// IncBuildOutcome implements ports.Metrics.
func (p *PrometheusRecorder) IncBuildOutcome(outcome string) {
	if p == nil {
		return
	}
	p.buildOutcomes.WithLabelValues(outcome).Inc()
}

// NoopRecorder discards all metrics.
type NoopRecorder struct{}

// ObserveRebuild does nothing.
func (NoopRecorder) ObserveRebuild(domain.RebuildDecision, time.Duration) {}

// IncBuildOutcome does nothing.
func (NoopRecorder) IncBuildOutcome(string) {}
