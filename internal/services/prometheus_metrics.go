package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	runsTotal         *prometheus.CounterVec
	runDuration       prometheus.Histogram
	matchesTotal      *prometheus.CounterVec
	decisionsTotal    *prometheus.CounterVec
	matchConfidence   prometheus.Histogram
	matchRate         prometheus.Gauge
	autoMatchRate     prometheus.Gauge
	unreconciledLines prometheus.Gauge
	persistedMatches  prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		runsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_runs_total",
				Help: "Total number of reconciliation runs",
			},
			[]string{"status"},
		),
		runDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reconciliation_run_duration_milliseconds",
				Help:    "Reconciliation run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		matchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_matches_total",
				Help: "Total number of match candidates produced",
			},
			[]string{"confidence_level"},
		),
		decisionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_decisions_total",
				Help: "Total number of operator decisions on matches",
			},
			[]string{"decision"},
		),
		matchConfidence: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reconciliation_match_confidence",
				Help:    "Confidence scores of produced match candidates",
				Buckets: prometheus.LinearBuckets(0.45, 0.05, 12),
			},
		),
		matchRate: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "reconciliation_match_rate",
				Help: "Fraction of statement lines with at least one candidate in the last run",
			},
		),
		autoMatchRate: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "reconciliation_auto_match_rate",
				Help: "Fraction of statement lines auto-matched in the last run",
			},
		),
		unreconciledLines: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "reconciliation_unreconciled_lines",
				Help: "Number of unreconciled statement lines seen by the last run",
			},
		),
		persistedMatches: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reconciliation_persisted_matches_total",
				Help: "Total number of auto-accepted matches written to storage",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "reconciliation.run.completed":
		m.runsTotal.WithLabelValues("completed").Inc()
	case "reconciliation.run.failed":
		m.runsTotal.WithLabelValues("failed").Inc()
	case "reconciliation.match.candidate":
		if level := tags["confidence_level"]; level != "" {
			m.matchesTotal.WithLabelValues(level).Inc()
		}
	case "reconciliation.match.decision":
		if decision := tags["decision"]; decision != "" {
			m.decisionsTotal.WithLabelValues(decision).Inc()
		}
	case "reconciliation.match.persisted":
		m.persistedMatches.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "reconciliation.run" {
		m.runDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "reconciliation.match.confidence":
		m.matchConfidence.Observe(value)
	case "reconciliation.match_rate":
		m.matchRate.Set(value)
	case "reconciliation.auto_match_rate":
		m.autoMatchRate.Set(value)
	case "reconciliation.unreconciled_lines":
		m.unreconciledLines.Set(value)
	}
}
