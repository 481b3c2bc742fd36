// Package observability provides Prometheus metrics for generation runs.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"CVDScenarios/internal/model"
)

// Metrics holds all Prometheus metrics of one process.
type Metrics struct {
	registry *prometheus.Registry

	CandlesGenerated   *prometheus.CounterVec
	StructurePoints    *prometheus.CounterVec
	PatternsTagged     *prometheus.CounterVec
	ScenariosByAction  *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	LastGeneration     prometheus.Gauge
}

// NewMetrics creates the metrics on a private registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "cvd_scenarios"
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		CandlesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "candles_total",
			Help:      "Total number of candles generated by series",
		}, []string{"series"}),
		StructurePoints: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "structure_points_total",
			Help:      "Total number of structure points by series and label",
		}, []string{"series", "label"}),
		PatternsTagged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "patterns_total",
			Help:      "Total number of pattern-tagged candles by series and pattern",
		}, []string{"series", "pattern"}),
		ScenariosByAction: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assembler",
			Name:      "scenarios_total",
			Help:      "Total number of scenarios assembled by action",
		}, []string{"action"}),
		GenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "assembler",
			Name:      "generation_seconds",
			Help:      "Time spent assembling the scenario catalog",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		LastGeneration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "assembler",
			Name:      "last_generation_timestamp_seconds",
			Help:      "Unix time of the last successful generation",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveRun records one generation of the catalog.
func (m *Metrics) ObserveRun(scenarios []model.Scenario, elapsed time.Duration, at time.Time) {
	for _, s := range scenarios {
		m.ScenariosByAction.WithLabelValues(string(s.Action)).Inc()
		m.observeSeries("price", s.PriceData)
		m.observeSeries("cvd", s.CVDData)
	}
	m.GenerationDuration.Observe(elapsed.Seconds())
	m.LastGeneration.Set(float64(at.Unix()))
}

func (m *Metrics) observeSeries(series string, seq model.Sequence) {
	m.CandlesGenerated.WithLabelValues(series).Add(float64(len(seq)))
	for _, c := range seq {
		if c.IsStructurePoint {
			m.StructurePoints.WithLabelValues(series, string(c.StructureLabel)).Inc()
		}
		if c.Pattern != model.PatternNone {
			m.PatternsTagged.WithLabelValues(series, string(c.Pattern)).Inc()
		}
	}
}

// WriteTextfile writes all metrics in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
