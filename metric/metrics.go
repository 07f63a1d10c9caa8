// Package metric provides run accounting for the export pipeline.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all export-run metrics
type Metrics struct {
	PagesSelected  *prometheus.CounterVec
	TriplesEmitted *prometheus.CounterVec
	QuadsWritten   prometheus.Counter
	QueryDuration  *prometheus.HistogramVec
	ErrorsTotal    *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all export metrics
func NewMetrics() *Metrics {
	return &Metrics{
		PagesSelected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "graphexport",
				Subsystem: "pages",
				Name:      "selected_total",
				Help:      "Total number of pages selected for export",
			},
			[]string{"selector"},
		),

		TriplesEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "graphexport",
				Subsystem: "triples",
				Name:      "emitted_total",
				Help:      "Total number of triples produced",
			},
			[]string{"selector"},
		),

		QuadsWritten: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "graphexport",
				Subsystem: "quads",
				Name:      "written_total",
				Help:      "Total number of quads handed to the serializer",
			},
		),

		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "graphexport",
				Subsystem: "query",
				Name:      "duration_seconds",
				Help:      "Graph query duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"selector"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "graphexport",
				Subsystem: "run",
				Name:      "errors_total",
				Help:      "Total number of errors by component",
			},
			[]string{"component"},
		),
	}
}

// Registry bundles the metrics with their prometheus registry so a run can
// gather a final summary.
type Registry struct {
	Metrics  *Metrics
	registry *prometheus.Registry
}

// NewRegistry creates a registry with all export metrics registered.
func NewRegistry() *Registry {
	m := NewMetrics()
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		m.PagesSelected,
		m.TriplesEmitted,
		m.QuadsWritten,
		m.QueryDuration,
		m.ErrorsTotal,
	)
	return &Registry{Metrics: m, registry: reg}
}

// Gatherer exposes the underlying prometheus gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
