// Package telemetry records prometheus metrics for grid solves.
//
// Metrics live on a private registry so that several Metrics values (for
// example one per test) never collide. The CLI writes them once per run in
// the node_exporter textfile format.
package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathgrid/gridpath"
)

// Metrics implements gridpath.Observer.
type Metrics struct {
	registry *prometheus.Registry

	solves     *prometheus.CounterVec
	duration   prometheus.Histogram
	visits     prometheus.Histogram
	pathSteps  prometheus.Histogram
	graphNodes prometheus.Gauge
	graphEdges prometheus.Gauge
}

// New registers the solve metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pathgrid_solves_total",
			Help: "Grid solves by outcome and selection strategy",
		}, []string{"result", "selection"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_solve_duration_seconds",
			Help:    "Graph build plus search time",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		visits: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_visits",
			Help:    "Visit notifications emitted per solve",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		pathSteps: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathgrid_path_steps",
			Help:    "Moves on the found path",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		graphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pathgrid_graph_nodes",
			Help: "Nodes in the most recently built grid graph",
		}),
		graphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pathgrid_graph_edges",
			Help: "Edges in the most recently built grid graph",
		}),
	}
}

// ObserveSolve records one solution.
func (m *Metrics) ObserveSolve(s *gridpath.Solution) {
	result := "unreachable"
	if s.Found() {
		result = "found"
		m.pathSteps.Observe(float64(s.Steps()))
	}
	m.solves.WithLabelValues(result, s.Selection.String()).Inc()
	m.duration.Observe(s.Elapsed.Seconds())
	m.visits.Observe(float64(len(s.Visited)))
	m.graphNodes.Set(float64(s.Nodes))
	m.graphEdges.Set(float64(s.Edges))
}

// Registry exposes the underlying registry, for gathering or HTTP export.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}
	return nil
}
