// Package metrics records similarity runs as Prometheus metrics on a private
// registry, for scraping by an embedding service or export to a node-exporter
// textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run is the per-run summary a Recorder consumes.
type Run struct {
	ProductVertices int
	ProductEdges    int
	Cliques         int
	RecordsBefore   int
	RecordsAfter    int
	Partial         bool
	Enumeration     time.Duration
}

// Recorder owns the collectors of one process.
type Recorder struct {
	registry *prometheus.Registry

	runs            prometheus.Counter
	partialRuns     prometheus.Counter
	cliquesFound    prometheus.Counter
	productVertices prometheus.Gauge
	productEdges    prometheus.Gauge
	recordsBefore   prometheus.Gauge
	recordsAfter    prometheus.Gauge
	enumeration     prometheus.Histogram
}

// NewRecorder creates a Recorder with all collectors registered on a fresh
// registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "protsim_runs_total",
				Help: "Total number of similarity runs.",
			},
		),
		partialRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "protsim_partial_runs_total",
				Help: "Runs whose clique search stopped early.",
			},
		),
		cliquesFound: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "protsim_cliques_found_total",
				Help: "Total number of maximal cliques enumerated.",
			},
		),
		productVertices: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "protsim_product_graph_vertices",
				Help: "Vertices of the last product graph.",
			},
		),
		productEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "protsim_product_graph_edges",
				Help: "Edges of the last product graph.",
			},
		),
		recordsBefore: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "protsim_records_before_dedupe",
				Help: "Correspondence records of the last run before deduplication.",
			},
		),
		recordsAfter: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "protsim_records_after_dedupe",
				Help: "Correspondence records of the last run after deduplication.",
			},
		),
		enumeration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "protsim_enumeration_duration_seconds",
				Help:    "Duration of maximal clique enumeration.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	r.registry.MustRegister(
		r.runs,
		r.partialRuns,
		r.cliquesFound,
		r.productVertices,
		r.productEdges,
		r.recordsBefore,
		r.recordsAfter,
		r.enumeration,
	)

	return r
}

// Registry exposes the private registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one run. A nil Recorder ignores the call.
func (r *Recorder) Observe(run Run) {
	if r == nil {
		return
	}
	r.runs.Inc()
	if run.Partial {
		r.partialRuns.Inc()
	}
	r.cliquesFound.Add(float64(run.Cliques))
	r.productVertices.Set(float64(run.ProductVertices))
	r.productEdges.Set(float64(run.ProductEdges))
	r.recordsBefore.Set(float64(run.RecordsBefore))
	r.recordsAfter.Set(float64(run.RecordsAfter))
	r.enumeration.Observe(run.Enumeration.Seconds())
}

// WriteTextfile writes the current values in the text exposition format to
// path, atomically, for the node-exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
