package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protsim/metrics"
)

func TestRecorder_Observe(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(metrics.Run{
		ProductVertices: 9,
		ProductEdges:    18,
		Cliques:         6,
		RecordsBefore:   6,
		RecordsAfter:    1,
		Enumeration:     20 * time.Millisecond,
	})
	r.Observe(metrics.Run{Cliques: 2, Partial: true})

	n, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	mfs, err := r.Registry().Gather()
	require.NoError(t, err)
	values := make(map[string]float64)
	for _, mf := range mfs {
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			values[mf.GetName()] = m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			values[mf.GetName()] = m.GetGauge().GetValue()
		case m.GetHistogram() != nil:
			values[mf.GetName()] = float64(m.GetHistogram().GetSampleCount())
		}
	}
	assert.Equal(t, 2.0, values["protsim_runs_total"])
	assert.Equal(t, 1.0, values["protsim_partial_runs_total"])
	assert.Equal(t, 8.0, values["protsim_cliques_found_total"])
	assert.Equal(t, 0.0, values["protsim_product_graph_vertices"], "gauges hold the last run")
	assert.Equal(t, 2.0, values["protsim_enumeration_duration_seconds"])
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() { r.Observe(metrics.Run{Cliques: 1}) })
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe(metrics.Run{ProductVertices: 4, Cliques: 3})

	path := filepath.Join(t.TempDir(), "protsim.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "protsim_product_graph_vertices 4")
	assert.Contains(t, string(data), "protsim_cliques_found_total 3")

	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Error(t, err)
}
