package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protsim/clique"
	"github.com/katalvlaran/protsim/core"
	"github.com/katalvlaran/protsim/gml"
	"github.com/katalvlaran/protsim/output"
	"github.com/katalvlaran/protsim/result"
	"github.com/katalvlaran/protsim/similarity"
)

var records = []result.Record{
	{A: []int{3, 7}, B: []int{2, 9}},
	{A: []int{1, 4, 5}, B: []int{6, 8, 10}},
}

func TestWriteJSONLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.WriteJSONLines(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"first":[3,7],"second":[2,9]}`, lines[0])

	var back result.Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &back))
	assert.Equal(t, records[1], back)
}

func TestWriteReport(t *testing.T) {
	rep := &similarity.Report{
		RunID:           uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Rule:            "edge=[spatial] vertex=[sse_type]",
		Policy:          "largest",
		ProductVertices: 9,
		ProductEdges:    18,
		Cliques:         6,
		Selected:        6,
		Filtered:        true,
		Dedupe:          result.DedupeStats{Before: 6, After: 1},
		Partial:         true,
		Reason:          clique.ReasonBudget,
		Elapsed:         1500 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, output.WriteReport(&buf, rep))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", got["run_id"])
	assert.Equal(t, 6.0, got["records_before_filter"])
	assert.Equal(t, "budget", got["stop_reason"])
	assert.Equal(t, 1500.0, got["elapsed_ms"])
	assert.Equal(t, []any{}, got["records"])
	assert.NotContains(t, got, "mappings")
}

func TestMappingString(t *testing.T) {
	assert.Equal(t, "4=A0\n9=A1\n", output.MappingString([]int{4, 9}, output.PrefixFirst))
	assert.Equal(t, "", output.MappingString(nil, output.PrefixSecond))
}

func TestWriteMappingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	mappings := []result.Mapping{
		{{A: 3, B: 9}, {A: 7, B: 2}},
		nil,
	}

	paths, err := output.WriteMappingFiles(dir, records, mappings)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.Equal(t, filepath.Join(dir, "results_0_first.txt"), paths[0])
	assert.Equal(t, filepath.Join(dir, "results_1_second.txt"), paths[3])

	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(data)
	}
	// Aligned: line k pairs 3↔9 and 7↔2.
	assert.Equal(t, "3=A0\n7=A1\n", read("results_0_first.txt"))
	assert.Equal(t, "9=B0\n2=B1\n", read("results_0_second.txt"))
	// Unaligned: each side ascending.
	assert.Equal(t, "6=B0\n8=B1\n10=B2\n", read("results_1_second.txt"))
}

func TestWriteSubstructures(t *testing.T) {
	a, err := gml.Parse(strings.NewReader(`graph [
  node [ id 1 sse_type "H" ] node [ id 2 sse_type "E" ] node [ id 3 sse_type "H" ]
  edge [ source 1 target 2 spatial "m" ] edge [ source 2 target 3 spatial "a" ]
]`))
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := output.WriteSubstructures(dir, a, a, []result.Record{{A: []int{1, 2}, B: []int{2, 3}}})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	sub, err := gml.ParseFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, 2, sub.VertexCount())
	assert.Equal(t, 1, sub.EdgeCount())
	_, err = sub.VertexByID(3)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = output.WriteSubstructures(dir, a, a, []result.Record{{A: []int{42}}})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
