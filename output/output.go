// Package output serialises comparison results: one JSON object per record
// on stdout, a full JSON report, per-record vertex mapping files, and GML
// exports of the common substructures.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/protsim/core"
	"github.com/katalvlaran/protsim/gml"
	"github.com/katalvlaran/protsim/result"
	"github.com/katalvlaran/protsim/similarity"
)

// File name prefixes of the mapping symbols for each side.
const (
	PrefixFirst  = "A"
	PrefixSecond = "B"
)

// WriteJSONLines writes each record as {"first":[...],"second":[...]} on its
// own line.
func WriteJSONLines(w io.Writer, records []result.Record) error {
	enc := json.NewEncoder(w)
	for i, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("output: record %d: %w", i, err)
		}
	}

	return nil
}

// reportJSON is the wire shape of a similarity.Report.
type reportJSON struct {
	RunID           string           `json:"run_id"`
	Rule            string           `json:"rule"`
	Policy          string           `json:"policy"`
	ProductVertices int              `json:"product_vertices"`
	ProductEdges    int              `json:"product_edges"`
	Cliques         int              `json:"cliques"`
	Selected        int              `json:"selected"`
	Filtered        bool             `json:"filtered"`
	RecordsBefore   int              `json:"records_before_filter,omitempty"`
	Partial         bool             `json:"partial"`
	Reason          string           `json:"stop_reason,omitempty"`
	ElapsedMillis   int64            `json:"elapsed_ms"`
	Records         []result.Record  `json:"records"`
	Mappings        []result.Mapping `json:"mappings,omitempty"`
}

// WriteReport writes rep as one indented JSON document.
func WriteReport(w io.Writer, rep *similarity.Report) error {
	out := reportJSON{
		RunID:           rep.RunID.String(),
		Rule:            rep.Rule,
		Policy:          rep.Policy,
		ProductVertices: rep.ProductVertices,
		ProductEdges:    rep.ProductEdges,
		Cliques:         rep.Cliques,
		Selected:        rep.Selected,
		Filtered:        rep.Filtered,
		Partial:         rep.Partial,
		ElapsedMillis:   rep.Elapsed.Milliseconds(),
		Records:         rep.Records,
		Mappings:        rep.Mappings,
	}
	if rep.Filtered {
		out.RecordsBefore = rep.Dedupe.Before
	}
	if rep.Partial {
		out.Reason = rep.Reason.String()
	}
	if out.Records == nil {
		out.Records = []result.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("output: report: %w", err)
	}

	return nil
}

// MappingString renders ids as "<id>=<prefix><position>" lines, the vertex
// mapping format read by the PTGL tools.
func MappingString(ids []int, prefix string) string {
	var sb strings.Builder
	for i, id := range ids {
		fmt.Fprintf(&sb, "%d=%s%d\n", id, prefix, i)
	}

	return sb.String()
}

// MappingFileNames returns the two file names used for record idx.
func MappingFileNames(idx int) (first, second string) {
	return fmt.Sprintf("results_%d_first.txt", idx), fmt.Sprintf("results_%d_second.txt", idx)
}

// WriteMappingFiles writes results_<i>_first.txt and results_<i>_second.txt
// into dir for every record and returns the written paths in pairs.
//
// When mappings[i] is non-nil both files list the aligned vertices in
// mapping order, so line k of one file corresponds to line k of the other.
// Otherwise each file lists its side of the record ascending.
func WriteMappingFiles(dir string, records []result.Record, mappings []result.Mapping) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	paths := make([]string, 0, 2*len(records))
	for i, r := range records {
		first, second := r.A, r.B
		if i < len(mappings) && mappings[i] != nil {
			first, second = mappings[i].FirstIDs(), mappings[i].SecondIDs()
		}
		nf, ns := MappingFileNames(i)
		pf, ps := filepath.Join(dir, nf), filepath.Join(dir, ns)
		if err := os.WriteFile(pf, []byte(MappingString(first, PrefixFirst)), 0o644); err != nil {
			return paths, fmt.Errorf("output: %w", err)
		}
		if err := os.WriteFile(ps, []byte(MappingString(second, PrefixSecond)), 0o644); err != nil {
			return paths, fmt.Errorf("output: %w", err)
		}
		paths = append(paths, pf, ps)
	}

	return paths, nil
}

// WriteSubstructures exports, for every record, the subgraphs of a and b
// induced by its vertex IDs as results_<i>_first.gml and
// results_<i>_second.gml in dir.
func WriteSubstructures(dir string, a, b *core.Graph, records []result.Record) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	paths := make([]string, 0, 2*len(records))
	for i, r := range records {
		for _, side := range []struct {
			g    *core.Graph
			ids  []int
			name string
		}{
			{a, r.A, fmt.Sprintf("results_%d_first.gml", i)},
			{b, r.B, fmt.Sprintf("results_%d_second.gml", i)},
		} {
			sub, err := induced(side.g, side.ids)
			if err != nil {
				return paths, err
			}
			p := filepath.Join(dir, side.name)
			if err = writeGML(p, sub); err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
	}

	return paths, nil
}

func induced(g *core.Graph, ids []int) (*core.Graph, error) {
	keep := make([]int, 0, len(ids))
	for _, id := range ids {
		idx, ok := g.IndexOf(id)
		if !ok {
			return nil, fmt.Errorf("output: %w: id %d", core.ErrVertexNotFound, id)
		}
		keep = append(keep, idx)
	}

	return core.InducedSubgraph(g, keep), nil
}

func writeGML(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("output: %w", cerr)
		}
	}()

	return gml.Write(f, g)
}
