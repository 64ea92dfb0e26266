package similarity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/protsim/clique"
	"github.com/katalvlaran/protsim/core"
	"github.com/katalvlaran/protsim/internal/ctxlog"
	"github.com/katalvlaran/protsim/metrics"
	"github.com/katalvlaran/protsim/productgraph"
	"github.com/katalvlaran/protsim/result"
)

// Option configures Compare beyond Config.
type Option func(*options)

type options struct {
	recorder *metrics.Recorder
}

// WithRecorder records the run on r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// Compare searches the common substructures of a and b.
//
// Steps:
//  1. Validate cfg and compile the rule.
//  2. Build the product graph.
//  3. Enumerate maximal cliques (bounded by Timeout and MaxCliques).
//  4. Select, project, optionally deduplicate and align.
//
// Timeout and ctx cover every step. Expiry is not an error: it yields a
// partial Report with Reason ReasonCancelled. Expiry during construction
// leaves that Report without records.
//
// Errors:
//   - anything matching compat.ErrInvalidRule for a bad configuration.
//   - productgraph errors other than ctx expiry, e.g. ErrTooLarge.
func Compare(ctx context.Context, a, b *core.Graph, cfg Config, opts ...Option) (*Report, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()

	rep := &Report{
		RunID:  uuid.New(),
		Rule:   cfg.Rule.String(),
		Policy: cfg.Policy.String(),
	}
	log := ctxlog.FromContext(ctx).With("run_id", rep.RunID.String())

	// 1) Configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("similarity: invalid config: %w", err)
	}
	pred, err := cfg.Rule.Predicate()
	if err != nil {
		return nil, fmt.Errorf("similarity: invalid config: %w", err)
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	// 2) Product graph
	pg, err := productgraph.Build(ctx, a, b, pred, productgraph.WithMaxVertices(cfg.MaxProductVertices))
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		rep.Records = []result.Record{}
		rep.Partial, rep.Reason = true, clique.ReasonCancelled
		rep.Elapsed = time.Since(start)
		log.Warn("Product graph construction stopped early, no results.", "error", err)
		return rep, nil
	case err != nil:
		return nil, fmt.Errorf("similarity: build product graph: %w", err)
	}
	rep.ProductVertices, rep.ProductEdges = pg.Order(), pg.EdgeCount()
	log.Debug("Product graph built.", "vertices", rep.ProductVertices, "edges", rep.ProductEdges, "rule", rep.Rule)

	// 3) Cliques; MinSize doubles as a pruning bound.
	copts := []clique.Option{
		clique.WithMaxCliques(cfg.MaxCliques),
		clique.WithWorkers(cfg.Workers),
	}
	if cfg.Policy.Kind == result.MinSize {
		copts = append(copts, clique.WithMinSize(cfg.Policy.MinSize))
	}
	enumStart := time.Now()
	cres, err := clique.Enumerate(ctx, pg, copts...)
	if err != nil {
		return nil, fmt.Errorf("similarity: enumerate cliques: %w", err)
	}
	rep.Enumeration = time.Since(enumStart)
	rep.Cliques, rep.Partial, rep.Reason = len(cres.Cliques), cres.Partial, cres.Reason
	if rep.Partial {
		log.Warn("Clique search stopped early, results are partial.", "reason", rep.Reason.String(), "cliques", rep.Cliques)
	}
	log.Debug("Cliques enumerated.", "count", rep.Cliques, "calls", cres.Calls, "duration", rep.Enumeration)

	// 4) Select, project, dedupe.
	selected := result.Select(cres.Cliques, cfg.Policy)
	rep.Selected = len(selected)
	records, err := result.ProjectAll(pg, selected)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	keep := make([]int, len(records))
	for i := range keep {
		keep[i] = i
	}
	if cfg.Filter {
		keep, rep.Dedupe = result.DedupeIndices(records)
		rep.Filtered = true
		log.Debug("Filtered permutations.", "before", rep.Dedupe.Before, "after", rep.Dedupe.After)
	}

	rep.Records = make([]result.Record, len(keep))
	if cfg.Align {
		rep.Mappings = make([]result.Mapping, len(keep))
	}
	aligning := cfg.Align
	for i, k := range keep {
		rep.Records[i] = records[k].Canonical()
		if !aligning {
			continue
		}
		m, ok, err := result.Align(ctx, pg, selected[k])
		if err != nil {
			// Records stay complete; the remaining mappings are left nil.
			log.Warn("Vertex alignment stopped early.", "aligned", i, "records", len(keep), "error", err)
			aligning = false
			continue
		}
		if ok {
			rep.Mappings[i] = m
		}
	}

	rep.Elapsed = time.Since(start)
	o.recorder.Observe(metrics.Run{
		ProductVertices: rep.ProductVertices,
		ProductEdges:    rep.ProductEdges,
		Cliques:         rep.Cliques,
		RecordsBefore:   len(records),
		RecordsAfter:    len(rep.Records),
		Partial:         rep.Partial,
		Enumeration:     rep.Enumeration,
	})
	log.Info("Comparison finished.",
		"records", len(rep.Records),
		"largest", rep.Largest(),
		"partial", rep.Partial,
		"elapsed", rep.Elapsed,
	)

	return rep, nil
}
