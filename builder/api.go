package builder

import (
	"fmt"

	"github.com/katalvlaran/protsim/core"
)

// Constructor adds one deterministic piece of topology to g.
//
// A constructor adds its vertices first, then its edges, and addresses them
// by the indices it got back, never by ID arithmetic.
type Constructor func(g *core.Graph, b *run) error

// BuildGraph creates a core.Graph with gopts and applies cons in order.
// The first constructor error is returned wrapped as "builder: %w"; the
// partially built graph is discarded.
func BuildGraph(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	b := &run{cfg: newConfig(opts...)}

	for _, con := range cons {
		if err := con(g, b); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	return g, nil
}

// run carries the resolved configuration and the label counters across
// the constructors of one BuildGraph call.
type run struct {
	cfg      *config
	vertices int
	edges    int
}

// addVertices appends n labelled vertices and returns their indices.
func (b *run) addVertices(g *core.Graph, method string, n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		id := b.cfg.next
		var opts []core.VertexOption
		if b.cfg.vertexLabel != nil {
			opts = append(opts, core.WithVertexAttrs(b.cfg.vertexLabel(b.vertices, b.cfg.rng)))
		}
		idx, err := g.AddVertex(id, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
		out[i] = idx
		b.cfg.next++
		b.vertices++
	}

	return out, nil
}

// addEdge links the vertices at indices u and v with the next edge labels.
func (b *run) addEdge(g *core.Graph, method string, u, v int) error {
	var opts []core.EdgeOption
	if b.cfg.edgeLabel != nil {
		opts = append(opts, core.WithEdgeAttrs(b.cfg.edgeLabel(b.edges, b.cfg.rng)))
	}
	if _, err := g.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
	}
	b.edges++

	return nil
}
