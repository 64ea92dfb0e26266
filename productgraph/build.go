package productgraph

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/protsim/compat"
	"github.com/katalvlaran/protsim/core"
)

// Build constructs the product graph of a and b under pred.
//
// Steps:
//  1. Validate inputs and apply options.
//  2. Create a product vertex for every edge pair pred admits.
//  3. Connect every consistent pair of product vertices.
//
// An empty result (no compatible edge pair) is valid and not an error.
func Build(ctx context.Context, a, b *core.Graph, pred compat.Predicate, opts ...Option) (*Graph, error) {
	// 1) Inputs
	if a == nil || b == nil {
		return nil, ErrGraphNil
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		a:      a,
		b:      b,
		edgesA: a.Edges(),
		edgesB: b.Edges(),
	}

	// 2) Product vertices: A edges outer, B edges inner.
	var al compat.Alignment
	for _, ea := range g.edgesA {
		for _, eb := range g.edgesB {
			al = pred(compat.Pair{A: a, B: b, EdgeA: ea, EdgeB: eb})
			if !al.Compatible() {
				continue
			}
			if o.MaxVertices > 0 && len(g.vertices) >= o.MaxVertices {
				return nil, fmt.Errorf("%w: limit %d", ErrTooLarge, o.MaxVertices)
			}
			g.vertices = append(g.vertices, Vertex{
				Index: len(g.vertices),
				EdgeA: ea.Index,
				EdgeB: eb.Index,
				Align: al & compat.Both,
			})
		}
	}

	// 3) Product edges, one row at a time so cancellation stays responsive.
	n := len(g.vertices)
	g.adj = make([]*bitset.BitSet, n)
	for i := range g.adj {
		g.adj[i] = bitset.New(uint(n))
	}
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		for j := i + 1; j < n; j++ {
			if g.consistent(g.vertices[i], g.vertices[j]) {
				g.adj[i].Set(uint(j))
				g.adj[j].Set(uint(i))
				g.size++
			}
		}
	}

	return g, nil
}

// consistent reports whether p and q can belong to one common substructure.
func (g *Graph) consistent(p, q Vertex) bool {
	// One edge corresponds to one edge on either side.
	if p.EdgeA == q.EdgeA || p.EdgeB == q.EdgeB {
		return false
	}

	pa, pb := g.edgesA[p.EdgeA], g.edgesB[p.EdgeB]
	qa, qb := g.edgesA[q.EdgeA], g.edgesB[q.EdgeB]

	var pairs [4]compat.VertexPair
	for _, op := range p.Align.Singles() {
		for _, oq := range q.Align.Singles() {
			ip := compat.Implied(op, pa, pb)
			iq := compat.Implied(oq, qa, qb)
			pairs = [4]compat.VertexPair{ip[0], ip[1], iq[0], iq[1]}
			if bijective(pairs[:]) {
				return true
			}
		}
	}

	return false
}

// bijective reports whether the correspondences form a partial bijection:
// equal A sides imply equal B sides and vice versa.
func bijective(pairs []compat.VertexPair) bool {
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if (pairs[i].A == pairs[j].A) != (pairs[i].B == pairs[j].B) {
				return false
			}
		}
	}

	return true
}
