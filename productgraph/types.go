package productgraph

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/protsim/compat"
	"github.com/katalvlaran/protsim/core"
)

var (
	// ErrGraphNil is returned when an input graph is nil.
	ErrGraphNil = errors.New("productgraph: graph is nil")

	// ErrNilPredicate is returned when no compatibility predicate is given.
	ErrNilPredicate = errors.New("productgraph: predicate is nil")

	// ErrTooLarge is returned when the product graph exceeds the vertex limit.
	ErrTooLarge = errors.New("productgraph: too many product vertices")

	// ErrVertexNotFound is returned for an out-of-range product vertex index.
	ErrVertexNotFound = errors.New("productgraph: vertex not found")
)

// Vertex is one compatible edge pair.
type Vertex struct {
	// Index is the product vertex index.
	Index int

	// EdgeA is the edge index in graph A.
	EdgeA int

	// EdgeB is the edge index in graph B.
	EdgeB int

	// Align holds the admissible endpoint alignments.
	Align compat.Alignment
}

// Option configures Build.
type Option func(*Options)

// Options holds construction limits.
type Options struct {
	// MaxVertices caps the number of product vertices; 0 means unlimited.
	MaxVertices int
}

// DefaultOptions returns Options with no limits.
func DefaultOptions() Options {
	return Options{MaxVertices: 0}
}

// WithMaxVertices caps the number of product vertices; n ≤ 0 disables the cap.
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxVertices = n
	}
}

// Graph is the product graph. It is read-only once Build returns.
type Graph struct {
	a, b     *core.Graph
	edgesA   []*core.Edge
	edgesB   []*core.Edge
	vertices []Vertex
	adj      []*bitset.BitSet
	size     int
}

// Stats summarises a product graph.
type Stats struct {
	Vertices int
	Edges    int
	Isolated int
	Density  float64
}

// A returns the first source graph.
func (g *Graph) A() *core.Graph { return g.a }

// B returns the second source graph.
func (g *Graph) B() *core.Graph { return g.b }

// Order returns the number of product vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// EdgeCount returns the number of product edges.
func (g *Graph) EdgeCount() int { return g.size }

// Vertex returns product vertex v.
func (g *Graph) Vertex(v int) (Vertex, error) {
	if v < 0 || v >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return g.vertices[v], nil
}

// Vertices returns a copy of all product vertices in index order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns the A-edge and B-edge behind product vertex v.
func (g *Graph) Edges(v int) (*core.Edge, *core.Edge, error) {
	if v < 0 || v >= len(g.vertices) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	pv := g.vertices[v]

	return g.edgesA[pv.EdgeA], g.edgesB[pv.EdgeB], nil
}

// Adjacent reports whether u and v are joined by a product edge.
func (g *Graph) Adjacent(u, v int) bool {
	if u < 0 || u >= len(g.adj) {
		return false
	}

	return v >= 0 && g.adj[u].Test(uint(v))
}

// Neighbors returns the neighbors of v ascending (nil for invalid v).
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= len(g.adj) {
		return nil
	}

	row := g.adj[v]
	out := make([]int, 0, row.Count())
	for u, ok := row.NextSet(0); ok; u, ok = row.NextSet(u + 1) {
		out = append(out, int(u))
	}

	return out
}

// NeighborSet returns the adjacency row of v. Callers must not mutate it.
func (g *Graph) NeighborSet(v int) *bitset.BitSet { return g.adj[v] }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= len(g.adj) {
		return 0
	}

	return int(g.adj[v].Count())
}

// Stats computes vertex/edge counts, isolated vertices and edge density.
func (g *Graph) Stats() Stats {
	st := Stats{Vertices: len(g.vertices), Edges: g.size}
	for v := range g.adj {
		if g.adj[v].None() {
			st.Isolated++
		}
	}
	if n := len(g.vertices); n > 1 {
		st.Density = float64(2*g.size) / float64(n*(n-1))
	}

	return st
}
