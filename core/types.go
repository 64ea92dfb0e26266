package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertexID indicates that a vertex with the same original ID already exists.
	ErrDuplicateVertexID = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a structural element of the graph.
//
// Index is dense and stable for the lifetime of the Graph.
// ID is the externally meaningful identifier, unique within one Graph.
// Attrs is not deep-copied by views; treat it as read-only after construction.
type Vertex struct {
	// Index is the 0-based position of this vertex in the Graph.
	Index int

	// ID is the original identifier (e.g. the GML node id).
	ID int

	// Attrs holds vertex attributes such as the SSE type.
	Attrs map[string]string
}

// Attr returns the attribute value for key and whether it was present.
func (v *Vertex) Attr(key string) (string, bool) {
	val, ok := v.Attrs[key]
	return val, ok
}

// Edge represents an undirected relation between two vertices.
//
// From and To are vertex indices. Their order only records how the edge was
// declared; it carries no direction.
type Edge struct {
	// Index is the 0-based position of this edge in the Graph (its descriptor).
	Index int

	// From is the first endpoint's vertex index.
	From int

	// To is the second endpoint's vertex index.
	To int

	// Attrs holds edge attributes such as the spatial relation label.
	Attrs map[string]string
}

// Attr returns the attribute value for key and whether it was present.
func (e *Edge) Attr(key string) (string, bool) {
	val, ok := e.Attrs[key]
	return val, ok
}

// Other returns the endpoint opposite to v, or -1 if v is not an endpoint.
func (e *Edge) Other(v int) int {
	switch v {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return -1
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithName attaches a descriptive label to the Graph.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// VertexOption configures a vertex when added.
type VertexOption func(*Vertex)

// WithVertexAttr sets a single vertex attribute.
func WithVertexAttr(key, value string) VertexOption {
	return func(v *Vertex) { v.Attrs[key] = value }
}

// WithVertexAttrs copies all entries of attrs into the vertex attributes.
func WithVertexAttrs(attrs map[string]string) VertexOption {
	return func(v *Vertex) {
		for k, val := range attrs {
			v.Attrs[k] = val
		}
	}
}

// EdgeOption configures an edge when added.
type EdgeOption func(*Edge)

// WithEdgeAttr sets a single edge attribute.
func WithEdgeAttr(key, value string) EdgeOption {
	return func(e *Edge) { e.Attrs[key] = value }
}

// WithEdgeAttrs copies all entries of attrs into the edge attributes.
func WithEdgeAttrs(attrs map[string]string) EdgeOption {
	return func(e *Edge) {
		for k, val := range attrs {
			e.Attrs[k] = val
		}
	}
}

// Graph is the core in-memory attributed graph.
//
// mu guards every field below it. Vertices and edges are append-only, which
// keeps indices dense and stable.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	name       string
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	vertices []*Vertex   // index → Vertex
	byID     map[int]int // original ID → index
	edges    []*Edge     // index → Edge

	// adjacency[u][v] lists the indices of all edges {u,v}.
	adjacency []map[int][]int
}

// GraphStats is a read-only snapshot of configuration flags and sizes.
type GraphStats struct {
	Name        string
	VertexCount int
	EdgeCount   int
	LoopCount   int
	AllowsLoops bool
	AllowsMulti bool
	MaxDegree   int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph has no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		byID: make(map[int]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
