// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Edge/Edges/EdgeCount/EdgesBetween.
// Determinism:
//   - Edges() returns edges in index order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge creates an undirected edge between the vertices at indices from and to,
// returning the new edge index.
//
// Steps:
//  1. Validate both endpoints exist.
//  2. Reject loops unless WithLoops.
//  3. Reject parallel edges unless WithMultiEdges.
//  4. Build the Edge with the next dense index and apply opts.
//  5. Link adjacency in both directions (once for loops).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, opts ...EdgeOption) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Endpoints
	n := len(g.vertices)
	if from < 0 || from >= n {
		return -1, fmt.Errorf("%w: index %d", ErrVertexNotFound, from)
	}
	if to < 0 || to >= n {
		return -1, fmt.Errorf("%w: index %d", ErrVertexNotFound, to)
	}

	// 2) Loop policy
	if from == to && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}

	// 3) Multi-edge policy
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return -1, ErrMultiEdgeNotAllowed
	}

	// 4) Construct
	eid := len(g.edges)
	e := &Edge{Index: eid, From: from, To: to, Attrs: make(map[string]string)}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}
	g.edges = append(g.edges, e)

	// 5) Link adjacency; undirected edges are mirrored.
	g.adjacency[from][to] = append(g.adjacency[from][to], eid)
	if from != to {
		g.adjacency[to][from] = append(g.adjacency[to][from], eid)
	}

	return eid, nil
}

// AddEdgeByID is AddEdge addressed by original vertex identifiers.
//
// Errors:
//   - ErrVertexNotFound: either identifier is unknown.
//   - any error of AddEdge.
func (g *Graph) AddEdgeByID(fromID, toID int, opts ...EdgeOption) (int, error) {
	from, ok := g.IndexOf(fromID)
	if !ok {
		return -1, fmt.Errorf("%w: id %d", ErrVertexNotFound, fromID)
	}
	to, ok := g.IndexOf(toID)
	if !ok {
		return -1, fmt.Errorf("%w: id %d", ErrVertexNotFound, toID)
	}

	return g.AddEdge(from, to, opts...)
}

// HasEdge reports whether at least one edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.adjacency) {
		return false
	}

	return len(g.adjacency[u][v]) > 0
}

// EdgesBetween returns the indices of all edges {u,v} in insertion order.
func (g *Graph) EdgesBetween(u, v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.adjacency) {
		return nil
	}
	src := g.adjacency[u][v]
	out := make([]int, len(src))
	copy(out, src)

	return out
}

// Edge returns the edge with index eid.
//
// Errors:
//   - ErrEdgeNotFound: eid out of range.
func (g *Graph) Edge(eid int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if eid < 0 || eid >= len(g.edges) {
		return nil, fmt.Errorf("%w: index %d", ErrEdgeNotFound, eid)
	}

	return g.edges[eid], nil
}

// Edges returns a snapshot of all edges in index order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
