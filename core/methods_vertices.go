// File: methods_vertices.go
// Role: Vertex insertion & queries.
//
// Determinism:
//   - Vertices() returns vertices in index order.
//
// Concurrency:
//   - Vertex catalog and adjacency protected by mu.
package core

import (
	"fmt"
	"sort"
)

// AddVertex appends a vertex with original identifier id and returns its index.
//
// Implementation:
//   - Stage 1: Under the write lock, reject a duplicate original ID.
//   - Stage 2: Allocate the Vertex with the next dense index, apply options.
//   - Stage 3: Bootstrap the adjacency bucket so edge methods can rely on it.
//
// Errors:
//   - ErrDuplicateVertexID: if id is already registered.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int, opts ...VertexOption) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Original IDs are unique within one graph.
	if _, exists := g.byID[id]; exists {
		return -1, fmt.Errorf("%w: %d", ErrDuplicateVertexID, id)
	}

	// 2) Dense index = current catalog size.
	idx := len(g.vertices)
	v := &Vertex{Index: idx, ID: id, Attrs: make(map[string]string)}
	var opt VertexOption
	for _, opt = range opts {
		opt(v)
	}

	// 3) Register and bootstrap adjacency.
	g.vertices = append(g.vertices, v)
	g.byID[id] = idx
	g.adjacency = append(g.adjacency, make(map[int][]int))

	return idx, nil
}

// HasVertex reports whether idx is a valid vertex index.
func (g *Graph) HasVertex(idx int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return idx >= 0 && idx < len(g.vertices)
}

// Vertex returns the vertex at index idx.
//
// Errors:
//   - ErrVertexNotFound: idx out of range.
func (g *Graph) Vertex(idx int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.vertices) {
		return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, idx)
	}

	return g.vertices[idx], nil
}

// VertexByID returns the vertex whose original identifier is id.
//
// Errors:
//   - ErrVertexNotFound: no vertex carries id.
func (g *Graph) VertexByID(id int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrVertexNotFound, id)
	}

	return g.vertices[idx], nil
}

// IndexOf maps an original identifier to its vertex index.
func (g *Graph) IndexOf(id int) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.byID[id]
	return idx, ok
}

// Vertices returns a snapshot of all vertices in index order.
// The slice is fresh; the *Vertex values are shared with the Graph.
//
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Neighbors returns the indices of all vertices adjacent to idx, ascending.
// A self-loop lists idx itself once.
//
// Errors:
//   - ErrVertexNotFound: idx out of range.
//
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(idx int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.vertices) {
		return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, idx)
	}

	out := make([]int, 0, len(g.adjacency[idx]))
	for nb := range g.adjacency[idx] {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edge endpoints incident to idx.
// A self-loop contributes 2, parallel edges each contribute 1.
//
// Errors:
//   - ErrVertexNotFound: idx out of range.
func (g *Graph) Degree(idx int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.vertices) {
		return 0, fmt.Errorf("%w: index %d", ErrVertexNotFound, idx)
	}

	return degreeLocked(g, idx), nil
}

// degreeLocked computes the degree of idx; caller must hold mu.
func degreeLocked(g *Graph, idx int) int {
	deg := 0
	for nb, eids := range g.adjacency[idx] {
		if nb == idx {
			deg += 2 * len(eids)
			continue
		}
		deg += len(eids)
	}

	return deg
}
