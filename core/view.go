// File: view.go
// Role: Non-mutating graph views (copying topology into a fresh Graph).
// Determinism:
//   - Kept vertices and edges preserve their relative index order.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

import "sort"

// Clone returns a deep copy of g: same options, vertices, edges and indices.
// Attribute maps are copied, so the clone can be mutated independently.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		name:       g.name,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		vertices:   make([]*Vertex, len(g.vertices)),
		byID:       make(map[int]int, len(g.byID)),
		edges:      make([]*Edge, len(g.edges)),
		adjacency:  make([]map[int][]int, len(g.adjacency)),
	}

	for i, v := range g.vertices {
		out.vertices[i] = &Vertex{Index: v.Index, ID: v.ID, Attrs: copyAttrs(v.Attrs)}
		out.byID[v.ID] = i
	}
	for i, e := range g.edges {
		out.edges[i] = &Edge{Index: e.Index, From: e.From, To: e.To, Attrs: copyAttrs(e.Attrs)}
	}
	for u, nbs := range g.adjacency {
		out.adjacency[u] = make(map[int][]int, len(nbs))
		for v, eids := range nbs {
			out.adjacency[u][v] = append([]int(nil), eids...)
		}
	}

	return out
}

// InducedSubgraph returns a new Graph induced by the vertex indices in keep:
// the result contains those vertices (re-indexed densely, in ascending order of
// their source index) and every edge whose endpoints are both kept.
// Original IDs and attributes are preserved; unknown indices are ignored.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep []int) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// 1) Normalize keep: in-range, unique, ascending.
	sel := make(map[int]int, len(keep)) // source index → new index
	order := make([]int, 0, len(keep))
	for _, idx := range keep {
		if idx < 0 || idx >= len(g.vertices) {
			continue
		}
		if _, dup := sel[idx]; dup {
			continue
		}
		sel[idx] = -1
		order = append(order, idx)
	}
	sort.Ints(order)

	out := NewGraph(WithName(g.name))
	out.allowLoops = g.allowLoops
	out.allowMulti = g.allowMulti

	// 2) Copy kept vertices.
	for newIdx, idx := range order {
		v := g.vertices[idx]
		out.vertices = append(out.vertices, &Vertex{Index: newIdx, ID: v.ID, Attrs: copyAttrs(v.Attrs)})
		out.byID[v.ID] = newIdx
		out.adjacency = append(out.adjacency, make(map[int][]int))
		sel[idx] = newIdx
	}

	// 3) Copy edges whose endpoints are both kept.
	var from, to int
	var okF, okT bool
	for _, e := range g.edges {
		from, okF = sel[e.From]
		to, okT = sel[e.To]
		if !okF || !okT {
			continue
		}
		eid := len(out.edges)
		out.edges = append(out.edges, &Edge{Index: eid, From: from, To: to, Attrs: copyAttrs(e.Attrs)})
		out.adjacency[from][to] = append(out.adjacency[from][to], eid)
		if from != to {
			out.adjacency[to][from] = append(out.adjacency[to][from], eid)
		}
	}

	return out
}

// copyAttrs returns a shallow copy of an attribute map (never nil).
func copyAttrs(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}
