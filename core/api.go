// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Name returns the descriptive label given via WithName ("" if none).
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, AddEdge(from,to) rejects duplicates with ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags and
// catalog sizes, including the number of self-loops and the maximum degree.
//
// Implementation:
//   - Stage 1: Acquire the read lock, snapshot flags and counts.
//   - Stage 2: Scan edges once for loops, then vertices once for degree.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Name:        g.name,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
	}

	var e *Edge
	for _, e = range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}

	var deg int
	for idx := range g.vertices {
		if deg = degreeLocked(g, idx); deg > stats.MaxDegree {
			stats.MaxDegree = deg
		}
	}

	return &stats
}
