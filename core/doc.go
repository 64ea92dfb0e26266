// Package core provides the attributed, undirected graph model shared by every
// stage of the substructure search: a thread-safe Graph with dense vertex and
// edge indices, original vertex identifiers, and string attribute maps.
//
// The Graph G = (V,E) is shaped after protein topology graphs:
//
//   - Vertices are secondary-structure elements. Each carries a dense, 0-based
//     Index assigned on insertion, an original ID (unique within the graph)
//     and an attribute map (e.g. "sse_type" → "H").
//   - Edges are spatial or sequential relations between two vertices. Each
//     carries a dense Index (its descriptor), the two endpoint indices, and an
//     attribute map (e.g. "spatial" → "p").
//   - Edges are undirected: Neighbors(u) includes v iff an edge {u,v} exists.
//
// Configuration Options (GraphOption):
//
//	– WithName(name)
//	    Attaches a human readable label (file name, PDB chain, …).
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Permits parallel edges; otherwise a second {u,v} → ErrMultiEdgeNotAllowed.
//
// Determinism:
//
//   - Vertices() and Edges() return elements in insertion (index) order.
//   - Neighbors() returns neighbor indices in ascending order.
//
// Lifecycle:
//
//	A Graph is built once (typically by the gml parser) and then treated as
//	read-only by the product graph builder and the result projector. The lock
//	protects concurrent readers against a late writer, nothing more.
//
// Errors:
//
//	ErrDuplicateVertexID   - original vertex ID already present.
//	ErrVertexNotFound      - vertex index or ID does not exist.
//	ErrEdgeNotFound        - edge index does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
