package productgraph

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/protsim/core"
)

// Node is a product vertex as a gonum graph node. Its label names the
// original vertex identifiers of both edges, e.g. "1-2|7-9".
type Node struct {
	id    int64
	label string
	align string
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.id }

// DOTID implements dot.Node.
func (n Node) DOTID() string { return fmt.Sprintf("p%d", n.id) }

// Attributes implements encoding.Attributer.
func (n Node) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: fmt.Sprintf("%q", n.label)},
		{Key: "align", Value: fmt.Sprintf("%q", n.align)},
	}
}

// ToGonum copies g into a gonum undirected graph so the gonum graph
// algorithms and encoders can run on it. Node IDs equal product vertex indices.
func ToGonum(g *Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	nodes := make([]Node, len(g.vertices))
	for i, pv := range g.vertices {
		nodes[i] = Node{id: int64(i), label: g.label(pv), align: pv.Align.String()}
		out.AddNode(nodes[i])
	}
	for u := range g.adj {
		for v, ok := g.adj[u].NextSet(uint(u) + 1); ok; v, ok = g.adj[u].NextSet(v + 1) {
			out.SetEdge(simple.Edge{F: nodes[u], T: nodes[v]})
		}
	}

	return out
}

// WriteDOT renders g in Graphviz DOT format.
func WriteDOT(w io.Writer, g *Graph, name string) error {
	b, err := dot.Marshal(ToGonum(g), name, "", "  ")
	if err != nil {
		return fmt.Errorf("productgraph: marshal dot: %w", err)
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("productgraph: write dot: %w", err)
	}

	return nil
}

// label names a product vertex by the original IDs of its edges' endpoints.
func (g *Graph) label(pv Vertex) string {
	ea, eb := g.edgesA[pv.EdgeA], g.edgesB[pv.EdgeB]

	return fmt.Sprintf("%s|%s", endpointIDs(g.a.Vertex, ea.From, ea.To), endpointIDs(g.b.Vertex, eb.From, eb.To))
}

// endpointIDs formats "from-to" using original vertex IDs.
func endpointIDs(lookup func(int) (*core.Vertex, error), from, to int) string {
	u, err1 := lookup(from)
	v, err2 := lookup(to)
	if err1 != nil || err2 != nil {
		return fmt.Sprintf("?%d-?%d", from, to)
	}

	return fmt.Sprintf("%d-%d", u.ID, v.ID)
}
