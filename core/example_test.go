package core_test

import (
	"fmt"

	"github.com/katalvlaran/protsim/core"
)

// ExampleGraph builds a three-element topology graph: two helices packed
// against a strand, and queries it by original identifier.
func ExampleGraph() {
	g := core.NewGraph(core.WithName("1abc-A"))

	// 1) Vertices carry original IDs and attributes.
	h1, _ := g.AddVertex(1, core.WithVertexAttr("sse_type", "H"))
	e1, _ := g.AddVertex(2, core.WithVertexAttr("sse_type", "E"))
	h2, _ := g.AddVertex(3, core.WithVertexAttr("sse_type", "H"))

	// 2) Edges carry the spatial relation.
	_, _ = g.AddEdge(h1, e1, core.WithEdgeAttr("spatial", "m"))
	_, _ = g.AddEdge(e1, h2, core.WithEdgeAttr("spatial", "a"))

	v, _ := g.VertexByID(3)
	nbs, _ := g.Neighbors(e1)
	fmt.Println(g.Name(), g.VertexCount(), g.EdgeCount())
	fmt.Println(v.Index, v.Attrs["sse_type"], nbs)

	// Output:
	// 1abc-A 3 2
	// 2 H [0 2]
}
