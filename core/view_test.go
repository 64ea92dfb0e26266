package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protsim/core"
)

func TestClone_Independent(t *testing.T) {
	g := buildPath(t, 3)
	c := g.Clone()

	require.Equal(t, g.VertexCount(), c.VertexCount())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())

	v, err := c.Vertex(0)
	require.NoError(t, err)
	v.Attrs["sse_type"] = "L"

	orig, err := g.Vertex(0)
	require.NoError(t, err)
	assert.Equal(t, "H", orig.Attrs["sse_type"], "clone must not alias attribute maps")

	_, err = c.AddVertex(99)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
}

func TestInducedSubgraph(t *testing.T) {
	g := buildPath(t, 5) // IDs 10..50, path 0-1-2-3-4

	sub := core.InducedSubgraph(g, []int{3, 1, 2, 2, 17})
	require.Equal(t, 3, sub.VertexCount())
	assert.Equal(t, 2, sub.EdgeCount(), "edges 1-2 and 2-3 survive")

	ids := make([]int, 0, 3)
	for _, v := range sub.Vertices() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int{20, 30, 40}, ids)

	nbs, err := sub.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nbs)
	assert.Equal(t, "path", sub.Name())
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	for id := 0; id < 6; id++ {
		_, _ = g.AddVertex(id)
	}
	_, _ = g.AddEdge(0, 4)
	_, _ = g.AddEdge(4, 2)
	_, _ = g.AddEdge(3, 5)

	assert.Equal(t, [][]int{{0, 2, 4}, {1}, {3, 5}}, core.Components(g))
	assert.Nil(t, core.Components(core.NewGraph()))
}
