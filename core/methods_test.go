package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protsim/core"
)

// buildPath creates an undirected path graph with original IDs 10, 20, …
// and alternating "H"/"E" sse_type attributes.
func buildPath(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithName("path"))
	for i := 0; i < n; i++ {
		sse := "H"
		if i%2 == 1 {
			sse = "E"
		}
		_, err := g.AddVertex((i+1)*10, core.WithVertexAttr("sse_type", sse))
		require.NoError(t, err)
	}
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(i, i+1, core.WithEdgeAttr("spatial", "m"))
		require.NoError(t, err)
	}

	return g
}

func TestAddVertex_DenseIndices(t *testing.T) {
	g := core.NewGraph()
	for i, id := range []int{7, 3, 42} {
		idx, err := g.AddVertex(id)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	assert.Equal(t, 3, g.VertexCount())

	v, err := g.VertexByID(42)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Index)
	assert.NotNil(t, v.Attrs, "attribute map must be initialized")
}

func TestAddVertex_DuplicateID(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex(5)
	require.NoError(t, err)

	idx, err := g.AddVertex(5)
	assert.ErrorIs(t, err, core.ErrDuplicateVertexID)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 1, g.VertexCount())
}

func TestVertexLookup_NotFound(t *testing.T) {
	g := buildPath(t, 2)

	_, err := g.Vertex(5)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex(-1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.VertexByID(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Edge(3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.False(t, g.HasVertex(2))
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex(1)
	_, _ = g.AddVertex(2)

	_, err := g.AddEdge(0, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(0, 5)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	eid, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, eid)

	// Undirected: the reverse declaration is a parallel edge.
	_, err = g.AddEdge(1, 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	mg := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	_, _ = mg.AddVertex(1)
	_, _ = mg.AddVertex(2)
	_, err = mg.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = mg.AddEdge(1, 0)
	require.NoError(t, err)
	_, err = mg.AddEdge(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, mg.EdgesBetween(0, 1))

	deg, err := mg.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 4, deg, "two parallel edges plus a loop counted twice")
}

func TestAddEdgeByID(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex(100)
	_, _ = g.AddVertex(200)

	eid, err := g.AddEdgeByID(200, 100, core.WithEdgeAttrs(map[string]string{"spatial": "a"}))
	require.NoError(t, err)

	e, err := g.Edge(eid)
	require.NoError(t, err)
	assert.Equal(t, 1, e.From)
	assert.Equal(t, 0, e.To)
	val, ok := e.Attr("spatial")
	assert.True(t, ok)
	assert.Equal(t, "a", val)

	_, err = g.AddEdgeByID(100, 300)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighbors_SortedAndSymmetric(t *testing.T) {
	g := core.NewGraph()
	for id := 0; id < 4; id++ {
		_, _ = g.AddVertex(id)
	}
	_, _ = g.AddEdge(2, 0)
	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(1, 2)

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, nbs)
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(-3, 1))
}

func TestEdgeOther(t *testing.T) {
	e := &core.Edge{From: 3, To: 8}
	assert.Equal(t, 8, e.Other(3))
	assert.Equal(t, 3, e.Other(8))
	assert.Equal(t, -1, e.Other(4))
}

func TestStats(t *testing.T) {
	g := buildPath(t, 4)
	st := g.Stats()
	assert.Equal(t, "path", st.Name)
	assert.Equal(t, 4, st.VertexCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 0, st.LoopCount)
	assert.Equal(t, 2, st.MaxDegree)
	assert.False(t, st.AllowsLoops)
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())
}
