package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protsim/builder"
	"github.com/katalvlaran/protsim/core"
)

func build(t *testing.T, opts []builder.Option, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, opts, cons...)
	require.NoError(t, err)

	return g
}

func TestShapes(t *testing.T) {
	cases := []struct {
		name      string
		con       builder.Constructor
		vertices  int
		edges     int
		maxDegree int
	}{
		{"path", builder.Path(5), 5, 4, 2},
		{"single", builder.Path(1), 1, 0, 0},
		{"cycle", builder.Cycle(6), 6, 6, 2},
		{"complete", builder.Complete(5), 5, 10, 4},
		{"star", builder.Star(4), 4, 3, 3},
		{"empty random", builder.RandomSparse(4, 0), 4, 0, 0},
		{"full random", builder.RandomSparse(4, 1), 4, 6, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := build(t, nil, tc.con).Stats()
			assert.Equal(t, tc.vertices, st.VertexCount)
			assert.Equal(t, tc.edges, st.EdgeCount)
			assert.Equal(t, tc.maxDegree, st.MaxDegree)
		})
	}
}

func TestParameterErrors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestComposition_IDsContinue(t *testing.T) {
	g := build(t, []builder.Option{builder.WithIDOffset(10)}, builder.Cycle(4), builder.Path(3))

	assert.Equal(t, 7, g.VertexCount())
	assert.Len(t, core.Components(g), 2)
	for i, v := range g.Vertices() {
		assert.Equal(t, 10+i, v.ID)
	}
}

func TestLabels(t *testing.T) {
	g := build(t, []builder.Option{
		builder.WithSSELabels("H", "E"),
		builder.WithSpatialLabels("m", "a", "p"),
	}, builder.Path(4))

	var sse []string
	for _, v := range g.Vertices() {
		val, _ := v.Attr(builder.AttrSSEType)
		sse = append(sse, val)
	}
	assert.Equal(t, []string{"H", "E", "H", "E"}, sse)

	var spatial []string
	for _, e := range g.Edges() {
		val, _ := e.Attr(builder.AttrSpatial)
		spatial = append(spatial, val)
	}
	assert.Equal(t, []string{"m", "a", "p"}, spatial)
}

func TestSeedDeterminism(t *testing.T) {
	opts := func() []builder.Option {
		return []builder.Option{
			builder.WithSeed(11),
			builder.WithRandomSSELabels("H", "E"),
			builder.WithRandomSpatialLabels("m", "a", "p"),
		}
	}
	g1 := build(t, opts(), builder.RandomSparse(12, 0.3))
	g2 := build(t, opts(), builder.RandomSparse(12, 0.3))

	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	e1, e2 := g1.Edges(), g2.Edges()
	for i := range e1 {
		assert.Equal(t, e1[i].From, e2[i].From)
		assert.Equal(t, e1[i].To, e2[i].To)
		assert.Equal(t, e1[i].Attrs, e2[i].Attrs)
	}
	v1, v2 := g1.Vertices(), g2.Vertices()
	for i := range v1 {
		assert.Equal(t, v1[i].Attrs, v2[i].Attrs)
	}
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithVertexLabels(nil) })
}
