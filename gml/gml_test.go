package gml_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protsim/core"
	"github.com/katalvlaran/protsim/gml"
)

func TestParseFile_Fixture(t *testing.T) {
	g, err := gml.ParseFile("testdata/alpha.gml")
	require.NoError(t, err)

	assert.Equal(t, "VP 1abc chain A (albe)", g.Name())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())

	v, err := g.VertexByID(1)
	require.NoError(t, err)
	sse, _ := v.Attr("sse_type")
	assert.Equal(t, "E", sse)
	n, _ := v.Attr("num_residues")
	assert.Equal(t, "6", n)
	_, hasID := v.Attr("id")
	assert.False(t, hasID)

	e, err := g.Edge(3)
	require.NoError(t, err)
	sp, _ := e.Attr("spatial")
	assert.Equal(t, "p", sp)
	_, hasGraphics := e.Attr("graphics")
	assert.False(t, hasGraphics, "nested lists are skipped")
}

func TestParseFile_Missing(t *testing.T) {
	_, err := gml.ParseFile("testdata/nope.gml")
	assert.Error(t, err)
}

func TestParse_EdgesBeforeNodesAndComments(t *testing.T) {
	src := `graph [ # inline comment
  edge [ source 2 target 1 weight -1.5e2 ]
  node [ id 1 ]
  node [ id 2 name "two words" ]
]`
	g, err := gml.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasEdge(0, 1))

	e, err := g.Edge(0)
	require.NoError(t, err)
	w, _ := e.Attr("weight")
	assert.Equal(t, "-1.5e2", w)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		line int
	}{
		{"unterminated list", "graph [\n node [ id 1 ]\n", 3},
		{"stray close", "graph [ ]\n]", 2},
		{"unterminated string", "graph [\n label \"abc\n]", 2},
		{"node without id", "graph [\n\n node [ label \"x\" ]\n]", 3},
		{"bad id", "graph [\n node [ id \"x\" ]\n]", 2},
		{"missing value", "graph [ node ]", 1},
		{"bad char", "graph [\n node [ id 1 ] }\n]", 2},
		{"edge without target", "graph [\n node [ id 1 ]\n edge [ source 1 ]\n]", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gml.Parse(strings.NewReader(tc.src))
			var se *gml.SyntaxError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, tc.line, se.Line)
		})
	}
}

func TestParse_SemanticErrorsWrapCore(t *testing.T) {
	_, err := gml.Parse(strings.NewReader("graph [ node [ id 1 ] node [ id 1 ] ]"))
	assert.ErrorIs(t, err, core.ErrDuplicateVertexID)

	_, err = gml.Parse(strings.NewReader("graph [ node [ id 1 ] edge [ source 1 target 9 ] ]"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = gml.Parse(strings.NewReader("graph [ node [ id 1 ] node [ id 2 ] edge [ source 1 target 2 ] edge [ source 2 target 1 ] ]"))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestParse_NoGraph(t *testing.T) {
	_, err := gml.Parse(strings.NewReader("Creator \"nobody\"\n"))
	assert.ErrorIs(t, err, gml.ErrNoGraph)
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := gml.ParseFile("testdata/alpha.gml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gml.Write(&buf, g))
	assert.Contains(t, buf.String(), `sse_type "H"`)
	assert.Contains(t, buf.String(), "num_residues 14")

	back, err := gml.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Name(), back.Name())
	require.Equal(t, g.VertexCount(), back.VertexCount())
	require.Equal(t, g.EdgeCount(), back.EdgeCount())
	for i, v := range g.Vertices() {
		w, err := back.Vertex(i)
		require.NoError(t, err)
		assert.Equal(t, v.ID, w.ID)
		assert.Equal(t, v.Attrs, w.Attrs)
	}
	for i, e := range g.Edges() {
		f, err := back.Edge(i)
		require.NoError(t, err)
		assert.Equal(t, e.From, f.From)
		assert.Equal(t, e.To, f.To)
		assert.Equal(t, e.Attrs, f.Attrs)
	}
}
