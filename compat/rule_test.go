package compat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protsim/compat"
	"github.com/katalvlaran/protsim/core"
)

// twoVertexGraph returns a single-edge graph whose endpoints have the given
// sse types and whose edge carries the given spatial label.
func twoVertexGraph(t *testing.T, fromSSE, toSSE, spatial string) (*core.Graph, *core.Edge) {
	t.Helper()
	g := core.NewGraph()
	u, err := g.AddVertex(1, core.WithVertexAttr("sse_type", fromSSE))
	require.NoError(t, err)
	v, err := g.AddVertex(2, core.WithVertexAttr("sse_type", toSSE))
	require.NoError(t, err)
	eid, err := g.AddEdge(u, v, core.WithEdgeAttr("spatial", spatial))
	require.NoError(t, err)
	e, err := g.Edge(eid)
	require.NoError(t, err)

	return g, e
}

func TestRule_Validate(t *testing.T) {
	cases := []struct {
		name string
		rule compat.Rule
		ok   bool
	}{
		{"default", compat.DefaultRule(), true},
		{"match any", compat.Rule{MatchAny: true}, true},
		{"edge only", compat.Rule{EdgeAttrs: []string{"spatial"}}, true},
		{"empty", compat.Rule{}, false},
		{"blank key", compat.Rule{EdgeAttrs: []string{" "}}, false},
		{"duplicate key", compat.Rule{VertexAttrs: []string{"sse_type", "sse_type"}}, false},
		{"match any with attrs", compat.Rule{MatchAny: true, EdgeAttrs: []string{"spatial"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rule.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, compat.ErrInvalidRule)
			var ce *compat.ConfigError
			assert.True(t, errors.As(err, &ce))
		})
	}
}

func TestRule_PredicateRejectsInvalid(t *testing.T) {
	pred, err := compat.Rule{}.Predicate()
	assert.Nil(t, pred)
	assert.ErrorIs(t, err, compat.ErrInvalidRule)
}

func TestRule_PredicateAlignments(t *testing.T) {
	pred, err := compat.DefaultRule().Predicate()
	require.NoError(t, err)

	a, ea := twoVertexGraph(t, "H", "E", "p")

	t.Run("parallel only", func(t *testing.T) {
		b, eb := twoVertexGraph(t, "H", "E", "p")
		assert.Equal(t, compat.Parallel, pred(compat.Pair{A: a, B: b, EdgeA: ea, EdgeB: eb}))
	})
	t.Run("crossed only", func(t *testing.T) {
		b, eb := twoVertexGraph(t, "E", "H", "p")
		assert.Equal(t, compat.Crossed, pred(compat.Pair{A: a, B: b, EdgeA: ea, EdgeB: eb}))
	})
	t.Run("both for symmetric endpoints", func(t *testing.T) {
		a2, ea2 := twoVertexGraph(t, "H", "H", "p")
		b, eb := twoVertexGraph(t, "H", "H", "p")
		assert.Equal(t, compat.Both, pred(compat.Pair{A: a2, B: b, EdgeA: ea2, EdgeB: eb}))
	})
	t.Run("edge label mismatch", func(t *testing.T) {
		b, eb := twoVertexGraph(t, "H", "E", "a")
		assert.Equal(t, compat.None, pred(compat.Pair{A: a, B: b, EdgeA: ea, EdgeB: eb}))
	})
	t.Run("vertex type mismatch", func(t *testing.T) {
		b, eb := twoVertexGraph(t, "E", "E", "p")
		assert.False(t, pred(compat.Pair{A: a, B: b, EdgeA: ea, EdgeB: eb}).Compatible())
	})
}

func TestEdgeAttrEqual_MissingKeys(t *testing.T) {
	ea := &core.Edge{Attrs: map[string]string{}}
	eb := &core.Edge{Attrs: map[string]string{"spatial": ""}}
	pred := compat.EdgeAttrEqual("spatial")
	assert.Equal(t, compat.Both, pred(compat.Pair{EdgeA: ea, EdgeB: eb}))

	eb.Attrs["spatial"] = "m"
	assert.Equal(t, compat.None, pred(compat.Pair{EdgeA: ea, EdgeB: eb}))
}

func TestAnyNever(t *testing.T) {
	assert.Equal(t, compat.Both, compat.Any()(compat.Pair{}))
	assert.Equal(t, compat.None, compat.Never()(compat.Pair{}))
}

func TestAlignment(t *testing.T) {
	assert.Equal(t, []compat.Alignment{compat.Parallel, compat.Crossed}, compat.Both.Singles())
	assert.Empty(t, compat.None.Singles())
	assert.True(t, compat.Both.Has(compat.Crossed))
	assert.False(t, compat.Parallel.Has(compat.Crossed))
	assert.False(t, compat.Both.Has(compat.None))
	assert.Equal(t, "parallel|crossed", compat.Both.String())
	assert.Equal(t, "none", compat.None.String())

	ea := &core.Edge{From: 0, To: 1}
	eb := &core.Edge{From: 5, To: 7}
	assert.Equal(t, [2]compat.VertexPair{{A: 0, B: 5}, {A: 1, B: 7}}, compat.Implied(compat.Parallel, ea, eb))
	assert.Equal(t, [2]compat.VertexPair{{A: 0, B: 7}, {A: 1, B: 5}}, compat.Implied(compat.Crossed, ea, eb))
}
