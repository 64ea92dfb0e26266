package result

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/protsim/clique"
	"github.com/katalvlaran/protsim/core"
	"github.com/katalvlaran/protsim/productgraph"
)

// IndexPair is a correspondence in internal vertex indices: A holds indices
// of the first source graph, B of the second. Both are ascending and free of
// duplicates.
type IndexPair struct {
	A []int
	B []int
}

// ProjectIndices collects the endpoints of every A-edge and B-edge behind the
// product vertices of c.
//
// Errors:
//   - productgraph.ErrVertexNotFound if c names an unknown product vertex.
func ProjectIndices(pg *productgraph.Graph, c clique.Clique) (IndexPair, error) {
	setA := make(map[int]struct{}, 2*len(c))
	setB := make(map[int]struct{}, 2*len(c))
	for _, v := range c {
		ea, eb, err := pg.Edges(v)
		if err != nil {
			return IndexPair{}, fmt.Errorf("result: project: %w", err)
		}
		setA[ea.From], setA[ea.To] = struct{}{}, struct{}{}
		setB[eb.From], setB[eb.To] = struct{}{}, struct{}{}
	}

	return IndexPair{A: sortedKeys(setA), B: sortedKeys(setB)}, nil
}

// ToOriginal maps an IndexPair to original vertex IDs of a and b, each side
// sorted ascending by ID.
//
// Errors:
//   - core.ErrVertexNotFound if an index is out of range.
func ToOriginal(a, b *core.Graph, ip IndexPair) (Record, error) {
	ra, err := originalIDs(a, ip.A)
	if err != nil {
		return Record{}, fmt.Errorf("result: first graph: %w", err)
	}
	rb, err := originalIDs(b, ip.B)
	if err != nil {
		return Record{}, fmt.Errorf("result: second graph: %w", err)
	}

	return Record{A: ra, B: rb}, nil
}

// Project is ProjectIndices followed by ToOriginal against pg's source graphs.
func Project(pg *productgraph.Graph, c clique.Clique) (Record, error) {
	ip, err := ProjectIndices(pg, c)
	if err != nil {
		return Record{}, err
	}

	return ToOriginal(pg.A(), pg.B(), ip)
}

// ProjectAll projects every clique in order.
func ProjectAll(pg *productgraph.Graph, cliques []clique.Clique) ([]Record, error) {
	out := make([]Record, 0, len(cliques))
	for _, c := range cliques {
		r, err := Project(pg, c)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

func originalIDs(g *core.Graph, idx []int) ([]int, error) {
	out := make([]int, len(idx))
	for i, x := range idx {
		v, err := g.Vertex(x)
		if err != nil {
			return nil, err
		}
		out[i] = v.ID
	}
	slices.Sort(out)

	return out, nil
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
