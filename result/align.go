package result

import (
	"context"
	"slices"

	"github.com/katalvlaran/protsim/clique"
	"github.com/katalvlaran/protsim/compat"
	"github.com/katalvlaran/protsim/productgraph"
)

// Correspondence pairs one vertex of graph A with one vertex of graph B by
// original ID.
type Correspondence struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Mapping is a vertex-to-vertex alignment, ascending by A.
type Mapping []Correspondence

// FirstIDs returns the A side in mapping order.
func (m Mapping) FirstIDs() []int {
	out := make([]int, len(m))
	for i, c := range m {
		out[i] = c.A
	}

	return out
}

// SecondIDs returns the B side in mapping order.
func (m Mapping) SecondIDs() []int {
	out := make([]int, len(m))
	for i, c := range m {
		out[i] = c.B
	}

	return out
}

// aligner backtracks over the admissible alignments of a clique's product
// vertices, keeping a partial bijection between A and B vertex indices.
type aligner struct {
	ctx   context.Context
	pg    *productgraph.Graph
	verts []productgraph.Vertex
	ab    map[int]int
	ba    map[int]int
	steps int
	err   error
}

// ctxCheckEvery is the number of search steps between context checks.
const ctxCheckEvery = 256

// Align searches for one alignment choice per product vertex of c such that
// all implied vertex pairs form a single bijection. It returns the mapping
// in original IDs and true, or nil and false when no choice is consistent
// or c names an unknown product vertex.
//
// Pairwise adjacency of the clique guarantees consistency between any two
// members only; Align checks the clique as a whole. Members whose edges
// share no endpoint cannot conflict, so each group of members linked by
// shared endpoints is solved on its own.
//
// The search is exponential in the size of the largest group in the worst
// case. It stops with ctx.Err() once ctx is done.
func Align(ctx context.Context, pg *productgraph.Graph, c clique.Clique) (Mapping, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	al := &aligner{
		ctx:   ctx,
		pg:    pg,
		verts: make([]productgraph.Vertex, 0, len(c)),
		ab:    make(map[int]int),
		ba:    make(map[int]int),
	}
	for _, v := range c {
		pv, err := pg.Vertex(v)
		if err != nil {
			return nil, false, nil
		}
		al.verts = append(al.verts, pv)
	}

	for _, group := range al.groups() {
		if !al.search(group, 0) {
			return nil, false, al.err
		}
	}

	a, b := pg.A(), pg.B()
	m := make(Mapping, 0, len(al.ab))
	for ia, ib := range al.ab {
		va, errA := a.Vertex(ia)
		vb, errB := b.Vertex(ib)
		if errA != nil || errB != nil {
			return nil, false, nil
		}
		m = append(m, Correspondence{A: va.ID, B: vb.ID})
	}
	slices.SortFunc(m, func(x, y Correspondence) int { return x.A - y.A })

	return m, true, nil
}

// groups splits verts into connected groups: two members are linked when
// their A edges or their B edges share an endpoint. Each group is listed in
// breadth-first order from its first member, so every member after the first
// touches a vertex already bound by an earlier one.
func (al *aligner) groups() [][]productgraph.Vertex {
	byA := make(map[int][]int)
	byB := make(map[int][]int)
	ends := make([][4]int, len(al.verts))
	for i, pv := range al.verts {
		ea, eb, _ := al.pg.Edges(pv.Index)
		ends[i] = [4]int{ea.From, ea.To, eb.From, eb.To}
		byA[ea.From] = append(byA[ea.From], i)
		byB[eb.From] = append(byB[eb.From], i)
		if ea.To != ea.From {
			byA[ea.To] = append(byA[ea.To], i)
		}
		if eb.To != eb.From {
			byB[eb.To] = append(byB[eb.To], i)
		}
	}

	seen := make([]bool, len(al.verts))
	var out [][]productgraph.Vertex
	for start := range al.verts {
		if seen[start] {
			continue
		}
		seen[start] = true
		var group []productgraph.Vertex
		queue := []int{start}
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			group = append(group, al.verts[i])
			e := ends[i]
			for _, nbs := range [4][]int{byA[e[0]], byA[e[1]], byB[e[2]], byB[e[3]]} {
				for _, j := range nbs {
					if !seen[j] {
						seen[j] = true
						queue = append(queue, j)
					}
				}
			}
		}
		out = append(out, group)
	}

	return out
}

// search assigns an alignment to group[i:].
func (al *aligner) search(group []productgraph.Vertex, i int) bool {
	if i == len(group) {
		return true
	}
	if al.steps++; al.steps%ctxCheckEvery == 0 {
		if err := al.ctx.Err(); err != nil {
			al.err = err
			return false
		}
	}

	pv := group[i]
	ea, eb, _ := al.pg.Edges(pv.Index)
	for _, o := range pv.Align.Singles() {
		added, ok := al.bind(compat.Implied(o, ea, eb))
		if ok && al.search(group, i+1) {
			return true
		}
		al.unbind(added)
		if al.err != nil {
			return false
		}
	}

	return false
}

// bind records the pairs not yet present. It returns the newly added pairs
// and false on a conflict; the caller must unbind them either way.
func (al *aligner) bind(pairs [2]compat.VertexPair) ([]compat.VertexPair, bool) {
	var added []compat.VertexPair
	for _, p := range pairs {
		if b, ok := al.ab[p.A]; ok {
			if b != p.B {
				return added, false
			}
			continue
		}
		if _, ok := al.ba[p.B]; ok {
			return added, false
		}
		al.ab[p.A] = p.B
		al.ba[p.B] = p.A
		added = append(added, p)
	}

	return added, true
}

func (al *aligner) unbind(pairs []compat.VertexPair) {
	for _, p := range pairs {
		delete(al.ab, p.A)
		delete(al.ba, p.B)
	}
}
