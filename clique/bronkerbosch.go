package clique

import (
	"context"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// setGraph is implemented by graphs that already keep bitset adjacency rows,
// such as the product graph. Enumerate reads those rows without copying.
type setGraph interface {
	Graph
	NeighborSet(v int) *bitset.BitSet
}

// enumerator carries the state of one Bron–Kerbosch search.
type enumerator struct {
	ctx   context.Context
	adj   []*bitset.BitSet  // adjacency rows, never mutated
	opts  Options           // search parameters
	emit  func(Clique) bool // false when the budget refuses the clique
	calls int
	stop  StopReason
}

// Enumerate lists the maximal cliques of g.
//
// Steps:
//  1. Validate g and apply options.
//  2. Load adjacency as bitset rows.
//  3. Expand from R=∅, P=V, X=∅; fork top-level branches when Workers > 1.
//
// Cancellation and the WithMaxCliques budget end the search early with a
// partial Result and a nil error.
func Enumerate(ctx context.Context, g Graph, opts ...Option) (*Result, error) {
	// 1) Inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	if n == 0 {
		return &Result{Cliques: []Clique{}}, nil
	}

	// 2) Adjacency
	adj := adjacency(g)

	// 3) Search
	if o.Workers > 1 {
		return enumerateParallel(ctx, adj, o), nil
	}

	res := &Result{Cliques: []Clique{}}
	e := &enumerator{ctx: ctx, adj: adj, opts: o}
	e.emit = func(c Clique) bool {
		if o.MaxCliques > 0 && len(res.Cliques) >= o.MaxCliques {
			return false
		}
		res.Cliques = append(res.Cliques, c)
		return true
	}
	e.expand(make([]int, 0, n), full(n), bitset.New(uint(n)))

	res.Calls = e.calls
	if e.stop != ReasonNone {
		res.Partial = true
		res.Reason = e.stop
	}

	return res, nil
}

// expand is one Bron–Kerbosch call. It owns p and x and may modify them.
// It returns false once the search must stop.
func (e *enumerator) expand(r []int, p, x *bitset.BitSet) bool {
	e.calls++

	// 1) Cancellation
	select {
	case <-e.ctx.Done():
		e.stop = ReasonCancelled
		return false
	default:
	}

	// 2) Nothing left to add: R is maximal iff X is empty too.
	if p.None() {
		if x.None() && len(r) >= e.opts.MinSize {
			c := Clique(slices.Clone(r))
			slices.Sort(c)
			if !e.emit(c) {
				e.stop = ReasonBudget
				return false
			}
		}
		return true
	}

	// 3) R cannot grow to MinSize along this branch.
	if len(r)+int(p.Count()) < e.opts.MinSize {
		return true
	}

	// 4) Branch on P \ N(pivot), ascending.
	u := e.pivot(p, x)
	cand := p.Difference(e.adj[u])
	for v, ok := cand.NextSet(0); ok; v, ok = cand.NextSet(v + 1) {
		if !e.expand(append(r, int(v)), p.Intersection(e.adj[v]), x.Intersection(e.adj[v])) {
			return false
		}
		p.Clear(v)
		x.Set(v)
	}

	return true
}

// pivot returns the vertex of P∪X with the most neighbors in P, lowest index
// on ties. P must be non-empty.
func (e *enumerator) pivot(p, x *bitset.BitSet) uint {
	var best uint
	bestN := -1
	for _, s := range [2]*bitset.BitSet{p, x} {
		for u, ok := s.NextSet(0); ok; u, ok = s.NextSet(u + 1) {
			n := int(p.IntersectionCardinality(e.adj[u]))
			if n > bestN || (n == bestN && u < best) {
				best, bestN = u, n
			}
		}
	}

	return best
}

// full returns a set holding every index in [0, n).
func full(n int) *bitset.BitSet {
	return bitset.New(uint(n)).FlipRange(0, uint(n))
}

// adjacency returns one row per vertex. Out-of-range neighbors and self
// references are ignored.
func adjacency(g Graph) []*bitset.BitSet {
	n := g.Order()
	rows := make([]*bitset.BitSet, n)
	if sg, ok := g.(setGraph); ok {
		for v := 0; v < n; v++ {
			rows[v] = sg.NeighborSet(v)
		}
		return rows
	}

	for v := 0; v < n; v++ {
		rows[v] = bitset.New(uint(n))
		for _, u := range g.Neighbors(v) {
			if u >= 0 && u < n && u != v {
				rows[v].Set(uint(u))
			}
		}
	}

	return rows
}
