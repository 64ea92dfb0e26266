package clique

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
)

// errBudget stops sibling branches once the clique budget is spent.
var errBudget = errors.New("clique: budget exhausted")

// branch is one top-level subproblem: R={v} with its own P and X.
type branch struct {
	v    int
	p, x *bitset.BitSet
}

// found is a clique tagged with its position in sequential order.
type found struct {
	branch int
	seq    int
	c      Clique
}

// enumerateParallel splits the root call into its branches and expands them
// on an errgroup. Sorting by (branch, seq) reproduces the sequential order.
//
// Under a budget the set of kept cliques depends on scheduling; only the
// count is guaranteed.
func enumerateParallel(ctx context.Context, adj []*bitset.BitSet, o Options) *Result {
	n := len(adj)

	// 1) Root expansion, done here so every branch gets a private P and X.
	root := &enumerator{adj: adj, opts: o}
	p, x := full(n), bitset.New(uint(n))
	u := root.pivot(p, x)
	cand := p.Difference(adj[u])
	var branches []branch
	for v, ok := cand.NextSet(0); ok; v, ok = cand.NextSet(v + 1) {
		branches = append(branches, branch{v: int(v), p: p.Intersection(adj[v]), x: x.Intersection(adj[v])})
		p.Clear(v)
		x.Set(v)
	}

	// 2) Branches on the worker pool.
	var (
		mu        sync.Mutex
		all       []found
		accepted  atomic.Int64
		calls     atomic.Int64
		budgetHit atomic.Bool
		cancelled atomic.Bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, br := range branches {
		g.Go(func() error {
			e := &enumerator{ctx: gctx, adj: adj, opts: o}
			seq := 0
			e.emit = func(c Clique) bool {
				if o.MaxCliques > 0 && accepted.Add(1) > int64(o.MaxCliques) {
					return false
				}
				mu.Lock()
				all = append(all, found{branch: i, seq: seq, c: c})
				mu.Unlock()
				seq++
				return true
			}

			r := make([]int, 1, n)
			r[0] = br.v
			e.expand(r, br.p, br.x)
			calls.Add(int64(e.calls))

			switch e.stop {
			case ReasonBudget:
				budgetHit.Store(true)
				return errBudget
			case ReasonCancelled:
				cancelled.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait() // only errBudget is ever returned

	// 3) Merge into sequential order.
	sort.Slice(all, func(i, j int) bool {
		if all[i].branch != all[j].branch {
			return all[i].branch < all[j].branch
		}
		return all[i].seq < all[j].seq
	})
	res := &Result{Cliques: make([]Clique, len(all)), Calls: int(calls.Load()) + 1}
	for i := range all {
		res.Cliques[i] = all[i].c
	}

	// Budget wins: it is what cancelled gctx for the remaining branches.
	switch {
	case budgetHit.Load():
		res.Partial, res.Reason = true, ReasonBudget
	case cancelled.Load():
		res.Partial, res.Reason = true, ReasonCancelled
	}

	return res
}
