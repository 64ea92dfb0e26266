// Package clique enumerates the maximal cliques of an undirected graph with
// the Bron–Kerbosch algorithm, Tomita pivot variant.
//
// A clique C is maximal when no vertex outside C is adjacent to every member
// of C. Every maximal clique of a product graph is a maximal common
// substructure of the two source graphs, so Enumerate is the search step of
// the similarity pipeline.
//
// Key features:
//   - Enumerate(ctx, g, opts...): all maximal cliques, each ascending.
//   - Pivot u from P∪X maximising |P∩N(u)|; ties go to the lowest index.
//   - P and X are iterated ascending and copied on every branch, so sibling
//     branches never share frontier storage and output order is reproducible.
//   - An isolated vertex is a singleton maximal clique; an empty graph yields
//     an empty result.
//
// Options:
//
//   - WithMinSize(n)     emit only cliques of size ≥ n and prune branches that
//     cannot reach n. Emitted cliques are still maximal.
//   - WithMaxCliques(n)  stop after n cliques.
//   - WithWorkers(n)     run the top-level branches on n goroutines. Output is
//     identical to the sequential run unless a budget or cancellation cuts it.
//
// Partial results:
//
//	Cancellation of ctx and an exhausted WithMaxCliques budget are not errors.
//	Enumerate returns what it found so far with Result.Partial set and
//	Result.Reason naming the cause.
//
// Complexity:
//
//   - Time:   O(3^(n/3)) worst case (Moon–Moser bound on the output size).
//   - Memory: O(n²/64) words per recursion level for the bitset frontiers.
//
// Errors:
//
//   - ErrGraphNil  if g is nil.
package clique
