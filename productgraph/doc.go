// Package productgraph builds the compatibility (association) graph of two
// topology graphs.
//
// What:
//
//   - A product vertex stands for a compatible edge pair (eA, eB), eA from
//     graph A and eB from graph B, together with the endpoint alignments the
//     compatibility predicate admitted for it.
//   - A product edge joins two product vertices p and q when they use different
//     edges on both sides and some choice of admitted alignments makes the four
//     implied vertex correspondences a partial bijection: no vertex of A is
//     sent to two different vertices of B, and no vertex of B receives two
//     different vertices of A.
//   - Cliques of the product graph are therefore sets of mutually consistent
//     edge correspondences, i.e. common substructures of A and B.
//
// Alignment policy:
//
//	An edge pair that admits both alignments is ONE product vertex carrying
//	both alignments; the consistency test is existential over them. Splitting
//	it into two product vertices would double the search space and report
//	the same (idsA, idsB) pair twice. The price is that a clique is only
//	pairwise consistent; a globally consistent alignment is recovered later
//	(see result.Align) and may not exist for every clique.
//
// Determinism:
//
//	Product vertices are numbered by iterating the edges of A (outer loop) and
//	of B (inner loop) in index order.
//
// Complexity:
//
//   - Vertices: O(|E(A)|·|E(B)|) predicate calls.
//   - Edges:    O(n²) consistency checks for n product vertices, n ≤ |E(A)|·|E(B)|.
//   - Memory:   O(n²/64) words of adjacency bitsets.
//
// Errors:
//
//   - ErrGraphNil      either input graph is nil.
//   - ErrNilPredicate  no compatibility predicate supplied.
//   - ErrTooLarge      product vertex count exceeds WithMaxVertices.
//   - ctx.Err()        construction cancelled.
package productgraph
