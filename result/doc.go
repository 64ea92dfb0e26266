// Package result turns maximal cliques of a product graph into correspondence
// records and cleans them up for output.
//
// Stages, in pipeline order:
//
//   - Select(cliques, policy)       keep all, the largest, or those ≥ n.
//   - ProjectIndices(pg, clique)    clique → internal vertex indices per side.
//   - ToOriginal(a, b, pair)        internal indices → original vertex IDs.
//   - Dedupe(records)               canonical sort per side, drop duplicates.
//
// Project composes the two projection stages. Align recovers one explicit
// vertex-to-vertex mapping for a clique when the alignments of its product
// vertices admit a common choice.
//
// Determinism:
//
//	Every stage preserves input order and sorts each side ascending, so the
//	output depends only on the clique order produced by the enumerator.
package result
