// Package compat decides which edge pairs across two topology graphs may
// represent the same relation. It is the domain rule driving the product graph:
// a Predicate inspects one edge of graph A and one edge of graph B and returns
// the set of endpoint alignments under which the pair is compatible.
//
// Alignments:
//
//	Parallel  A.From↔B.From and A.To↔B.To
//	Crossed   A.From↔B.To   and A.To↔B.From
//
// Edges are undirected, so both alignments are candidates. A Predicate that
// returns None rejects the pair; Both admits either alignment and leaves the
// choice to the consistency check of the product graph.
//
// Rules:
//
// Rule is the declarative, configuration-friendly form of a Predicate. It
// lists edge attributes that must be equal on both edges and vertex attributes
// that must be equal on aligned endpoints. Rule.Predicate validates the rule
// and returns a *ConfigError (wrapping ErrInvalidRule) when it is empty or
// malformed, so a run can abort before any product graph work starts.
//
// Attribute equality treats a missing key as the empty value: two edges that
// both lack "spatial" are equal on "spatial".
package compat
