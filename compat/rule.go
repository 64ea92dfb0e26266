package compat

import (
	"errors"
	"fmt"
	"strings"
)

// Rule is the declarative form of a Predicate.
//
// An edge pair is compatible when every EdgeAttrs key is equal on both edges
// and, for at least one alignment, every VertexAttrs key is equal on both
// aligned endpoint pairs. MatchAny accepts every pair and must be used alone.
type Rule struct {
	EdgeAttrs   []string
	VertexAttrs []string
	MatchAny    bool
}

// DefaultRule matches protein topology graphs the way the PTGL graphs are
// labelled: equal spatial relation on the edges, equal SSE type on the
// aligned endpoints.
func DefaultRule() Rule {
	return Rule{
		EdgeAttrs:   []string{"spatial"},
		VertexAttrs: []string{"sse_type"},
	}
}

// Validate reports every problem of r joined into one error; each problem is
// a *ConfigError.
func (r Rule) Validate() error {
	var errs []error

	if r.MatchAny {
		if len(r.EdgeAttrs) > 0 || len(r.VertexAttrs) > 0 {
			errs = append(errs, &ConfigError{Field: "match_any", Reason: "cannot be combined with attribute lists"})
		}
		return errors.Join(errs...)
	}

	if len(r.EdgeAttrs) == 0 && len(r.VertexAttrs) == 0 {
		errs = append(errs, &ConfigError{Field: "rule", Reason: "no attributes to compare and match_any not set"})
	}
	errs = append(errs, checkKeys("edge_attrs", r.EdgeAttrs)...)
	errs = append(errs, checkKeys("vertex_attrs", r.VertexAttrs)...)

	return errors.Join(errs...)
}

// checkKeys rejects blank and duplicate attribute names.
func checkKeys(field string, keys []string) []error {
	var errs []error
	seen := make(map[string]struct{}, len(keys))
	for i, k := range keys {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, &ConfigError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: "blank attribute name"})
			continue
		}
		if _, dup := seen[k]; dup {
			errs = append(errs, &ConfigError{Field: field, Reason: fmt.Sprintf("duplicate attribute %q in %s", k, describe(keys))})
			continue
		}
		seen[k] = struct{}{}
	}

	return errs
}

// Predicate validates r and compiles it into a Predicate.
//
// Errors:
//   - *ConfigError (errors.Is ErrInvalidRule) when r is invalid.
func (r Rule) Predicate() (Predicate, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.MatchAny {
		return Any(), nil
	}

	edgeKeys := append([]string(nil), r.EdgeAttrs...)
	vertexKeys := append([]string(nil), r.VertexAttrs...)

	return func(p Pair) Alignment {
		// 1) Edge attributes gate the pair regardless of alignment.
		if !attrsEqual(p.EdgeA.Attrs, p.EdgeB.Attrs, edgeKeys) {
			return None
		}
		if len(vertexKeys) == 0 {
			return Both
		}

		// 2) Vertex attributes decide which alignments survive.
		aFrom, err1 := p.A.Vertex(p.EdgeA.From)
		aTo, err2 := p.A.Vertex(p.EdgeA.To)
		bFrom, err3 := p.B.Vertex(p.EdgeB.From)
		bTo, err4 := p.B.Vertex(p.EdgeB.To)
		if err := errors.Join(err1, err2, err3, err4); err != nil {
			return None
		}

		out := None
		if attrsEqual(aFrom.Attrs, bFrom.Attrs, vertexKeys) && attrsEqual(aTo.Attrs, bTo.Attrs, vertexKeys) {
			out |= Parallel
		}
		if attrsEqual(aFrom.Attrs, bTo.Attrs, vertexKeys) && attrsEqual(aTo.Attrs, bFrom.Attrs, vertexKeys) {
			out |= Crossed
		}

		return out
	}, nil
}

// String renders the rule for logs.
func (r Rule) String() string {
	if r.MatchAny {
		return "match_any"
	}

	return fmt.Sprintf("edge=%s vertex=%s", describe(r.EdgeAttrs), describe(r.VertexAttrs))
}
